// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package typeutil

import (
	"sync/atomic"

	"github.com/wdamron/polyclass/types"
)

// nextVarId is shared by every VarTracker in the process, so type-variables allocated by
// independent type-systems never share an id.
var nextVarId atomic.Uint64

type varList struct {
	head *types.Var
	tail *varList
}

// VarList is a linked-list of type-variables allocated by VarTracker, most recent first.
type VarList struct {
	length int
	list   *varList
}

func (vs VarList) Len() int { return vs.length }

// Slice copies the list into a new slice, in allocation order.
func (vs VarList) Slice() []*types.Var {
	out := make([]*types.Var, vs.length)
	i := vs.length - 1
	for nd := vs.list; i >= 0 && nd != nil; nd = nd.tail {
		out[i] = nd.head
		i--
	}
	return out
}

// VarTracker allocates type-variables and tracks allocations.
//
// A VarTracker cannot be used concurrently, although separate trackers may allocate concurrently.
type VarTracker struct {
	count int
	head  *varList
	block []varList
}

func (vt *VarTracker) Len() int { return vt.count }

func (vt *VarTracker) List() VarList { return VarList{length: vt.count, list: vt.head} }

// New allocates a type-variable with a process-wide unique id.
func (vt *VarTracker) New(sort types.Sort) *types.Var {
	if len(vt.block) == 0 {
		vt.block = make([]varList, 8)
	}
	nd := &vt.block[0]
	vt.block = vt.block[1:]
	nd.head = types.NewVar(nextVarId.Add(1), sort)
	vt.count++
	nd.tail, vt.head = vt.head, nd
	return nd.head
}
