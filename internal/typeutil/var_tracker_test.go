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
	"sync"
	"testing"

	"github.com/wdamron/polyclass/types"
)

func TestVarTrackerAllocationOrder(t *testing.T) {
	var vt VarTracker
	if vt.Len() != 0 || len(vt.List().Slice()) != 0 {
		t.Fatalf("expected an empty tracker")
	}
	sort := types.NewSort(types.NewTypeClassHandle(0))
	var allocated []*types.Var
	for i := 0; i < 20; i++ {
		allocated = append(allocated, vt.New(sort))
	}
	if vt.Len() != 20 || vt.List().Len() != 20 {
		t.Fatalf("expected 20 tracked variables, found %d", vt.Len())
	}
	vars := vt.List().Slice()
	for i, tv := range vars {
		if tv != allocated[i] {
			t.Fatalf("variable %d out of allocation order", i)
		}
		if i > 0 && tv.Id() <= vars[i-1].Id() {
			t.Fatalf("expected increasing ids, found %d after %d", tv.Id(), vars[i-1].Id())
		}
		if !tv.HasConstraint(types.NewTypeClassHandle(0)) {
			t.Fatalf("expected variable %d to carry its sort", i)
		}
	}
}

func TestVarTrackersShareIds(t *testing.T) {
	trackers := make([]VarTracker, 4)
	var wg sync.WaitGroup
	for i := range trackers {
		wg.Add(1)
		go func(vt *VarTracker) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				vt.New(types.Sort{})
			}
		}(&trackers[i])
	}
	wg.Wait()

	seen := make(map[uint64]bool)
	for i := range trackers {
		for _, tv := range trackers[i].List().Slice() {
			if seen[tv.Id()] {
				t.Fatalf("id %d allocated twice", tv.Id())
			}
			seen[tv.Id()] = true
		}
	}
	if len(seen) != 400 {
		t.Fatalf("expected 400 distinct ids, found %d", len(seen))
	}
}
