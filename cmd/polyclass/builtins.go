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

package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wdamron/polyclass/analysis"
	"github.com/wdamron/polyclass/ast"
	"github.com/wdamron/polyclass/diag"
)

var BuiltinsCmd = &cobra.Command{
	Use:          "builtins",
	Short:        "Print the built-in type-classes, their members and operators",
	Args:         cobra.NoArgs,
	RunE:         runBuiltins,
	SilenceUsage: true,
}

var builtinsJSON *bool

func init() {
	builtinsJSON = BuiltinsCmd.Flags().Bool("json", false, "print JSON")
}

type builtinMember struct {
	Class    string `json:"class"`
	Builtin  string `json:"builtin"`
	Member   string `json:"member"`
	Type     string `json:"type"`
	Operator string `json:"operator,omitempty"`
}

// bootstrap creates the passes of a fresh analysis and collects the members of every built-in class.
func bootstrap() (members []builtinMember, err error) {
	defer analysis.Recover(&err)

	a := analysis.New(diag.NewReporter(0))
	analysis.NewTypeClassRegistration(a)
	analysis.NewTypeClassMemberRegistration(a)

	operators := make(map[analysis.OperatorBinding]ast.Token)
	for tok, binding := range a.TypeClassMemberRegistrationGlobal().Operators {
		operators[binding] = tok
	}
	ts := a.TypeSystem()
	for _, b := range analysis.BuiltinClasses() {
		tc := a.TypeClassRegistrationGlobal().BuiltinClasses[b]
		for _, name := range a.TypeClassMemberRegistrationGlobal().TypeClassFunctions[tc].Names() {
			signature, _ := a.TypeClassMemberRegistrationGlobal().TypeClassFunctions[tc].Get(name)
			m := builtinMember{Class: b.Name(), Builtin: b.String(), Member: name, Type: ts.TypeString(signature)}
			if tok, ok := operators[analysis.OperatorBinding{TypeClass: tc, Name: name}]; ok {
				m.Operator = tok.String()
			}
			members = append(members, m)
		}
	}
	return members, nil
}

func runBuiltins(cmd *cobra.Command, args []string) error {
	members, err := bootstrap()
	if err != nil {
		return err
	}
	if *builtinsJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(members)
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CLASS\tMEMBER\tOPERATOR\tTYPE")
	for _, m := range members {
		op := m.Operator
		if op == "" {
			op = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.Class, m.Member, op, m.Type)
	}
	return w.Flush()
}
