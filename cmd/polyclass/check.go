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
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wdamron/polyclass/analysis"
	"github.com/wdamron/polyclass/ast"
	"github.com/wdamron/polyclass/diag"
	"github.com/wdamron/polyclass/internal/config"
	"github.com/wdamron/polyclass/internal/fixture"
	"github.com/wdamron/polyclass/internal/log"
)

var CheckCmd = &cobra.Command{
	Use:          "check program.yaml",
	Short:        "Register the type-classes of a program and print their member signatures",
	Args:         cobra.ExactArgs(1),
	RunE:         runCheck,
	SilenceUsage: true,
}

var (
	configPath *string
	logLevel   *string
)

func init() {
	configPath = CheckCmd.Flags().StringP("config", "c", "", "path to "+config.FileName)
	logLevel = CheckCmd.Flags().StringP("log-level", "l", "", "log level (debug, info, warn, error); overrides the configuration")
}

func runCheck(cmd *cobra.Command, args []string) (err error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func(prevLevel slog.Level, prevSections []string) {
		log.SetLevel(prevLevel)
		log.SetSections(prevSections...)
	}(log.Level(), log.Sections())
	log.SetLevel(level)
	log.SetSections(cfg.Log.Sections...)

	prog, err := fixture.Load(args[0])
	if err != nil {
		return err
	}
	tree := ast.NewTree()
	root := prog.Build(tree)

	defer analysis.Recover(&err)
	a := analysis.New(diag.NewReporter(cfg.Diagnostics.Limit))
	a.SetLogger(log.New(cmd.ErrOrStderr()))
	ok := analysis.Run(a, tree, root)
	log.Section(a.Logger(), "cli").Debug("analysis finished", "program", args[0], "ok", ok)

	formatter := diag.Formatter{Color: useColor(cfg.Diagnostics.Color)}
	if err := formatter.Fprint(cmd.ErrOrStderr(), a.Reporter()); err != nil {
		return errors.Wrap(err, "writing diagnostics")
	}
	if !ok {
		return errors.Errorf("%s: %d errors found", args[0], a.Reporter().ErrorCount())
	}
	return printSignatures(cmd.OutOrStdout(), a, tree, root)
}

func useColor(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return !color.NoColor
}

// printSignatures writes the members of each type-class definition, in source order.
func printSignatures(w io.Writer, a *analysis.Analysis, tree *ast.Tree, root ast.NodeID) error {
	var err error
	ast.WalkNodes(tree, root, func(id ast.NodeID) {
		n := tree.Node(id)
		if err != nil || n.Kind != ast.KindTypeClassDefinition {
			return
		}
		tc := a.TypeClassRegistration(id).TypeClass
		functions := a.TypeClassMemberRegistrationGlobal().TypeClassFunctions[tc]
		if _, err = fmt.Fprintf(w, "class %s: %s\n", tree.Node(n.TypeVariable).Name, n.Name); err != nil {
			return
		}
		for _, name := range functions.Names() {
			signature, _ := functions.Get(name)
			if _, err = fmt.Fprintf(w, "  %s : %s\n", name, a.TypeSystem().TypeString(signature)); err != nil {
				return
			}
		}
	})
	return err
}
