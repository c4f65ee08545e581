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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/polyclass/internal/log"
)

const testdata = "../../internal/fixture/testdata/"

// resetFlags restores the defaults of flags set by an earlier execution.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	for _, cmd := range rootCmd.Commands() {
		resetFlags(cmd)
	}
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func noColorConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "polyclass.toml")
	require.NoError(t, os.WriteFile(path, []byte("[diagnostics]\ncolor = \"never\"\n"), 0o644))
	return path
}

func TestBuiltins(t *testing.T) {
	stdout, _, err := execute(t, "builtins")
	require.NoError(t, err)
	assert.Contains(t, stdout, "fromInteger")
	assert.Contains(t, stdout, "Integer 'a => integer -> 'a")
	assert.Contains(t, stdout, "== 'a => ('a, 'a) -> bool")
}

func TestBuiltinsJSON(t *testing.T) {
	stdout, _, err := execute(t, "builtins", "--json")
	require.NoError(t, err)

	var members []builtinMember
	require.NoError(t, json.Unmarshal([]byte(stdout), &members))
	require.Len(t, members, 8)
	assert.Equal(t, builtinMember{Class: "Integer", Builtin: "Integer", Member: "fromInteger", Type: "Integer 'a => integer -> 'a"}, members[0])
	assert.Equal(t, builtinMember{Class: "*", Builtin: "Mul", Member: "mul", Type: "* 'a => ('a, 'a) -> 'a", Operator: "*"}, members[1])
	assert.Equal(t, ">=", members[7].Operator)
	assert.Equal(t, "geq", members[7].Member)
}

func TestCheck(t *testing.T) {
	stdout, stderr, err := execute(t, "check", "--config", noColorConfig(t), "--log-level", "warn", testdata+"arith.yaml")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Equal(t, "class T: Arith\n  add : 'a -> 'b\n  sub : 'a -> 'b\nclass Self: Eq\n  eq : 'a -> 'b\n", stdout)
}

func TestCheckDuplicateMember(t *testing.T) {
	stdout, stderr, err := execute(t, "check", "--config", noColorConfig(t), "--log-level", "warn", testdata+"duplicate.yaml")
	require.Error(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "duplicate.sol:4:5: TypeError (3195): Function in type class declared multiple times.\n")
}

func TestCheckRedeclaredClass(t *testing.T) {
	_, stderr, err := execute(t, "check", "--config", noColorConfig(t), "--log-level", "warn", testdata+"redeclared.yaml")
	require.Error(t, err)
	assert.Contains(t, stderr, "redeclared.sol:5:1: DeclarationError (4767): Type class Eq already declared.\n")
}

func TestCheckErrors(t *testing.T) {
	_, _, err := execute(t, "check", "--config", noColorConfig(t), "--log-level", "loud", testdata+"arith.yaml")
	assert.Error(t, err)

	_, _, err = execute(t, "check", "--config", noColorConfig(t), "--log-level", "warn", testdata+"missing.yaml")
	assert.Error(t, err)
}

func TestCheckRestoresLogState(t *testing.T) {
	level, sections := log.Level(), log.Sections()

	path := filepath.Join(t.TempDir(), "polyclass.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nsections = [\"analysis.members\"]\n[diagnostics]\ncolor = \"never\"\n"), 0o644))
	_, stderr, err := execute(t, "check", "--config", path, "--log-level", "debug", testdata+"arith.yaml")
	require.NoError(t, err)
	assert.Contains(t, stderr, "section=analysis.members")
	assert.NotContains(t, stderr, "section=analysis.registration")

	assert.Equal(t, level, log.Level())
	assert.Equal(t, sections, log.Sections())

	_, _, err = execute(t, "check", "--config", path, "--log-level", "loud", testdata+"arith.yaml")
	require.Error(t, err)
	assert.Equal(t, level, log.Level())
}

func TestFlagsDoNotLeakBetweenRuns(t *testing.T) {
	stdout, _, err := execute(t, "builtins", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))

	stdout, _, err = execute(t, "builtins")
	require.NoError(t, err)
	assert.False(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "CLASS")

	stdout, _, err = execute(t, "check", testdata+"arith.yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "class T: Arith")
}
