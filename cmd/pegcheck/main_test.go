package main

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KimNorgaard/go-peg/errors"
	"github.com/KimNorgaard/go-peg/internal/testutil"
	"github.com/stretchr/testify/require"
)

// writeGrammar copies an embedded grammar to a temporary file.
func writeGrammar(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, testutil.Grammar(t, name), 0o644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestParseCommand(t *testing.T) {
	grammar := writeGrammar(t, "calc.ebnf")

	t.Run("prints the tree", func(t *testing.T) {
		stdout, _, err := execute(t, "x = 1;", "parse", "--grammar", grammar, "-")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(stdout, "Program 1:1-1:7\n  Statement 1:1-1:7\n"), stdout)
		require.Contains(t, stdout, `number 1:5-1:6 "1"`)
	})

	t.Run("reports syntax errors", func(t *testing.T) {
		input := filepath.Join(t.TempDir(), "bad.calc")
		require.NoError(t, os.WriteFile(input, []byte("x = 1 + ;\n"), 0o644))

		stdout, stderr, err := execute(t, "", "parse", "-g", grammar, input)
		var se *errors.SyntaxError
		require.True(t, stderrors.As(err, &se))
		require.Empty(t, stdout)
		require.Equal(t, "Error: Expected \"(\", ident, or number but \";\" found.\n"+
			" --> "+input+":1:9\n"+
			"  |\n"+
			"1 | x = 1 + ;\n"+
			"  |         ^\n", stderr)
	})

	t.Run("traces rules", func(t *testing.T) {
		_, stderr, err := execute(t, "x = 1;", "parse", "--grammar", grammar, "--trace", "-")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(stderr, "1:1-1:1 rule.enter Program\n"), stderr)
		require.Contains(t, stderr, "rule.match     ident")
	})

	t.Run("start production", func(t *testing.T) {
		stdout, _, err := execute(t, "a * 2", "parse", "--grammar", grammar, "--start", "Term", "--verify", "-")
		require.Error(t, err, "verify rejects productions unreachable from Term")
		require.Empty(t, stdout)

		stdout, _, err = execute(t, "a * 2", "parse", "--grammar", grammar, "--start", "Term", "-")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(stdout, "Term 1:1-1:6\n"), stdout)
	})

	t.Run("missing grammar flag", func(t *testing.T) {
		_, _, err := execute(t, "", "parse", "-")
		require.EqualError(t, err, `required flag(s) "grammar" not set`)
	})

	t.Run("missing grammar file", func(t *testing.T) {
		_, _, err := execute(t, "", "parse", "--grammar", filepath.Join(t.TempDir(), "none.ebnf"), "-")
		require.ErrorContains(t, err, "open grammar:")
	})

	t.Run("missing input file", func(t *testing.T) {
		_, _, err := execute(t, "", "parse", "--grammar", grammar, filepath.Join(t.TempDir(), "none.calc"))
		require.ErrorContains(t, err, "read input:")
	})
}

func TestLSPCommandArgs(t *testing.T) {
	_, _, err := execute(t, "", "lsp", "--grammar", "g.ebnf", "extra")
	require.Error(t, err)
}
