// Command pegcheck parses files with an EBNF grammar and reports syntax
// errors, either once on the command line or continuously to an editor as a
// language server.
package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/KimNorgaard/go-peg/errors"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	var verbose int

	rootCmd := &cobra.Command{
		Use:           "pegcheck",
		Short:         "Check input against an EBNF grammar",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity (repeatable)")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newLSPCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Syntax errors have already been rendered with their source line.
		var se *errors.SyntaxError
		if !stderrors.As(err, &se) {
			fmt.Fprintln(os.Stderr, "pegcheck:", err)
		}
		os.Exit(1)
	}
}
