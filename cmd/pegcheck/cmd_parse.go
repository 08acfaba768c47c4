package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	peg "github.com/KimNorgaard/go-peg"
	"github.com/KimNorgaard/go-peg/errors"
	"github.com/KimNorgaard/go-peg/trace"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newParseCmd() *cobra.Command {
	var (
		grammar   grammarFlags
		traceFlag bool
	)

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file and print its syntax tree",
		Long: `Parse a file with the grammar and print the syntax tree, or the syntax
error with the offending line when the file does not match. Use - to read
standard input.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := grammar.load()
			if err != nil {
				return err
			}

			filename := args[0]
			input, err := readInput(cmd, filename)
			if err != nil {
				return err
			}

			opts := []peg.Option{peg.WithSource(filename)}
			log := commonlog.GetLogger("pegcheck.trace")
			switch {
			case traceFlag:
				opts = append(opts, peg.WithTracer(trace.NewPrinter(cmd.ErrOrStderr())))
			case log.AllowLevel(commonlog.Debug):
				opts = append(opts, peg.WithTracer(trace.NewLogger(log)))
			}

			node, err := in.Parse(input, opts...)
			if err != nil {
				var se *errors.SyntaxError
				if stderrors.As(err, &se) {
					fmt.Fprintln(cmd.ErrOrStderr(), se.Format(input))
				}
				return err
			}

			_, err = node.WriteTo(cmd.OutOrStdout())
			return err
		},
	}

	grammar.register(cmd)
	cmd.Flags().BoolVar(&traceFlag, "trace", false, "print rule events to standard error")

	return cmd
}

func readInput(cmd *cobra.Command, filename string) (string, error) {
	if filename == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
