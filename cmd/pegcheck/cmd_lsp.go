package main

import (
	"github.com/KimNorgaard/go-peg/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	var grammar grammarFlags

	cmd := &cobra.Command{
		Use:          "lsp",
		Short:        "Serve syntax diagnostics over stdio",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := grammar.load()
			if err != nil {
				return err
			}
			return lsp.NewServer(in, version).RunStdio()
		},
	}

	grammar.register(cmd)

	return cmd
}
