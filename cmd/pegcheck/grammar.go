package main

import (
	"fmt"
	"os"

	"github.com/KimNorgaard/go-peg/interp"
	"github.com/spf13/cobra"
)

// grammarFlags are shared by every command that loads a grammar.
type grammarFlags struct {
	path   string
	start  string
	verify bool
}

func (g *grammarFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&g.path, "grammar", "g", "", "EBNF grammar file")
	cmd.Flags().StringVar(&g.start, "start", "", "start production (default: the only unreferenced production)")
	cmd.Flags().BoolVar(&g.verify, "verify", false, "verify the grammar against the start production")
	_ = cmd.MarkFlagRequired("grammar")
}

func (g *grammarFlags) load() (*interp.Interpreter, error) {
	f, err := os.Open(g.path)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	var opts []interp.Option
	if g.start != "" {
		opts = append(opts, interp.Start(g.start))
	}
	if g.verify {
		opts = append(opts, interp.Verify())
	}
	return interp.Load(g.path, f, opts...)
}
