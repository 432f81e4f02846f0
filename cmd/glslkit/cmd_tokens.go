package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/parser"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/token"
)

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of a shader",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, src, err := readSource(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			tokens, lexErrors := parser.Lex(src, name)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, tok := range tokens {
				if tok.Kind == token.EOF {
					break
				}
				fmt.Fprintf(w, "%d:%d\t%s\t%s\n", tok.Start.Line, tok.Start.Column, tok.Kind, tok.Literal)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			for _, e := range lexErrors {
				fmt.Fprintln(cmd.ErrOrStderr(), e.Error())
			}
			if len(lexErrors) > 0 {
				return fmt.Errorf("%s: %d lexical errors", name, len(lexErrors))
			}
			return nil
		},
	}
	return cmd
}
