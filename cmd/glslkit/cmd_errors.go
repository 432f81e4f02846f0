package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/errcode"
)

func newErrorsCmd() *cobra.Command {
	var family string

	cmd := &cobra.Command{
		Use:   "errors [code...]",
		Short: "Describe GLSL ES compiler error codes",
		Long: `Describe GLSL ES compiler error codes.

Without arguments every code is listed, optionally restricted to one family
(preprocessor, lexer/parser, semantic, linker).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var entries []errcode.Entry
			switch {
			case len(args) > 0:
				for _, code := range args {
					e, ok := errcode.Lookup(code)
					if !ok {
						return fmt.Errorf("unknown error code %s", code)
					}
					entries = append(entries, e)
				}
			case family != "":
				f, err := errcode.ParseFamily(family)
				if err != nil {
					return err
				}
				entries = errcode.ByFamily(f)
			default:
				entries = errcode.All()
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.Code, e.Family, e.Description)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&family, "family", "", "only list codes of this family")

	return cmd
}
