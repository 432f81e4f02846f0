package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NaridaL/glsl-language-toolkit-sub001/format"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/diag"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var includePositions bool
	var fold bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a shader and dump its syntax tree",
		Long: `Parse a shader and dump its syntax tree to stdout.

If no file is provided, reads GLSL source from stdin. Syntax errors are
reported on stderr after the tree, which is printed as far as it could be
recovered.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, src, err := readSource(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			res := parseSource(name, src, fold)

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				enc := format.NewASTJSONEncoder(cmd.OutOrStdout())
				enc.Positions = includePositions
				encoder = enc
			case "tree":
				enc := format.NewTreeEncoder(cmd.OutOrStdout())
				enc.Positions = includePositions
				encoder = enc
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			if err := encoder.Encode(res); err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			list := diag.FromResult(res)
			for _, d := range list {
				fmt.Fprintln(cmd.ErrOrStderr(), d.Error())
			}
			if len(list) > 0 {
				return fmt.Errorf("%s: %d syntax errors", name, len(list))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (json, tree)")
	cmd.Flags().BoolVar(&includePositions, "positions", false, "include line and column positions")
	cmd.Flags().BoolVar(&fold, "fold-continuations", false, "join lines ending in a backslash before parsing")

	return cmd
}
