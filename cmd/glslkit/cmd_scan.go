package main

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/NaridaL/glsl-language-toolkit-sub001/project"
)

func newScanCmd() *cobra.Command {
	var entrypoints bool

	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "List the shaders of a directory tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			p, err := project.LoadFrom(dir)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			if entrypoints {
				eps, err := p.FindEntrypoints()
				if err != nil {
					return err
				}
				for _, ep := range eps {
					fmt.Fprintf(w, "%s\t%s\tmain at line %d\n", relative(p.RootDir, ep.Path), ep.Stage, ep.Line)
				}
				return w.Flush()
			}

			files, err := p.ShaderFiles()
			if err != nil {
				return err
			}
			for _, file := range files {
				fmt.Fprintf(w, "%s\t%s\n", relative(p.RootDir, file), project.StageOf(file))
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVarP(&entrypoints, "entrypoints", "e", false, "only list shaders that define main")

	return cmd
}

func relative(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
