package main

import (
	"github.com/spf13/cobra"

	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/codebase"
)

func newLSPCmd() *cobra.Command {
	var fold bool

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		Long: `Start the Language Server Protocol server on stdio.

The workspace root is taken from the client unless ` + codebase.RootEnv + ` is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := codebase.NewLSPServer(version, codebase.WithFolding(fold))
			return server.RunStdio()
		},
	}

	cmd.Flags().BoolVar(&fold, "fold-continuations", false, "join lines ending in a backslash before parsing")

	return cmd
}
