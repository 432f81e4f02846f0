package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose int
	var logFile string

	rootCmd := &cobra.Command{
		Use:           "glslkit",
		Short:         "Parse, inspect and lint GLSL ES shaders",
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var path *string
			if logFile != "" {
				path = &logFile
			}
			commonlog.Configure(verbose, path)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "log verbosity (repeat for more)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newLintCmd())
	rootCmd.AddCommand(newErrorsCmd())
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newLSPCmd())

	return rootCmd
}
