package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/NaridaL/glsl-language-toolkit-sub001/format"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/codebase"
	glslversion "github.com/NaridaL/glsl-language-toolkit-sub001/glsl/version"
	"github.com/NaridaL/glsl-language-toolkit-sub001/project"
)

type lintOptions struct {
	outputFormat   string
	showContext    bool
	requireVersion string
}

func newLintCmd() *cobra.Command {
	var opts lintOptions
	var watch bool
	var fold bool

	cmd := &cobra.Command{
		Use:   "lint [path...]",
		Short: "Report syntax errors in shaders",
		Long: `Report syntax errors in shaders.

Each path is a shader file or a directory that is searched for shaders
recursively. Without paths the current directory is linted. The command
fails if any problem was found.

With --watch the directory is linted again whenever a shader changes, until
interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			switch opts.outputFormat {
			case "text", "json":
			default:
				return fmt.Errorf("unknown format: %s", opts.outputFormat)
			}

			files, err := shaderPaths(args)
			if err != nil {
				return err
			}

			root := args[0]
			if info, err := os.Stat(root); err == nil && !info.IsDir() {
				root = filepath.Dir(root)
			}
			c := codebase.New(root, codebase.WithFolding(fold))
			l := &linter{out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr(), opts: opts}

			problems := 0
			for _, file := range files {
				f, err := c.ScanFile(file)
				if err != nil {
					return err
				}
				problems += l.report(f)
			}

			if watch {
				return l.watch(cmd, c)
			}
			if problems > 0 {
				return fmt.Errorf("%d problems in %d files", problems, len(files))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVarP(&opts.showContext, "context", "c", false, "show the source around each problem")
	cmd.Flags().StringVar(&opts.requireVersion, "require-version", "", "semantic version constraint on #version, e.g. \">= 3.0\"")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "lint again whenever a shader changes")
	cmd.Flags().BoolVar(&fold, "fold-continuations", false, "join lines ending in a backslash before parsing")

	return cmd
}

// shaderPaths expands directories to the shaders they contain. Files named
// explicitly are kept whatever their extension.
func shaderPaths(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("lint: %w", err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		p, err := project.LoadFrom(arg)
		if err != nil {
			return nil, err
		}
		found, err := p.ShaderFiles()
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

type linter struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	opts   lintOptions
}

// report prints the problems of f and returns how many there were.
func (l *linter) report(f *codebase.FileInfo) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	var versionProblems []string
	if f.VersionErr != nil {
		versionProblems = append(versionProblems, f.VersionErr.Error())
	} else if l.opts.requireVersion != "" {
		if _, err := glslversion.Check(f.Content, l.opts.requireVersion); err != nil {
			versionProblems = append(versionProblems, err.Error())
		}
	}

	if l.opts.outputFormat == "json" {
		if err := format.NewDiagnosticsJSONEncoder(l.out).Encode(f.Path, f.Diagnostics); err != nil {
			fmt.Fprintf(l.errOut, "%s: %s\n", f.Path, err)
		}
		for _, p := range versionProblems {
			fmt.Fprintf(l.errOut, "%s: %s\n", f.Path, p)
		}
		return len(f.Diagnostics) + len(versionProblems)
	}

	for _, p := range versionProblems {
		fmt.Fprintf(l.out, "%s: %s\n", f.Path, p)
	}
	for _, d := range f.Diagnostics {
		fmt.Fprintln(l.out, d.Error())
		if l.opts.showContext {
			fmt.Fprint(l.out, indentLines(d.Context(f.Content), "    "))
		}
	}
	return len(f.Diagnostics) + len(versionProblems)
}

func (l *linter) watch(cmd *cobra.Command, c *codebase.Codebase) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	w, err := codebase.NewFileWatcher(c, func(path string, f *codebase.FileInfo) {
		if f == nil {
			return
		}
		if l.report(f) == 0 {
			l.mu.Lock()
			fmt.Fprintf(l.out, "%s: ok\n", path)
			l.mu.Unlock()
		}
	})
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	fmt.Fprintf(l.errOut, "watching %s\n", c.RootDir())

	<-ctx.Done()
	return w.Stop()
}

func indentLines(s, prefix string) string {
	lines := strings.SplitAfter(s, "\n")
	var sb strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		sb.WriteString(prefix)
		sb.WriteString(line)
	}
	return sb.String()
}
