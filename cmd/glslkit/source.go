package main

import (
	"fmt"
	"io"
	"os"

	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/parser"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/preproc"
)

// readSource reads the named file, or stdin when args is empty or "-".
func readSource(stdin io.Reader, args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		src, err := io.ReadAll(stdin)
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return "<stdin>", src, nil
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("read file: %w", err)
	}
	return args[0], src, nil
}

func parseSource(name string, src []byte, fold bool) *parser.Result {
	if fold {
		return preproc.ParseFolded(parser.New(), name, src)
	}
	return parser.Parse(src, parser.WithFile(name))
}
