package diag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/ast"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/token"
)

// contextLines is how many lines are shown before and after a range.
const contextLines = 2

// Render returns an excerpt of src around the byte range [start, end):
//
//	3:13
//	1 | uniform float t;
//	2 | void main() {
//	3 |   float y = * t;
//	  |             ^
//	4 | }
//
// A range on one line has its columns marked. A range over several lines is
// marked from its start column to the end of the first line, across every
// interior line, and from the start of the last line to its end column. An
// empty range gets a single marker.
func Render(src []byte, start, end int) string {
	return NewLineIndex(src).Render(start, end)
}

func (ix *LineIndex) Render(start, end int) string {
	start = ix.clamp(start)
	end = ix.clamp(end)
	empty := end <= start

	startLine, startCol := ix.Position(start)
	endLine, endCol := startLine, startCol
	if !empty {
		// Position of the last byte in the range, inclusive.
		endLine, endCol = ix.Position(end - 1)
	}

	first := max(1, startLine-contextLines)
	last := min(ix.LineCount(), endLine+contextLines)
	width := len(strconv.Itoa(last))

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d:%d\n", startLine, startCol)
	for n := first; n <= last; n++ {
		text := ix.Line(n)
		fmt.Fprintf(&sb, "%*d | %s\n", width, n, text)
		if n < startLine || n > endLine {
			continue
		}

		from, to := 1, len(text)+1
		if n == startLine {
			from = startCol
		}
		if n == endLine {
			to = endCol + 1
		}
		if empty || to <= from {
			if n != startLine && n != endLine {
				continue
			}
			to = from + 1
		}
		fmt.Fprintf(&sb, "%*s | %s%s\n", width, "", indent(text, from-1), strings.Repeat("^", to-from))
	}
	return sb.String()
}

// indent returns n columns of blank space that line up with text, keeping
// its tabs.
func indent(text string, n int) string {
	b := make([]byte, n)
	for i := range b {
		if i < len(text) && text[i] == '\t' {
			b[i] = '\t'
		} else {
			b[i] = ' '
		}
	}
	return string(b)
}

// RenderToken renders the excerpt for a single token.
func RenderToken(src []byte, tok token.Token) string {
	return Render(src, tok.Start.Offset, tok.End.Offset)
}

// RenderNode renders the excerpt for the source range of n. It returns ""
// when n has no valid span in tokens.
func RenderNode(src []byte, tokens []token.Token, n ast.Node) string {
	start, end, ok := ast.Range(n, tokens)
	if !ok {
		return ""
	}
	return Render(src, start, end)
}
