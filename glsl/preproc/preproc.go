// Package preproc folds line continuations out of GLSL source and maps
// positions in the folded text back to the original.
//
// A backslash immediately followed by a line break joins two physical lines
// into one logical line. The lexer works on the folded text; Remap and
// RemapErrors then rewrite token and error positions so diagnostics point
// into the text the user wrote.
package preproc

import (
	"sort"

	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/diag"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/parser"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/token"
)

// cut records a removed continuation. Folded offsets at or after at are
// shifted by shift bytes in the original.
type cut struct {
	at    int
	shift int
}

type Folded struct {
	// Text is the source with every continuation removed.
	Text     []byte
	original []byte
	lines    *diag.LineIndex
	cuts     []cut
}

// Fold removes every backslash-newline pair from src. Both "\n" and "\r\n"
// line breaks are recognized.
func Fold(src []byte) *Folded {
	f := &Folded{original: src}
	out := make([]byte, 0, len(src))
	shift := 0
	for i := 0; i < len(src); i++ {
		if src[i] == '\\' {
			n := lineBreak(src, i+1)
			if n > 0 {
				shift += 1 + n
				f.cuts = append(f.cuts, cut{at: len(out), shift: shift})
				i += n
				continue
			}
		}
		out = append(out, src[i])
	}
	f.Text = out
	return f
}

func lineBreak(src []byte, i int) int {
	switch {
	case i < len(src) && src[i] == '\n':
		return 1
	case i+1 < len(src) && src[i] == '\r' && src[i+1] == '\n':
		return 2
	}
	return 0
}

// Folds reports whether any continuation was removed.
func (f *Folded) Folds() bool {
	return len(f.cuts) > 0
}

func (f *Folded) Source() []byte {
	return f.original
}

// Original maps an offset in the folded text to the original text.
func (f *Folded) Original(offset int) int {
	i := sort.Search(len(f.cuts), func(i int) bool { return f.cuts[i].at > offset })
	if i == 0 {
		return offset
	}
	return offset + f.cuts[i-1].shift
}

// originalEnd maps an exclusive end offset. The end of a range that stops
// right before a continuation stays before the backslash.
func (f *Folded) originalEnd(start, end int) int {
	if end <= start {
		return f.Original(end)
	}
	return f.Original(end-1) + 1
}

func (f *Folded) position(file string, offset int) token.Position {
	if f.lines == nil {
		f.lines = diag.NewLineIndex(f.original)
	}
	line, col := f.lines.Position(offset)
	return token.Position{File: file, Offset: offset, Line: line, Column: col}
}

// Remap rewrites the positions of tokens lexed from f.Text so they refer to
// the original source. Literals keep their folded text.
func (f *Folded) Remap(tokens []token.Token) {
	for i := range tokens {
		tok := &tokens[i]
		start, end := tok.Start.Offset, tok.End.Offset
		tok.Start = f.position(tok.Start.File, f.Original(start))
		tok.End = f.position(tok.End.File, f.originalEnd(start, end))
	}
}

// RemapErrors rewrites lexical error positions the same way. Length becomes
// the length of the run in the original text.
func (f *Folded) RemapErrors(errs []*parser.LexicalError) {
	for _, e := range errs {
		start := f.Original(e.Offset)
		end := f.originalEnd(e.Offset, e.Offset+e.Length)
		pos := f.position(e.File, start)
		e.Offset, e.Line, e.Column = pos.Offset, pos.Line, pos.Column
		e.Length = end - start
	}
}

// ParseFolded folds src, parses the folded text with p and remaps the
// result so every position refers to src.
func ParseFolded(p *parser.Parser, file string, src []byte) *parser.Result {
	f := Fold(src)
	tokens, lexErrors := parser.Lex(f.Text, file)
	if f.Folds() {
		f.Remap(tokens)
		f.RemapErrors(lexErrors)
	}
	return p.ParseTokens(src, tokens, lexErrors)
}
