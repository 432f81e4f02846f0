package ast

import (
	"sort"

	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/token"
)

// Range returns the byte offsets [start, end) covered by n. ok is false when
// the span of n does not refer to tokens in the given sequence.
func Range(n Node, tokens []token.Token) (start, end int, ok bool) {
	s := n.Span()
	if !s.Valid() || s.Last >= len(tokens) {
		return 0, 0, false
	}
	return tokens[s.First].Start.Offset, tokens[s.Last].End.Offset, true
}

// TokenAt returns the index of the token whose byte range contains offset.
// The EOF token never matches.
func TokenAt(tokens []token.Token, offset int) (int, bool) {
	i := sort.Search(len(tokens), func(i int) bool {
		return tokens[i].End.Offset > offset
	})
	if i < len(tokens) && tokens[i].Kind != token.EOF && tokens[i].Start.Offset <= offset {
		return i, true
	}
	return 0, false
}

// Path returns the chain of nodes from root down to the innermost node whose
// byte range contains offset. It is empty when root does not contain offset.
func Path(root Node, tokens []token.Token, offset int) []Node {
	var path []Node
	n := root
	for !IsNil(n) {
		start, end, ok := Range(n, tokens)
		if !ok || offset < start || offset >= end {
			break
		}
		path = append(path, n)
		var next Node
		for _, c := range Children(n) {
			if s, e, ok := Range(c.Node, tokens); ok && offset >= s && offset < e {
				next = c.Node
				break
			}
		}
		n = next
	}
	return path
}

// NodeAt returns the innermost node whose byte range contains offset, or nil.
func NodeAt(root Node, tokens []token.Token, offset int) Node {
	path := Path(root, tokens, offset)
	if len(path) == 0 {
		return nil
	}
	return path[len(path)-1]
}
