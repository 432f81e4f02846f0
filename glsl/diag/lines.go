package diag

import (
	"sort"
	"unicode/utf8"
)

// LineIndex maps byte offsets to lines and columns. Lines are terminated by
// '\n'; a trailing "\r" is not part of a line's text.
type LineIndex struct {
	src    []byte
	starts []int // byte offset of each line start
}

func NewLineIndex(src []byte) *LineIndex {
	ix := &LineIndex{src: src, starts: []int{0}}
	for i, c := range src {
		if c == '\n' {
			ix.starts = append(ix.starts, i+1)
		}
	}
	return ix
}

// LineCount returns the number of lines. Text ending in a newline has an
// empty last line.
func (ix *LineIndex) LineCount() int {
	return len(ix.starts)
}

func (ix *LineIndex) clamp(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(ix.src) {
		return len(ix.src)
	}
	return offset
}

// Position returns the 1-based line and byte column of offset.
func (ix *LineIndex) Position(offset int) (line, col int) {
	offset = ix.clamp(offset)
	i := sort.Search(len(ix.starts), func(i int) bool {
		return ix.starts[i] > offset
	}) - 1
	return i + 1, offset - ix.starts[i] + 1
}

// Offset returns the byte offset of a 1-based line and byte column, clamped
// to the source.
func (ix *LineIndex) Offset(line, col int) int {
	if line < 1 {
		return 0
	}
	if line > len(ix.starts) {
		return len(ix.src)
	}
	return ix.clamp(ix.starts[line-1] + col - 1)
}

// Line returns the text of a 1-based line without its terminator.
func (ix *LineIndex) Line(line int) string {
	if line < 1 || line > len(ix.starts) {
		return ""
	}
	start := ix.starts[line-1]
	end := len(ix.src)
	if line < len(ix.starts) {
		end = ix.starts[line] - 1
	}
	if end > start && ix.src[end-1] == '\r' {
		end--
	}
	return string(ix.src[start:end])
}

// UTF16 returns the 0-based line and UTF-16 character offset of a byte
// offset, as used by the language server protocol.
func (ix *LineIndex) UTF16(offset int) (line, char int) {
	l, col := ix.Position(offset)
	start := ix.starts[l-1]
	return l - 1, utf16Len(ix.src[start : start+col-1])
}

// OffsetUTF16 is the inverse of UTF16. A character offset past the end of
// the line yields the end of the line.
func (ix *LineIndex) OffsetUTF16(line, char int) int {
	if line < 0 {
		return 0
	}
	if line >= len(ix.starts) {
		return len(ix.src)
	}
	offset := ix.starts[line]
	end := len(ix.src)
	if line+1 < len(ix.starts) {
		end = ix.starts[line+1] - 1
	}
	for n := 0; n < char && offset < end; {
		r, size := utf8.DecodeRune(ix.src[offset:end])
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
		offset += size
	}
	return offset
}

func utf16Len(b []byte) int {
	n := 0
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
		b = b[size:]
	}
	return n
}
