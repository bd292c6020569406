package lint

import (
	"sort"
	"unicode/utf16"
	"unicode/utf8"
)

// LineIndex maps byte offsets to 1-based line and column numbers. It
// holds the offset at which each line starts.
type LineIndex struct {
	src    []byte
	starts []int
}

// NewLineIndex scans src once and records every line start.
func NewLineIndex(src []byte) *LineIndex {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{src: src, starts: starts}
}

// Lines returns the number of lines in the source.
func (x *LineIndex) Lines() int {
	return len(x.starts)
}

// Position converts a byte offset to a line and column. Columns count
// UTF-16 code units, so a character outside the Basic Multilingual
// Plane takes two. Offsets outside the source are clamped.
func (x *LineIndex) Position(offset int) (line, column int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(x.src) {
		offset = len(x.src)
	}
	// Index of the last line start <= offset.
	i := sort.Search(len(x.starts), func(i int) bool {
		return x.starts[i] > offset
	}) - 1
	return i + 1, utf16Len(x.src[x.starts[i]:offset]) + 1
}

func utf16Len(b []byte) int {
	n := 0
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
		b = b[size:]
	}
	return n
}
