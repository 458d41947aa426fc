package lint

import (
	"bytes"
	"sort"
)

// lineIndex maps byte offsets to 1-based line numbers.
type lineIndex []int

// newLineIndex records the offset at which each line starts.
func newLineIndex(source []byte) lineIndex {
	idx := lineIndex{0}
	for off := 0; ; {
		i := bytes.IndexByte(source[off:], '\n')
		if i < 0 {
			break
		}
		off += i + 1
		idx = append(idx, off)
	}
	return idx
}

// lineAt returns the line holding offset. Negative offsets map to line 1.
func (idx lineIndex) lineAt(offset int) int {
	if offset < 0 {
		return 1
	}
	return sort.Search(len(idx), func(i int) bool { return idx[i] > offset })
}

// lineStart returns the offset of the first byte of the line holding offset.
func lineStart(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	return bytes.LastIndexByte(source[:offset], '\n') + 1
}
