package renderer

import (
	"bytes"
	"io"
)

// ConditionalBlock buffers everything block writes and commits it to w only
// when block returns true. A table whose header is written before the rows
// are counted is the typical discard.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	var buf bytes.Buffer
	if block(&buf) {
		io.Copy(w, &buf)
	}
}
