// Package lspedit converts LSP text edits into byte-range changes.
//
// Language servers report edits as line plus UTF-16 column ranges
// against the document text. Changes resolves those positions to byte
// offsets in the given content and returns a verified changeset for
// the splice package. Only the protocol types are used; no server or
// transport is involved.
package lspedit

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go.lsp.dev/protocol"

	"github.com/signadot/reprint/change"
)

// PositionError reports a position whose line does not exist in the
// content.
type PositionError struct {
	Position protocol.Position
	Lines    int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("position %d:%d beyond content of %d lines",
		e.Position.Line, e.Position.Character, e.Lines)
}

// Changes resolves edits against src and returns the corresponding
// verified changeset. Columns beyond a line's end clamp to the line
// end, as the protocol prescribes; lines beyond the content are an
// error.
func Changes(src []byte, edits []protocol.TextEdit) (change.Set, error) {
	lines := lineStarts(src)
	set := make(change.Set, 0, len(edits))
	for _, e := range edits {
		start, err := resolve(src, lines, e.Range.Start)
		if err != nil {
			return nil, err
		}
		end, err := resolve(src, lines, e.Range.End)
		if err != nil {
			return nil, err
		}
		set = append(set, change.Change{Start: start, End: end, Text: e.NewText})
	}
	return change.Verify(set)
}

// lineStarts indexes the byte offset of the first byte of every line.
func lineStarts(src []byte) []int {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// resolve maps a line + UTF-16 column position to a byte offset.
func resolve(src []byte, lines []int, pos protocol.Position) (int, error) {
	line := int(pos.Line)
	if line >= len(lines) {
		return 0, &PositionError{Position: pos, Lines: len(lines)}
	}
	off := lines[line]
	col := int(pos.Character)
	for col > 0 && off < len(src) {
		r, size := utf8.DecodeRune(src[off:])
		if r == '\n' {
			break
		}
		col -= utf16.RuneLen(r)
		off += size
	}
	return off, nil
}
