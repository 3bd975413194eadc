// Package position tracks where tokens live inside a GraphQL document.
package position

import "fmt"

// Position is the line/char span of a token inside the source.
// Lines and chars are 1 based, CharEnd is exclusive.
type Position struct {
	LineStart uint32 `json:"line_start"`
	LineEnd   uint32 `json:"line_end"`
	CharStart uint32 `json:"char_start"`
	CharEnd   uint32 `json:"char_end"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", p.LineStart, p.CharStart, p.LineEnd, p.CharEnd)
}

func (p *Position) Reset() {
	p.LineStart = 1
	p.LineEnd = 1
	p.CharStart = 1
	p.CharEnd = 1
}

// Location is a single line/column pair, 1 based.
type Location struct {
	Line   uint32
	Column uint32
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// DecodeLocation translates a byte offset into a Location by scanning the source
// from the start. "\n", "\r" and "\r\n" each terminate one line. An offset past the
// end of the source keeps incrementing the column, which places EOF diagnostics one
// past the last character.
func DecodeLocation(source []byte, offset uint32) Location {
	line, column := uint32(1), uint32(1)
	length := uint32(len(source))
	for i := uint32(0); i < offset; i++ {
		if i >= length {
			column++
			continue
		}
		switch source[i] {
		case '\r':
			if i+1 < length && source[i+1] == '\n' {
				// the pair counts once, the \n branch does the work
				continue
			}
			line++
			column = 1
		case '\n':
			line++
			column = 1
		default:
			if source[i]&0xC0 != 0x80 { // skip utf8 continuation bytes
				column++
			}
		}
	}
	return Location{Line: line, Column: column}
}
