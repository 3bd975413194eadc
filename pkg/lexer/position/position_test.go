package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeLocation(t *testing.T) {
	source := []byte("a\nb\r\nc")

	run := func(offset uint32, wantLine, wantColumn uint32) {
		t.Helper()
		loc := DecodeLocation(source, offset)
		assert.Equal(t, wantLine, loc.Line, "line at offset %d", offset)
		assert.Equal(t, wantColumn, loc.Column, "column at offset %d", offset)
	}

	run(0, 1, 1)
	run(1, 1, 2)
	run(2, 2, 1)
	run(3, 2, 2)
	// offset 4 sits on the \n half of \r\n, the pair counts once
	run(4, 2, 2)
	run(5, 3, 1)
	run(6, 3, 2)
	// offsets past the end keep extending the column for EOF diagnostics
	run(10, 3, 6)
}

func TestDecodeLocationEmptySource(t *testing.T) {
	loc := DecodeLocation(nil, 0)
	assert.Equal(t, Location{Line: 1, Column: 1}, loc)

	loc = DecodeLocation(nil, 3)
	assert.Equal(t, Location{Line: 1, Column: 4}, loc)
}

func TestDecodeLocationMultiByte(t *testing.T) {
	source := []byte("äb")
	// ä is two bytes but one character
	loc := DecodeLocation(source, 3)
	assert.Equal(t, Location{Line: 1, Column: 3}, loc)
}

func TestPositionString(t *testing.T) {
	p := Position{LineStart: 1, CharStart: 2, LineEnd: 3, CharEnd: 4}
	assert.Equal(t, "1:2-3:4", p.String())
}
