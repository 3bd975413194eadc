package graphqlerrors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyntaxError(t *testing.T) {
	source := []byte("query {\n  foo(\n}")
	err := NewSyntaxError(source, 15, "unexpected token rbrace %q", "}")

	assert.Equal(t, uint32(3), err.Location().Line)
	assert.Equal(t, uint32(1), err.Location().Column)
	assert.Equal(t, `syntax error: unexpected token rbrace "}" at line 3, column 1`, err.Error())
}

func TestMaxDepthExceededError(t *testing.T) {
	source := []byte("{ a { b { c } } }")
	err := &MaxDepthExceededError{Source: source, Offset: 8, Depth: 4, Limit: 3}

	assert.Equal(t, uint32(1), err.Location().Line)
	assert.Equal(t, uint32(9), err.Location().Column)
	assert.Equal(t, "allowed parsing depth of 3 exceeded at line 1, column 9", err.Error())
}
