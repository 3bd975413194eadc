// Package graphqlerrors contains the error values surfaced by the lexer and parser.
//
// Both error kinds carry the source and the byte offset of the failure so that
// callers can render a line/column diagnostic without any additional state.
package graphqlerrors

import (
	"fmt"

	"github.com/gqlkit/graphql-go-parser/pkg/lexer/position"
)

// SyntaxError is any lexical or syntactic failure. Parsing stops at the first one.
type SyntaxError struct {
	Message string
	Source  []byte
	Offset  uint32
}

func NewSyntaxError(source []byte, offset uint32, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Message: fmt.Sprintf(format, args...),
		Source:  source,
		Offset:  offset,
	}
}

func (e *SyntaxError) Error() string {
	loc := e.Location()
	return fmt.Sprintf("syntax error: %s at line %d, column %d", e.Message, loc.Line, loc.Column)
}

// Location decodes the error offset into a line/column pair.
func (e *SyntaxError) Location() position.Location {
	return position.DecodeLocation(e.Source, e.Offset)
}

// MaxDepthExceededError is returned when the parser encounters nesting depth that
// exceeds the configured limit. The limit exists to prevent stack overflow from
// maliciously deep GraphQL documents.
type MaxDepthExceededError struct {
	Source []byte
	Offset uint32
	Depth  int
	Limit  int
}

func (e *MaxDepthExceededError) Error() string {
	loc := e.Location()
	return fmt.Sprintf("allowed parsing depth of %d exceeded at line %d, column %d", e.Limit, loc.Line, loc.Column)
}

// Location decodes the error offset into a line/column pair.
func (e *MaxDepthExceededError) Location() position.Location {
	return position.DecodeLocation(e.Source, e.Offset)
}
