// Package token defines the value type handed from the lexer to the parser.
package token

import (
	"fmt"

	"github.com/gqlkit/graphql-go-parser/pkg/ast"
	"github.com/gqlkit/graphql-go-parser/pkg/lexer/keyword"
	"github.com/gqlkit/graphql-go-parser/pkg/lexer/position"
)

// Token is one lexical token of a GraphQL document.
// Start/End span the full token text including quotes, Literal is the semantic
// value window, e.g. the string content without quotes or a comment without '#'.
type Token struct {
	Keyword      keyword.Keyword        `json:"keyword"`
	Start        uint32                 `json:"start"`
	End          uint32                 `json:"end"`
	Literal      ast.ByteSliceReference `json:"literal"`
	TextPosition position.Position      `json:"position"`
}

func (t Token) String() string {
	return fmt.Sprintf("%s - %s", t.Keyword, t.TextPosition)
}

func (t *Token) SetStart(inputPosition uint32, textPosition position.Position) {
	t.Start = inputPosition
	t.Literal.Start = inputPosition
	t.TextPosition.LineStart = textPosition.LineStart
	t.TextPosition.CharStart = textPosition.CharStart
}

func (t *Token) SetEnd(inputPosition uint32, textPosition position.Position) {
	t.End = inputPosition
	t.Literal.End = inputPosition
	t.TextPosition.LineEnd = textPosition.LineEnd
	t.TextPosition.CharEnd = textPosition.CharEnd
}
