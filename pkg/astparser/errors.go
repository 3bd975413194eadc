package astparser

import (
	"strings"

	"github.com/gqlkit/graphql-go-parser/pkg/graphqlerrors"
	"github.com/gqlkit/graphql-go-parser/pkg/lexer/identkeyword"
	"github.com/gqlkit/graphql-go-parser/pkg/lexer/keyword"
	"github.com/gqlkit/graphql-go-parser/pkg/lexer/token"
)

// errUnexpectedToken builds the error for a token of the wrong kind, naming
// the expected alternatives so the caller can render a useful diagnostic.
func (p *Parser) errUnexpectedToken(tok token.Token, expected ...keyword.Keyword) error {
	literal := p.input.ByteSliceString(tok.Literal)
	if len(expected) == 0 {
		return graphqlerrors.NewSyntaxError(p.input.RawBytes, tok.Start, "unexpected token %s %q", tok.Keyword, literal)
	}
	alternatives := make([]string, len(expected))
	for i := range expected {
		alternatives[i] = expected[i].String()
	}
	return graphqlerrors.NewSyntaxError(p.input.RawBytes, tok.Start,
		"unexpected token %s %q, expected one of: %s", tok.Keyword, literal, strings.Join(alternatives, ", "))
}

// errUnexpectedIdent builds the error for an ident in keyword position whose
// literal matches none of the expected keywords.
func (p *Parser) errUnexpectedIdent(tok token.Token, expected ...identkeyword.IdentKeyword) error {
	literal := p.input.ByteSliceString(tok.Literal)
	alternatives := make([]string, len(expected))
	for i := range expected {
		alternatives[i] = expected[i].String()
	}
	return graphqlerrors.NewSyntaxError(p.input.RawBytes, tok.Start,
		"unexpected %q, expected one of: %s", literal, strings.Join(alternatives, ", "))
}

func (p *Parser) errSyntax(offset uint32, format string, args ...interface{}) error {
	return graphqlerrors.NewSyntaxError(p.input.RawBytes, offset, format, args...)
}
