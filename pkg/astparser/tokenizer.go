package astparser

import (
	"github.com/pkg/errors"

	"github.com/gqlkit/graphql-go-parser/pkg/ast"
	"github.com/gqlkit/graphql-go-parser/pkg/lexer"
	"github.com/gqlkit/graphql-go-parser/pkg/lexer/keyword"
	"github.com/gqlkit/graphql-go-parser/pkg/lexer/token"
)

// Tokenizer takes a raw input and turns it into a set of tokens.
// Buffering the whole token stream up front gives the parser O(1) reads and
// arbitrary lookahead, which the description disambiguation needs.
type Tokenizer struct {
	lexer        *lexer.Lexer
	tokens       []token.Token
	eofToken     token.Token
	maxTokens    int
	currentToken int
	skipComments bool
}

// NewTokenizer returns a new tokenizer
func NewTokenizer() *Tokenizer {
	return &Tokenizer{
		tokens: make([]token.Token, 0, 64),
		lexer:  &lexer.Lexer{},
	}
}

// Tokenize lexes the input to EOF. The first lexical error aborts and is
// returned, the token buffer is not usable afterwards.
func (t *Tokenizer) Tokenize(input *ast.Input) error {
	t.lexer.SetInput(input)
	t.tokens = t.tokens[:0]

	for {
		next, err := t.lexer.Read()
		if err != nil {
			return errors.Wrap(err, "tokenize")
		}
		if next.Keyword == keyword.EOF {
			t.eofToken = next
			t.maxTokens = len(t.tokens)
			t.currentToken = -1
			return nil
		}
		if t.skipComments && next.Keyword == keyword.COMMENT {
			continue
		}
		t.tokens = append(t.tokens, next)
	}
}

// Read - increments currentToken index and returns the token if any remain,
// otherwise returns the EOF token
func (t *Tokenizer) Read() token.Token {
	if t.currentToken+1 < t.maxTokens {
		t.currentToken++
		return t.tokens[t.currentToken]
	}
	return t.eofToken
}

// Peek - returns the token next to currentToken without advancing
func (t *Tokenizer) Peek() token.Token {
	return t.PeekAhead(0)
}

// PeekAhead - returns the token skip positions after the next token without advancing
func (t *Tokenizer) PeekAhead(skip int) token.Token {
	if t.currentToken+1+skip < t.maxTokens {
		return t.tokens[t.currentToken+1+skip]
	}
	return t.eofToken
}
