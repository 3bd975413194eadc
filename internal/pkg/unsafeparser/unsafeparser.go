// Package unsafeparser parses documents and panics on error.
// Only intended for tests and benchmarks where the input is known to be valid.
package unsafeparser

import (
	"github.com/gqlkit/graphql-go-parser/pkg/ast"
	"github.com/gqlkit/graphql-go-parser/pkg/astparser"
)

func ParseGraphqlDocumentString(input string) *ast.Document {
	document, err := astparser.ParseGraphqlDocumentString(input)
	if err != nil {
		panic(err)
	}
	return document
}

func ParseGraphqlDocumentBytes(input []byte) *ast.Document {
	document, err := astparser.ParseGraphqlDocumentBytes(input)
	if err != nil {
		panic(err)
	}
	return document
}
