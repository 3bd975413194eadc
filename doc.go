// Package parser is a library to lex and parse GraphQL documents using the go programming language.
//
// # About GraphQL
//
// GraphQL is a query language for APIs and a runtime for fulfilling those queries with your existing data. GraphQL provides a complete and understandable description of the data in your API, gives clients the power to ask for exactly what they need and nothing more, makes it easier to evolve APIs over time, and enables powerful developer tools.
//
// Source: https://graphql.org
//
// # About this library
//
// This library is intended to be the low level syntax building block for GraphQL tooling.
// It contains a zero-allocation lexer and a recursive descent parser for the full October 2021
// GraphQL grammar, executable documents as well as the schema definition language including all
// type system extensions.
//
// The parser produces a tree shaped AST with precise source locations and attached comments,
// suitable for SDL printers, linters, formatters and similar tools. It deliberately stops at
// syntax: validation, normalization and execution are concerns of the layers built on top.
package parser
