// Package astparser is the recursive descent parser turning GraphQL source into the tree AST.
//
// The parser never backtracks: one token of lookahead suffices everywhere except for
// the description-prefixed type system definition, which peeks one token further into
// the buffered token stream. Parsing stops at the first error.
package astparser

import (
	"github.com/gqlkit/graphql-go-parser/pkg/ast"
	"github.com/gqlkit/graphql-go-parser/pkg/graphqlerrors"
	"github.com/gqlkit/graphql-go-parser/pkg/lexer/identkeyword"
	"github.com/gqlkit/graphql-go-parser/pkg/lexer/keyword"
	"github.com/gqlkit/graphql-go-parser/pkg/lexer/token"
)

// Parser parses a GraphQL document into an *ast.Document.
// A Parser is not safe for concurrent use, but it may be reused for any number
// of sequential ParseInput calls.
type Parser struct {
	tokenizer *Tokenizer
	input     *ast.Input
	document  *ast.Document
	options   options

	depth   int
	prevEnd uint32

	currentComment     *ast.Comment
	unattachedComments []*ast.Comment
}

// NewParser returns a parser configured with the given options.
func NewParser(opts ...Option) *Parser {
	o := options{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	return &Parser{
		tokenizer: NewTokenizer(),
		options:   o,
	}
}

// ParseGraphqlDocumentBytes parses the input bytes into a Document.
// The returned Document references the input, the input must not be modified
// while the Document is in use.
func ParseGraphqlDocumentBytes(input []byte, opts ...Option) (*ast.Document, error) {
	in := &ast.Input{}
	in.ResetInputBytes(input)
	return NewParser(opts...).ParseInput(in)
}

// ParseGraphqlDocumentString parses the input string into a Document.
func ParseGraphqlDocumentString(input string, opts ...Option) (*ast.Document, error) {
	in := &ast.Input{}
	in.ResetInputString(input)
	return NewParser(opts...).ParseInput(in)
}

// ParseInput parses one document from the Input. The error is either a
// *graphqlerrors.SyntaxError or a *graphqlerrors.MaxDepthExceededError,
// possibly wrapped.
func (p *Parser) ParseInput(in *ast.Input) (*ast.Document, error) {
	p.input = in
	p.document = &ast.Document{}
	p.depth = 1
	p.prevEnd = 0
	p.currentComment = nil
	p.unattachedComments = nil

	p.tokenizer.skipComments = p.options.ignoreComments
	if err := p.tokenizer.Tokenize(in); err != nil {
		return nil, err
	}

	for {
		p.consumeComments()
		if p.tokenizer.Peek().Keyword == keyword.EOF {
			break
		}
		definition, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		p.document.Definitions = append(p.document.Definitions, definition)
		p.indexDefinition(definition)
	}

	if p.currentComment != nil {
		p.unattachedComments = append(p.unattachedComments, p.currentComment)
		p.currentComment = nil
	}
	p.document.UnattachedComments = p.unattachedComments
	p.document.Loc = p.loc(0, in.Length)
	return p.document, nil
}

/*
 * token primitives
 */

// consumeComments aggregates a run of consecutive comment tokens into a single
// Comment node and stashes it. A fresh run displaces a previously stashed
// comment into the unattached pool.
func (p *Parser) consumeComments() {
	if p.options.ignoreComments {
		return
	}
	first := p.tokenizer.Peek()
	if first.Keyword != keyword.COMMENT {
		return
	}

	last := first
	text := p.input.ByteSlice(first.Literal)
	p.tokenizer.Read()
	for p.tokenizer.Peek().Keyword == keyword.COMMENT {
		next := p.tokenizer.Read()
		line := p.input.ByteSlice(next.Literal)
		joined := make([]byte, 0, len(text)+1+len(line))
		joined = append(joined, text...)
		joined = append(joined, '\n')
		text = append(joined, line...)
		last = next
	}

	comment := &ast.Comment{Text: text}
	comment.Loc = p.loc(first.Start, last.End)
	if p.currentComment != nil {
		p.unattachedComments = append(p.unattachedComments, p.currentComment)
	}
	p.currentComment = comment
}

// getComment moves the stashed comment to the caller.
func (p *Parser) getComment() *ast.Comment {
	comment := p.currentComment
	p.currentComment = nil
	return comment
}

func (p *Parser) peekToken() token.Token {
	p.consumeComments()
	return p.tokenizer.Peek()
}

func (p *Parser) peek() keyword.Keyword {
	return p.peekToken().Keyword
}

func (p *Parser) read() token.Token {
	p.consumeComments()
	tok := p.tokenizer.Read()
	p.prevEnd = tok.End
	return tok
}

func (p *Parser) skip(k keyword.Keyword) bool {
	if p.peek() == k {
		p.read()
		return true
	}
	return false
}

func (p *Parser) expect(k keyword.Keyword) (token.Token, error) {
	tok := p.peekToken()
	if tok.Keyword != k {
		return tok, p.errUnexpectedToken(tok, k)
	}
	return p.read(), nil
}

func (p *Parser) identKey(tok token.Token) identkeyword.IdentKeyword {
	if tok.Keyword != keyword.IDENT {
		return identkeyword.UNDEFINED
	}
	return identkeyword.KeywordFromLiteral(p.input.ByteSlice(tok.Literal))
}

// peekIdentKey returns the ident keyword of the next token, UNDEFINED when the
// next token is no ident or a plain name.
func (p *Parser) peekIdentKey() identkeyword.IdentKeyword {
	return p.identKey(p.peekToken())
}

func (p *Parser) expectIdentKey(k identkeyword.IdentKeyword) (token.Token, error) {
	tok := p.peekToken()
	if tok.Keyword != keyword.IDENT || p.identKey(tok) != k {
		return tok, p.errUnexpectedIdent(tok, k)
	}
	return p.read(), nil
}

func (p *Parser) expectOneOf(keys ...identkeyword.IdentKeyword) (token.Token, identkeyword.IdentKeyword, error) {
	tok := p.peekToken()
	if tok.Keyword == keyword.IDENT {
		key := p.identKey(tok)
		for i := range keys {
			if key == keys[i] {
				return p.read(), key, nil
			}
		}
	}
	return tok, identkeyword.UNDEFINED, p.errUnexpectedIdent(tok, keys...)
}

/*
 * node construction helpers
 */

func (p *Parser) enterNode(offset uint32) error {
	p.depth++
	if p.depth > p.options.maxDepth {
		return &graphqlerrors.MaxDepthExceededError{
			Source: p.input.RawBytes,
			Offset: offset,
			Depth:  p.depth,
			Limit:  p.options.maxDepth,
		}
	}
	return nil
}

func (p *Parser) leaveNode() {
	p.depth--
}

func (p *Parser) loc(start, end uint32) *ast.Location {
	if p.options.ignoreLocations {
		return nil
	}
	return &ast.Location{Start: start, End: end}
}

func (p *Parser) newName(tok token.Token) *ast.Name {
	name := &ast.Name{Value: p.input.ByteSlice(tok.Literal)}
	name.Loc = p.loc(tok.Start, tok.End)
	return name
}

func (p *Parser) indexDefinition(definition ast.Definition) {
	switch d := definition.(type) {
	case *ast.ScalarTypeDefinition:
		p.document.Index.Add(d.Name.Value, d)
	case *ast.ObjectTypeDefinition:
		p.document.Index.Add(d.Name.Value, d)
	case *ast.InterfaceTypeDefinition:
		p.document.Index.Add(d.Name.Value, d)
	case *ast.UnionTypeDefinition:
		p.document.Index.Add(d.Name.Value, d)
	case *ast.EnumTypeDefinition:
		p.document.Index.Add(d.Name.Value, d)
	case *ast.InputObjectTypeDefinition:
		p.document.Index.Add(d.Name.Value, d)
	case *ast.DirectiveDefinition:
		p.document.Index.Add(d.Name.Value, d)
	case *ast.ScalarTypeExtension:
		p.document.Index.Add(d.Name.Value, d)
	case *ast.ObjectTypeExtension:
		p.document.Index.Add(d.Name.Value, d)
	case *ast.InterfaceTypeExtension:
		p.document.Index.Add(d.Name.Value, d)
	case *ast.UnionTypeExtension:
		p.document.Index.Add(d.Name.Value, d)
	case *ast.EnumTypeExtension:
		p.document.Index.Add(d.Name.Value, d)
	case *ast.InputObjectTypeExtension:
		p.document.Index.Add(d.Name.Value, d)
	}
}

/*
 * definitions
 */

func (p *Parser) parseDefinition() (ast.Definition, error) {
	tok := p.peekToken()
	switch tok.Keyword {
	case keyword.LBRACE:
		return p.parseOperationDefinition()
	case keyword.STRING, keyword.BLOCKSTRING:
		return p.parseDescribedTypeSystemDefinition()
	case keyword.IDENT:
		switch p.identKey(tok) {
		case identkeyword.QUERY, identkeyword.MUTATION, identkeyword.SUBSCRIPTION:
			return p.parseOperationDefinition()
		case identkeyword.FRAGMENT:
			return p.parseFragmentDefinition()
		case identkeyword.SCHEMA:
			return p.parseSchemaDefinition(nil)
		case identkeyword.SCALAR:
			return p.parseScalarTypeDefinition(nil)
		case identkeyword.TYPE:
			return p.parseObjectTypeDefinition(nil)
		case identkeyword.INTERFACE:
			return p.parseInterfaceTypeDefinition(nil)
		case identkeyword.UNION:
			return p.parseUnionTypeDefinition(nil)
		case identkeyword.ENUM:
			return p.parseEnumTypeDefinition(nil)
		case identkeyword.INPUT:
			return p.parseInputObjectTypeDefinition(nil)
		case identkeyword.DIRECTIVE:
			return p.parseDirectiveDefinition(nil)
		case identkeyword.EXTEND:
			return p.parseTypeSystemExtension()
		default:
			return nil, p.errUnexpectedIdent(tok,
				identkeyword.QUERY, identkeyword.MUTATION, identkeyword.SUBSCRIPTION, identkeyword.FRAGMENT,
				identkeyword.SCHEMA, identkeyword.SCALAR, identkeyword.TYPE, identkeyword.INTERFACE,
				identkeyword.UNION, identkeyword.ENUM, identkeyword.INPUT, identkeyword.DIRECTIVE,
				identkeyword.EXTEND)
		}
	default:
		return nil, p.errUnexpectedToken(tok, keyword.LBRACE, keyword.IDENT, keyword.STRING, keyword.BLOCKSTRING)
	}
}

/*
 * executable definitions
 */

func (p *Parser) parseOperationDefinition() (*ast.OperationDefinition, error) {
	tok := p.peekToken()
	if err := p.enterNode(tok.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	operation := &ast.OperationDefinition{}
	operation.Comment = p.getComment()
	start := tok.Start

	if tok.Keyword != keyword.LBRACE {
		_, key, err := p.expectOneOf(identkeyword.QUERY, identkeyword.MUTATION, identkeyword.SUBSCRIPTION)
		if err != nil {
			return nil, err
		}
		switch key {
		case identkeyword.QUERY:
			operation.Operation = ast.OperationTypeQuery
		case identkeyword.MUTATION:
			operation.Operation = ast.OperationTypeMutation
		case identkeyword.SUBSCRIPTION:
			operation.Operation = ast.OperationTypeSubscription
		}
		if p.peek() == keyword.IDENT {
			operation.Name = p.newName(p.read())
		}
		if p.peek() == keyword.LPAREN {
			variableDefinitions, err := p.parseVariableDefinitions()
			if err != nil {
				return nil, err
			}
			operation.VariableDefinitions = variableDefinitions
		}
		if p.peek() == keyword.AT {
			directives, err := p.parseDirectives(false)
			if err != nil {
				return nil, err
			}
			operation.Directives = directives
		}
	} else {
		// anonymous shorthand, e.g. { hello }
		operation.Operation = ast.OperationTypeQuery
	}

	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	operation.SelectionSet = selectionSet
	operation.Loc = p.loc(start, p.prevEnd)
	return operation, nil
}

func (p *Parser) parseSelectionSet() (*ast.SelectionSet, error) {
	lbrace, err := p.expect(keyword.LBRACE)
	if err != nil {
		return nil, err
	}
	if err := p.enterNode(lbrace.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	set := &ast.SelectionSet{}
	for {
		tok := p.peekToken()
		switch tok.Keyword {
		case keyword.RBRACE:
			if len(set.Selections) == 0 {
				return nil, p.errSyntax(tok.Start, "selection set must not be empty")
			}
			p.read()
			set.Loc = p.loc(lbrace.Start, p.prevEnd)
			return set, nil
		case keyword.IDENT:
			field, err := p.parseField()
			if err != nil {
				return nil, err
			}
			set.Selections = append(set.Selections, field)
		case keyword.SPREAD:
			selection, err := p.parseFragmentSelection()
			if err != nil {
				return nil, err
			}
			set.Selections = append(set.Selections, selection)
		default:
			return nil, p.errUnexpectedToken(tok, keyword.IDENT, keyword.SPREAD, keyword.RBRACE)
		}
	}
}

func (p *Parser) parseField() (*ast.Field, error) {
	nameTok := p.peekToken()
	if err := p.enterNode(nameTok.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	field := &ast.Field{}
	field.Comment = p.getComment()

	nameTok, err := p.expect(keyword.IDENT)
	if err != nil {
		return nil, err
	}
	if p.skip(keyword.COLON) {
		alias := &ast.Alias{Name: p.newName(nameTok)}
		alias.Loc = p.loc(nameTok.Start, p.prevEnd)
		field.Alias = alias
		actual, err := p.expect(keyword.IDENT)
		if err != nil {
			return nil, err
		}
		field.Name = p.newName(actual)
	} else {
		field.Name = p.newName(nameTok)
	}

	if p.peek() == keyword.LPAREN {
		arguments, err := p.parseArguments(false)
		if err != nil {
			return nil, err
		}
		field.Arguments = arguments
	}
	if p.peek() == keyword.AT {
		directives, err := p.parseDirectives(false)
		if err != nil {
			return nil, err
		}
		field.Directives = directives
	}
	if p.peek() == keyword.LBRACE {
		selectionSet, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		field.SelectionSet = selectionSet
	}
	field.Loc = p.loc(nameTok.Start, p.prevEnd)
	return field, nil
}

// parseFragmentSelection parses everything after a spread: a fragment spread
// when a name other than "on" follows, an inline fragment otherwise.
func (p *Parser) parseFragmentSelection() (ast.Selection, error) {
	spread, err := p.expect(keyword.SPREAD)
	if err != nil {
		return nil, err
	}
	if err := p.enterNode(spread.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	tok := p.peekToken()
	if tok.Keyword == keyword.IDENT && p.identKey(tok) != identkeyword.ON {
		fragmentSpread := &ast.FragmentSpread{}
		fragmentSpread.Comment = p.getComment()
		fragmentSpread.Name = p.newName(p.read())
		if p.peek() == keyword.AT {
			directives, err := p.parseDirectives(false)
			if err != nil {
				return nil, err
			}
			fragmentSpread.Directives = directives
		}
		fragmentSpread.Loc = p.loc(spread.Start, p.prevEnd)
		return fragmentSpread, nil
	}

	inlineFragment := &ast.InlineFragment{}
	inlineFragment.Comment = p.getComment()
	if p.peekIdentKey() == identkeyword.ON {
		typeCondition, err := p.parseTypeCondition()
		if err != nil {
			return nil, err
		}
		inlineFragment.TypeCondition = typeCondition
	}
	if p.peek() == keyword.AT {
		directives, err := p.parseDirectives(false)
		if err != nil {
			return nil, err
		}
		inlineFragment.Directives = directives
	}
	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	inlineFragment.SelectionSet = selectionSet
	inlineFragment.Loc = p.loc(spread.Start, p.prevEnd)
	return inlineFragment, nil
}

func (p *Parser) parseFragmentDefinition() (*ast.FragmentDefinition, error) {
	fragmentTok, err := p.expectIdentKey(identkeyword.FRAGMENT)
	if err != nil {
		return nil, err
	}
	if err := p.enterNode(fragmentTok.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	fragment := &ast.FragmentDefinition{}
	fragment.Comment = p.getComment()

	nameTok, err := p.expect(keyword.IDENT)
	if err != nil {
		return nil, err
	}
	if p.identKey(nameTok) == identkeyword.ON {
		return nil, p.errSyntax(nameTok.Start, "fragment must not be named %q", "on")
	}
	fragment.Name = p.newName(nameTok)

	typeCondition, err := p.parseTypeCondition()
	if err != nil {
		return nil, err
	}
	fragment.TypeCondition = typeCondition

	if p.peek() == keyword.AT {
		directives, err := p.parseDirectives(false)
		if err != nil {
			return nil, err
		}
		fragment.Directives = directives
	}
	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	fragment.SelectionSet = selectionSet
	fragment.Loc = p.loc(fragmentTok.Start, p.prevEnd)
	return fragment, nil
}

func (p *Parser) parseTypeCondition() (*ast.TypeCondition, error) {
	onTok, err := p.expectIdentKey(identkeyword.ON)
	if err != nil {
		return nil, err
	}
	namedType, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}
	condition := &ast.TypeCondition{Type: namedType}
	condition.Loc = p.loc(onTok.Start, p.prevEnd)
	return condition, nil
}

/*
 * variables
 */

func (p *Parser) parseVariableDefinitions() (*ast.VariableDefinitions, error) {
	lparen, err := p.expect(keyword.LPAREN)
	if err != nil {
		return nil, err
	}
	if err := p.enterNode(lparen.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	definitions := &ast.VariableDefinitions{}
	for {
		definition, err := p.parseVariableDefinition()
		if err != nil {
			return nil, err
		}
		definitions.Items = append(definitions.Items, definition)
		if p.peek() != keyword.DOLLAR {
			break
		}
	}
	if _, err := p.expect(keyword.RPAREN); err != nil {
		return nil, err
	}
	definitions.Loc = p.loc(lparen.Start, p.prevEnd)
	return definitions, nil
}

func (p *Parser) parseVariableDefinition() (*ast.VariableDefinition, error) {
	tok := p.peekToken()
	if err := p.enterNode(tok.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	definition := &ast.VariableDefinition{}
	definition.Comment = p.getComment()

	variable, err := p.parseVariable()
	if err != nil {
		return nil, err
	}
	definition.Variable = variable

	if _, err := p.expect(keyword.COLON); err != nil {
		return nil, err
	}
	variableType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	definition.Type = variableType

	if p.skip(keyword.EQUALS) {
		defaultValue, err := p.parseValue(true)
		if err != nil {
			return nil, err
		}
		definition.DefaultValue = defaultValue
	}
	if p.peek() == keyword.AT {
		directives, err := p.parseDirectives(true)
		if err != nil {
			return nil, err
		}
		definition.Directives = directives
	}
	definition.Loc = p.loc(tok.Start, p.prevEnd)
	return definition, nil
}

func (p *Parser) parseVariable() (*ast.Variable, error) {
	dollar, err := p.expect(keyword.DOLLAR)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(keyword.IDENT)
	if err != nil {
		return nil, err
	}
	variable := &ast.Variable{Name: p.newName(nameTok)}
	variable.Loc = p.loc(dollar.Start, nameTok.End)
	return variable, nil
}

/*
 * arguments & directives
 */

func (p *Parser) parseArguments(constant bool) (*ast.Arguments, error) {
	lparen, err := p.expect(keyword.LPAREN)
	if err != nil {
		return nil, err
	}
	if err := p.enterNode(lparen.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	arguments := &ast.Arguments{}
	for {
		argument, err := p.parseArgument(constant)
		if err != nil {
			return nil, err
		}
		arguments.Items = append(arguments.Items, argument)
		if p.peek() == keyword.RPAREN {
			break
		}
	}
	p.read() // )
	arguments.Loc = p.loc(lparen.Start, p.prevEnd)
	return arguments, nil
}

func (p *Parser) parseArgument(constant bool) (*ast.Argument, error) {
	nameTok, err := p.expect(keyword.IDENT)
	if err != nil {
		return nil, err
	}
	if err := p.enterNode(nameTok.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	argument := &ast.Argument{}
	argument.Comment = p.getComment()
	argument.Name = p.newName(nameTok)
	if _, err := p.expect(keyword.COLON); err != nil {
		return nil, err
	}
	value, err := p.parseValue(constant)
	if err != nil {
		return nil, err
	}
	argument.Value = value
	argument.Loc = p.loc(nameTok.Start, p.prevEnd)
	return argument, nil
}

func (p *Parser) parseDirectives(constant bool) (*ast.Directives, error) {
	first := p.peekToken()
	if err := p.enterNode(first.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	directives := &ast.Directives{}
	for p.peek() == keyword.AT {
		directive, err := p.parseDirective(constant)
		if err != nil {
			return nil, err
		}
		directives.Items = append(directives.Items, directive)
	}
	directives.Loc = p.loc(first.Start, p.prevEnd)
	return directives, nil
}

func (p *Parser) parseDirective(constant bool) (*ast.Directive, error) {
	at, err := p.expect(keyword.AT)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(keyword.IDENT)
	if err != nil {
		return nil, err
	}
	directive := &ast.Directive{}
	directive.Comment = p.getComment()
	directive.Name = p.newName(nameTok)
	if p.peek() == keyword.LPAREN {
		arguments, err := p.parseArguments(constant)
		if err != nil {
			return nil, err
		}
		directive.Arguments = arguments
	}
	directive.Loc = p.loc(at.Start, p.prevEnd)
	return directive, nil
}

/*
 * values
 */

// parseValue parses any input value. Variables are rejected in constant
// context, e.g. within default values.
func (p *Parser) parseValue(constant bool) (ast.Value, error) {
	tok := p.peekToken()
	if err := p.enterNode(tok.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	switch tok.Keyword {
	case keyword.LBRACK:
		return p.parseListValue(constant)
	case keyword.LBRACE:
		return p.parseObjectValue(constant)
	case keyword.INTEGER:
		p.read()
		value := &ast.IntValue{Raw: p.input.ByteSlice(tok.Literal)}
		value.Comment = p.getComment()
		value.Loc = p.loc(tok.Start, tok.End)
		return value, nil
	case keyword.FLOAT:
		p.read()
		value := &ast.FloatValue{Raw: p.input.ByteSlice(tok.Literal)}
		value.Comment = p.getComment()
		value.Loc = p.loc(tok.Start, tok.End)
		return value, nil
	case keyword.STRING, keyword.BLOCKSTRING:
		p.read()
		value := &ast.StringValue{
			Raw:         p.input.ByteSlice(tok.Literal),
			BlockString: tok.Keyword == keyword.BLOCKSTRING,
		}
		value.Comment = p.getComment()
		value.Loc = p.loc(tok.Start, tok.End)
		return value, nil
	case keyword.DOLLAR:
		if constant {
			return nil, p.errSyntax(tok.Start, "unexpected variable, variables are not allowed in constant values")
		}
		return p.parseVariable()
	case keyword.IDENT:
		p.read()
		switch p.identKey(tok) {
		case identkeyword.TRUE:
			value := &ast.BooleanValue{Value: true}
			value.Comment = p.getComment()
			value.Loc = p.loc(tok.Start, tok.End)
			return value, nil
		case identkeyword.FALSE:
			value := &ast.BooleanValue{Value: false}
			value.Comment = p.getComment()
			value.Loc = p.loc(tok.Start, tok.End)
			return value, nil
		case identkeyword.NULL:
			value := &ast.NullValue{}
			value.Comment = p.getComment()
			value.Loc = p.loc(tok.Start, tok.End)
			return value, nil
		default:
			value := &ast.EnumValue{Name: p.newName(tok)}
			value.Comment = p.getComment()
			value.Loc = p.loc(tok.Start, tok.End)
			return value, nil
		}
	default:
		return nil, p.errUnexpectedToken(tok,
			keyword.LBRACK, keyword.LBRACE, keyword.INTEGER, keyword.FLOAT,
			keyword.STRING, keyword.BLOCKSTRING, keyword.DOLLAR, keyword.IDENT)
	}
}

func (p *Parser) parseListValue(constant bool) (*ast.ListValue, error) {
	lbrack, err := p.expect(keyword.LBRACK)
	if err != nil {
		return nil, err
	}
	list := &ast.ListValue{}
	list.Comment = p.getComment()
	for p.peek() != keyword.RBRACK {
		value, err := p.parseValue(constant)
		if err != nil {
			return nil, err
		}
		list.Values = append(list.Values, value)
	}
	p.read() // ]
	list.Loc = p.loc(lbrack.Start, p.prevEnd)
	return list, nil
}

func (p *Parser) parseObjectValue(constant bool) (*ast.ObjectValue, error) {
	lbrace, err := p.expect(keyword.LBRACE)
	if err != nil {
		return nil, err
	}
	object := &ast.ObjectValue{}
	object.Comment = p.getComment()
	for p.peek() != keyword.RBRACE {
		field, err := p.parseObjectField(constant)
		if err != nil {
			return nil, err
		}
		object.Fields = append(object.Fields, field)
	}
	p.read() // }
	object.Loc = p.loc(lbrace.Start, p.prevEnd)
	return object, nil
}

func (p *Parser) parseObjectField(constant bool) (*ast.ObjectField, error) {
	nameTok, err := p.expect(keyword.IDENT)
	if err != nil {
		return nil, err
	}
	if err := p.enterNode(nameTok.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	field := &ast.ObjectField{}
	field.Comment = p.getComment()
	field.Name = p.newName(nameTok)
	if _, err := p.expect(keyword.COLON); err != nil {
		return nil, err
	}
	value, err := p.parseValue(constant)
	if err != nil {
		return nil, err
	}
	field.Value = value
	field.Loc = p.loc(nameTok.Start, p.prevEnd)
	return field, nil
}

/*
 * types
 */

func (p *Parser) parseType() (ast.Type, error) {
	tok := p.peekToken()
	if err := p.enterNode(tok.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	var underlying ast.Type
	switch tok.Keyword {
	case keyword.LBRACK:
		p.read()
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(keyword.RBRACK); err != nil {
			return nil, err
		}
		listType := &ast.ListType{Type: inner}
		listType.Loc = p.loc(tok.Start, p.prevEnd)
		underlying = listType
	case keyword.IDENT:
		namedType, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		underlying = namedType
	default:
		return nil, p.errUnexpectedToken(tok, keyword.IDENT, keyword.LBRACK)
	}

	// a single trailing bang wraps the type, the grammar forbids double non-null
	if p.peek() == keyword.BANG {
		p.read()
		nonNull := &ast.NonNullType{Type: underlying}
		nonNull.Loc = p.loc(tok.Start, p.prevEnd)
		return nonNull, nil
	}
	return underlying, nil
}

func (p *Parser) parseNamedType() (*ast.NamedType, error) {
	nameTok, err := p.expect(keyword.IDENT)
	if err != nil {
		return nil, err
	}
	namedType := &ast.NamedType{Name: p.newName(nameTok)}
	namedType.Loc = p.loc(nameTok.Start, nameTok.End)
	return namedType, nil
}
