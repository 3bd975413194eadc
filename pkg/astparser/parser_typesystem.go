package astparser

import (
	"strings"

	"github.com/gqlkit/graphql-go-parser/pkg/ast"
	"github.com/gqlkit/graphql-go-parser/pkg/lexer/identkeyword"
	"github.com/gqlkit/graphql-go-parser/pkg/lexer/keyword"
	"github.com/gqlkit/graphql-go-parser/pkg/lexer/token"
)

// directiveLocations are the valid names of https://spec.graphql.org/October2021/#DirectiveLocation
var directiveLocations = []string{
	"QUERY", "MUTATION", "SUBSCRIPTION", "FIELD", "FRAGMENT_DEFINITION",
	"FRAGMENT_SPREAD", "INLINE_FRAGMENT", "VARIABLE_DEFINITION",
	"SCHEMA", "SCALAR", "OBJECT", "FIELD_DEFINITION", "ARGUMENT_DEFINITION",
	"INTERFACE", "UNION", "ENUM", "ENUM_VALUE", "INPUT_OBJECT", "INPUT_FIELD_DEFINITION",
}

func validDirectiveLocation(literal []byte) bool {
	for i := range directiveLocations {
		if string(literal) == directiveLocations[i] {
			return true
		}
	}
	return false
}

// parseDescribedTypeSystemDefinition disambiguates a top level string: it must
// be the description of a type system definition. The token behind the string
// is peeked without advancing, descriptions are not permitted on operations,
// fragments or extensions.
func (p *Parser) parseDescribedTypeSystemDefinition() (ast.Definition, error) {
	next := p.peekBehindDescription()
	if next.Keyword != keyword.IDENT {
		return nil, p.errUnexpectedToken(next, keyword.IDENT)
	}
	switch p.identKey(next) {
	case identkeyword.SCHEMA:
		return p.parseSchemaDefinition(p.parseDescription())
	case identkeyword.SCALAR:
		return p.parseScalarTypeDefinition(p.parseDescription())
	case identkeyword.TYPE:
		return p.parseObjectTypeDefinition(p.parseDescription())
	case identkeyword.INTERFACE:
		return p.parseInterfaceTypeDefinition(p.parseDescription())
	case identkeyword.UNION:
		return p.parseUnionTypeDefinition(p.parseDescription())
	case identkeyword.ENUM:
		return p.parseEnumTypeDefinition(p.parseDescription())
	case identkeyword.INPUT:
		return p.parseInputObjectTypeDefinition(p.parseDescription())
	case identkeyword.DIRECTIVE:
		return p.parseDirectiveDefinition(p.parseDescription())
	default:
		return nil, p.errUnexpectedIdent(next,
			identkeyword.SCHEMA, identkeyword.SCALAR, identkeyword.TYPE, identkeyword.INTERFACE,
			identkeyword.UNION, identkeyword.ENUM, identkeyword.INPUT, identkeyword.DIRECTIVE)
	}
}

// peekBehindDescription returns the first non comment token behind the current
// one, the description string, without advancing the cursor.
func (p *Parser) peekBehindDescription() token.Token {
	for skip := 1; ; skip++ {
		tok := p.tokenizer.PeekAhead(skip)
		if tok.Keyword != keyword.COMMENT {
			return tok
		}
	}
}

// parseDescription consumes the string token in front of a type system definition.
func (p *Parser) parseDescription() *ast.Description {
	tok := p.read()
	description := &ast.Description{
		Raw:         p.input.ByteSlice(tok.Literal),
		BlockString: tok.Keyword == keyword.BLOCKSTRING,
	}
	description.Comment = p.getComment()
	description.Loc = p.loc(tok.Start, tok.End)
	return description
}

// parseOptionalDescription consumes a description if one is present, e.g. in
// front of a field definition.
func (p *Parser) parseOptionalDescription() *ast.Description {
	if k := p.peek(); k == keyword.STRING || k == keyword.BLOCKSTRING {
		return p.parseDescription()
	}
	return nil
}

func definitionStart(description *ast.Description, keywordTok token.Token) uint32 {
	if description != nil && description.Loc != nil {
		return description.Loc.Start
	}
	return keywordTok.Start
}

func operationTypeFromKeyword(key identkeyword.IdentKeyword) ast.OperationType {
	switch key {
	case identkeyword.QUERY:
		return ast.OperationTypeQuery
	case identkeyword.MUTATION:
		return ast.OperationTypeMutation
	case identkeyword.SUBSCRIPTION:
		return ast.OperationTypeSubscription
	default:
		return ast.OperationTypeUnknown
	}
}

/*
 * type system definitions
 */

func (p *Parser) parseSchemaDefinition(description *ast.Description) (*ast.SchemaDefinition, error) {
	schemaTok, err := p.expectIdentKey(identkeyword.SCHEMA)
	if err != nil {
		return nil, err
	}
	if err := p.enterNode(schemaTok.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	definition := &ast.SchemaDefinition{Description: description}
	definition.Comment = p.getComment()

	if p.peek() == keyword.AT {
		directives, err := p.parseDirectives(true)
		if err != nil {
			return nil, err
		}
		definition.Directives = directives
	}
	operationTypes, err := p.parseRootOperationTypeDefinitions()
	if err != nil {
		return nil, err
	}
	definition.OperationTypes = operationTypes
	definition.Loc = p.loc(definitionStart(description, schemaTok), p.prevEnd)
	return definition, nil
}

func (p *Parser) parseRootOperationTypeDefinitions() ([]*ast.RootOperationTypeDefinition, error) {
	if _, err := p.expect(keyword.LBRACE); err != nil {
		return nil, err
	}
	var operationTypes []*ast.RootOperationTypeDefinition
	for {
		operationType, err := p.parseRootOperationTypeDefinition()
		if err != nil {
			return nil, err
		}
		operationTypes = append(operationTypes, operationType)
		if p.peek() == keyword.RBRACE {
			break
		}
	}
	p.read() // }
	return operationTypes, nil
}

func (p *Parser) parseRootOperationTypeDefinition() (*ast.RootOperationTypeDefinition, error) {
	opTok, key, err := p.expectOneOf(identkeyword.QUERY, identkeyword.MUTATION, identkeyword.SUBSCRIPTION)
	if err != nil {
		return nil, err
	}
	if err := p.enterNode(opTok.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	operationType := &ast.RootOperationTypeDefinition{Operation: operationTypeFromKeyword(key)}
	operationType.Comment = p.getComment()
	if _, err := p.expect(keyword.COLON); err != nil {
		return nil, err
	}
	namedType, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}
	operationType.Type = namedType
	operationType.Loc = p.loc(opTok.Start, p.prevEnd)
	return operationType, nil
}

func (p *Parser) parseScalarTypeDefinition(description *ast.Description) (*ast.ScalarTypeDefinition, error) {
	scalarTok, err := p.expectIdentKey(identkeyword.SCALAR)
	if err != nil {
		return nil, err
	}
	if err := p.enterNode(scalarTok.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	definition := &ast.ScalarTypeDefinition{Description: description}
	definition.Comment = p.getComment()

	nameTok, err := p.expect(keyword.IDENT)
	if err != nil {
		return nil, err
	}
	definition.Name = p.newName(nameTok)

	if p.peek() == keyword.AT {
		directives, err := p.parseDirectives(true)
		if err != nil {
			return nil, err
		}
		definition.Directives = directives
	}
	definition.Loc = p.loc(definitionStart(description, scalarTok), p.prevEnd)
	return definition, nil
}

func (p *Parser) parseObjectTypeDefinition(description *ast.Description) (*ast.ObjectTypeDefinition, error) {
	typeTok, err := p.expectIdentKey(identkeyword.TYPE)
	if err != nil {
		return nil, err
	}
	if err := p.enterNode(typeTok.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	definition := &ast.ObjectTypeDefinition{Description: description}
	definition.Comment = p.getComment()

	nameTok, err := p.expect(keyword.IDENT)
	if err != nil {
		return nil, err
	}
	definition.Name = p.newName(nameTok)

	if p.peekIdentKey() == identkeyword.IMPLEMENTS {
		interfaces, err := p.parseImplementsInterfaces()
		if err != nil {
			return nil, err
		}
		definition.Interfaces = interfaces
	}
	if p.peek() == keyword.AT {
		directives, err := p.parseDirectives(true)
		if err != nil {
			return nil, err
		}
		definition.Directives = directives
	}
	if p.peek() == keyword.LBRACE {
		fields, err := p.parseFieldsDefinition()
		if err != nil {
			return nil, err
		}
		definition.Fields = fields
	}
	definition.Loc = p.loc(definitionStart(description, typeTok), p.prevEnd)
	return definition, nil
}

func (p *Parser) parseInterfaceTypeDefinition(description *ast.Description) (*ast.InterfaceTypeDefinition, error) {
	interfaceTok, err := p.expectIdentKey(identkeyword.INTERFACE)
	if err != nil {
		return nil, err
	}
	if err := p.enterNode(interfaceTok.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	definition := &ast.InterfaceTypeDefinition{Description: description}
	definition.Comment = p.getComment()

	nameTok, err := p.expect(keyword.IDENT)
	if err != nil {
		return nil, err
	}
	definition.Name = p.newName(nameTok)

	if p.peekIdentKey() == identkeyword.IMPLEMENTS {
		interfaces, err := p.parseImplementsInterfaces()
		if err != nil {
			return nil, err
		}
		definition.Interfaces = interfaces
	}
	if p.peek() == keyword.AT {
		directives, err := p.parseDirectives(true)
		if err != nil {
			return nil, err
		}
		definition.Directives = directives
	}
	if p.peek() == keyword.LBRACE {
		fields, err := p.parseFieldsDefinition()
		if err != nil {
			return nil, err
		}
		definition.Fields = fields
	}
	definition.Loc = p.loc(definitionStart(description, interfaceTok), p.prevEnd)
	return definition, nil
}

func (p *Parser) parseImplementsInterfaces() (*ast.ImplementsInterfaces, error) {
	implementsTok, err := p.expectIdentKey(identkeyword.IMPLEMENTS)
	if err != nil {
		return nil, err
	}
	interfaces := &ast.ImplementsInterfaces{}
	p.skip(keyword.AND) // optional leading separator
	for {
		namedType, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		interfaces.Types = append(interfaces.Types, namedType)
		if !p.skip(keyword.AND) {
			break
		}
	}
	interfaces.Loc = p.loc(implementsTok.Start, p.prevEnd)
	return interfaces, nil
}

func (p *Parser) parseFieldsDefinition() (*ast.FieldsDefinition, error) {
	lbrace, err := p.expect(keyword.LBRACE)
	if err != nil {
		return nil, err
	}
	if err := p.enterNode(lbrace.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	fields := &ast.FieldsDefinition{}
	for {
		field, err := p.parseFieldDefinition()
		if err != nil {
			return nil, err
		}
		fields.Items = append(fields.Items, field)
		if p.peek() == keyword.RBRACE {
			break
		}
	}
	p.read() // }
	fields.Loc = p.loc(lbrace.Start, p.prevEnd)
	return fields, nil
}

func (p *Parser) parseFieldDefinition() (*ast.FieldDefinition, error) {
	startTok := p.peekToken()
	if err := p.enterNode(startTok.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	field := &ast.FieldDefinition{}
	field.Comment = p.getComment()
	field.Description = p.parseOptionalDescription()

	nameTok, err := p.expect(keyword.IDENT)
	if err != nil {
		return nil, err
	}
	field.Name = p.newName(nameTok)

	if p.peek() == keyword.LPAREN {
		arguments, err := p.parseArgumentsDefinition()
		if err != nil {
			return nil, err
		}
		field.Arguments = arguments
	}
	if _, err := p.expect(keyword.COLON); err != nil {
		return nil, err
	}
	fieldType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	field.Type = fieldType

	if p.peek() == keyword.AT {
		directives, err := p.parseDirectives(true)
		if err != nil {
			return nil, err
		}
		field.Directives = directives
	}
	field.Loc = p.loc(startTok.Start, p.prevEnd)
	return field, nil
}

func (p *Parser) parseArgumentsDefinition() (*ast.ArgumentsDefinition, error) {
	lparen, err := p.expect(keyword.LPAREN)
	if err != nil {
		return nil, err
	}
	if err := p.enterNode(lparen.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	arguments := &ast.ArgumentsDefinition{}
	for {
		inputValue, err := p.parseInputValueDefinition()
		if err != nil {
			return nil, err
		}
		arguments.Items = append(arguments.Items, inputValue)
		if p.peek() == keyword.RPAREN {
			break
		}
	}
	p.read() // )
	arguments.Loc = p.loc(lparen.Start, p.prevEnd)
	return arguments, nil
}

func (p *Parser) parseInputValueDefinition() (*ast.InputValueDefinition, error) {
	startTok := p.peekToken()
	if err := p.enterNode(startTok.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	inputValue := &ast.InputValueDefinition{}
	inputValue.Comment = p.getComment()
	inputValue.Description = p.parseOptionalDescription()

	nameTok, err := p.expect(keyword.IDENT)
	if err != nil {
		return nil, err
	}
	inputValue.Name = p.newName(nameTok)

	if _, err := p.expect(keyword.COLON); err != nil {
		return nil, err
	}
	valueType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	inputValue.Type = valueType

	if p.skip(keyword.EQUALS) {
		defaultValue, err := p.parseValue(true)
		if err != nil {
			return nil, err
		}
		inputValue.DefaultValue = defaultValue
	}
	if p.peek() == keyword.AT {
		directives, err := p.parseDirectives(true)
		if err != nil {
			return nil, err
		}
		inputValue.Directives = directives
	}
	inputValue.Loc = p.loc(startTok.Start, p.prevEnd)
	return inputValue, nil
}

func (p *Parser) parseUnionTypeDefinition(description *ast.Description) (*ast.UnionTypeDefinition, error) {
	unionTok, err := p.expectIdentKey(identkeyword.UNION)
	if err != nil {
		return nil, err
	}
	if err := p.enterNode(unionTok.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	definition := &ast.UnionTypeDefinition{Description: description}
	definition.Comment = p.getComment()

	nameTok, err := p.expect(keyword.IDENT)
	if err != nil {
		return nil, err
	}
	definition.Name = p.newName(nameTok)

	if p.peek() == keyword.AT {
		directives, err := p.parseDirectives(true)
		if err != nil {
			return nil, err
		}
		definition.Directives = directives
	}
	if p.peek() == keyword.EQUALS {
		types, err := p.parseUnionMemberTypes()
		if err != nil {
			return nil, err
		}
		definition.Types = types
	}
	definition.Loc = p.loc(definitionStart(description, unionTok), p.prevEnd)
	return definition, nil
}

func (p *Parser) parseUnionMemberTypes() (*ast.UnionMemberTypes, error) {
	equalsTok, err := p.expect(keyword.EQUALS)
	if err != nil {
		return nil, err
	}
	types := &ast.UnionMemberTypes{}
	p.skip(keyword.PIPE) // optional leading separator
	for {
		namedType, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		types.Types = append(types.Types, namedType)
		if !p.skip(keyword.PIPE) {
			break
		}
	}
	types.Loc = p.loc(equalsTok.Start, p.prevEnd)
	return types, nil
}

func (p *Parser) parseEnumTypeDefinition(description *ast.Description) (*ast.EnumTypeDefinition, error) {
	enumTok, err := p.expectIdentKey(identkeyword.ENUM)
	if err != nil {
		return nil, err
	}
	if err := p.enterNode(enumTok.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	definition := &ast.EnumTypeDefinition{Description: description}
	definition.Comment = p.getComment()

	nameTok, err := p.expect(keyword.IDENT)
	if err != nil {
		return nil, err
	}
	definition.Name = p.newName(nameTok)

	if p.peek() == keyword.AT {
		directives, err := p.parseDirectives(true)
		if err != nil {
			return nil, err
		}
		definition.Directives = directives
	}
	if p.peek() == keyword.LBRACE {
		values, err := p.parseEnumValuesDefinition()
		if err != nil {
			return nil, err
		}
		definition.Values = values
	}
	definition.Loc = p.loc(definitionStart(description, enumTok), p.prevEnd)
	return definition, nil
}

func (p *Parser) parseEnumValuesDefinition() (*ast.EnumValuesDefinition, error) {
	lbrace, err := p.expect(keyword.LBRACE)
	if err != nil {
		return nil, err
	}
	if err := p.enterNode(lbrace.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	values := &ast.EnumValuesDefinition{}
	for {
		value, err := p.parseEnumValueDefinition()
		if err != nil {
			return nil, err
		}
		values.Items = append(values.Items, value)
		if p.peek() == keyword.RBRACE {
			break
		}
	}
	p.read() // }
	values.Loc = p.loc(lbrace.Start, p.prevEnd)
	return values, nil
}

func (p *Parser) parseEnumValueDefinition() (*ast.EnumValueDefinition, error) {
	startTok := p.peekToken()
	if err := p.enterNode(startTok.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	value := &ast.EnumValueDefinition{}
	value.Comment = p.getComment()
	value.Description = p.parseOptionalDescription()

	nameTok, err := p.expect(keyword.IDENT)
	if err != nil {
		return nil, err
	}
	switch p.identKey(nameTok) {
	case identkeyword.TRUE, identkeyword.FALSE, identkeyword.NULL:
		return nil, p.errSyntax(nameTok.Start, "enum value must not be named %q", p.input.ByteSliceString(nameTok.Literal))
	}
	value.Name = p.newName(nameTok)

	if p.peek() == keyword.AT {
		directives, err := p.parseDirectives(true)
		if err != nil {
			return nil, err
		}
		value.Directives = directives
	}
	value.Loc = p.loc(startTok.Start, p.prevEnd)
	return value, nil
}

func (p *Parser) parseInputObjectTypeDefinition(description *ast.Description) (*ast.InputObjectTypeDefinition, error) {
	inputTok, err := p.expectIdentKey(identkeyword.INPUT)
	if err != nil {
		return nil, err
	}
	if err := p.enterNode(inputTok.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	definition := &ast.InputObjectTypeDefinition{Description: description}
	definition.Comment = p.getComment()

	nameTok, err := p.expect(keyword.IDENT)
	if err != nil {
		return nil, err
	}
	definition.Name = p.newName(nameTok)

	if p.peek() == keyword.AT {
		directives, err := p.parseDirectives(true)
		if err != nil {
			return nil, err
		}
		definition.Directives = directives
	}
	if p.peek() == keyword.LBRACE {
		fields, err := p.parseInputFieldsDefinition()
		if err != nil {
			return nil, err
		}
		definition.Fields = fields
	}
	definition.Loc = p.loc(definitionStart(description, inputTok), p.prevEnd)
	return definition, nil
}

func (p *Parser) parseInputFieldsDefinition() (*ast.InputFieldsDefinition, error) {
	lbrace, err := p.expect(keyword.LBRACE)
	if err != nil {
		return nil, err
	}
	if err := p.enterNode(lbrace.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	fields := &ast.InputFieldsDefinition{}
	for {
		inputValue, err := p.parseInputValueDefinition()
		if err != nil {
			return nil, err
		}
		fields.Items = append(fields.Items, inputValue)
		if p.peek() == keyword.RBRACE {
			break
		}
	}
	p.read() // }
	fields.Loc = p.loc(lbrace.Start, p.prevEnd)
	return fields, nil
}

func (p *Parser) parseDirectiveDefinition(description *ast.Description) (*ast.DirectiveDefinition, error) {
	directiveTok, err := p.expectIdentKey(identkeyword.DIRECTIVE)
	if err != nil {
		return nil, err
	}
	if err := p.enterNode(directiveTok.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	definition := &ast.DirectiveDefinition{Description: description}
	definition.Comment = p.getComment()

	if _, err := p.expect(keyword.AT); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(keyword.IDENT)
	if err != nil {
		return nil, err
	}
	definition.Name = p.newName(nameTok)

	if p.peek() == keyword.LPAREN {
		arguments, err := p.parseArgumentsDefinition()
		if err != nil {
			return nil, err
		}
		definition.Arguments = arguments
	}
	if p.peekIdentKey() == identkeyword.REPEATABLE {
		p.read()
		definition.Repeatable = true
	}
	if _, err := p.expectIdentKey(identkeyword.ON); err != nil {
		return nil, err
	}
	locations, err := p.parseDirectiveLocations()
	if err != nil {
		return nil, err
	}
	definition.Locations = locations
	definition.Loc = p.loc(definitionStart(description, directiveTok), p.prevEnd)
	return definition, nil
}

func (p *Parser) parseDirectiveLocations() (*ast.DirectiveLocations, error) {
	startTok := p.peekToken()
	locations := &ast.DirectiveLocations{}
	p.skip(keyword.PIPE) // optional leading separator
	for {
		tok, err := p.expect(keyword.IDENT)
		if err != nil {
			return nil, err
		}
		literal := p.input.ByteSlice(tok.Literal)
		if !validDirectiveLocation(literal) {
			return nil, p.errSyntax(tok.Start, "unexpected directive location %q, expected one of: %s",
				literal, strings.Join(directiveLocations, ", "))
		}
		locations.Locations = append(locations.Locations, p.newName(tok))
		if !p.skip(keyword.PIPE) {
			break
		}
	}
	locations.Loc = p.loc(startTok.Start, p.prevEnd)
	return locations, nil
}

/*
 * type system extensions
 */

func (p *Parser) parseTypeSystemExtension() (ast.Definition, error) {
	extendTok, err := p.expectIdentKey(identkeyword.EXTEND)
	if err != nil {
		return nil, err
	}
	_, key, err := p.expectOneOf(
		identkeyword.SCHEMA, identkeyword.SCALAR, identkeyword.TYPE, identkeyword.INTERFACE,
		identkeyword.UNION, identkeyword.ENUM, identkeyword.INPUT)
	if err != nil {
		return nil, err
	}
	switch key {
	case identkeyword.SCHEMA:
		return p.parseSchemaExtension(extendTok)
	case identkeyword.SCALAR:
		return p.parseScalarTypeExtension(extendTok)
	case identkeyword.TYPE:
		return p.parseObjectTypeExtension(extendTok)
	case identkeyword.INTERFACE:
		return p.parseInterfaceTypeExtension(extendTok)
	case identkeyword.UNION:
		return p.parseUnionTypeExtension(extendTok)
	case identkeyword.ENUM:
		return p.parseEnumTypeExtension(extendTok)
	default:
		return p.parseInputObjectTypeExtension(extendTok)
	}
}

func (p *Parser) parseSchemaExtension(extendTok token.Token) (*ast.SchemaExtension, error) {
	if err := p.enterNode(extendTok.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	extension := &ast.SchemaExtension{}
	extension.Comment = p.getComment()

	if p.peek() == keyword.AT {
		directives, err := p.parseDirectives(true)
		if err != nil {
			return nil, err
		}
		extension.Directives = directives
	}
	if p.peek() == keyword.LBRACE {
		operationTypes, err := p.parseRootOperationTypeDefinitions()
		if err != nil {
			return nil, err
		}
		extension.OperationTypes = operationTypes
	}
	if extension.Directives == nil && len(extension.OperationTypes) == 0 {
		return nil, p.errSyntax(extendTok.Start, "schema extension must define at least one of: directives, root operation types")
	}
	extension.Loc = p.loc(extendTok.Start, p.prevEnd)
	return extension, nil
}

func (p *Parser) parseScalarTypeExtension(extendTok token.Token) (*ast.ScalarTypeExtension, error) {
	if err := p.enterNode(extendTok.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	extension := &ast.ScalarTypeExtension{}
	extension.Comment = p.getComment()

	nameTok, err := p.expect(keyword.IDENT)
	if err != nil {
		return nil, err
	}
	extension.Name = p.newName(nameTok)

	if p.peek() != keyword.AT {
		return nil, p.errSyntax(extendTok.Start, "scalar extension must define directives")
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	extension.Directives = directives
	extension.Loc = p.loc(extendTok.Start, p.prevEnd)
	return extension, nil
}

func (p *Parser) parseObjectTypeExtension(extendTok token.Token) (*ast.ObjectTypeExtension, error) {
	if err := p.enterNode(extendTok.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	extension := &ast.ObjectTypeExtension{}
	extension.Comment = p.getComment()

	nameTok, err := p.expect(keyword.IDENT)
	if err != nil {
		return nil, err
	}
	extension.Name = p.newName(nameTok)

	if p.peekIdentKey() == identkeyword.IMPLEMENTS {
		interfaces, err := p.parseImplementsInterfaces()
		if err != nil {
			return nil, err
		}
		extension.Interfaces = interfaces
	}
	if p.peek() == keyword.AT {
		directives, err := p.parseDirectives(true)
		if err != nil {
			return nil, err
		}
		extension.Directives = directives
	}
	if p.peek() == keyword.LBRACE {
		fields, err := p.parseFieldsDefinition()
		if err != nil {
			return nil, err
		}
		extension.Fields = fields
	}
	if extension.Interfaces == nil && extension.Directives == nil && extension.Fields == nil {
		return nil, p.errSyntax(extendTok.Start, "object type extension must define at least one of: implements interfaces, directives, fields")
	}
	extension.Loc = p.loc(extendTok.Start, p.prevEnd)
	return extension, nil
}

func (p *Parser) parseInterfaceTypeExtension(extendTok token.Token) (*ast.InterfaceTypeExtension, error) {
	if err := p.enterNode(extendTok.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	extension := &ast.InterfaceTypeExtension{}
	extension.Comment = p.getComment()

	nameTok, err := p.expect(keyword.IDENT)
	if err != nil {
		return nil, err
	}
	extension.Name = p.newName(nameTok)

	if p.peekIdentKey() == identkeyword.IMPLEMENTS {
		interfaces, err := p.parseImplementsInterfaces()
		if err != nil {
			return nil, err
		}
		extension.Interfaces = interfaces
	}
	if p.peek() == keyword.AT {
		directives, err := p.parseDirectives(true)
		if err != nil {
			return nil, err
		}
		extension.Directives = directives
	}
	if p.peek() == keyword.LBRACE {
		fields, err := p.parseFieldsDefinition()
		if err != nil {
			return nil, err
		}
		extension.Fields = fields
	}
	if extension.Interfaces == nil && extension.Directives == nil && extension.Fields == nil {
		return nil, p.errSyntax(extendTok.Start, "interface extension must define at least one of: implements interfaces, directives, fields")
	}
	extension.Loc = p.loc(extendTok.Start, p.prevEnd)
	return extension, nil
}

func (p *Parser) parseUnionTypeExtension(extendTok token.Token) (*ast.UnionTypeExtension, error) {
	if err := p.enterNode(extendTok.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	extension := &ast.UnionTypeExtension{}
	extension.Comment = p.getComment()

	nameTok, err := p.expect(keyword.IDENT)
	if err != nil {
		return nil, err
	}
	extension.Name = p.newName(nameTok)

	if p.peek() == keyword.AT {
		directives, err := p.parseDirectives(true)
		if err != nil {
			return nil, err
		}
		extension.Directives = directives
	}
	if p.peek() == keyword.EQUALS {
		types, err := p.parseUnionMemberTypes()
		if err != nil {
			return nil, err
		}
		extension.Types = types
	}
	if extension.Directives == nil && extension.Types == nil {
		return nil, p.errSyntax(extendTok.Start, "union extension must define at least one of: directives, member types")
	}
	extension.Loc = p.loc(extendTok.Start, p.prevEnd)
	return extension, nil
}

func (p *Parser) parseEnumTypeExtension(extendTok token.Token) (*ast.EnumTypeExtension, error) {
	if err := p.enterNode(extendTok.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	extension := &ast.EnumTypeExtension{}
	extension.Comment = p.getComment()

	nameTok, err := p.expect(keyword.IDENT)
	if err != nil {
		return nil, err
	}
	extension.Name = p.newName(nameTok)

	if p.peek() == keyword.AT {
		directives, err := p.parseDirectives(true)
		if err != nil {
			return nil, err
		}
		extension.Directives = directives
	}
	if p.peek() == keyword.LBRACE {
		values, err := p.parseEnumValuesDefinition()
		if err != nil {
			return nil, err
		}
		extension.Values = values
	}
	if extension.Directives == nil && extension.Values == nil {
		return nil, p.errSyntax(extendTok.Start, "enum extension must define at least one of: directives, enum values")
	}
	extension.Loc = p.loc(extendTok.Start, p.prevEnd)
	return extension, nil
}

func (p *Parser) parseInputObjectTypeExtension(extendTok token.Token) (*ast.InputObjectTypeExtension, error) {
	if err := p.enterNode(extendTok.Start); err != nil {
		return nil, err
	}
	defer p.leaveNode()

	extension := &ast.InputObjectTypeExtension{}
	extension.Comment = p.getComment()

	nameTok, err := p.expect(keyword.IDENT)
	if err != nil {
		return nil, err
	}
	extension.Name = p.newName(nameTok)

	if p.peek() == keyword.AT {
		directives, err := p.parseDirectives(true)
		if err != nil {
			return nil, err
		}
		extension.Directives = directives
	}
	if p.peek() == keyword.LBRACE {
		fields, err := p.parseInputFieldsDefinition()
		if err != nil {
			return nil, err
		}
		extension.Fields = fields
	}
	if extension.Directives == nil && extension.Fields == nil {
		return nil, p.errSyntax(extendTok.Start, "input object extension must define at least one of: directives, input fields")
	}
	extension.Loc = p.loc(extendTok.Start, p.prevEnd)
	return extension, nil
}
