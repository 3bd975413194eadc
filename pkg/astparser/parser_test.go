package astparser

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqlkit/graphql-go-parser/pkg/ast"
	"github.com/gqlkit/graphql-go-parser/pkg/graphqlerrors"
)

func mustParse(t *testing.T, input string, opts ...Option) *ast.Document {
	t.Helper()
	doc, err := ParseGraphqlDocumentString(input, opts...)
	require.NoError(t, err)
	require.NotNil(t, doc)
	return doc
}

func mustErrParse(t *testing.T, input string, opts ...Option) *graphqlerrors.SyntaxError {
	t.Helper()
	doc, err := ParseGraphqlDocumentString(input, opts...)
	if err == nil {
		t.Fatalf("want error, got document:\n%s", spew.Sdump(doc))
	}
	var syntaxErr *graphqlerrors.SyntaxError
	require.True(t, errors.As(err, &syntaxErr), "want *graphqlerrors.SyntaxError, got %T: %v", err, err)
	return syntaxErr
}

func TestParser_OperationDefinition(t *testing.T) {
	t.Run("named query with nested selections", func(t *testing.T) {
		doc := mustParse(t, `query test { field1 field2(id: 5) { name address } field3 }`)
		require.Len(t, doc.Definitions, 1)

		operation, ok := doc.Definitions[0].(*ast.OperationDefinition)
		require.True(t, ok)
		assert.Equal(t, ast.OperationTypeQuery, operation.Operation)
		assert.Equal(t, "test", operation.Name.String())
		require.NotNil(t, operation.SelectionSet)
		require.Len(t, operation.SelectionSet.Selections, 3)

		field1 := operation.SelectionSet.Selections[0].(*ast.Field)
		assert.Equal(t, "field1", field1.Name.String())
		assert.Nil(t, field1.Arguments)
		assert.Nil(t, field1.SelectionSet)

		field2 := operation.SelectionSet.Selections[1].(*ast.Field)
		assert.Equal(t, "field2", field2.Name.String())
		require.NotNil(t, field2.Arguments)
		require.Len(t, field2.Arguments.Items, 1)
		argument := field2.Arguments.Items[0]
		assert.Equal(t, "id", argument.Name.String())
		intValue, ok := argument.Value.(*ast.IntValue)
		require.True(t, ok)
		assert.Equal(t, "5", string(intValue.Raw))
		require.NotNil(t, field2.SelectionSet)
		require.Len(t, field2.SelectionSet.Selections, 2)
		assert.Equal(t, "name", field2.SelectionSet.Selections[0].(*ast.Field).Name.String())
		assert.Equal(t, "address", field2.SelectionSet.Selections[1].(*ast.Field).Name.String())

		field3 := operation.SelectionSet.Selections[2].(*ast.Field)
		assert.Equal(t, "field3", field3.Name.String())
	})
	t.Run("anonymous shorthand", func(t *testing.T) {
		doc := mustParse(t, `{ hello }`)
		require.Len(t, doc.Definitions, 1)

		operation := doc.Definitions[0].(*ast.OperationDefinition)
		assert.Equal(t, ast.OperationTypeQuery, operation.Operation)
		assert.Nil(t, operation.Name)
		require.Len(t, operation.SelectionSet.Selections, 1)
		field := operation.SelectionSet.Selections[0].(*ast.Field)
		assert.Equal(t, "hello", field.Name.String())
		assert.Nil(t, field.Arguments)
	})
	t.Run("mutation and subscription", func(t *testing.T) {
		doc := mustParse(t, "mutation m { a }\nsubscription s { b }")
		require.Len(t, doc.Definitions, 2)
		assert.Equal(t, ast.OperationTypeMutation, doc.Definitions[0].(*ast.OperationDefinition).Operation)
		assert.Equal(t, ast.OperationTypeSubscription, doc.Definitions[1].(*ast.OperationDefinition).Operation)
	})
	t.Run("variables, directives, default values", func(t *testing.T) {
		doc := mustParse(t, `query q($size: Int = 100 @tag, $name: String!) @cached { f(s: $size) }`)
		operation := doc.Definitions[0].(*ast.OperationDefinition)
		require.NotNil(t, operation.VariableDefinitions)
		require.Len(t, operation.VariableDefinitions.Items, 2)

		size := operation.VariableDefinitions.Items[0]
		assert.Equal(t, "size", size.Variable.Name.String())
		assert.Equal(t, "Int", ast.TypeName(size.Type).String())
		defaultValue, ok := size.DefaultValue.(*ast.IntValue)
		require.True(t, ok)
		assert.Equal(t, "100", string(defaultValue.Raw))
		require.NotNil(t, size.Directives)
		assert.Equal(t, "tag", size.Directives.Items[0].Name.String())

		name := operation.VariableDefinitions.Items[1]
		nonNull, ok := name.Type.(*ast.NonNullType)
		require.True(t, ok)
		assert.Equal(t, "String", nonNull.Type.(*ast.NamedType).Name.String())

		require.NotNil(t, operation.Directives)
		assert.Equal(t, "cached", operation.Directives.Items[0].Name.String())

		argument := operation.SelectionSet.Selections[0].(*ast.Field).Arguments.Items[0]
		variable, ok := argument.Value.(*ast.Variable)
		require.True(t, ok)
		assert.Equal(t, "size", variable.Name.String())
	})
	t.Run("alias", func(t *testing.T) {
		doc := mustParse(t, `{ renamed: original }`)
		field := doc.Definitions[0].(*ast.OperationDefinition).SelectionSet.Selections[0].(*ast.Field)
		require.NotNil(t, field.Alias)
		assert.Equal(t, "renamed", field.Alias.Name.String())
		assert.Equal(t, "original", field.Name.String())
		assert.Equal(t, "renamed", field.AliasOrName().String())
	})
	t.Run("err variable in constant value", func(t *testing.T) {
		mustErrParse(t, `query q($a: Int = $b) { f }`)
	})
	t.Run("err empty selection set", func(t *testing.T) {
		mustErrParse(t, `query q { }`)
	})
	t.Run("err operation without selection set", func(t *testing.T) {
		mustErrParse(t, `query q`)
	})
	t.Run("err empty variable definitions", func(t *testing.T) {
		mustErrParse(t, `query q() { f }`)
	})
	t.Run("err double non null", func(t *testing.T) {
		mustErrParse(t, `query q($a: Int!!) { f }`)
	})
}

func TestParser_Fragments(t *testing.T) {
	t.Run("fragment definition", func(t *testing.T) {
		doc := mustParse(t, `fragment F on User { id }`)
		fragment := doc.Definitions[0].(*ast.FragmentDefinition)
		assert.Equal(t, "F", fragment.Name.String())
		assert.Equal(t, "User", fragment.TypeCondition.Type.Name.String())
		require.Len(t, fragment.SelectionSet.Selections, 1)
		assert.Equal(t, "id", fragment.SelectionSet.Selections[0].(*ast.Field).Name.String())
	})
	t.Run("fragment spread", func(t *testing.T) {
		doc := mustParse(t, `{ ...F @onSpread }`)
		spread := doc.Definitions[0].(*ast.OperationDefinition).SelectionSet.Selections[0].(*ast.FragmentSpread)
		assert.Equal(t, "F", spread.Name.String())
		require.NotNil(t, spread.Directives)
		assert.Equal(t, "onSpread", spread.Directives.Items[0].Name.String())
	})
	t.Run("inline fragment with type condition", func(t *testing.T) {
		doc := mustParse(t, `{ ... on User { id } }`)
		inline := doc.Definitions[0].(*ast.OperationDefinition).SelectionSet.Selections[0].(*ast.InlineFragment)
		require.NotNil(t, inline.TypeCondition)
		assert.Equal(t, "User", inline.TypeCondition.Type.Name.String())
		require.Len(t, inline.SelectionSet.Selections, 1)
	})
	t.Run("inline fragment without type condition", func(t *testing.T) {
		doc := mustParse(t, `{ ... @include(if: $x) { id } }`)
		inline := doc.Definitions[0].(*ast.OperationDefinition).SelectionSet.Selections[0].(*ast.InlineFragment)
		assert.Nil(t, inline.TypeCondition)
		require.NotNil(t, inline.Directives)
	})
	t.Run("err fragment named on", func(t *testing.T) {
		err := mustErrParse(t, `fragment on on User { id }`)
		assert.Contains(t, err.Message, "on")
	})
	t.Run("err fragment without type condition", func(t *testing.T) {
		mustErrParse(t, `fragment F { id }`)
	})
}

func TestParser_Values(t *testing.T) {
	doc := mustParse(t, `{ f(a: [1, -2.5, "s", true, false, null, NORTH, {k: $v}, []]) }`)
	argument := doc.Definitions[0].(*ast.OperationDefinition).SelectionSet.Selections[0].(*ast.Field).Arguments.Items[0]
	list, ok := argument.Value.(*ast.ListValue)
	require.True(t, ok, "got: %s", spew.Sdump(argument.Value))
	require.Len(t, list.Values, 9)

	assert.Equal(t, "1", string(list.Values[0].(*ast.IntValue).Raw))
	assert.Equal(t, "-2.5", string(list.Values[1].(*ast.FloatValue).Raw))
	assert.Equal(t, "s", string(list.Values[2].(*ast.StringValue).Value()))
	assert.True(t, list.Values[3].(*ast.BooleanValue).Value)
	assert.False(t, list.Values[4].(*ast.BooleanValue).Value)
	assert.Equal(t, ast.NodeKindNullValue, list.Values[5].NodeKind())
	assert.Equal(t, "NORTH", list.Values[6].(*ast.EnumValue).Name.String())

	object := list.Values[7].(*ast.ObjectValue)
	require.Len(t, object.Fields, 1)
	assert.Equal(t, "k", object.Fields[0].Name.String())
	assert.Equal(t, "v", object.Fields[0].Value.(*ast.Variable).Name.String())

	nested := list.Values[8].(*ast.ListValue)
	assert.Len(t, nested.Values, 0)
}

func TestParser_SchemaDefinition(t *testing.T) {
	doc := mustParse(t, `schema @x { query: Q mutation: M }`)
	schema := doc.Definitions[0].(*ast.SchemaDefinition)
	require.NotNil(t, schema.Directives)
	require.Len(t, schema.Directives.Items, 1)
	assert.Equal(t, "x", schema.Directives.Items[0].Name.String())

	require.Len(t, schema.OperationTypes, 2)
	assert.Equal(t, ast.OperationTypeQuery, schema.OperationTypes[0].Operation)
	assert.Equal(t, "Q", schema.OperationTypes[0].Type.Name.String())
	assert.Equal(t, ast.OperationTypeMutation, schema.OperationTypes[1].Operation)
	assert.Equal(t, "M", schema.OperationTypes[1].Type.Name.String())
}

func TestParser_TypeDefinitions(t *testing.T) {
	t.Run("described object type", func(t *testing.T) {
		doc := mustParse(t, `"desc" type T implements I & J { f(a: Int = 1): [T!]! @d }`)
		definition := doc.Definitions[0].(*ast.ObjectTypeDefinition)
		require.NotNil(t, definition.Description)
		assert.Equal(t, "desc", string(definition.Description.Value()))
		assert.Equal(t, "T", definition.Name.String())

		require.NotNil(t, definition.Interfaces)
		require.Len(t, definition.Interfaces.Types, 2)
		assert.Equal(t, "I", definition.Interfaces.Types[0].Name.String())
		assert.Equal(t, "J", definition.Interfaces.Types[1].Name.String())

		require.NotNil(t, definition.Fields)
		require.Len(t, definition.Fields.Items, 1)
		field := definition.Fields.Items[0]
		assert.Equal(t, "f", field.Name.String())

		require.NotNil(t, field.Arguments)
		require.Len(t, field.Arguments.Items, 1)
		inputValue := field.Arguments.Items[0]
		assert.Equal(t, "a", inputValue.Name.String())
		assert.Equal(t, "Int", ast.TypeName(inputValue.Type).String())
		assert.Equal(t, "1", string(inputValue.DefaultValue.(*ast.IntValue).Raw))

		nonNull, ok := field.Type.(*ast.NonNullType)
		require.True(t, ok, "got: %s", spew.Sdump(field.Type))
		list, ok := nonNull.Type.(*ast.ListType)
		require.True(t, ok)
		innerNonNull, ok := list.Type.(*ast.NonNullType)
		require.True(t, ok)
		assert.Equal(t, "T", innerNonNull.Type.(*ast.NamedType).Name.String())

		require.NotNil(t, field.Directives)
		assert.Equal(t, "d", field.Directives.Items[0].Name.String())
	})
	t.Run("union", func(t *testing.T) {
		doc := mustParse(t, `union U = A | B | C`)
		union := doc.Definitions[0].(*ast.UnionTypeDefinition)
		assert.Equal(t, "U", union.Name.String())
		require.NotNil(t, union.Types)
		require.Len(t, union.Types.Types, 3)
		assert.Equal(t, "A", union.Types.Types[0].Name.String())
		assert.Equal(t, "B", union.Types.Types[1].Name.String())
		assert.Equal(t, "C", union.Types.Types[2].Name.String())
	})
	t.Run("union with leading pipe", func(t *testing.T) {
		doc := mustParse(t, "union U = \n  | A\n  | B")
		union := doc.Definitions[0].(*ast.UnionTypeDefinition)
		require.NotNil(t, union.Types)
		assert.Len(t, union.Types.Types, 2)
	})
	t.Run("scalar with directives", func(t *testing.T) {
		doc := mustParse(t, `scalar JSON @specifiedBy(url: "https://example.com")`)
		scalar := doc.Definitions[0].(*ast.ScalarTypeDefinition)
		assert.Equal(t, "JSON", scalar.Name.String())
		require.NotNil(t, scalar.Directives)
	})
	t.Run("interface implementing interfaces with leading ampersand", func(t *testing.T) {
		doc := mustParse(t, `interface I implements & A & B { f: Int }`)
		definition := doc.Definitions[0].(*ast.InterfaceTypeDefinition)
		require.NotNil(t, definition.Interfaces)
		assert.Len(t, definition.Interfaces.Types, 2)
	})
	t.Run("enum with descriptions", func(t *testing.T) {
		doc := mustParse(t, `enum Direction { "up" NORTH "down" SOUTH @deprecated }`)
		enum := doc.Definitions[0].(*ast.EnumTypeDefinition)
		require.NotNil(t, enum.Values)
		require.Len(t, enum.Values.Items, 2)
		assert.Equal(t, "NORTH", enum.Values.Items[0].Name.String())
		assert.Equal(t, "up", string(enum.Values.Items[0].Description.Value()))
		require.NotNil(t, enum.Values.Items[1].Directives)
	})
	t.Run("input object", func(t *testing.T) {
		doc := mustParse(t, `input Point { x: Float = 0.0 y: Float = 0.0 }`)
		input := doc.Definitions[0].(*ast.InputObjectTypeDefinition)
		assert.Equal(t, "Point", input.Name.String())
		require.NotNil(t, input.Fields)
		require.Len(t, input.Fields.Items, 2)
		assert.Equal(t, "x", input.Fields.Items[0].Name.String())
	})
	t.Run("block string description", func(t *testing.T) {
		doc := mustParse(t, "\"\"\"\n  multi\n  line\n\"\"\"\nscalar JSON")
		scalar := doc.Definitions[0].(*ast.ScalarTypeDefinition)
		require.NotNil(t, scalar.Description)
		assert.True(t, scalar.Description.BlockString)
		assert.Equal(t, "multi\nline", string(scalar.Description.Value()))
	})
	t.Run("err enum value named true", func(t *testing.T) {
		err := mustErrParse(t, `enum E { true }`)
		assert.Contains(t, err.Message, "true")
	})
	t.Run("err enum value named false", func(t *testing.T) {
		mustErrParse(t, `enum E { false }`)
	})
	t.Run("err enum value named null", func(t *testing.T) {
		mustErrParse(t, `enum E { null }`)
	})
	t.Run("err description on operation", func(t *testing.T) {
		mustErrParse(t, `"desc" query q { f }`)
	})
	t.Run("err description on extension", func(t *testing.T) {
		mustErrParse(t, `"desc" extend type T @d`)
	})
	t.Run("err empty fields definition", func(t *testing.T) {
		mustErrParse(t, `type T { }`)
	})
}

func TestParser_DirectiveDefinition(t *testing.T) {
	t.Run("with arguments and locations", func(t *testing.T) {
		doc := mustParse(t, `directive @example(arg: String) on FIELD | OBJECT`)
		definition := doc.Definitions[0].(*ast.DirectiveDefinition)
		assert.Equal(t, "example", definition.Name.String())
		assert.False(t, definition.Repeatable)
		require.NotNil(t, definition.Arguments)
		require.Len(t, definition.Arguments.Items, 1)
		require.NotNil(t, definition.Locations)
		require.Len(t, definition.Locations.Locations, 2)
		assert.Equal(t, "FIELD", definition.Locations.Locations[0].String())
		assert.Equal(t, "OBJECT", definition.Locations.Locations[1].String())
	})
	t.Run("repeatable with leading pipe", func(t *testing.T) {
		doc := mustParse(t, `directive @tag repeatable on | FIELD_DEFINITION | SCHEMA`)
		definition := doc.Definitions[0].(*ast.DirectiveDefinition)
		assert.True(t, definition.Repeatable)
		assert.Len(t, definition.Locations.Locations, 2)
	})
	t.Run("described", func(t *testing.T) {
		doc := mustParse(t, `"marks a field" directive @mark on FIELD`)
		definition := doc.Definitions[0].(*ast.DirectiveDefinition)
		require.NotNil(t, definition.Description)
		assert.Equal(t, "marks a field", string(definition.Description.Value()))
	})
	t.Run("err invalid location", func(t *testing.T) {
		err := mustErrParse(t, `directive @example on EVERYWHERE`)
		assert.Contains(t, err.Message, "EVERYWHERE")
	})
}

func TestParser_TypeSystemExtensions(t *testing.T) {
	t.Run("extend schema", func(t *testing.T) {
		doc := mustParse(t, `extend schema { subscription: S }`)
		extension := doc.Definitions[0].(*ast.SchemaExtension)
		require.Len(t, extension.OperationTypes, 1)
		assert.Equal(t, ast.OperationTypeSubscription, extension.OperationTypes[0].Operation)
	})
	t.Run("extend scalar", func(t *testing.T) {
		doc := mustParse(t, `extend scalar JSON @directive`)
		extension := doc.Definitions[0].(*ast.ScalarTypeExtension)
		assert.Equal(t, "JSON", extension.Name.String())
		require.NotNil(t, extension.Directives)
	})
	t.Run("extend type", func(t *testing.T) {
		doc := mustParse(t, `extend type User implements Node { age: Int }`)
		extension := doc.Definitions[0].(*ast.ObjectTypeExtension)
		assert.Equal(t, "User", extension.Name.String())
		require.NotNil(t, extension.Interfaces)
		require.NotNil(t, extension.Fields)
	})
	t.Run("extend interface", func(t *testing.T) {
		doc := mustParse(t, `extend interface Node @directive`)
		extension := doc.Definitions[0].(*ast.InterfaceTypeExtension)
		require.NotNil(t, extension.Directives)
	})
	t.Run("extend union", func(t *testing.T) {
		doc := mustParse(t, `extend union U = D | E`)
		extension := doc.Definitions[0].(*ast.UnionTypeExtension)
		require.NotNil(t, extension.Types)
		assert.Len(t, extension.Types.Types, 2)
	})
	t.Run("extend enum", func(t *testing.T) {
		doc := mustParse(t, `extend enum Direction { NORTHWEST }`)
		extension := doc.Definitions[0].(*ast.EnumTypeExtension)
		require.NotNil(t, extension.Values)
		assert.Len(t, extension.Values.Items, 1)
	})
	t.Run("extend input", func(t *testing.T) {
		doc := mustParse(t, `extend input Point { z: Float }`)
		extension := doc.Definitions[0].(*ast.InputObjectTypeExtension)
		require.NotNil(t, extension.Fields)
	})
	t.Run("err extension without any clause", func(t *testing.T) {
		mustErrParse(t, `extend type User`)
		mustErrParse(t, `extend schema`)
		mustErrParse(t, `extend scalar JSON`)
		mustErrParse(t, `extend interface Node`)
		mustErrParse(t, `extend union U`)
		mustErrParse(t, `extend enum E`)
		mustErrParse(t, `extend input I`)
	})
	t.Run("err extend unknown keyword", func(t *testing.T) {
		mustErrParse(t, `extend fragment F on U { f }`)
	})
}

func TestParser_Comments(t *testing.T) {
	t.Run("comment attaches to the following definition", func(t *testing.T) {
		doc := mustParse(t, "# describes the query\nquery q { f }")
		operation := doc.Definitions[0].(*ast.OperationDefinition)
		require.NotNil(t, operation.Comment)
		assert.Equal(t, " describes the query", string(operation.Comment.Text))
		assert.Empty(t, doc.UnattachedComments)
	})
	t.Run("consecutive comment lines aggregate into one node", func(t *testing.T) {
		doc := mustParse(t, "# one\n# two\n\n# three\nquery q { f }")
		operation := doc.Definitions[0].(*ast.OperationDefinition)
		require.NotNil(t, operation.Comment)
		assert.Equal(t, " one\n two\n three", string(operation.Comment.Text))
	})
	t.Run("comment only document", func(t *testing.T) {
		doc := mustParse(t, "# lonely\n\n# comments\n")
		assert.Empty(t, doc.Definitions)
		require.Len(t, doc.UnattachedComments, 1)
		assert.Equal(t, " lonely\n comments", string(doc.UnattachedComments[0].Text))
	})
	t.Run("trailing comment ends up unattached", func(t *testing.T) {
		doc := mustParse(t, "{ f }\n# trailing")
		require.Len(t, doc.UnattachedComments, 1)
		assert.Equal(t, " trailing", string(doc.UnattachedComments[0].Text))
	})
	t.Run("comment location spans the run", func(t *testing.T) {
		doc := mustParse(t, "# a\n# b\n{ f }")
		operation := doc.Definitions[0].(*ast.OperationDefinition)
		require.NotNil(t, operation.Comment)
		require.NotNil(t, operation.Comment.Loc)
		assert.Equal(t, uint32(0), operation.Comment.Loc.Start)
		assert.Equal(t, uint32(7), operation.Comment.Loc.End)
	})
	t.Run("ignore comments drops everything", func(t *testing.T) {
		doc := mustParse(t, "# gone\nquery q { f } # also gone", WithIgnoreComments())
		operation := doc.Definitions[0].(*ast.OperationDefinition)
		assert.Nil(t, operation.Comment)
		assert.Empty(t, doc.UnattachedComments)
	})
	t.Run("comment between description and keyword", func(t *testing.T) {
		doc := mustParse(t, "\"desc\" # note\ntype T { f: Int }")
		definition := doc.Definitions[0].(*ast.ObjectTypeDefinition)
		require.NotNil(t, definition.Description)
		assert.Equal(t, "desc", string(definition.Description.Value()))
	})
}

func TestParser_Options(t *testing.T) {
	t.Run("ignore locations", func(t *testing.T) {
		doc := mustParse(t, `{ f }`, WithIgnoreLocations())
		assert.Nil(t, doc.Loc)
		operation := doc.Definitions[0].(*ast.OperationDefinition)
		assert.Nil(t, operation.Loc)
		assert.Nil(t, operation.SelectionSet.Loc)
	})
	t.Run("document location spans the input", func(t *testing.T) {
		input := `query q { f }`
		doc := mustParse(t, input)
		require.NotNil(t, doc.Loc)
		assert.Equal(t, uint32(0), doc.Loc.Start)
		assert.Equal(t, uint32(len(input)), doc.Loc.End)
	})
	t.Run("node locations", func(t *testing.T) {
		input := `{ f(a: 1) }`
		doc := mustParse(t, input)
		operation := doc.Definitions[0].(*ast.OperationDefinition)
		require.NotNil(t, operation.Loc)
		assert.Equal(t, uint32(0), operation.Loc.Start)
		assert.Equal(t, uint32(len(input)), operation.Loc.End)

		field := operation.SelectionSet.Selections[0].(*ast.Field)
		require.NotNil(t, field.Loc)
		assert.Equal(t, uint32(2), field.Loc.Start)
		assert.Equal(t, uint32(9), field.Loc.End)
	})
	t.Run("max depth exceeded on nested list types", func(t *testing.T) {
		_, err := ParseGraphqlDocumentString(`query ($v: [[[[[Int]]]]]) { f }`, WithMaxDepth(4))
		require.Error(t, err)
		var depthErr *graphqlerrors.MaxDepthExceededError
		require.True(t, errors.As(err, &depthErr), "want *graphqlerrors.MaxDepthExceededError, got %T", err)
		assert.Equal(t, 4, depthErr.Limit)
	})
	t.Run("max depth exceeded on nested selection sets", func(t *testing.T) {
		_, err := ParseGraphqlDocumentString(`{ a { b { c { d } } } }`, WithMaxDepth(5))
		var depthErr *graphqlerrors.MaxDepthExceededError
		require.True(t, errors.As(err, &depthErr))
	})
	t.Run("default max depth accepts reasonable nesting", func(t *testing.T) {
		mustParse(t, `{ a { b { c { d { e } } } } }`)
	})
}

func TestParser_Boundaries(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		doc := mustParse(t, "")
		assert.Empty(t, doc.Definitions)
		require.NotNil(t, doc.Loc)
		assert.Equal(t, uint32(0), doc.Loc.End)
	})
	t.Run("whitespace only document", func(t *testing.T) {
		doc := mustParse(t, " \t\n,,, \r\n")
		assert.Empty(t, doc.Definitions)
	})
	t.Run("byte order mark and commas", func(t *testing.T) {
		doc := mustParse(t, "\uFEFFquery ,,, q { f }")
		require.Len(t, doc.Definitions, 1)
	})
	t.Run("err lexer failure surfaces with offset", func(t *testing.T) {
		err := mustErrParse(t, "{ f(a: 01) }")
		assert.Equal(t, uint32(1), err.Location().Line)
	})
	t.Run("err stray top level token", func(t *testing.T) {
		mustErrParse(t, `!`)
		mustErrParse(t, `123`)
		mustErrParse(t, `foo`)
	})
	t.Run("multiple definitions", func(t *testing.T) {
		doc := mustParse(t, `
			schema { query: Query }
			type Query { hero: Character }
			interface Character { id: ID! }
			"a droid" type Droid implements Character { id: ID! primaryFunction: String }
			union SearchResult = Droid
			enum Episode { NEWHOPE EMPIRE JEDI }
			input Review { stars: Int! commentary: String }
			directive @length(max: Int) on ARGUMENT_DEFINITION | INPUT_FIELD_DEFINITION
			extend type Droid { friends: [Character!] }
		`)
		assert.Len(t, doc.Definitions, 9)
	})
}

func TestParser_Index(t *testing.T) {
	doc := mustParse(t, `
		type Query { hero: Droid }
		"a droid" type Droid { id: ID }
		extend type Droid { name: String }
		directive @tag on FIELD
	`)

	node, exists := doc.Index.FirstNodeByNameStr("Droid")
	require.True(t, exists)
	assert.Equal(t, ast.NodeKindObjectTypeDefinition, node.NodeKind())

	nodes, exists := doc.Index.NodesByNameBytes(ast.ByteSlice("Droid"))
	require.True(t, exists)
	require.Len(t, nodes, 2)
	assert.Equal(t, ast.NodeKindObjectTypeExtension, nodes[1].NodeKind())

	node, exists = doc.Index.FirstNodeByNameStr("tag")
	require.True(t, exists)
	assert.Equal(t, ast.NodeKindDirectiveDefinition, node.NodeKind())

	_, exists = doc.Index.FirstNodeByNameStr("Missing")
	assert.False(t, exists)
}

func TestParser_Reuse(t *testing.T) {
	parser := NewParser()

	in := &ast.Input{}
	in.ResetInputString(`{ first }`)
	doc1, err := parser.ParseInput(in)
	require.NoError(t, err)

	in2 := &ast.Input{}
	in2.ResetInputString(`{ second }`)
	doc2, err := parser.ParseInput(in2)
	require.NoError(t, err)

	assert.Equal(t, "first", doc1.Definitions[0].(*ast.OperationDefinition).SelectionSet.Selections[0].(*ast.Field).Name.String())
	assert.Equal(t, "second", doc2.Definitions[0].(*ast.OperationDefinition).SelectionSet.Selections[0].(*ast.Field).Name.String())
}

func TestParser_KitchenSink(t *testing.T) {
	doc := mustParse(t, kitchenSink)
	assert.NotEmpty(t, doc.Definitions)
}

var kitchenSink = `query queryName($foo: ComplexType, $site: Site = MOBILE) {
  whoever123is: node(id: [123, 456]) {
    id
    ... on User @defer {
      field2 {
        id
        alias: field1(first: 10, after: $foo) @include(if: $foo) {
          id
          ...frag
        }
      }
    }
    ... @skip(unless: $foo) {
      id
    }
    ... {
      id
    }
  }
}

mutation likeStory {
  like(story: 123) @defer {
    story {
      id
    }
  }
}

subscription StoryLikeSubscription($input: StoryLikeSubscribeInput) {
  storyLikeSubscribe(input: $input) {
    story {
      likers {
        count
      }
      likeSentence {
        text
      }
    }
  }
}

fragment frag on Friend {
  foo(size: $size, bar: $b, obj: {key: "value", block: """

      block string uses \"""

  """})
}

{
  unnamed(truthy: true, falsey: false, nullish: null)
  query
}
`
