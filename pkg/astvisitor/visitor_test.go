package astvisitor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqlkit/graphql-go-parser/internal/pkg/unsafeparser"
	"github.com/gqlkit/graphql-go-parser/pkg/ast"
	"github.com/gqlkit/graphql-go-parser/pkg/astparser"
)

type eventRecorder struct {
	events []string
}

func (r *eventRecorder) Enter(node ast.Node, walker *Walker) {
	r.events = append(r.events, "enter "+node.NodeKind().String())
}

func (r *eventRecorder) Leave(node ast.Node, walker *Walker) {
	r.events = append(r.events, "leave "+node.NodeKind().String())
}

func TestWalker_Walk(t *testing.T) {
	doc, err := astparser.ParseGraphqlDocumentString(`{ hero { name } }`)
	require.NoError(t, err)

	recorder := &eventRecorder{}
	walker := NewWalker(48)
	walker.SetVisitor(recorder)
	require.NoError(t, walker.Walk(doc))

	want := []string{
		"enter Document",
		"enter OperationDefinition",
		"enter SelectionSet",
		"enter Field",
		"enter Name",
		"leave Name",
		"enter SelectionSet",
		"enter Field",
		"enter Name",
		"leave Name",
		"leave Field",
		"leave SelectionSet",
		"leave Field",
		"leave SelectionSet",
		"leave OperationDefinition",
		"leave Document",
	}
	if diff := cmp.Diff(want, recorder.events); diff != "" {
		t.Fatalf("event mismatch (-want +got):\n%s", diff)
	}
}

type ancestorChecker struct {
	t *testing.T
}

func (c *ancestorChecker) Enter(node ast.Node, walker *Walker) {
	if node.NodeKind() == ast.NodeKindField {
		parent := walker.Ancestor()
		require.NotNil(c.t, parent)
		assert.Equal(c.t, ast.NodeKindSelectionSet, parent.NodeKind())
		assert.Equal(c.t, ast.NodeKindDocument, walker.Ancestors[0].NodeKind())
	}
}

func (c *ancestorChecker) Leave(node ast.Node, walker *Walker) {}

func TestWalker_Ancestors(t *testing.T) {
	doc, err := astparser.ParseGraphqlDocumentString(`query q { a { b } }`)
	require.NoError(t, err)

	walker := NewWalker(48)
	walker.SetVisitor(&ancestorChecker{t: t})
	require.NoError(t, walker.Walk(doc))
}

type skipFields struct {
	eventRecorder
}

func (s *skipFields) Enter(node ast.Node, walker *Walker) {
	s.eventRecorder.Enter(node, walker)
	if node.NodeKind() == ast.NodeKindField {
		walker.SkipNode()
	}
}

func TestWalker_SkipNode(t *testing.T) {
	doc, err := astparser.ParseGraphqlDocumentString(`{ a { b } }`)
	require.NoError(t, err)

	visitor := &skipFields{}
	walker := NewWalker(48)
	walker.SetVisitor(visitor)
	require.NoError(t, walker.Walk(doc))

	want := []string{
		"enter Document",
		"enter OperationDefinition",
		"enter SelectionSet",
		"enter Field",
		"leave Field",
		"leave SelectionSet",
		"leave OperationDefinition",
		"leave Document",
	}
	if diff := cmp.Diff(want, visitor.events); diff != "" {
		t.Fatalf("event mismatch (-want +got):\n%s", diff)
	}
}

type stopAtFirstField struct {
	eventRecorder
}

func (s *stopAtFirstField) Enter(node ast.Node, walker *Walker) {
	s.eventRecorder.Enter(node, walker)
	if node.NodeKind() == ast.NodeKindField {
		walker.Stop()
	}
}

func TestWalker_Stop(t *testing.T) {
	doc, err := astparser.ParseGraphqlDocumentString(`{ a b c }`)
	require.NoError(t, err)

	visitor := &stopAtFirstField{}
	walker := NewWalker(48)
	walker.SetVisitor(visitor)
	require.NoError(t, walker.Walk(doc))

	assert.Equal(t, "enter Field", visitor.events[len(visitor.events)-1])
}

func TestWalker_Errors(t *testing.T) {
	walker := NewWalker(8)
	assert.ErrorIs(t, walker.Walk(nil), ErrDocumentMustNotBeNil)

	doc, err := astparser.ParseGraphqlDocumentString(`{ a }`)
	require.NoError(t, err)
	assert.ErrorIs(t, walker.Walk(doc), ErrVisitorMustNotBeNil)
}

func TestWalker_TypeSystemDocument(t *testing.T) {
	doc, err := astparser.ParseGraphqlDocumentString(`
		"the root" type Query implements Node @tag { hero(id: ID = 1): [Droid!]! }
		union U = A | B
		enum E { ONE TWO }
		input I { x: Float }
		directive @tag on OBJECT | FIELD_DEFINITION
		extend type Query { second: Int }
	`)
	require.NoError(t, err)

	counts := map[ast.NodeKind]int{}
	walker := NewWalker(48)
	walker.SetVisitor(&kindCounter{counts: counts})
	require.NoError(t, walker.Walk(doc))

	assert.Equal(t, 1, counts[ast.NodeKindDocument])
	assert.Equal(t, 1, counts[ast.NodeKindObjectTypeDefinition])
	assert.Equal(t, 1, counts[ast.NodeKindDescription])
	assert.Equal(t, 1, counts[ast.NodeKindImplementsInterfaces])
	assert.Equal(t, 1, counts[ast.NodeKindUnionTypeDefinition])
	assert.Equal(t, 1, counts[ast.NodeKindUnionMemberTypes])
	assert.Equal(t, 2, counts[ast.NodeKindEnumValueDefinition])
	assert.Equal(t, 2, counts[ast.NodeKindInputValueDefinition])
	assert.Equal(t, 1, counts[ast.NodeKindDirectiveDefinition])
	assert.Equal(t, 1, counts[ast.NodeKindDirectiveLocations])
	assert.Equal(t, 1, counts[ast.NodeKindObjectTypeExtension])
	assert.Equal(t, 2, counts[ast.NodeKindNonNullType])
}

type kindCounter struct {
	counts map[ast.NodeKind]int
}

func (k *kindCounter) Enter(node ast.Node, walker *Walker) {
	k.counts[node.NodeKind()]++
}

func (k *kindCounter) Leave(node ast.Node, walker *Walker) {}

type nopVisitor struct{}

func (nopVisitor) Enter(node ast.Node, walker *Walker) {}
func (nopVisitor) Leave(node ast.Node, walker *Walker) {}

func BenchmarkWalker(b *testing.B) {
	document := unsafeparser.ParseGraphqlDocumentString(`query Hero($episode: Episode) {
		hero(episode: $episode) {
			name
			friends {
				name
				appearsIn
			}
		}
	}`)

	walker := NewWalker(48)
	walker.SetVisitor(nopVisitor{})

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if err := walker.Walk(document); err != nil {
			b.Fatal(err)
		}
	}
}
