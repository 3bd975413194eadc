// Package astvisitor walks the tree AST in pre-order.
//
// The Walker carries the ancestor stack and depth so visitors always know where
// in the document they are. It is consumed by printers and linters, the parser
// itself never walks.
package astvisitor

import (
	"fmt"

	"github.com/gqlkit/graphql-go-parser/pkg/ast"
)

var (
	ErrDocumentMustNotBeNil = fmt.Errorf("document must not be nil")
	ErrVisitorMustNotBeNil  = fmt.Errorf("visitor must not be nil, call SetVisitor")
)

// Visitor receives one Enter and one Leave callback per node.
type Visitor interface {
	Enter(node ast.Node, walker *Walker)
	Leave(node ast.Node, walker *Walker)
}

// Walker orchestrates the traversal and calls the Visitor on every node.
// Always use NewWalker to instantiate a new Walker.
type Walker struct {
	// Ancestors is the slice of Nodes leading to the current Node in a callback
	// don't keep a reference to this slice, always copy it if you want to work with it after the callback returned
	Ancestors []ast.Node
	// Depth is the current traversal depth, 1 while visiting the Document
	Depth int

	visitor      Visitor
	stop         bool
	skipChildren bool
}

// NewWalker returns a fully initialized Walker
func NewWalker(ancestorSize int) Walker {
	return Walker{
		Ancestors: make([]ast.Node, 0, ancestorSize),
	}
}

func (w *Walker) SetVisitor(visitor Visitor) {
	w.visitor = visitor
}

// Stop aborts the traversal after the current callback returns.
func (w *Walker) Stop() {
	w.stop = true
}

// SkipNode skips the children of the node currently being entered.
// The Leave callback for the node is still invoked.
func (w *Walker) SkipNode() {
	w.skipChildren = true
}

// Ancestor returns the immediate parent of the current node, nil at the root.
func (w *Walker) Ancestor() ast.Node {
	if len(w.Ancestors) == 0 {
		return nil
	}
	return w.Ancestors[len(w.Ancestors)-1]
}

// Walk traverses the document in pre-order.
func (w *Walker) Walk(document *ast.Document) error {
	if document == nil {
		return ErrDocumentMustNotBeNil
	}
	if w.visitor == nil {
		return ErrVisitorMustNotBeNil
	}
	w.Ancestors = w.Ancestors[:0]
	w.Depth = 0
	w.stop = false
	w.skipChildren = false
	w.walkNode(document)
	return nil
}

func (w *Walker) walkNode(node ast.Node) {
	if w.stop {
		return
	}
	w.Depth++
	w.visitor.Enter(node, w)
	if w.stop {
		w.Depth--
		return
	}
	if w.skipChildren {
		w.skipChildren = false
	} else {
		w.Ancestors = append(w.Ancestors, node)
		w.walkChildren(node)
		w.Ancestors = w.Ancestors[:len(w.Ancestors)-1]
		if w.stop {
			w.Depth--
			return
		}
	}
	w.visitor.Leave(node, w)
	w.Depth--
}

func (w *Walker) walkChildren(node ast.Node) {
	switch n := node.(type) {
	case *ast.Document:
		for i := range n.Definitions {
			w.walkNode(n.Definitions[i])
		}
	case *ast.OperationDefinition:
		if n.Name != nil {
			w.walkNode(n.Name)
		}
		if n.VariableDefinitions != nil {
			w.walkNode(n.VariableDefinitions)
		}
		if n.Directives != nil {
			w.walkNode(n.Directives)
		}
		if n.SelectionSet != nil {
			w.walkNode(n.SelectionSet)
		}
	case *ast.VariableDefinitions:
		for i := range n.Items {
			w.walkNode(n.Items[i])
		}
	case *ast.VariableDefinition:
		if n.Variable != nil {
			w.walkNode(n.Variable)
		}
		if n.Type != nil {
			w.walkNode(n.Type)
		}
		if n.DefaultValue != nil {
			w.walkNode(n.DefaultValue)
		}
		if n.Directives != nil {
			w.walkNode(n.Directives)
		}
	case *ast.Variable:
		if n.Name != nil {
			w.walkNode(n.Name)
		}
	case *ast.SelectionSet:
		for i := range n.Selections {
			w.walkNode(n.Selections[i])
		}
	case *ast.Field:
		if n.Alias != nil {
			w.walkNode(n.Alias)
		}
		if n.Name != nil {
			w.walkNode(n.Name)
		}
		if n.Arguments != nil {
			w.walkNode(n.Arguments)
		}
		if n.Directives != nil {
			w.walkNode(n.Directives)
		}
		if n.SelectionSet != nil {
			w.walkNode(n.SelectionSet)
		}
	case *ast.Alias:
		if n.Name != nil {
			w.walkNode(n.Name)
		}
	case *ast.FragmentSpread:
		if n.Name != nil {
			w.walkNode(n.Name)
		}
		if n.Directives != nil {
			w.walkNode(n.Directives)
		}
	case *ast.InlineFragment:
		if n.TypeCondition != nil {
			w.walkNode(n.TypeCondition)
		}
		if n.Directives != nil {
			w.walkNode(n.Directives)
		}
		if n.SelectionSet != nil {
			w.walkNode(n.SelectionSet)
		}
	case *ast.FragmentDefinition:
		if n.Name != nil {
			w.walkNode(n.Name)
		}
		if n.TypeCondition != nil {
			w.walkNode(n.TypeCondition)
		}
		if n.Directives != nil {
			w.walkNode(n.Directives)
		}
		if n.SelectionSet != nil {
			w.walkNode(n.SelectionSet)
		}
	case *ast.TypeCondition:
		if n.Type != nil {
			w.walkNode(n.Type)
		}
	case *ast.Arguments:
		for i := range n.Items {
			w.walkNode(n.Items[i])
		}
	case *ast.Argument:
		if n.Name != nil {
			w.walkNode(n.Name)
		}
		if n.Value != nil {
			w.walkNode(n.Value)
		}
	case *ast.Directives:
		for i := range n.Items {
			w.walkNode(n.Items[i])
		}
	case *ast.Directive:
		if n.Name != nil {
			w.walkNode(n.Name)
		}
		if n.Arguments != nil {
			w.walkNode(n.Arguments)
		}
	case *ast.NamedType:
		if n.Name != nil {
			w.walkNode(n.Name)
		}
	case *ast.ListType:
		if n.Type != nil {
			w.walkNode(n.Type)
		}
	case *ast.NonNullType:
		if n.Type != nil {
			w.walkNode(n.Type)
		}
	case *ast.EnumValue:
		if n.Name != nil {
			w.walkNode(n.Name)
		}
	case *ast.ListValue:
		for i := range n.Values {
			w.walkNode(n.Values[i])
		}
	case *ast.ObjectValue:
		for i := range n.Fields {
			w.walkNode(n.Fields[i])
		}
	case *ast.ObjectField:
		if n.Name != nil {
			w.walkNode(n.Name)
		}
		if n.Value != nil {
			w.walkNode(n.Value)
		}
	case *ast.SchemaDefinition:
		if n.Description != nil {
			w.walkNode(n.Description)
		}
		if n.Directives != nil {
			w.walkNode(n.Directives)
		}
		for i := range n.OperationTypes {
			w.walkNode(n.OperationTypes[i])
		}
	case *ast.SchemaExtension:
		if n.Directives != nil {
			w.walkNode(n.Directives)
		}
		for i := range n.OperationTypes {
			w.walkNode(n.OperationTypes[i])
		}
	case *ast.RootOperationTypeDefinition:
		if n.Type != nil {
			w.walkNode(n.Type)
		}
	case *ast.ScalarTypeDefinition:
		if n.Description != nil {
			w.walkNode(n.Description)
		}
		if n.Name != nil {
			w.walkNode(n.Name)
		}
		if n.Directives != nil {
			w.walkNode(n.Directives)
		}
	case *ast.ScalarTypeExtension:
		if n.Name != nil {
			w.walkNode(n.Name)
		}
		if n.Directives != nil {
			w.walkNode(n.Directives)
		}
	case *ast.ObjectTypeDefinition:
		if n.Description != nil {
			w.walkNode(n.Description)
		}
		if n.Name != nil {
			w.walkNode(n.Name)
		}
		if n.Interfaces != nil {
			w.walkNode(n.Interfaces)
		}
		if n.Directives != nil {
			w.walkNode(n.Directives)
		}
		if n.Fields != nil {
			w.walkNode(n.Fields)
		}
	case *ast.ObjectTypeExtension:
		if n.Name != nil {
			w.walkNode(n.Name)
		}
		if n.Interfaces != nil {
			w.walkNode(n.Interfaces)
		}
		if n.Directives != nil {
			w.walkNode(n.Directives)
		}
		if n.Fields != nil {
			w.walkNode(n.Fields)
		}
	case *ast.InterfaceTypeDefinition:
		if n.Description != nil {
			w.walkNode(n.Description)
		}
		if n.Name != nil {
			w.walkNode(n.Name)
		}
		if n.Interfaces != nil {
			w.walkNode(n.Interfaces)
		}
		if n.Directives != nil {
			w.walkNode(n.Directives)
		}
		if n.Fields != nil {
			w.walkNode(n.Fields)
		}
	case *ast.InterfaceTypeExtension:
		if n.Name != nil {
			w.walkNode(n.Name)
		}
		if n.Interfaces != nil {
			w.walkNode(n.Interfaces)
		}
		if n.Directives != nil {
			w.walkNode(n.Directives)
		}
		if n.Fields != nil {
			w.walkNode(n.Fields)
		}
	case *ast.ImplementsInterfaces:
		for i := range n.Types {
			w.walkNode(n.Types[i])
		}
	case *ast.FieldsDefinition:
		for i := range n.Items {
			w.walkNode(n.Items[i])
		}
	case *ast.FieldDefinition:
		if n.Description != nil {
			w.walkNode(n.Description)
		}
		if n.Name != nil {
			w.walkNode(n.Name)
		}
		if n.Arguments != nil {
			w.walkNode(n.Arguments)
		}
		if n.Type != nil {
			w.walkNode(n.Type)
		}
		if n.Directives != nil {
			w.walkNode(n.Directives)
		}
	case *ast.ArgumentsDefinition:
		for i := range n.Items {
			w.walkNode(n.Items[i])
		}
	case *ast.InputFieldsDefinition:
		for i := range n.Items {
			w.walkNode(n.Items[i])
		}
	case *ast.InputValueDefinition:
		if n.Description != nil {
			w.walkNode(n.Description)
		}
		if n.Name != nil {
			w.walkNode(n.Name)
		}
		if n.Type != nil {
			w.walkNode(n.Type)
		}
		if n.DefaultValue != nil {
			w.walkNode(n.DefaultValue)
		}
		if n.Directives != nil {
			w.walkNode(n.Directives)
		}
	case *ast.UnionTypeDefinition:
		if n.Description != nil {
			w.walkNode(n.Description)
		}
		if n.Name != nil {
			w.walkNode(n.Name)
		}
		if n.Directives != nil {
			w.walkNode(n.Directives)
		}
		if n.Types != nil {
			w.walkNode(n.Types)
		}
	case *ast.UnionTypeExtension:
		if n.Name != nil {
			w.walkNode(n.Name)
		}
		if n.Directives != nil {
			w.walkNode(n.Directives)
		}
		if n.Types != nil {
			w.walkNode(n.Types)
		}
	case *ast.UnionMemberTypes:
		for i := range n.Types {
			w.walkNode(n.Types[i])
		}
	case *ast.EnumTypeDefinition:
		if n.Description != nil {
			w.walkNode(n.Description)
		}
		if n.Name != nil {
			w.walkNode(n.Name)
		}
		if n.Directives != nil {
			w.walkNode(n.Directives)
		}
		if n.Values != nil {
			w.walkNode(n.Values)
		}
	case *ast.EnumTypeExtension:
		if n.Name != nil {
			w.walkNode(n.Name)
		}
		if n.Directives != nil {
			w.walkNode(n.Directives)
		}
		if n.Values != nil {
			w.walkNode(n.Values)
		}
	case *ast.EnumValuesDefinition:
		for i := range n.Items {
			w.walkNode(n.Items[i])
		}
	case *ast.EnumValueDefinition:
		if n.Description != nil {
			w.walkNode(n.Description)
		}
		if n.Name != nil {
			w.walkNode(n.Name)
		}
		if n.Directives != nil {
			w.walkNode(n.Directives)
		}
	case *ast.InputObjectTypeDefinition:
		if n.Description != nil {
			w.walkNode(n.Description)
		}
		if n.Name != nil {
			w.walkNode(n.Name)
		}
		if n.Directives != nil {
			w.walkNode(n.Directives)
		}
		if n.Fields != nil {
			w.walkNode(n.Fields)
		}
	case *ast.InputObjectTypeExtension:
		if n.Name != nil {
			w.walkNode(n.Name)
		}
		if n.Directives != nil {
			w.walkNode(n.Directives)
		}
		if n.Fields != nil {
			w.walkNode(n.Fields)
		}
	case *ast.DirectiveDefinition:
		if n.Description != nil {
			w.walkNode(n.Description)
		}
		if n.Name != nil {
			w.walkNode(n.Name)
		}
		if n.Arguments != nil {
			w.walkNode(n.Arguments)
		}
		if n.Locations != nil {
			w.walkNode(n.Locations)
		}
	case *ast.DirectiveLocations:
		for i := range n.Locations {
			w.walkNode(n.Locations[i])
		}
	}
}
