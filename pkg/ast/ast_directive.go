package ast

// Directives
// example:
// @include(if: $foo) @skip(if: $bar)
type Directives struct {
	BaseNode
	Items []*Directive
}

func (d *Directives) NodeKind() NodeKind { return NodeKindDirectives }

// Directive
// example:
// @include(if: $foo)
type Directive struct {
	BaseNode
	// Name excludes the leading '@'
	Name      *Name
	Arguments *Arguments
}

func (d *Directive) NodeKind() NodeKind { return NodeKindDirective }

// DirectiveDefinition
// example:
// directive @example on FIELD
type DirectiveDefinition struct {
	BaseNode
	Description *Description
	Name        *Name
	Arguments   *ArgumentsDefinition
	Repeatable  bool
	Locations   *DirectiveLocations
}

func (d *DirectiveDefinition) NodeKind() NodeKind        { return NodeKindDirectiveDefinition }
func (d *DirectiveDefinition) definitionNode()           {}
func (d *DirectiveDefinition) typeSystemDefinitionNode() {}

// DirectiveLocations
// example:
// QUERY | MUTATION | FIELD
type DirectiveLocations struct {
	BaseNode
	Locations []*Name
}

func (d *DirectiveLocations) NodeKind() NodeKind { return NodeKindDirectiveLocations }
