package ast

// FragmentSpread
// example:
// ...MyFragment @optionalDirective
type FragmentSpread struct {
	BaseNode
	// Name is any name but "on", e.g. MyFragment
	Name       *Name
	Directives *Directives
}

func (s *FragmentSpread) NodeKind() NodeKind { return NodeKindFragmentSpread }
func (s *FragmentSpread) selectionNode()     {}

// InlineFragment
// example:
// ... on User { friends { count } }
type InlineFragment struct {
	BaseNode
	// TypeCondition is optional, e.g. on User
	TypeCondition *TypeCondition
	Directives    *Directives
	SelectionSet  *SelectionSet
}

func (f *InlineFragment) NodeKind() NodeKind { return NodeKindInlineFragment }
func (f *InlineFragment) selectionNode()     {}

// FragmentDefinition
// example:
// fragment friendFields on User { id name }
type FragmentDefinition struct {
	BaseNode
	Name          *Name
	TypeCondition *TypeCondition
	Directives    *Directives
	SelectionSet  *SelectionSet
}

func (d *FragmentDefinition) NodeKind() NodeKind { return NodeKindFragmentDefinition }
func (d *FragmentDefinition) definitionNode()    {}

// TypeCondition
// example:
// on User
type TypeCondition struct {
	BaseNode
	Type *NamedType
}

func (c *TypeCondition) NodeKind() NodeKind { return NodeKindTypeCondition }
