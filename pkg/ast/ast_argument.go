package ast

// Arguments
// example:
// (id: 5, name: "foo")
type Arguments struct {
	BaseNode
	Items []*Argument
}

func (a *Arguments) NodeKind() NodeKind { return NodeKindArguments }

// Argument
// example:
// id: 5
type Argument struct {
	BaseNode
	Name  *Name
	Value Value
}

func (a *Argument) NodeKind() NodeKind { return NodeKindArgument }
