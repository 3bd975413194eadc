package ast

// VariableDefinitions
// example:
// ($devicePicSize: Int = 100, $other: String)
type VariableDefinitions struct {
	BaseNode
	Items []*VariableDefinition
}

func (d *VariableDefinitions) NodeKind() NodeKind { return NodeKindVariableDefinitions }

// VariableDefinition
// example:
// $devicePicSize: Int = 100 @small
type VariableDefinition struct {
	BaseNode
	Variable *Variable
	Type     Type
	// DefaultValue is optional, e.g. = "Default"
	DefaultValue Value
	Directives   *Directives
}

func (d *VariableDefinition) NodeKind() NodeKind { return NodeKindVariableDefinition }
