package ast

// OperationDefinition
// example:
// query MyQuery($x: Int) @directive { selections }
// The shorthand form "{ selections }" has Operation query and a nil Name.
type OperationDefinition struct {
	BaseNode
	Operation           OperationType
	Name                *Name
	VariableDefinitions *VariableDefinitions
	Directives          *Directives
	SelectionSet        *SelectionSet
}

func (d *OperationDefinition) NodeKind() NodeKind { return NodeKindOperationDefinition }
func (d *OperationDefinition) definitionNode()    {}
