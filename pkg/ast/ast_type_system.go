package ast

// SchemaDefinition
// example:
// schema @directive { query: Query mutation: Mutation }
type SchemaDefinition struct {
	BaseNode
	Description    *Description
	Directives     *Directives
	OperationTypes []*RootOperationTypeDefinition
}

func (d *SchemaDefinition) NodeKind() NodeKind        { return NodeKindSchemaDefinition }
func (d *SchemaDefinition) definitionNode()           {}
func (d *SchemaDefinition) typeSystemDefinitionNode() {}

// RootOperationTypeDefinition
// example:
// query: Query
type RootOperationTypeDefinition struct {
	BaseNode
	Operation OperationType
	Type      *NamedType
}

func (d *RootOperationTypeDefinition) NodeKind() NodeKind { return NodeKindRootOperationTypeDefinition }

// ScalarTypeDefinition
// example:
// scalar JSON
type ScalarTypeDefinition struct {
	BaseNode
	Description *Description
	Name        *Name
	Directives  *Directives
}

func (d *ScalarTypeDefinition) NodeKind() NodeKind        { return NodeKindScalarTypeDefinition }
func (d *ScalarTypeDefinition) definitionNode()           {}
func (d *ScalarTypeDefinition) typeSystemDefinitionNode() {}

// ObjectTypeDefinition
// example:
// type Person implements Foo & Bar { name: String }
type ObjectTypeDefinition struct {
	BaseNode
	Description *Description
	Name        *Name
	Interfaces  *ImplementsInterfaces
	Directives  *Directives
	Fields      *FieldsDefinition
}

func (d *ObjectTypeDefinition) NodeKind() NodeKind        { return NodeKindObjectTypeDefinition }
func (d *ObjectTypeDefinition) definitionNode()           {}
func (d *ObjectTypeDefinition) typeSystemDefinitionNode() {}

// InterfaceTypeDefinition
// example:
// interface NamedEntity { name: String }
type InterfaceTypeDefinition struct {
	BaseNode
	Description *Description
	Name        *Name
	Interfaces  *ImplementsInterfaces
	Directives  *Directives
	Fields      *FieldsDefinition
}

func (d *InterfaceTypeDefinition) NodeKind() NodeKind        { return NodeKindInterfaceTypeDefinition }
func (d *InterfaceTypeDefinition) definitionNode()           {}
func (d *InterfaceTypeDefinition) typeSystemDefinitionNode() {}

// UnionTypeDefinition
// example:
// union SearchResult = Photo | Person
type UnionTypeDefinition struct {
	BaseNode
	Description *Description
	Name        *Name
	Directives  *Directives
	Types       *UnionMemberTypes
}

func (d *UnionTypeDefinition) NodeKind() NodeKind        { return NodeKindUnionTypeDefinition }
func (d *UnionTypeDefinition) definitionNode()           {}
func (d *UnionTypeDefinition) typeSystemDefinitionNode() {}

// EnumTypeDefinition
// example:
// enum Direction { NORTH WEST SOUTH EAST }
type EnumTypeDefinition struct {
	BaseNode
	Description *Description
	Name        *Name
	Directives  *Directives
	Values      *EnumValuesDefinition
}

func (d *EnumTypeDefinition) NodeKind() NodeKind        { return NodeKindEnumTypeDefinition }
func (d *EnumTypeDefinition) definitionNode()           {}
func (d *EnumTypeDefinition) typeSystemDefinitionNode() {}

// EnumValueDefinition
// example:
// "the north" NORTH @deprecated
type EnumValueDefinition struct {
	BaseNode
	Description *Description
	// Name is any name but true, false or null
	Name       *Name
	Directives *Directives
}

func (d *EnumValueDefinition) NodeKind() NodeKind { return NodeKindEnumValueDefinition }

// InputObjectTypeDefinition
// example:
// input Point2D { x: Float y: Float }
type InputObjectTypeDefinition struct {
	BaseNode
	Description *Description
	Name        *Name
	Directives  *Directives
	Fields      *InputFieldsDefinition
}

func (d *InputObjectTypeDefinition) NodeKind() NodeKind        { return NodeKindInputObjectTypeDefinition }
func (d *InputObjectTypeDefinition) definitionNode()           {}
func (d *InputObjectTypeDefinition) typeSystemDefinitionNode() {}

// FieldsDefinition
// example:
// { name: String age: Int }
type FieldsDefinition struct {
	BaseNode
	Items []*FieldDefinition
}

func (d *FieldsDefinition) NodeKind() NodeKind { return NodeKindFieldsDefinition }

// FieldDefinition
// example:
// "describes the name" name(uppercase: Boolean = false): String @directive
type FieldDefinition struct {
	BaseNode
	Description *Description
	Name        *Name
	Arguments   *ArgumentsDefinition
	Type        Type
	Directives  *Directives
}

func (d *FieldDefinition) NodeKind() NodeKind { return NodeKindFieldDefinition }

// ArgumentsDefinition
// example:
// (uppercase: Boolean = false)
type ArgumentsDefinition struct {
	BaseNode
	Items []*InputValueDefinition
}

func (d *ArgumentsDefinition) NodeKind() NodeKind { return NodeKindArgumentsDefinition }

// InputValueDefinition
// example:
// uppercase: Boolean = false @directive
type InputValueDefinition struct {
	BaseNode
	Description *Description
	Name        *Name
	Type        Type
	// DefaultValue is optional, e.g. = false
	DefaultValue Value
	Directives   *Directives
}

func (d *InputValueDefinition) NodeKind() NodeKind { return NodeKindInputValueDefinition }

// InputFieldsDefinition
// example:
// { x: Float y: Float }
type InputFieldsDefinition struct {
	BaseNode
	Items []*InputValueDefinition
}

func (d *InputFieldsDefinition) NodeKind() NodeKind { return NodeKindInputFieldsDefinition }

// EnumValuesDefinition
// example:
// { NORTH WEST SOUTH EAST }
type EnumValuesDefinition struct {
	BaseNode
	Items []*EnumValueDefinition
}

func (d *EnumValuesDefinition) NodeKind() NodeKind { return NodeKindEnumValuesDefinition }

// UnionMemberTypes
// example:
// = Photo | Person
type UnionMemberTypes struct {
	BaseNode
	Types []*NamedType
}

func (d *UnionMemberTypes) NodeKind() NodeKind { return NodeKindUnionMemberTypes }

// ImplementsInterfaces
// example:
// implements Foo & Bar
type ImplementsInterfaces struct {
	BaseNode
	Types []*NamedType
}

func (d *ImplementsInterfaces) NodeKind() NodeKind { return NodeKindImplementsInterfaces }
