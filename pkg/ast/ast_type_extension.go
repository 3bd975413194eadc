package ast

// SchemaExtension
// example:
// extend schema @directive { subscription: Subscription }
type SchemaExtension struct {
	BaseNode
	Directives     *Directives
	OperationTypes []*RootOperationTypeDefinition
}

func (e *SchemaExtension) NodeKind() NodeKind       { return NodeKindSchemaExtension }
func (e *SchemaExtension) definitionNode()          {}
func (e *SchemaExtension) typeSystemExtensionNode() {}

// ScalarTypeExtension
// example:
// extend scalar JSON @directive
type ScalarTypeExtension struct {
	BaseNode
	Name       *Name
	Directives *Directives
}

func (e *ScalarTypeExtension) NodeKind() NodeKind       { return NodeKindScalarTypeExtension }
func (e *ScalarTypeExtension) definitionNode()          {}
func (e *ScalarTypeExtension) typeSystemExtensionNode() {}

// ObjectTypeExtension
// example:
// extend type Person implements Foo { age: Int }
type ObjectTypeExtension struct {
	BaseNode
	Name       *Name
	Interfaces *ImplementsInterfaces
	Directives *Directives
	Fields     *FieldsDefinition
}

func (e *ObjectTypeExtension) NodeKind() NodeKind       { return NodeKindObjectTypeExtension }
func (e *ObjectTypeExtension) definitionNode()          {}
func (e *ObjectTypeExtension) typeSystemExtensionNode() {}

// InterfaceTypeExtension
// example:
// extend interface NamedEntity { nickname: String }
type InterfaceTypeExtension struct {
	BaseNode
	Name       *Name
	Interfaces *ImplementsInterfaces
	Directives *Directives
	Fields     *FieldsDefinition
}

func (e *InterfaceTypeExtension) NodeKind() NodeKind       { return NodeKindInterfaceTypeExtension }
func (e *InterfaceTypeExtension) definitionNode()          {}
func (e *InterfaceTypeExtension) typeSystemExtensionNode() {}

// UnionTypeExtension
// example:
// extend union SearchResult = Audio | Video
type UnionTypeExtension struct {
	BaseNode
	Name       *Name
	Directives *Directives
	Types      *UnionMemberTypes
}

func (e *UnionTypeExtension) NodeKind() NodeKind       { return NodeKindUnionTypeExtension }
func (e *UnionTypeExtension) definitionNode()          {}
func (e *UnionTypeExtension) typeSystemExtensionNode() {}

// EnumTypeExtension
// example:
// extend enum Direction { NORTHWEST }
type EnumTypeExtension struct {
	BaseNode
	Name       *Name
	Directives *Directives
	Values     *EnumValuesDefinition
}

func (e *EnumTypeExtension) NodeKind() NodeKind       { return NodeKindEnumTypeExtension }
func (e *EnumTypeExtension) definitionNode()          {}
func (e *EnumTypeExtension) typeSystemExtensionNode() {}

// InputObjectTypeExtension
// example:
// extend input Point2D { z: Float }
type InputObjectTypeExtension struct {
	BaseNode
	Name       *Name
	Directives *Directives
	Fields     *InputFieldsDefinition
}

func (e *InputObjectTypeExtension) NodeKind() NodeKind       { return NodeKindInputObjectTypeExtension }
func (e *InputObjectTypeExtension) definitionNode()          {}
func (e *InputObjectTypeExtension) typeSystemExtensionNode() {}
