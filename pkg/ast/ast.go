// Package ast contains the tree model for GraphQL documents.
//
// Every node is exclusively owned by its Document, the tree holds no cycles.
// Name and string payloads are windows into the Input, so the Input must
// outlive the Document.
package ast

// NodeKind discriminates all AST node variants.
type NodeKind int

const (
	NodeKindUnknown NodeKind = iota
	NodeKindDocument
	NodeKindComment
	NodeKindDescription
	NodeKindName
	NodeKindOperationDefinition
	NodeKindVariableDefinitions
	NodeKindVariableDefinition
	NodeKindVariable
	NodeKindSelectionSet
	NodeKindField
	NodeKindAlias
	NodeKindFragmentSpread
	NodeKindInlineFragment
	NodeKindFragmentDefinition
	NodeKindTypeCondition
	NodeKindArguments
	NodeKindArgument
	NodeKindDirectives
	NodeKindDirective
	NodeKindNamedType
	NodeKindListType
	NodeKindNonNullType
	NodeKindIntValue
	NodeKindFloatValue
	NodeKindStringValue
	NodeKindBooleanValue
	NodeKindNullValue
	NodeKindEnumValue
	NodeKindListValue
	NodeKindObjectValue
	NodeKindObjectField
	NodeKindSchemaDefinition
	NodeKindRootOperationTypeDefinition
	NodeKindScalarTypeDefinition
	NodeKindObjectTypeDefinition
	NodeKindInterfaceTypeDefinition
	NodeKindUnionTypeDefinition
	NodeKindEnumTypeDefinition
	NodeKindEnumValueDefinition
	NodeKindInputObjectTypeDefinition
	NodeKindFieldsDefinition
	NodeKindFieldDefinition
	NodeKindArgumentsDefinition
	NodeKindInputValueDefinition
	NodeKindInputFieldsDefinition
	NodeKindEnumValuesDefinition
	NodeKindUnionMemberTypes
	NodeKindImplementsInterfaces
	NodeKindDirectiveDefinition
	NodeKindDirectiveLocations
	NodeKindSchemaExtension
	NodeKindScalarTypeExtension
	NodeKindObjectTypeExtension
	NodeKindInterfaceTypeExtension
	NodeKindUnionTypeExtension
	NodeKindEnumTypeExtension
	NodeKindInputObjectTypeExtension
)

var nodeKindNames = [...]string{
	NodeKindUnknown:                     "Unknown",
	NodeKindDocument:                    "Document",
	NodeKindComment:                     "Comment",
	NodeKindDescription:                 "Description",
	NodeKindName:                        "Name",
	NodeKindOperationDefinition:         "OperationDefinition",
	NodeKindVariableDefinitions:         "VariableDefinitions",
	NodeKindVariableDefinition:          "VariableDefinition",
	NodeKindVariable:                    "Variable",
	NodeKindSelectionSet:                "SelectionSet",
	NodeKindField:                       "Field",
	NodeKindAlias:                       "Alias",
	NodeKindFragmentSpread:              "FragmentSpread",
	NodeKindInlineFragment:              "InlineFragment",
	NodeKindFragmentDefinition:          "FragmentDefinition",
	NodeKindTypeCondition:               "TypeCondition",
	NodeKindArguments:                   "Arguments",
	NodeKindArgument:                    "Argument",
	NodeKindDirectives:                  "Directives",
	NodeKindDirective:                   "Directive",
	NodeKindNamedType:                   "NamedType",
	NodeKindListType:                    "ListType",
	NodeKindNonNullType:                 "NonNullType",
	NodeKindIntValue:                    "IntValue",
	NodeKindFloatValue:                  "FloatValue",
	NodeKindStringValue:                 "StringValue",
	NodeKindBooleanValue:                "BooleanValue",
	NodeKindNullValue:                   "NullValue",
	NodeKindEnumValue:                   "EnumValue",
	NodeKindListValue:                   "ListValue",
	NodeKindObjectValue:                 "ObjectValue",
	NodeKindObjectField:                 "ObjectField",
	NodeKindSchemaDefinition:            "SchemaDefinition",
	NodeKindRootOperationTypeDefinition: "RootOperationTypeDefinition",
	NodeKindScalarTypeDefinition:        "ScalarTypeDefinition",
	NodeKindObjectTypeDefinition:        "ObjectTypeDefinition",
	NodeKindInterfaceTypeDefinition:     "InterfaceTypeDefinition",
	NodeKindUnionTypeDefinition:         "UnionTypeDefinition",
	NodeKindEnumTypeDefinition:          "EnumTypeDefinition",
	NodeKindEnumValueDefinition:         "EnumValueDefinition",
	NodeKindInputObjectTypeDefinition:   "InputObjectTypeDefinition",
	NodeKindFieldsDefinition:            "FieldsDefinition",
	NodeKindFieldDefinition:             "FieldDefinition",
	NodeKindArgumentsDefinition:         "ArgumentsDefinition",
	NodeKindInputValueDefinition:        "InputValueDefinition",
	NodeKindInputFieldsDefinition:       "InputFieldsDefinition",
	NodeKindEnumValuesDefinition:        "EnumValuesDefinition",
	NodeKindUnionMemberTypes:            "UnionMemberTypes",
	NodeKindImplementsInterfaces:        "ImplementsInterfaces",
	NodeKindDirectiveDefinition:         "DirectiveDefinition",
	NodeKindDirectiveLocations:          "DirectiveLocations",
	NodeKindSchemaExtension:             "SchemaExtension",
	NodeKindScalarTypeExtension:         "ScalarTypeExtension",
	NodeKindObjectTypeExtension:         "ObjectTypeExtension",
	NodeKindInterfaceTypeExtension:      "InterfaceTypeExtension",
	NodeKindUnionTypeExtension:          "UnionTypeExtension",
	NodeKindEnumTypeExtension:           "EnumTypeExtension",
	NodeKindInputObjectTypeExtension:    "InputObjectTypeExtension",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "Unknown"
}

// Location is the byte span of a node inside the Input, Start inclusive, End exclusive.
type Location struct {
	Start uint32
	End   uint32
}

// Node is implemented by every AST node.
type Node interface {
	NodeKind() NodeKind
	// NodeLocation is nil when the document was parsed with locations ignored
	NodeLocation() *Location
	// NodeComment is the leading comment attached to the node, nil when comments
	// were ignored or nothing was attached
	NodeComment() *Comment
}

// BaseNode carries the attributes shared by all node variants and is embedded
// by every one of them.
type BaseNode struct {
	Loc     *Location
	Comment *Comment
}

func (b *BaseNode) NodeLocation() *Location { return b.Loc }
func (b *BaseNode) NodeComment() *Comment   { return b.Comment }

// Definition is a top level entry of a Document.
type Definition interface {
	Node
	definitionNode()
}

// TypeSystemDefinition is a schema, type, or directive definition.
type TypeSystemDefinition interface {
	Definition
	typeSystemDefinitionNode()
}

// TypeSystemExtension is an "extend ..." definition.
type TypeSystemExtension interface {
	Definition
	typeSystemExtensionNode()
}

// Selection is a Field, FragmentSpread or InlineFragment.
type Selection interface {
	Node
	selectionNode()
}

// Value is any input value literal.
type Value interface {
	Node
	valueNode()
}

// Type is a NamedType, ListType or NonNullType.
type Type interface {
	Node
	typeNode()
}

// OperationType is the root operation a definition belongs to.
type OperationType int

const (
	OperationTypeUnknown OperationType = iota
	OperationTypeQuery
	OperationTypeMutation
	OperationTypeSubscription
)

func (t OperationType) String() string {
	switch t {
	case OperationTypeQuery:
		return "query"
	case OperationTypeMutation:
		return "mutation"
	case OperationTypeSubscription:
		return "subscription"
	default:
		return "unknown"
	}
}

// Document is the root of the tree. UnattachedComments collects every comment
// that no node claimed, in source order.
type Document struct {
	BaseNode
	Definitions        []Definition
	UnattachedComments []*Comment
	Index              Index
}

func (d *Document) NodeKind() NodeKind { return NodeKindDocument }

// Name is an identifier. Value points into the Input.
type Name struct {
	BaseNode
	Value ByteSlice
}

func (n *Name) NodeKind() NodeKind { return NodeKindName }

func (n *Name) String() string {
	return n.Value.String()
}

// Comment is one aggregated run of consecutive comment lines, joined with "\n",
// the leading '#' of each line stripped.
type Comment struct {
	BaseNode
	Text ByteSlice
}

func (c *Comment) NodeKind() NodeKind { return NodeKindComment }

// Description is the string preceding a type system definition.
type Description struct {
	BaseNode
	Raw         ByteSlice
	BlockString bool
}

func (d *Description) NodeKind() NodeKind { return NodeKindDescription }

// Value returns the decoded description content.
func (d *Description) Value() ByteSlice {
	if d.BlockString {
		return BlockStringValue(d.Raw)
	}
	return StringContent(d.Raw)
}
