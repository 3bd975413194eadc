package ast

// NamedType
// example:
// String
type NamedType struct {
	BaseNode
	Name *Name
}

func (t *NamedType) NodeKind() NodeKind { return NodeKindNamedType }
func (t *NamedType) typeNode()          {}

// ListType
// example:
// [String]
type ListType struct {
	BaseNode
	Type Type
}

func (t *ListType) NodeKind() NodeKind { return NodeKindListType }
func (t *ListType) typeNode()          {}

// NonNullType
// example:
// String! / [String]!
// Type is never itself a NonNullType, the grammar forbids "String!!".
type NonNullType struct {
	BaseNode
	Type Type
}

func (t *NonNullType) NodeKind() NodeKind { return NodeKindNonNullType }
func (t *NonNullType) typeNode()          {}

// TypeName returns the name of the innermost named type.
func TypeName(t Type) *Name {
	for {
		switch v := t.(type) {
		case *NamedType:
			return v.Name
		case *ListType:
			t = v.Type
		case *NonNullType:
			t = v.Type
		default:
			return nil
		}
	}
}
