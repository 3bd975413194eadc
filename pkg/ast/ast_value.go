package ast

import (
	"github.com/gqlkit/graphql-go-parser/internal/pkg/unsafebytes"
	"strconv"
)

// IntValue
// example:
// 123 / -123
type IntValue struct {
	BaseNode
	Raw ByteSlice
}

func (v *IntValue) NodeKind() NodeKind { return NodeKindIntValue }
func (v *IntValue) valueNode()         {}

func (v *IntValue) Int() (int64, error) {
	return strconv.ParseInt(unsafebytes.BytesToString(v.Raw), 10, 64)
}

// FloatValue
// example:
// 13.37 / -13.37 / 1.3e7
type FloatValue struct {
	BaseNode
	Raw ByteSlice
}

func (v *FloatValue) NodeKind() NodeKind { return NodeKindFloatValue }
func (v *FloatValue) valueNode()         {}

func (v *FloatValue) Float() (float64, error) {
	return strconv.ParseFloat(unsafebytes.BytesToString(v.Raw), 64)
}

// StringValue
// example:
// "foo" / """foo"""
type StringValue struct {
	BaseNode
	// Raw is the literal between the quotes, escapes intact
	Raw         ByteSlice
	BlockString bool
}

func (v *StringValue) NodeKind() NodeKind { return NodeKindStringValue }
func (v *StringValue) valueNode()         {}

// Value returns the decoded content: block strings dedented per spec, escape
// sequences resolved. A single line string without escapes is returned without
// copying, block strings are always decoded into a new buffer.
func (v *StringValue) Value() ByteSlice {
	if v.BlockString {
		return BlockStringValue(v.Raw)
	}
	return StringContent(v.Raw)
}

// BooleanValue
// example:
// true / false
type BooleanValue struct {
	BaseNode
	Value bool
}

func (v *BooleanValue) NodeKind() NodeKind { return NodeKindBooleanValue }
func (v *BooleanValue) valueNode()         {}

// NullValue
// example:
// null
type NullValue struct {
	BaseNode
}

func (v *NullValue) NodeKind() NodeKind { return NodeKindNullValue }
func (v *NullValue) valueNode()         {}

// EnumValue
// example:
// NORTH
type EnumValue struct {
	BaseNode
	Name *Name
}

func (v *EnumValue) NodeKind() NodeKind { return NodeKindEnumValue }
func (v *EnumValue) valueNode()         {}

// ListValue
// example:
// [1, 2, 3]
type ListValue struct {
	BaseNode
	Values []Value
}

func (v *ListValue) NodeKind() NodeKind { return NodeKindListValue }
func (v *ListValue) valueNode()         {}

// ObjectValue
// example:
// {lon: 12.43, lat: -53.211}
type ObjectValue struct {
	BaseNode
	Fields []*ObjectField
}

func (v *ObjectValue) NodeKind() NodeKind { return NodeKindObjectValue }
func (v *ObjectValue) valueNode()         {}

// ObjectField
// example:
// lon: 12.43
type ObjectField struct {
	BaseNode
	Name  *Name
	Value Value
}

func (f *ObjectField) NodeKind() NodeKind { return NodeKindObjectField }

// Variable
// example:
// $devicePicSize
type Variable struct {
	BaseNode
	// Name excludes the leading '$'
	Name *Name
}

func (v *Variable) NodeKind() NodeKind { return NodeKindVariable }
func (v *Variable) valueNode()         {}
