package ast

import (
	"github.com/gqlkit/graphql-go-parser/internal/pkg/unsafebytes"
)

// Input is the immutable source view the lexer reads from and all AST byte slice
// payloads point into. It must outlive every Token and Document derived from it.
type Input struct {
	// RawBytes is the raw byte input
	RawBytes []byte
	// Length of RawBytes
	Length uint32
}

// Reset empties the Input
func (i *Input) Reset() {
	i.RawBytes = i.RawBytes[:0]
	i.Length = 0
}

// ResetInputBytes empties the Input and sets RawBytes to the provided byte slice
func (i *Input) ResetInputBytes(bytes []byte) {
	i.Reset()
	i.AppendInputBytes(bytes)
}

// ResetInputString empties the Input and sets RawBytes to the provided string
func (i *Input) ResetInputString(input string) {
	i.ResetInputBytes(unsafebytes.StringToBytes(input))
}

// AppendInputBytes appends a byte slice to the current input and returns the ref to it
func (i *Input) AppendInputBytes(bytes []byte) (ref ByteSliceReference) {
	ref.Start = i.Length
	i.RawBytes = append(i.RawBytes, bytes...)
	i.Length = uint32(len(i.RawBytes))
	ref.End = i.Length
	return
}

// ByteSlice returns the byte slice for a given byte ByteSliceReference
func (i *Input) ByteSlice(reference ByteSliceReference) ByteSlice {
	return i.RawBytes[reference.Start:reference.End]
}

// ByteSliceString returns a string for a given byte ByteSliceReference
func (i *Input) ByteSliceString(reference ByteSliceReference) string {
	return unsafebytes.BytesToString(i.ByteSlice(reference))
}

// ByteSlice is an alias for []byte
type ByteSlice []byte

func (b ByteSlice) String() string {
	return unsafebytes.BytesToString(b)
}

func (b ByteSlice) MarshalJSON() ([]byte, error) {
	return append(append([]byte("\""), b...), []byte("\"")...), nil
}

// ByteSliceReference is the zero copy window into the Input, Start inclusive, End exclusive
type ByteSliceReference struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

func (b ByteSliceReference) Length() uint32 {
	return b.End - b.Start
}
