// Package unsafebytes provides zero copy conversions between byte slices and strings.
// The caller must guarantee that the underlying bytes don't change while the returned
// value is in use.
package unsafebytes

import "unsafe"

func BytesToString(bytes []byte) string {
	return *(*string)(unsafe.Pointer(&bytes))
}

func StringToBytes(str string) []byte {
	return unsafe.Slice(unsafe.StringData(str), len(str))
}
