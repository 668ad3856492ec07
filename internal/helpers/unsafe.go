package helpers

import (
	"reflect"
	"unsafe"
)

type eface struct {
	typ, val unsafe.Pointer
}

// Sizeof returns the in-memory size of v's type.
func Sizeof[T any](v T) int {
	return int(reflect.TypeOf(v).Size())
}

// Bytesof reinterprets v's underlying storage as a byte slice without
// copying. Used by InsertValue to splat a fixed-size T into a record's value
// buffer.
func Bytesof(v interface{}) []byte {
	return unsafe.Slice((*byte)((*eface)(unsafe.Pointer(&v)).val), Sizeof(v))
}

// FromBytes reinterprets srcBytes as a T, zero-padding on the right or
// truncating to fit.
func FromBytes[T any](srcBytes []byte, dst *T) {
	dstBytes := make([]byte, Sizeof(*dst))
	copy(dstBytes, srcBytes)
	*dst = *(*T)(unsafe.Pointer(&dstBytes[0]))
}
