// Package record implements the fixed-width (key, value) pair shared by
// the bt and bs index engines: a K-byte zero-padded key with a NUL
// sentinel in the last byte, followed by a V-byte opaque value. The key's
// logical length is at most K-1 bytes, and comparison is a lexicographic
// unsigned-byte compare equivalent to strcmp on a NUL-terminated string
// of that length.
package record

import "bytes"

// Record is a fixed-width key/value pair. KeySize/ValueSize are carried by
// the owning engine's layout, not by the Record itself — two Records are
// only comparable when built with the same sizes.
type Record struct {
	Key   []byte
	Value []byte
}

// New builds a Record, copying at most keySize-1 bytes of key (the last
// byte is always left zero as the NUL sentinel) and exactly valueSize
// bytes of value, memcpy-style; value shorter than valueSize is
// zero-padded, longer is truncated to valueSize.
func New(keySize, valueSize int, key string, value []byte) Record {
	r := Zero(keySize, valueSize)
	copy(r.Key[:keySize-1], key)
	copy(r.Value, value)
	return r
}

// Zero returns a zero-valued Record of the given sizes.
func Zero(keySize, valueSize int) Record {
	return Record{
		Key:   make([]byte, keySize),
		Value: make([]byte, valueSize),
	}
}

// SearchKey builds a zero-padded, truncated search key of length keySize
// without allocating a full Record — used by Lookup/Retrieve paths that
// only need the key half for comparison.
func SearchKey(keySize int, key string) []byte {
	buf := make([]byte, keySize)
	copy(buf[:keySize-1], key)
	return buf
}

// Compare implements lexicographic unsigned-byte compare of the key,
// equivalent to strcmp on the NUL-terminated logical portion as long as
// the logical key contains no embedded NUL bytes.
func Compare(a, b []byte) int {
	return bytes.Compare(a, b)
}

// Less reports whether r sorts strictly before other by key.
func (r Record) Less(other Record) bool {
	return Compare(r.Key, other.Key) < 0
}

// Size returns the packed wire size of a Record with the given sizes.
func Size(keySize, valueSize int) int {
	return keySize + valueSize
}

// MarshalTo writes the packed K+V byte representation of r into buf, which
// must be at least Size(len(r.Key), len(r.Value)) bytes.
func (r Record) MarshalTo(buf []byte) {
	n := copy(buf, r.Key)
	copy(buf[n:], r.Value)
}

// Unmarshal reads a Record of the given sizes out of buf.
func Unmarshal(buf []byte, keySize, valueSize int) Record {
	r := Zero(keySize, valueSize)
	copy(r.Key, buf[:keySize])
	copy(r.Value, buf[keySize:keySize+valueSize])
	return r
}
