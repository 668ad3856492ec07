package bs

// Options configures the fixed-width sizing of a binary-search index,
// computed once at Builder/Reader construction time.
type Options struct {
	// KeySize is the on-disk width of a key, including the reserved
	// trailing NUL sentinel byte. Logical keys may be at most
	// KeySize-1 bytes.
	KeySize int

	// ValueSize is the on-disk width of a value.
	ValueSize int
}

func (o Options) recordSize() int {
	return o.KeySize + o.ValueSize
}

// headerSize is the width of the fixed record-count header: 8 bytes,
// little-endian, regardless of host word size, so a file built on one
// machine stays readable on any other.
const headerSize = 8
