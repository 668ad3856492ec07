package bs

import (
	"os"

	"github.com/globalforge/BTree/internal/logger"
	"github.com/globalforge/BTree/pkg/kverrors"
	"github.com/globalforge/BTree/pkg/record"

	"github.com/pkg/errors"
)

// Reader performs binary search lookups over a file built by Builder.
// Complexity is ceil(log2(N)) seeks + reads per lookup; the OS page cache
// amortizes repeated lookups.
type Reader struct {
	opts        Options
	file        *os.File
	recordCount uint64
}

// OpenIndex opens path read-only and reads the record-count header,
// leaving the file open. Returns ErrIoFailure if the file is missing or
// shorter than the header.
func OpenIndex(path string, opts Options) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(kverrors.ErrIoFailure, err.Error())
	}

	header := make([]byte, headerSize)
	if _, err := readFull(f, header, 0); err != nil {
		f.Close()
		return nil, errors.Wrap(kverrors.ErrIoFailure, "short header: "+err.Error())
	}

	r := &Reader{
		opts:        opts,
		file:        f,
		recordCount: bin.Uint64(header),
	}

	logger.L.WithField("path", path).WithField("records", r.recordCount).Debug("bs: openIndex")
	return r, nil
}

// RecordCount reflects the currently open file, or 0 if closed.
func (r *Reader) RecordCount() uint64 {
	if r.file == nil {
		return 0
	}
	return r.recordCount
}

// CloseIndex closes the handle and resets RecordCount to 0. Safe to call
// more than once.
func (r *Reader) CloseIndex() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	r.recordCount = 0
	if err != nil {
		return errors.Wrap(kverrors.ErrIoFailure, err.Error())
	}
	return nil
}

// Lookup performs a classical lower-bound binary search over record slots
// on disk and returns the value for key, if present. Any read error
// collapses the search to not-found rather than surfacing as an error,
// matching the bt engine's Retrieve.
func (r *Reader) Lookup(key string) ([]byte, bool, error) {
	if r.file == nil {
		return nil, false, kverrors.ErrNotOpen
	}

	target := record.SearchKey(r.opts.KeySize, key)
	recSize := r.opts.recordSize()
	buf := make([]byte, recSize)

	left, right := uint64(0), r.recordCount
	for left < right {
		mid := left + (right-left)/2
		offset := int64(headerSize) + int64(mid)*int64(recSize)

		if _, err := readFull(r.file, buf, offset); err != nil {
			return nil, false, nil
		}

		cmp := record.Compare(target, buf[:r.opts.KeySize])
		switch {
		case cmp == 0:
			value := make([]byte, r.opts.ValueSize)
			copy(value, buf[r.opts.KeySize:])
			return value, true, nil
		case cmp < 0:
			right = mid
		default:
			left = mid + 1
		}
	}

	return nil, false, nil
}

// ContainsRecord is Lookup with the value discarded.
func (r *Reader) ContainsRecord(key string) (bool, error) {
	_, found, err := r.Lookup(key)
	return found, err
}

func readFull(f *os.File, buf []byte, offset int64) (int, error) {
	return f.ReadAt(buf, offset)
}
