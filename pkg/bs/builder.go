package bs

import (
	"encoding/binary"
	"os"
	"sort"

	"github.com/globalforge/BTree/internal/logger"
	"github.com/globalforge/BTree/pkg/kverrors"
	"github.com/globalforge/BTree/pkg/record"

	"github.com/pkg/errors"
)

var bin = binary.LittleEndian

// Builder accumulates records in memory ahead of a one-shot BuildIndex.
// It has no behavior beyond append-and-sort: AddRecord does no
// deduplication and does not sort on insert.
type Builder struct {
	opts    Options
	records []record.Record
}

// NewBuilder returns an empty Builder for the given key/value sizes.
func NewBuilder(opts Options) *Builder {
	return &Builder{opts: opts}
}

// AddRecord appends a constructed record to the in-memory buffer. O(1)
// amortized; only valid before BuildIndex is called.
func (b *Builder) AddRecord(key string, value []byte) {
	b.records = append(b.records, record.New(b.opts.KeySize, b.opts.ValueSize, key, value))
}

// RecordCount returns the number of records currently buffered.
func (b *Builder) RecordCount() int {
	return len(b.records)
}

// BuildIndex sorts the buffer ascending by key, writes the header and all
// records to path (truncating any existing file), releases the buffer,
// and returns a Reader already open on path. If writing the file fails the
// buffer keeps its records (now sorted) and any partial file written is
// not cleaned up — that's the caller's responsibility.
func (b *Builder) BuildIndex(path string) (*Reader, error) {
	if len(b.records) == 0 {
		return nil, kverrors.ErrEmptyBuffer
	}

	sort.Slice(b.records, func(i, j int) bool {
		return b.records[i].Less(b.records[j])
	})

	if err := b.writeFile(path); err != nil {
		logger.L.WithError(err).WithField("path", path).Warn("bs: buildIndex failed")
		return nil, err
	}

	count := len(b.records)
	b.records = nil

	logger.L.WithField("path", path).WithField("records", count).Debug("bs: buildIndex complete")
	return OpenIndex(path, b.opts)
}

func (b *Builder) writeFile(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrap(kverrors.ErrIoFailure, err.Error())
	}
	defer f.Close()

	header := make([]byte, headerSize)
	bin.PutUint64(header, uint64(len(b.records)))
	if _, err := f.Write(header); err != nil {
		return errors.Wrap(kverrors.ErrIoFailure, err.Error())
	}

	recSize := b.opts.recordSize()
	buf := make([]byte, recSize)
	for _, r := range b.records {
		r.MarshalTo(buf)
		if _, err := f.Write(buf); err != nil {
			return errors.Wrap(kverrors.ErrIoFailure, err.Error())
		}
	}

	return nil
}
