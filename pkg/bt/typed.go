package bt

import (
	"github.com/globalforge/BTree/internal/helpers"
)

// InsertValue is the generic analogue of the source's templated
// insertValue<T>: it splats a fixed-size T into the engine's value buffer
// and inserts it. T must fit within the engine's ValueSize.
func InsertValue[T any](e *Engine, key string, value T) error {
	buf := make([]byte, e.layout.ValueSize)
	copy(buf, helpers.Bytesof(value))
	return e.Insert(key, buf)
}

// RetrieveValue is the generic analogue of retrieveValue<T>: it retrieves
// the raw value bytes for key and reinterprets them as a T.
func RetrieveValue[T any](e *Engine, key string) (T, bool, error) {
	var out T
	buf, found, err := e.Retrieve(key)
	if err != nil || !found {
		return out, found, err
	}
	helpers.FromBytes(buf, &out)
	return out, true, nil
}
