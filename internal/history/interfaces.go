package history

import (
	"context"

	"github.com/qrmaster/qr-master/internal/model"
)

// History defines the interface for the history store.
type History interface {
	SetUpdateCallback(func([]model.HistoryItem))
	SetErrorCallback(func(error))
	Load(ctx context.Context) ([]model.HistoryItem, error)
	List() []model.HistoryItem
	Len() int
	Get(id string) (model.HistoryItem, bool)
	Add(draft model.Draft) (model.HistoryItem, error)
	Remove(id string)
	Clear()

	// Flush blocks until every mutation made so far has been written
	Flush(ctx context.Context) error
}

var _ History = (*Store)(nil)

// Backend is durable key-value storage holding the serialized list.
type Backend interface {
	// Read returns ok == false when the key has never been written
	Read(key string) (data []byte, ok bool, err error)
	Write(key string, data []byte) error
}
