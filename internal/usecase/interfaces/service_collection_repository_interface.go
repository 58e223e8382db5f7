package interfaces

import (
	"context"
	"errors"

	"controlserv/internal/domain/entities"
)

var (
	// ErrPersistence signals that the backing store rejected a write. The
	// caller's in-memory collection must stay untouched; nothing retries.
	ErrPersistence = errors.New("persistence write failed")
	// ErrCorruptData signals that a stored or imported blob is not a valid
	// service collection. The previous collection is preserved.
	ErrCorruptData = errors.New("stored data is not a valid service collection")
)

// IServiceCollectionRepository abstracts the single-key blob persistence of
// the whole service collection.
//
// The contract is whole-blob replace: there is never a partial write visible
// to readers. Load returns an empty collection when the key is absent.

type IServiceCollectionRepository interface {
	Save(ctx context.Context, records []entities.ServiceRecord) error
	Load(ctx context.Context) ([]entities.ServiceRecord, error)
	Clear(ctx context.Context) error
	ReplaceRaw(ctx context.Context, blob []byte) error
}
