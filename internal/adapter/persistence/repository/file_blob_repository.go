package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"controlserv/internal/domain/entities"
	"controlserv/internal/usecase/interfaces"
)

// FileBlobRepository keeps the whole service collection in a single JSON file,
// the local key-value analog of the browser storage key. Writes go through a
// temp file plus rename, so readers never observe a partial blob.

type FileBlobRepository struct {
	path string
}

var _ interfaces.IServiceCollectionRepository = (*FileBlobRepository)(nil)

func NewFileBlobRepository(path string) *FileBlobRepository {
	return &FileBlobRepository{path: path}
}

func (r *FileBlobRepository) Save(_ context.Context, records []entities.ServiceRecord) error {
	if records == nil {
		records = []entities.ServiceRecord{}
	}
	blob, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrPersistence, err)
	}
	return r.writeBlob(blob)
}

func (r *FileBlobRepository) Load(_ context.Context) ([]entities.ServiceRecord, error) {
	blob, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return []entities.ServiceRecord{}, nil
	}
	if err != nil {
		// The file could not be read at all; that is a storage failure, not
		// unparseable data.
		return nil, fmt.Errorf("%w: %v", interfaces.ErrPersistence, err)
	}
	return decodeCollection(blob)
}

func (r *FileBlobRepository) Clear(_ context.Context) error {
	err := os.Remove(r.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %v", interfaces.ErrPersistence, err)
	}
	return nil
}

func (r *FileBlobRepository) ReplaceRaw(_ context.Context, blob []byte) error {
	if err := validateImportBlob(blob); err != nil {
		return err
	}
	// Stored verbatim; the importer's formatting is preserved.
	return r.writeBlob(blob)
}

func (r *FileBlobRepository) writeBlob(blob []byte) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrPersistence, err)
	}

	tmp, err := os.CreateTemp(dir, ".controlserv-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrPersistence, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", interfaces.ErrPersistence, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", interfaces.ErrPersistence, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", interfaces.ErrPersistence, err)
	}
	return nil
}
