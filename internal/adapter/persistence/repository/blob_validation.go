package repository

import (
	"encoding/json"
	"fmt"
	"strings"

	"controlserv/internal/domain/entities"
	"controlserv/internal/usecase/interfaces"
)

// decodeCollection parses a stored or imported blob into records, mapping any
// parse failure to ErrCorruptData.
func decodeCollection(blob []byte) ([]entities.ServiceRecord, error) {
	var records []entities.ServiceRecord
	if err := json.Unmarshal(blob, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", interfaces.ErrCorruptData, err)
	}
	return records, nil
}

// validateImportBlob enforces the import contract: the blob must be a JSON
// array and every element must carry a non-empty descricao and cliente.
// Returns ErrCorruptData so a rejected import aborts without touching the
// existing collection.
func validateImportBlob(blob []byte) error {
	records, err := decodeCollection(blob)
	if err != nil {
		return err
	}
	// "null" decodes to a nil slice without error; only real arrays pass.
	if records == nil {
		return fmt.Errorf("%w: blob is not a JSON array", interfaces.ErrCorruptData)
	}
	for i, rec := range records {
		if strings.TrimSpace(rec.Descricao) == "" || strings.TrimSpace(rec.Cliente) == "" {
			return fmt.Errorf("%w: element %d is missing descricao or cliente", interfaces.ErrCorruptData, i)
		}
	}
	return nil
}
