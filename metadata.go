// metadata.go
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Metadata is the companion document written next to an exported artwork. It
// is intentionally non-deterministic (fresh id, timestamp) even for seeded
// passes; the drawing itself stays reproducible.
type Metadata struct {
	ID          string            `json:"id"`
	GeneratedAt time.Time         `json:"generated_at"`
	Options     GenerationOptions `json:"options"`
	Result      GenerationResult  `json:"result"`
}

func newMetadata(opts GenerationOptions, result GenerationResult) Metadata {
	return Metadata{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Options:     opts,
		Result:      result,
	}
}

func writeMetadata(path string, opts GenerationOptions, result GenerationResult) error {
	data, err := json.MarshalIndent(newMetadata(opts, result), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}
	return nil
}
