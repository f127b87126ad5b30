// Package snapshot defines the versioned ledger snapshot document: a single
// JSON blob holding the entire marketplace state. It is the exchange format
// for export/import and the bootstrap source for an empty database.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"herdshare/internal/models"
)

// CurrentVersion is the schema version written by Export.
const CurrentVersion = 1

// Document is a full ledger snapshot. Sections missing from an older
// snapshot decode to empty slices rather than failing, so the format is
// forward compatible with default filling.
type Document struct {
	Version    int       `json:"version"`
	ExportedAt time.Time `json:"exported_at"`

	Assets      []models.Asset        `json:"assets"`
	Investments []models.Investment   `json:"investments"`
	Farmers     []models.Farmer       `json:"farmers"`
	Reviews     []models.FarmerReview `json:"reviews"`
	Users       []models.User         `json:"users"`
	Favorites   []models.Favorite     `json:"favorites"`
}

// FillDefaults replaces nil sections with empty slices and defaults the
// version for pre-versioning snapshots.
func (d *Document) FillDefaults() {
	if d.Version == 0 {
		d.Version = 1
	}
	if d.Assets == nil {
		d.Assets = []models.Asset{}
	}
	if d.Investments == nil {
		d.Investments = []models.Investment{}
	}
	if d.Farmers == nil {
		d.Farmers = []models.Farmer{}
	}
	if d.Reviews == nil {
		d.Reviews = []models.FarmerReview{}
	}
	if d.Users == nil {
		d.Users = []models.User{}
	}
	if d.Favorites == nil {
		d.Favorites = []models.Favorite{}
	}
}

// Decode parses a snapshot document from JSON, filling defaults for any
// missing sections.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if doc.Version > CurrentVersion {
		return nil, fmt.Errorf("snapshot version %d is newer than supported version %d", doc.Version, CurrentVersion)
	}
	doc.FillDefaults()
	return &doc, nil
}

// Encode serializes the document as indented JSON.
func (d *Document) Encode() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// LoadFile reads and decodes a snapshot file.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// SaveFile writes the document to a file, overwriting any previous blob.
func (d *Document) SaveFile(path string) error {
	data, err := d.Encode()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
