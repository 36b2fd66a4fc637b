// Package catalog holds the externally supplied reference list of recognized
// certification names and the fuzzy matcher that corrects OCR output
// against it.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Entry is one row of the certification reference list. Read-only from the
// pipeline's perspective.
type Entry struct {
	CertificationName string `json:"certification_name"`
	Organizer         string `json:"organizer"`
}

// Load reads a catalog JSON file and validates it against the catalog schema
// before decoding.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	if err := ValidateJSONAgainstSchema(buildCatalogJSONSchema(), data); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return entries, nil
}
