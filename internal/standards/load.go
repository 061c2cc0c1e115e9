package standards

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/ats-engine/internal/schemas"
	embedded "github.com/jonathan/ats-engine/schemas"
)

// LoadError represents a failure to read or parse an external data table.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// LoadGazetteer reads a gazetteer JSON file, validates it against the
// embedded schema and returns it. Missing lists fall back to empty slices,
// not the defaults: a supplied file replaces the built-in table entirely.
func LoadGazetteer(path string) (*Gazetteer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "read failed", Cause: err}
	}

	if err := schemas.ValidateBytes(embedded.Gazetteer(), data); err != nil {
		return nil, &LoadError{Path: path, Message: "schema validation failed", Cause: err}
	}

	var gazetteer Gazetteer
	if err := json.Unmarshal(data, &gazetteer); err != nil {
		return nil, &LoadError{Path: path, Message: "parse failed", Cause: err}
	}
	return &gazetteer, nil
}

// verbTiersFile is the on-disk shape of a verb-tier table.
type verbTiersFile struct {
	Tier1 []string `json:"tier1"`
	Tier2 []string `json:"tier2"`
	Tier3 []string `json:"tier3"`
}

// LoadVerbTiers reads a verb-tier JSON file, validates it against the
// embedded schema and returns the flattened tier map.
func LoadVerbTiers(path string) (VerbTiers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "read failed", Cause: err}
	}

	if err := schemas.ValidateBytes(embedded.VerbTiers(), data); err != nil {
		return nil, &LoadError{Path: path, Message: "schema validation failed", Cause: err}
	}

	var file verbTiersFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &LoadError{Path: path, Message: "parse failed", Cause: err}
	}

	tiers := make(VerbTiers, len(file.Tier1)+len(file.Tier2)+len(file.Tier3))
	for _, v := range file.Tier1 {
		tiers[v] = Tier1
	}
	for _, v := range file.Tier2 {
		tiers[v] = Tier2
	}
	for _, v := range file.Tier3 {
		tiers[v] = Tier3
	}
	return tiers, nil
}
