package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// SpaceRecord is one extracted building space from the elements export.
type SpaceRecord struct {
	Name         string                            `json:"name"`
	LongName     string                            `json:"long_name"`
	GlobalID     string                            `json:"global_id"`
	ObjectType   string                            `json:"object_type"`
	Storey       string                            `json:"storey"`
	PropertySets map[string]map[string]interface{} `json:"property_sets"`
}

// LoadElements reads the extracted building spaces export.
func LoadElements(path string) ([]SpaceRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("importer: read elements export: %w", err)
	}
	var spaces []SpaceRecord
	if err := json.Unmarshal(data, &spaces); err != nil {
		return nil, fmt.Errorf("importer: decode elements export: %w", err)
	}
	return spaces, nil
}
