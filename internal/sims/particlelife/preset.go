package particlelife

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadRelations reads a relation table from a JSON file holding a square
// array of arrays, rows indexed by source species.
func LoadRelations(path string) (*Relations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read relations: %w", err)
	}
	var rows [][]float64
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: parse relations %s: %v", ErrInvalidConfig, path, err)
	}
	return FromRows(rows)
}
