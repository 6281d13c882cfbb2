package particlelife

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writePreset(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "relations.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write preset: %v", err)
	}
	return path
}

func TestLoadRelations(t *testing.T) {
	path := writePreset(t, `[[0.1, -0.2], [0.5, 0]]`)
	r, err := LoadRelations(path)
	if err != nil {
		t.Fatalf("LoadRelations: %v", err)
	}
	if r.Get(0, 1) != -0.2 || r.Get(1, 0) != 0.5 {
		t.Fatalf("table = %v", r.Rows())
	}
}

func TestLoadRelationsRejects(t *testing.T) {
	if _, err := LoadRelations(writePreset(t, `{"rows": 2}`)); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("object preset: got %v", err)
	}
	if _, err := LoadRelations(writePreset(t, `[[0.1, 0.2]]`)); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("non-square preset: got %v", err)
	}
	if _, err := LoadRelations(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file: got %v", err)
	}
}
