package input

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Ju21000/planing-ia-2/core/model"
)

// Package input loads raw schedule extractions. The extraction step emits a
// JSON array of entries; optional fields may be absent and are left zero.

// Read decodes a raw extraction from r.
func Read(r io.Reader) ([]model.ScheduleEntry, error) {
	var entries []model.ScheduleEntry
	dec := json.NewDecoder(r)
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode schedule extraction: %w", err)
	}
	return entries, nil
}

// ReadFile decodes a raw extraction from the file at path.
func ReadFile(path string) ([]model.ScheduleEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open extraction %s: %w", path, err)
	}
	defer f.Close()
	entries, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read extraction %s: %w", path, err)
	}
	return entries, nil
}
