package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	payload := `[
		{"nom":"Julien","date":"03/11/2025","presence":"FNAC","heureDebut":"09:00","heureFin":"19:00"},
		{"nom":"Hilal","date":"03/11/2025"}
	]`
	entries, err := Read(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Person != "Julien" || entries[0].StartTime != "09:00" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].EndTime != "" || entries[1].PhonePercentage != 0 {
		t.Fatalf("missing optional fields should stay zero: %+v", entries[1])
	}
}

func TestReadRejectsMalformed(t *testing.T) {
	if _, err := Read(strings.NewReader(`{"nom":"Julien"}`)); err == nil {
		t.Fatal("expected error for non-array payload")
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extraction.json")
	if err := os.WriteFile(path, []byte(`[{"nom":"Julien","date":"03/11/2025"}]`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	entries, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(entries) != 1 || entries[0].Person != "Julien" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
