package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Ju21000/planing-ia-2/core/model"
)

func sampleEntries() []model.ScheduleEntry {
	return []model.ScheduleEntry{
		{
			Person:          "JULIEN",
			Date:            "03/11/2025",
			Presence:        "FNAC",
			StartTime:       "09:00",
			EndTime:         "19:00",
			MealBreak:       "12:00-13:00",
			PhoneDuty:       model.PhoneDutyMorning,
			PhonePercentage: 40,
			Description:     "Journée complète",
		},
		{
			Person:          "JULIEN",
			Date:            "04/11/2025",
			Presence:        "Repos",
			MealBreak:       "-",
			PhoneDuty:       model.PhoneDutyNone,
			PhonePercentage: 40,
			Description:     "mardi 04/11/2025 - Repos",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleEntries(), "FNAC"); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}
	if records[0][0] != "NOM" || records[0][2] != "Présence (FNAC)" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	first := records[1]
	if first[1] != "2025-11-03" {
		t.Fatalf("expected ISO date, got %q", first[1])
	}
	if first[2] != "TRUE" {
		t.Fatalf("expected on-site TRUE, got %q", first[2])
	}
	if first[6] != "matin" {
		t.Fatalf("expected duty matin, got %q", first[6])
	}
	if first[7] != "40.00" {
		t.Fatalf("expected percentage 40.00, got %q", first[7])
	}
	second := records[2]
	if second[2] != "FALSE" {
		t.Fatalf("expected off-site FALSE, got %q", second[2])
	}
	if second[6] != "" {
		t.Fatalf("expected empty duty, got %q", second[6])
	}
}

func TestWriteCSVKeepsUnparsableDate(t *testing.T) {
	entries := []model.ScheduleEntry{{Person: "A", Date: "pas-une-date"}}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, entries, "FNAC"); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if !strings.Contains(buf.String(), "pas-une-date") {
		t.Fatalf("unparsable date should pass through: %s", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleEntries()); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var out []model.ScheduleEntry
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 2 || out[0].Person != "JULIEN" || out[0].MealBreak != "12:00-13:00" {
		t.Fatalf("unexpected round trip: %+v", out)
	}
}
