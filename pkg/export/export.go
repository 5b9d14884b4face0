package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/Ju21000/planing-ia-2/core/model"
)

// Package export renders the final roster for row-oriented consumers.

// WriteJSON writes the roster to w in JSON format.
func WriteJSON(w io.Writer, entries []model.ScheduleEntry) error {
	enc := json.NewEncoder(w)
	return enc.Encode(entries)
}

// WriteCSV writes the roster to w in CSV format with the legacy spreadsheet
// headers. The presence column is a strict TRUE/FALSE on-site flag derived
// from the site marker; dates are rendered ISO for spreadsheet sorting.
func WriteCSV(w io.Writer, entries []model.ScheduleEntry, siteMarker string) error {
	cw := csv.NewWriter(w)
	header := []string{"NOM", "Date", "Présence (FNAC)", "Heure de Début", "Heure de Fin", "Heure de Repas", "En Téléphonie", "% Tel", "Description"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, e := range entries {
		onSite := "FALSE"
		if e.OnSite(siteMarker) {
			onSite = "TRUE"
		}
		duty := ""
		if e.PhoneDuty != "" && e.PhoneDuty != model.PhoneDutyNone {
			duty = string(e.PhoneDuty)
		}
		rec := []string{
			e.Person,
			csvDate(e.Date),
			onSite,
			e.StartTime,
			e.EndTime,
			e.MealBreak,
			duty,
			strconv.FormatFloat(e.PhonePercentage, 'f', 2, 64),
			e.Description,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// csvDate converts DD/MM/YYYY to YYYY-MM-DD, leaving anything else as is.
func csvDate(s string) string {
	d, ok := model.ParseDate(s)
	if !ok {
		return s
	}
	return d.Format("2006-01-02")
}
