package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateFormats are tried in order; the first successful parse wins.
var dateFormats = []string{
	"02/01/2006", // DD/MM/YYYY, the NCRP portal default
	"02-Jan-2006",
	"2006-01-02",
	"02-01-2006",
	"02 Jan 2006",
	"02 January 2006",
}

// parseDate parses a date cell tolerating the known NCRP formats. A trailing
// time component ("12/05/2024 10:30") is ignored. Returns nil if no format
// matches.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if i := strings.IndexAny(s, " \t"); i > 0 {
		// Keep a spelled-out month ("02 Jan 2006") intact, drop a time suffix.
		if c := s[i+1]; c >= '0' && c <= '9' {
			s = s[:i]
		}
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

var currencyRe = regexp.MustCompile(`(?i)(₹|rs\.?|inr)`)

// parseAmount parses a monetary cell, stripping currency markers and digit
// grouping. Negative or unparseable values are treated as absent.
func parseAmount(s string) *float64 {
	s = currencyRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

// missingCellValues are spreadsheet placeholders that mean "no value".
var missingCellValues = map[string]bool{
	"nan": true, "none": true, "null": true, "n/a": true, "na": true,
	"not available": true, "-": true,
}

// cleanCell trims a cell and maps known missing-value placeholders to "".
func cleanCell(s string) string {
	s = strings.TrimSpace(s)
	if missingCellValues[strings.ToLower(s)] {
		return ""
	}
	return s
}
