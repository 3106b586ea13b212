package loader

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"fximport.magictradebot.com/models"
)

// ParseStatus classifies the outcome of parsing one line.
type ParseStatus int

const (
	// StatusOK: the line produced a record.
	StatusOK ParseStatus = iota
	// StatusSkip: blank line or header heuristic hit, dropped silently.
	StatusSkip
	// StatusShortRow: fewer than 7 columns, worth a diagnostic.
	StatusShortRow
	// StatusBad: a field failed normalization or numeric parsing.
	StatusBad
)

// ParseResult is the explicit success-or-failure value returned per line.
// Callers branch on Status instead of recovering from panics.
type ParseResult struct {
	Status  ParseStatus
	Record  models.PriceRecord
	Columns int    // observed column count, set for StatusShortRow
	Reason  string // failure detail, set for StatusBad
}

const expectedColumns = 7

// ParseLine turns one comma-split line into a PriceRecord.
//
// Normalization matches the historical export format: dates arrive as
// YYYY.MM.DD and collapse to YYYYMMDD, times arrive as HH:MM and become
// HHMMSS by appending the seconds. Volume tolerates a floating-point
// representation and truncates.
func ParseLine(fields []string) ParseResult {
	if len(fields) == 0 {
		return ParseResult{Status: StatusSkip}
	}

	allBlank := true
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			allBlank = false
			break
		}
	}
	if allBlank {
		return ParseResult{Status: StatusSkip}
	}

	// Header heuristic: vendor files prefix headers with '#' or name a
	// "Time" column.
	for _, f := range fields {
		if strings.Contains(f, "#") || strings.Contains(f, "Time") {
			return ParseResult{Status: StatusSkip}
		}
	}

	if len(fields) < expectedColumns {
		return ParseResult{Status: StatusShortRow, Columns: len(fields)}
	}

	dateStr := strings.ReplaceAll(strings.TrimSpace(fields[0]), ".", "")
	if len(dateStr) != 8 {
		return bad(fmt.Sprintf("invalid date format: %s", fields[0]))
	}

	timeStr := strings.TrimSpace(fields[1])
	if strings.Contains(timeStr, ":") {
		timeStr = strings.ReplaceAll(timeStr, ":", "") + "00"
	}
	if len(timeStr) != 6 {
		return bad(fmt.Sprintf("invalid time format: %s", fields[1]))
	}

	openVal, err := parseFloat(fields[2])
	if err != nil {
		return bad(fmt.Sprintf("invalid open: %v", err))
	}
	highVal, err := parseFloat(fields[3])
	if err != nil {
		return bad(fmt.Sprintf("invalid high: %v", err))
	}
	lowVal, err := parseFloat(fields[4])
	if err != nil {
		return bad(fmt.Sprintf("invalid low: %v", err))
	}
	closeVal, err := parseFloat(fields[5])
	if err != nil {
		return bad(fmt.Sprintf("invalid close: %v", err))
	}
	volumeVal, err := parseFloat(fields[6])
	if err != nil {
		return bad(fmt.Sprintf("invalid volume: %v", err))
	}

	return ParseResult{
		Status: StatusOK,
		Record: models.PriceRecord{
			Date:   dateStr,
			Time:   timeStr,
			Open:   openVal,
			High:   highVal,
			Low:    lowVal,
			Close:  closeVal,
			Volume: int64(volumeVal),
		},
	}
}

func bad(reason string) ParseResult {
	return ParseResult{Status: StatusBad, Reason: reason}
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	// ParseFloat accepts nan and inf spellings; neither is a price or a
	// volume, and int64(NaN) is not a defined conversion.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value: %q", s)
	}
	return v, nil
}
