// Package parser reads worksheets through excelize and exposes the cell
// accessors the record conversion engine needs.
package parser

import (
	"math"
	"time"

	"github.com/xuri/excelize/v2"
)

// secondsPerDay is the length of one Excel serial day.
// Times of day are stored as the fractional part of a serial: 0.5 is noon.
const secondsPerDay = 24 * 60 * 60

// serialToTime converts an Excel serial date to a time in UTC, rounded to
// the millisecond, the finest resolution Excel displays.
func serialToTime(serial float64, date1904 bool) (time.Time, error) {
	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return time.Time{}, err
	}
	return t.Round(time.Millisecond), nil
}

// serialToDuration converts an Excel serial to the duration it spans,
// rounded to the microsecond to absorb floating point noise.
func serialToDuration(serial float64) time.Duration {
	micros := math.Round(serial * secondsPerDay * 1e6)
	return time.Duration(micros) * time.Microsecond
}

// isoLayouts are the layouts used for cells stored as ISO 8601 dates.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	time.DateOnly,
	"15:04:05.999999999",
}

// parseISO parses an ISO 8601 date cell value.
func parseISO(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// sinceMidnight returns the clock part of t as a duration.
func sinceMidnight(t time.Time) time.Duration {
	y, m, d := t.Date()
	return t.Sub(time.Date(y, m, d, 0, 0, 0, 0, t.Location()))
}
