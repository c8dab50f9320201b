package parser

import (
	"testing"
	"time"
)

func TestSerialToTime(t *testing.T) {
	tests := []struct {
		serial   float64
		date1904 bool
		expected time.Time
	}{
		{44075, false, time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC)},
		{44075.5, false, time.Date(2020, 9, 1, 12, 0, 0, 0, time.UTC)},
		{44288 + 10.75/24, false, time.Date(2021, 4, 2, 10, 45, 0, 0, time.UTC)},
		{100, true, time.Date(1904, 4, 10, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, err := serialToTime(tt.serial, tt.date1904)
		if err != nil {
			t.Fatalf("serialToTime(%v) failed: %v", tt.serial, err)
		}
		if !got.Equal(tt.expected) {
			t.Errorf("serialToTime(%v, %v) = %v, expected %v", tt.serial, tt.date1904, got, tt.expected)
		}
	}

	if _, err := serialToTime(-1, false); err == nil {
		t.Error("Expected an error for a negative serial")
	}
}

func TestSerialToDuration(t *testing.T) {
	tests := []struct {
		serial   float64
		expected time.Duration
	}{
		{0, 0},
		{0.5, 12 * time.Hour},
		{float64(23*60*60+14*60) / secondsPerDay, 23*time.Hour + 14*time.Minute},
		{1.25, 30 * time.Hour},
	}

	for _, tt := range tests {
		if got := serialToDuration(tt.serial); got != tt.expected {
			t.Errorf("serialToDuration(%v) = %v, expected %v", tt.serial, got, tt.expected)
		}
	}
}

func TestParseISO(t *testing.T) {
	tests := []struct {
		value    string
		expected time.Time
	}{
		{"2020-09-01", time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC)},
		{"2021-04-02T10:45:00Z", time.Date(2021, 4, 2, 10, 45, 0, 0, time.UTC)},
		{"2021-04-02T10:45:30.5", time.Date(2021, 4, 2, 10, 45, 30, 500000000, time.UTC)},
		{"2021-04-02T10:45", time.Date(2021, 4, 2, 10, 45, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, ok := parseISO(tt.value)
		if !ok {
			t.Errorf("parseISO(%q) failed", tt.value)
			continue
		}
		if !got.Equal(tt.expected) {
			t.Errorf("parseISO(%q) = %v, expected %v", tt.value, got, tt.expected)
		}
	}

	if _, ok := parseISO("not a date"); ok {
		t.Error("Expected parseISO to reject free text")
	}
}

func TestSinceMidnight(t *testing.T) {
	got := sinceMidnight(time.Date(2021, 4, 2, 10, 45, 30, 0, time.UTC))
	if expected := 10*time.Hour + 45*time.Minute + 30*time.Second; got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
