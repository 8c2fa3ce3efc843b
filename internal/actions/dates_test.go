package actions

import (
	"testing"
	"time"
)

// Wednesday, 2025-06-11.
var fixedNow = time.Date(2025, time.June, 11, 10, 0, 0, 0, time.UTC)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		phrase string
		want   string
		ok     bool
	}{
		{"today", "2025-06-11", true},
		{"tomorrow", "2025-06-12", true},
		{"next week", "2025-06-18", true},
		{"next month", "2025-07-11", true},
		{"friday", "2025-06-13", true},
		{"Friday", "2025-06-13", true},
		{"next friday", "2025-06-13", true},
		{"wednesday", "2025-06-18", true}, // same weekday rolls a full week
		{"monday", "2025-06-16", true},
		{"June 20", "2025-06-20", true},
		{"june 20th", "2025-06-20", true},
		{"Dec 1st", "2025-12-01", true},
		{"6/20", "2025-06-20", true},
		{"6/20/2026", "2026-06-20", true},
		{"6/20/26", "2026-06-20", true},
		{"this week", "", false},
		{"the end of the sprint", "", false},
		{"13/40", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeDate(tt.phrase, fixedNow)
		if ok != tt.ok {
			t.Errorf("NormalizeDate(%q): ok=%v, want %v", tt.phrase, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", tt.phrase, got, tt.want)
		}
	}
}
