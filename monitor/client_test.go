package monitor

import (
	"encoding/json"
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected Status
		ok       bool
	}{
		{
			"Forward",
			"Direction:F, Full Revs: 12, 847 counts",
			Status{Direction: "F", Revolutions: 12, Count: 847},
			true,
		},
		{
			"ReverseNegativeRevs",
			"Direction:R, Full Revs: -3, 1001 counts",
			Status{Direction: "R", Revolutions: -3, Count: 1001},
			true,
		},
		{
			"Zeroes",
			"Direction:F, Full Revs: 0, 0 counts",
			Status{Direction: "F", Revolutions: 0, Count: 0},
			true,
		},
		{
			"HelpOutput",
			"Available Commands:",
			Status{},
			false,
		},
		{
			"DebugOutput",
			"dir=F step=2 period=100ms",
			Status{},
			false,
		},
		{
			"Empty",
			"",
			Status{},
			false,
		},
		{
			"BadDirection",
			"Direction:Q, Full Revs: 1, 2 counts",
			Status{},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := ParseStatus(tt.line)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if !ok {
				return
			}
			if s.Direction != tt.expected.Direction ||
				s.Revolutions != tt.expected.Revolutions ||
				s.Count != tt.expected.Count {
				t.Errorf("expected %+v, got %+v", tt.expected, s)
			}
			if s.At.IsZero() {
				t.Error("expected a timestamp on parsed samples")
			}
		})
	}
}

func TestSampleJSON(t *testing.T) {
	rawJSON := "{\"id\":\"d4kdisifn76c73dkrju0\",\"direction\":\"F\",\"revolutions\":12,\"count\":847,\"at\":\"2026-08-28T16:06:26.504207-07:00\"}"
	var s sample
	err := json.Unmarshal([]byte(rawJSON), &s)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if s.GetID() != "d4kdisifn76c73dkrju0" {
		t.Errorf("unexpected id: %q", s.GetID())
	}
	if s.Revolutions != 12 || s.Count != 847 {
		t.Errorf("unexpected sample: %+v", s)
	}
}
