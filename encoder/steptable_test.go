package encoder

import "testing"

func TestStepLevels(t *testing.T) {
	// Exact mapping from the packed sequence {0, 1, 3, 2} (B<<1|A):
	// index 2 holds bit pattern 11 (both high), index 3 holds 10 (B high, A low).
	tests := []struct {
		step uint8
		a    bool
		b    bool
	}{
		{0, false, false},
		{1, true, false},
		{2, true, true},
		{3, false, true},
	}

	for _, tt := range tests {
		a, b := StepLevels(tt.step)
		if a != tt.a || b != tt.b {
			t.Errorf("StepLevels(%d) = (%v, %v), expected (%v, %v)", tt.step, a, b, tt.a, tt.b)
		}
	}
}

func TestStepLevelsReducesModulo4(t *testing.T) {
	for step := uint8(0); step < 4; step++ {
		a1, b1 := StepLevels(step)
		a2, b2 := StepLevels(step + 4)
		a3, b3 := StepLevels(step + 252)
		if a1 != a2 || b1 != b2 || a1 != a3 || b1 != b3 {
			t.Errorf("StepLevels not modulo-4 for step %d", step)
		}
	}
}

func TestStepLevelsGrayProperty(t *testing.T) {
	// consecutive steps change exactly one line
	for step := uint8(0); step < 4; step++ {
		a1, b1 := StepLevels(step)
		a2, b2 := StepLevels(step + 1)
		changed := 0
		if a1 != a2 {
			changed++
		}
		if b1 != b2 {
			changed++
		}
		if changed != 1 {
			t.Errorf("step %d -> %d changed %d lines, expected 1", step, step+1, changed)
		}
	}
}
