package quiz

import "testing"

func TestCalculateLevel(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{249, 2},
		{250, 3},
		{49999, 14},
		{50000, 15},
		{999999, 15},
	}

	for _, tc := range cases {
		if got := CalculateLevel(tc.xp); got != tc.want {
			t.Errorf("CalculateLevel(%d) = %d, want %d", tc.xp, got, tc.want)
		}
	}
}

func TestCalculateLevelMonotonic(t *testing.T) {
	prev := CalculateLevel(0)
	for xp := 0; xp <= 60000; xp += 50 {
		level := CalculateLevel(xp)
		if level < prev {
			t.Fatalf("level decreased from %d to %d at xp=%d", prev, level, xp)
		}
		prev = level
	}
}

func TestXPForNextLevel(t *testing.T) {
	if got := XPForNextLevel(1); got != 100 {
		t.Errorf("XPForNextLevel(1) = %d, want 100", got)
	}
	if got := XPForNextLevel(14); got != 50000 {
		t.Errorf("XPForNextLevel(14) = %d, want 50000", got)
	}
	// At or beyond the cap, the final threshold is returned.
	if got := XPForNextLevel(15); got != 50000 {
		t.Errorf("XPForNextLevel(15) = %d, want 50000", got)
	}
	if got := XPForNextLevel(99); got != 50000 {
		t.Errorf("XPForNextLevel(99) = %d, want 50000", got)
	}
}

func TestLevelName(t *testing.T) {
	if got := LevelName(1); got != "Curious Cub" {
		t.Errorf("LevelName(1) = %q", got)
	}
	if got := LevelName(15); got != "Animal Master" {
		t.Errorf("LevelName(15) = %q", got)
	}
	// Clamped past the end of the table.
	if got := LevelName(42); got != "Animal Master" {
		t.Errorf("LevelName(42) = %q", got)
	}
}
