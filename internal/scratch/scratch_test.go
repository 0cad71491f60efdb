package scratch

import "testing"

func TestScratch_RequiresStroke(t *testing.T) {
	m := New(100, 100, 10)
	m.Scratch(50, 50, DefaultBrush)
	if m.Cleared() != 0 {
		t.Errorf("Cleared() = %v without a stroke", m.Cleared())
	}
}

func TestScratch_ClearsWithinBrush(t *testing.T) {
	m := New(100, 100, 10)
	m.Begin()
	m.Scratch(5, 5, 1)
	if got := m.Cleared(); got != 0.01 {
		t.Errorf("Cleared() = %v, want 0.01", got)
	}
	// same cell twice counts once
	m.Scratch(5, 5, 1)
	if got := m.Cleared(); got != 0.01 {
		t.Errorf("Cleared() = %v after repeat, want 0.01", got)
	}
}

func TestScratch_RevealsAtThreshold(t *testing.T) {
	m := New(100, 40, 10)
	m.SetThreshold(0.5)
	m.Begin()

	reveals := 0
	for row := 5.0; row < 40 && !m.Revealed(); row += 10 {
		for x := 5.0; x < 100; x += 10 {
			if m.Scratch(x, row, 4) {
				reveals++
				if got := m.Cleared(); got != 0.5 {
					t.Errorf("revealed at Cleared() = %v, want 0.5", got)
				}
			}
		}
	}
	if !m.Revealed() {
		t.Fatalf("Revealed() = false at Cleared() = %v", m.Cleared())
	}
	if reveals != 1 {
		t.Errorf("reveal reported %d times, want 1", reveals)
	}
	if m.Scratch(5, 35, 4) {
		t.Error("Scratch() after reveal reported again")
	}
	m.End()
	if m.Scratching() {
		t.Error("Scratching() = true after End()")
	}
}

func TestNew_DegenerateSize(t *testing.T) {
	m := New(0, 0, 0)
	m.Begin()
	if !m.Scratch(0, 0, DefaultBrush) {
		t.Error("a one-cell mask should reveal on the first scratch")
	}
}
