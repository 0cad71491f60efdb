package overlay

import "testing"

func TestSlot_ZeroValueIsEmpty(t *testing.T) {
	var s Slot
	if _, ok := s.Current().(None); !ok {
		t.Errorf("Current() = %#v, want None", s.Current())
	}
	if s.IsOpen() {
		t.Error("IsOpen() = true on zero slot")
	}
}

func TestSlot_OpenReplaces(t *testing.T) {
	var s Slot
	s.Open("a")
	s.Open("b")
	id, ok := s.RecordID()
	if !ok || id != "b" {
		t.Errorf("RecordID() = %q, %v; want b, true", id, ok)
	}

	s.Prompt("memos")
	if _, ok := s.RecordID(); ok {
		t.Error("record still shown after prompt opened")
	}
	if name, ok := s.PromptName(); !ok || name != "memos" {
		t.Errorf("PromptName() = %q, %v", name, ok)
	}
}

func TestSlot_Click(t *testing.T) {
	var s Slot
	s.Open("a")

	if s.Click(Inside) {
		t.Error("inside click closed the overlay")
	}
	if !s.IsOpen() {
		t.Fatal("overlay closed by inside click")
	}
	if !s.Click(Outside) {
		t.Error("outside click did not report closing")
	}
	if s.IsOpen() {
		t.Error("overlay still open after outside click")
	}
	if s.Click(Outside) {
		t.Error("outside click on empty slot reported closing")
	}
}

func TestSlot_Close(t *testing.T) {
	var s Slot
	s.Prompt("memos")
	s.Close()
	if _, ok := s.Current().(None); !ok {
		t.Errorf("Current() after Close = %#v", s.Current())
	}
}
