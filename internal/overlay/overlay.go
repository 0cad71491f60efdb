// Package overlay models the single detail slot a page can show.
package overlay

// Overlay is the content of a Slot: None, Record or Prompt.
type Overlay interface {
	overlay()
}

// None is the empty slot.
type None struct{}

// Record shows the detail view of one record.
type Record struct {
	ID string
}

// Prompt shows a named prompt, such as a passcode entry.
type Prompt struct {
	Name string
}

func (None) overlay()   {}
func (Record) overlay() {}
func (Prompt) overlay() {}

// Target is where a click landed relative to the open overlay.
type Target int

const (
	Outside Target = iota
	Inside
)

// Slot holds at most one overlay. The zero value is empty.
type Slot struct {
	cur Overlay
}

// Open shows record id, replacing whatever was open.
func (s *Slot) Open(id string) { s.cur = Record{ID: id} }

// Prompt shows the named prompt, replacing whatever was open.
func (s *Slot) Prompt(name string) { s.cur = Prompt{Name: name} }

func (s *Slot) Close() { s.cur = nil }

// Current never returns nil.
func (s *Slot) Current() Overlay {
	if s.cur == nil {
		return None{}
	}
	return s.cur
}

// IsOpen reports whether anything is shown.
func (s *Slot) IsOpen() bool { return s.cur != nil }

// RecordID returns the id of the shown record, if a record is shown.
func (s *Slot) RecordID() (string, bool) {
	r, ok := s.cur.(Record)
	return r.ID, ok
}

// PromptName returns the name of the shown prompt, if a prompt is shown.
func (s *Slot) PromptName() (string, bool) {
	p, ok := s.cur.(Prompt)
	return p.Name, ok
}

// Click closes the slot on an outside click and reports whether it did.
func (s *Slot) Click(t Target) bool {
	if t != Outside || s.cur == nil {
		return false
	}
	s.cur = nil
	return true
}
