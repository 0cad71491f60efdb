package progress

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCIReporter_Lines(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{w: &buf}
	r.Start(2, "previews")
	r.Step("Yellow")
	r.Step("Fix You")
	r.Finish()

	want := "previews: 2 items\n[1/2] Yellow\n[2/2] Fix You\npreviews: done\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestNewReporter_CI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter(&bytes.Buffer{}).(*CIReporter); !ok {
		t.Error("expected CIReporter under CI")
	}
}

func TestTerminalReporter_StepBeforeStart(t *testing.T) {
	r := &TerminalReporter{w: &bytes.Buffer{}}
	r.Step("ignored")
	r.Finish()
}
