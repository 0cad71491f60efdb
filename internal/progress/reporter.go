// Package progress reports batch progress on the terminal or, under CI, as
// plain log lines.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives one Step per finished item. Implementations are safe
// for concurrent use.
type Reporter interface {
	Start(total int, task string)
	Step(item string)
	Finish()
}

// NewReporter returns a CIReporter when the CI environment variable is set
// and a TerminalReporter otherwise.
func NewReporter(w io.Writer) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{w: w}
	}
	return &TerminalReporter{w: w}
}

// TerminalReporter displays a progress bar.
type TerminalReporter struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int, task string) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription(task),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Step(item string) {
	if r.bar != nil {
		r.bar.Describe(item)
		_ = r.bar.Add(1)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints one line per item.
type CIReporter struct {
	w       io.Writer
	mu      sync.Mutex
	task    string
	total   int
	current int
}

func (r *CIReporter) Start(total int, task string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total, r.task, r.current = total, task, 0
	fmt.Fprintf(r.w, "%s: %d items\n", task, total)
}

func (r *CIReporter) Step(item string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current++
	fmt.Fprintf(r.w, "[%d/%d] %s\n", r.current, r.total, item)
}

func (r *CIReporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, "%s: done\n", r.task)
}
