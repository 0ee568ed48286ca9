// Package progress reports progress of long-running commands such as export.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Unknown is passed to Start when the number of steps is not known ahead.
const Unknown = -1

// Reporter provides progress feedback while walking pages.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// NewReporter returns a TerminalReporter for interactive use, or a
// CIReporter if the CI environment variable is set. Output goes to w.
func NewReporter(w io.Writer, task string) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{w: w, task: task}
	}
	return &TerminalReporter{w: w, task: task}
}

// TerminalReporter displays a progress bar in the terminal, or a spinner
// when the total is Unknown.
type TerminalReporter struct {
	w    io.Writer
	task string
	bar  *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription(r.task),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int, message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Set(current)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints line-by-line progress suitable for CI logs.
type CIReporter struct {
	w     io.Writer
	task  string
	total int
}

func (r *CIReporter) Start(total int) {
	r.total = total
	if total == Unknown {
		fmt.Fprintf(r.w, "%s\n", r.task)
		return
	}
	fmt.Fprintf(r.w, "%s: %d pages\n", r.task, total)
}

func (r *CIReporter) Update(current int, message string) {
	if r.total == Unknown {
		fmt.Fprintf(r.w, "[%d] %s\n", current, message)
		return
	}
	fmt.Fprintf(r.w, "[%d/%d] %s\n", current, r.total, message)
}

func (r *CIReporter) Finish() {
	fmt.Fprintf(r.w, "%s: done\n", r.task)
}
