package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// writerIsTTY returns true if the given writer exposes an Fd() method
// (e.g. *os.File) and that fd is a terminal. Falls back to false for
// plain io.Writer values such as *bytes.Buffer.
func writerIsTTY(w io.Writer) bool {
	type fder interface {
		Fd() uintptr
	}
	if f, ok := w.(fder); ok {
		return isatty.IsTerminal(f.Fd())
	}
	return false
}

// Progress tracks a fixed number of named steps, such as the charts of
// one run.
// Example: [==========>         ] 2/4 bar.png
type Progress struct {
	total   int
	current int
	label   string
	width   int
	mu      sync.Mutex
	writer  io.Writer
}

// NewProgress creates a progress bar for total steps, writing to stderr so
// it never mixes with report output.
func NewProgress(total int) *Progress {
	return &Progress{
		total:  total,
		width:  20,
		writer: os.Stderr,
	}
}

// SetWriter sets the output writer (useful for testing).
func (p *Progress) SetWriter(w io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writer = w
}

// Step marks one more step as done and redraws the bar with label.
func (p *Progress) Step(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current < p.total {
		p.current++
	}
	p.label = label
	p.render()
}

// Finish ends the bar's line on a TTY. On other writers every step is
// already on its own line.
func (p *Progress) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if writerIsTTY(p.writer) {
		fmt.Fprintln(p.writer)
	}
}

// Bar returns the bar without counters, e.g. "[=====>    ]".
func (p *Progress) Bar() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.bar()
}

// bar must be called with lock held.
func (p *Progress) bar() string {
	filled := 0
	if p.total > 0 {
		filled = (p.current * p.width) / p.total
	}

	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < p.width; i++ {
		switch {
		case i < filled-1:
			sb.WriteString("=")
		case i == filled-1:
			sb.WriteString(">")
		default:
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// render must be called with lock held.
func (p *Progress) render() {
	line := fmt.Sprintf("%s %d/%d %s", p.bar(), p.current, p.total, p.label)
	if writerIsTTY(p.writer) {
		// Pad so a shorter label fully overwrites the previous one.
		fmt.Fprintf(p.writer, "\r%-60s", line)
		return
	}
	fmt.Fprintln(p.writer, line)
}
