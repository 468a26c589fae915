package output

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestProgress_Step(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewProgress(4)
	p.SetWriter(buf)

	p.Step("line.png")
	p.Step("bar.png")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected one line per step on a non-TTY writer, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "1/4 line.png") {
		t.Errorf("first step line = %q, want 1/4 line.png", lines[0])
	}
	if !strings.Contains(lines[1], "2/4 bar.png") {
		t.Errorf("second step line = %q, want 2/4 bar.png", lines[1])
	}
}

func TestProgress_Bar(t *testing.T) {
	tests := []struct {
		name  string
		total int
		steps int
		want  string
	}{
		{name: "empty", total: 4, steps: 0, want: "[                    ]"},
		{name: "half", total: 4, steps: 2, want: "[=========>          ]"},
		{name: "full", total: 4, steps: 4, want: "[===================>]"},
		{name: "over limit", total: 2, steps: 5, want: "[===================>]"},
		{name: "zero total", total: 0, steps: 1, want: "[                    ]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProgress(tt.total)
			p.SetWriter(&bytes.Buffer{})
			for i := 0; i < tt.steps; i++ {
				p.Step("x")
			}
			if got := p.Bar(); got != tt.want {
				t.Errorf("Bar() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProgress_FinishNonTTY(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewProgress(1)
	p.SetWriter(buf)

	p.Step("pie.png")
	before := buf.Len()
	p.Finish()

	if buf.Len() != before {
		t.Errorf("Finish() wrote %q on a non-TTY writer", buf.String()[before:])
	}
}

func TestProgress_Concurrent(t *testing.T) {
	p := NewProgress(100)
	p.SetWriter(&bytes.Buffer{})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				p.Step("chart")
			}
		}()
	}
	wg.Wait()

	if p.current != 100 {
		t.Errorf("expected current=100 after concurrent steps, got %d", p.current)
	}
}
