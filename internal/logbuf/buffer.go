package logbuf

import (
	"strings"
	"sync"
)

// MaxLines bounds the buffer; the oldest line is evicted past this.
const MaxLines = 5000

// Buffer is an append-only, capacity-bounded sequence of log lines. It is
// safe for concurrent use: worker callbacks and the UI both append.
type Buffer struct {
	mu    sync.Mutex
	lines []string
	max   int
}

func NewBuffer() *Buffer {
	return &Buffer{max: MaxLines}
}

// Append splits text on newlines and appends each resulting line, evicting
// the oldest once the buffer exceeds its capacity.
func (b *Buffer) Append(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, line := range splitLines(text) {
		b.lines = append(b.lines, line)
		if len(b.lines) > b.max {
			b.lines = b.lines[1:]
		}
	}
}

// Lines returns a copy of the buffered lines, oldest first.
func (b *Buffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines)
}

// String joins the buffer with newlines, the form handed to the exporter.
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// splitLines splits on newlines without producing a phantom empty line for
// trailing-newline input. Empty input still yields one empty line.
func splitLines(text string) []string {
	if text == "" {
		return []string{""}
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
