// Package console writes the demo's line-oriented output. Every line is
// written in one call under a lock, so lines coming from concurrently running
// workers may interleave with each other but never tear.
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Tag names the color a line is rendered with. It carries no meaning beyond
// telling workers apart on a terminal.
type Tag string

const (
	Plain  Tag = ""
	Red    Tag = "red"
	Yellow Tag = "yellow"
	Blue   Tag = "blue"
)

var tagColors = map[Tag]lipgloss.Color{
	Red:    lipgloss.Color("1"),
	Yellow: lipgloss.Color("3"),
	Blue:   lipgloss.Color("4"),
}

// Printer is safe for concurrent use.
type Printer struct {
	mu     sync.Mutex
	w      io.Writer
	styles map[Tag]lipgloss.Style
}

// NewPrinter returns a Printer writing to w. Colors are only emitted when w
// is a terminal that supports them; any other writer gets plain text.
func NewPrinter(w io.Writer) *Printer {
	renderer := lipgloss.NewRenderer(w)

	styles := make(map[Tag]lipgloss.Style, len(tagColors))
	for tag, color := range tagColors {
		styles[tag] = renderer.NewStyle().Background(color)
	}

	return &Printer{
		w:      w,
		styles: styles,
	}
}

// Printf formats one line and writes it styled by tag. A trailing newline is
// added when missing. Write errors are dropped, like fmt.Println's.
func (p *Printer) Printf(tag Tag, format string, args ...any) {
	line := strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")
	if style, ok := p.styles[tag]; ok {
		line = style.Render(line)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = io.WriteString(p.w, line+"\n")
}

// Println writes the default formatting of args as one untagged line.
func (p *Printer) Println(args ...any) {
	p.Printf(Plain, "%s", fmt.Sprint(args...))
}
