package runner

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"thicket/internal/classify"
	"thicket/internal/model"
)

// — styles ——————————————————————————————————————————————————————————————————

// palette colors worktree tags by selection position, cycling when there
// are more worktrees than colors.
var palette = []lipgloss.Color{
	"39", "205", "214", "76", "170", "45", "208",
	"118", "141", "203", "81", "222", "35", "99",
}

var (
	errLineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	urlLineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	routeLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
)

// TagStyle returns the tag style for a worktree's position in the
// selection list.
func TagStyle(index int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(palette[index%len(palette)]).Bold(true)
}

// — printer —————————————————————————————————————————————————————————————————

// Printer serializes line writes from concurrent multiplexers so console
// output never interleaves mid-line.
type Printer struct {
	mu  sync.Mutex
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Line writes one complete line.
func (p *Printer) Line(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, s)
}

// — multiplexer —————————————————————————————————————————————————————————————

// Mux binds one worktree's RunResult to its process output: it accumulates
// raw chunks and URLs on the result and renders tagged lines through the
// shared printer. Each Mux mutates only its own result.
type Mux struct {
	res     *model.RunResult
	tag     string // pre-rendered colored "[branch]"
	route   string // normalized route, empty when none
	verbose bool
	printer *Printer
}

// NewMux builds the multiplexer for one worktree. colorIndex is the
// worktree's position in the selection list; route must already be
// normalized.
func NewMux(res *model.RunResult, colorIndex int, route string, verbose bool, printer *Printer) *Mux {
	return &Mux{
		res:     res,
		tag:     TagStyle(colorIndex).Render("[" + res.Worktree.Branch + "]"),
		route:   route,
		verbose: verbose,
		printer: printer,
	}
}

// Consume handles one output chunk from the runner.
func (m *Mux) Consume(chunk string) {
	m.res.AddChunk(chunk)
	for _, u := range classify.URLs(chunk) {
		m.res.AddURL(classify.Key(u), u)
	}
	for _, line := range strings.Split(chunk, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		m.renderLine(line)
	}
}

func (m *Mux) renderLine(line string) {
	if !m.verbose && !classify.IsImportant(line) {
		return
	}
	urls := classify.URLs(line)

	text := line
	switch {
	case len(urls) > 0:
		text = urlLineStyle.Render(line)
	case classify.IsError(line):
		text = errLineStyle.Render(line)
	}
	m.printer.Line(m.tag + " " + text)

	if m.route == "" {
		return
	}
	for _, u := range urls {
		m.printer.Line(m.tag + " " + routeLineStyle.Render("→ "+u+m.route))
	}
}

// NormalizeRoute gives a non-empty route a leading slash.
func NormalizeRoute(route string) string {
	if route == "" {
		return ""
	}
	if !strings.HasPrefix(route, "/") {
		return "/" + route
	}
	return route
}
