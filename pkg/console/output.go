package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Color palette for console output
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorInfo    = lipgloss.Color("#3B82F6")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")
)

// Printer writes styled console output. Styles are resolved against the
// destination writer, so output to a pipe or buffer stays plain text.
type Printer struct {
	w io.Writer

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	mutedStyle   lipgloss.Style
	primaryStyle lipgloss.Style
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:            w,
		successStyle: r.NewStyle().Foreground(colorSuccess).Bold(true),
		warningStyle: r.NewStyle().Foreground(colorWarning).Bold(true),
		errorStyle:   r.NewStyle().Foreground(colorError).Bold(true),
		infoStyle:    r.NewStyle().Foreground(colorInfo),
		mutedStyle:   r.NewStyle().Foreground(colorMuted),
		primaryStyle: r.NewStyle().Foreground(colorPrimary).Bold(true),
	}
}

// Writer returns the destination, for unstyled tabular output.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Success prints a success message
func (p *Printer) Success(format string, args ...any) {
	p.line(p.successStyle, "✓ ", format, args...)
}

// Warning prints a warning message
func (p *Printer) Warning(format string, args ...any) {
	p.line(p.warningStyle, "⚠ ", format, args...)
}

// Error prints an error message
func (p *Printer) Error(format string, args ...any) {
	p.line(p.errorStyle, "✗ ", format, args...)
}

// Info prints an info message
func (p *Printer) Info(format string, args ...any) {
	p.line(p.infoStyle, "ℹ ", format, args...)
}

// Muted prints a muted message
func (p *Printer) Muted(format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, p.mutedStyle.Render(fmt.Sprintf(format, args...)))
}

// Println prints plain text followed by a newline.
func (p *Printer) Println(args ...any) {
	_, _ = fmt.Fprintln(p.w, args...)
}

// Printf prints plain formatted text.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format, args...)
}

// Section prints a title underlined with dashes.
func (p *Printer) Section(title string) {
	_, _ = fmt.Fprintln(p.w, p.primaryStyle.Render(title))
	_, _ = fmt.Fprintln(p.w, p.mutedStyle.Render(strings.Repeat("-", len(title))))
}

// Greeting prints the start-up banner.
func (p *Printer) Greeting() {
	rule := strings.Repeat("*", 55)
	_, _ = fmt.Fprintf(p.w, "\n\n%s\n%s\n%s\n\n", rule, p.primaryStyle.Render("              User Interface"), rule)
}

func (p *Printer) line(style lipgloss.Style, icon, format string, args ...any) {
	_, _ = fmt.Fprint(p.w, style.Render(icon))
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}
