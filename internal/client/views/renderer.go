// Package views renders each console page as plain text. Tables use
// gosuri/uitable; status words are coloured with juju/ansiterm when the
// output is a terminal.
package views

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gosuri/uitable"
	"github.com/juju/ansiterm"
	"golang.org/x/term"
)

var (
	colorOK      = ansiterm.Foreground(ansiterm.Green)
	colorWarn    = ansiterm.Foreground(ansiterm.Yellow)
	colorBad     = ansiterm.Foreground(ansiterm.Red)
	colorError   = ansiterm.Foreground(ansiterm.BrightRed)
	colorTitle   = ansiterm.Foreground(ansiterm.BrightBlue)
	colorDefault = ansiterm.Foreground(ansiterm.Default)
)

// Renderer writes pages to one output.
type Renderer struct {
	w     *ansiterm.Writer
	color bool
	loc   *time.Location
}

type Option func(*Renderer)

// WithColor forces colour on or off. By default colour is used only when
// the output is a terminal.
func WithColor(on bool) Option {
	return func(r *Renderer) {
		r.color = on
		r.w.SetColorCapable(on)
	}
}

// WithLocation sets the zone timestamps are shown in.
func WithLocation(loc *time.Location) Option {
	return func(r *Renderer) { r.loc = loc }
}

func NewRenderer(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{w: ansiterm.NewWriter(w), loc: time.Local}
	r.color = isTerminal(w) && os.Getenv("TERM") != "dumb"
	r.w.SetColorCapable(r.color)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Writer is the underlying output, for callers that print free text.
func (r *Renderer) Writer() io.Writer {
	return r.w
}

func (r *Renderer) paint(c *ansiterm.Context, s string) string {
	if !r.color {
		return s
	}
	var buf bytes.Buffer
	w := ansiterm.NewWriter(&buf)
	w.SetColorCapable(true)
	c.Fprintf(w, "%s", s)
	return buf.String()
}

func (r *Renderer) title(s string) {
	fmt.Fprintln(r.w)
	colorTitle.Fprintf(r.w, "%s", s)
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, strings.Repeat("=", len(s)))
}

func (r *Renderer) section(s string) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s)
	fmt.Fprintln(r.w, strings.Repeat("-", len(s)))
}

// Error prints a page-local failure line.
func (r *Renderer) Error(msg string) {
	colorError.Fprintf(r.w, "%s", msg)
	fmt.Fprintln(r.w)
}

// Success prints an acknowledgement line.
func (r *Renderer) Success(msg string) {
	colorOK.Fprintf(r.w, "%s", msg)
	fmt.Fprintln(r.w)
}

// Hint prints a dim usage line.
func (r *Renderer) Hint(msg string) {
	colorDefault.Fprintf(r.w, "%s", msg)
	fmt.Fprintln(r.w)
}

func (r *Renderer) table(t *uitable.Table) {
	fmt.Fprintln(r.w, t)
}

func newTable(header ...interface{}) *uitable.Table {
	t := uitable.New()
	t.MaxColWidth = 60
	t.Wrap = true
	if len(header) > 0 {
		t.AddRow(header...)
	}
	return t
}

func (r *Renderer) timestamp(s string) string {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.In(r.loc).Format("2006-01-02 15:04:05")
		}
	}
	return s
}

func percent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

func number(f float64) string {
	return fmt.Sprintf("%g", f)
}

func numberPtr(f *float64) string {
	if f == nil {
		return "-"
	}
	return number(*f)
}

func at(v []float64, i int) string {
	if i < len(v) {
		return number(v[i])
	}
	return "-"
}
