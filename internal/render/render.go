// SPDX-License-Identifier: MIT

// Package render formats alignment reports for the terminal (lipgloss) or as
// JSON lines.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/nwalign/align"
	"github.com/katalvlaran/nwalign/internal/config"
)

// Layout literals of the text report.
const (
	mapTo       = " --> "
	matchesLbl  = "  matches: "
	mismatchLbl = ", mismatches: "
	gapsLbl     = "  gaps: "
)

// Palette.
var (
	colorMatch    = lipgloss.Color("#2CD7C7")
	colorMismatch = lipgloss.Color("#E74C3C")
	colorGap      = lipgloss.Color("#F4D03F")
	colorMuted    = lipgloss.Color("#2C4A54")
)

// Entry is one aligned pair ready for output.
type Entry struct {
	X, Y      string
	Alignment align.StringResult
}

// record is the JSON shape of an Entry.
type record struct {
	X          string  `json:"x"`
	Y          string  `json:"y"`
	AlignedX   string  `json:"aligned_x"`
	AlignedY   string  `json:"aligned_y"`
	Matches    int     `json:"matches"`
	Mismatches int     `json:"mismatches"`
	Gaps       int     `json:"gaps"`
	Penalty    float64 `json:"penalty"`
}

// Renderer writes reports to one writer.
type Renderer struct {
	w     io.Writer
	color bool

	bold     lipgloss.Style
	match    lipgloss.Style
	mismatch lipgloss.Style
	gap      lipgloss.Style
	muted    lipgloss.Style
}

// ColorEnabled resolves a colour mode against the destination: "always" and
// "never" are absolute, "auto" colours only a terminal without NO_COLOR set.
func ColorEnabled(w io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// New returns a Renderer for w honouring the colour mode.
func New(w io.Writer, mode string) *Renderer {
	color := ColorEnabled(w, mode)
	lg := lipgloss.NewRenderer(w)
	if color {
		if mode == config.ColorAlways {
			lg.SetColorProfile(termenv.ANSI256)
		}
	} else {
		lg.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		w:        w,
		color:    color,
		bold:     lg.NewStyle().Bold(true),
		match:    lg.NewStyle().Bold(true).Foreground(colorMatch),
		mismatch: lg.NewStyle().Bold(true).Foreground(colorMismatch),
		gap:      lg.NewStyle().Bold(true).Foreground(colorGap),
		muted:    lg.NewStyle().Foreground(colorMuted),
	}
}

// Text writes each entry as two lines plus a blank separator:
//
//	     CRANE --> CRA-NE      matches: 3, mismatches: 0
//	      RAIN --> -RAIN-      gaps: 3
//
// Inputs are right-aligned and alignments left-aligned to the widest input
// among all entries.
func (r *Renderer) Text(entries []Entry) error {
	width := 0
	for _, e := range entries {
		width = max(width, utf8.RuneCountInString(e.X), utf8.RuneCountInString(e.Y))
	}

	for _, e := range entries {
		a := e.Alignment
		_, err := fmt.Fprintf(r.w, "%s%s%s%s%d%s%d\n%s%s%s%s%d\n\n",
			padLeft(e.X, width), mapTo, r.paint(a.X, a.Ops, width), matchesLbl, a.Matches, mismatchLbl, a.Mismatches,
			padLeft(e.Y, width), mapTo, r.paint(a.Y, a.Ops, width), gapsLbl, a.Gaps)
		if err != nil {
			return err
		}
	}

	return nil
}

// JSON writes one JSON object per entry, newline separated.
func (r *Renderer) JSON(entries []Entry) error {
	enc := json.NewEncoder(r.w)
	for _, e := range entries {
		a := e.Alignment
		if err := enc.Encode(record{
			X: e.X, Y: e.Y,
			AlignedX: a.X, AlignedY: a.Y,
			Matches: a.Matches, Mismatches: a.Mismatches, Gaps: a.Gaps,
			Penalty: a.Penalty,
		}); err != nil {
			return err
		}
	}

	return nil
}

// Table draws the penalty table with x down the side and y across the top.
// The cell holding the optimal penalty is highlighted.
func (r *Renderer) Table(x, y string, t *align.Table) error {
	headers := []string{"", "·"}
	for _, s := range y {
		headers = append(headers, string(s))
	}

	xs := append([]string{"·"}, strings.Split(x, "")...)
	rows := make([][]string, 0, t.Rows())
	for i := 0; i < t.Rows(); i++ {
		vals, err := t.Row(i)
		if err != nil {
			return err
		}
		row := make([]string, 0, len(vals)+1)
		row = append(row, xs[i])
		for _, v := range vals {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		rows = append(rows, row)
	}

	last := t.Rows() - 1
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.muted).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow || col == 0:
				return r.bold
			case row == last && col == len(headers)-1:
				return r.match
			default:
				return lipgloss.NewStyle()
			}
		})

	_, err := fmt.Fprintln(r.w, tbl.Render())

	return err
}

// paint styles each column of an aligned string by its op and pads it to width.
func (r *Renderer) paint(s string, ops []align.Op, width int) string {
	runes := []rune(s)
	pad := ""
	if n := width - len(runes); n > 0 {
		pad = strings.Repeat(" ", n)
	}
	if !r.color {
		return s + pad
	}

	var sb strings.Builder
	for k, ch := range runes {
		style := r.bold
		if k < len(ops) {
			switch {
			case ops[k] == align.OpMatch:
				style = r.match
			case ops[k] == align.OpMismatch:
				style = r.mismatch
			case ops[k].IsGap():
				style = r.gap
			}
		}
		sb.WriteString(style.Render(string(ch)))
	}
	sb.WriteString(pad)

	return sb.String()
}

// padLeft right-aligns s in a field of width runes.
func padLeft(s string, width int) string {
	if n := width - utf8.RuneCountInString(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}

	return s
}
