// Package progress renders a terminal progress bar for the conversion
// phases. It is purely decorative: the pipeline works identically with a
// nil observer.
package progress

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Func receives batch progress updates; current runs from 1 to total.
type Func func(current, total int)

const (
	barWidth   = 30
	labelWidth = 24
)

// Bar draws a fixed-width progress bar on a single line, redrawing it with
// carriage returns. The label column is truncated and padded by display
// width rather than byte length so wide (e.g. CJK) labels keep the bar
// aligned.
type Bar struct {
	w     io.Writer
	label string
}

// NewBar creates a bar labelled with the current phase, writing to w.
func NewBar(w io.Writer, label string) *Bar {
	return &Bar{w: w, label: label}
}

// Observer returns a Func that redraws the bar on every update.
func (b *Bar) Observer() Func {
	return b.render
}

func (b *Bar) render(current, total int) {
	if total <= 0 {
		return
	}
	if current > total {
		current = total
	}

	label := runewidth.Truncate(b.label, labelWidth, "…")
	label = runewidth.FillRight(label, labelWidth)

	filled := barWidth * current / total
	fmt.Fprintf(b.w, "\r%s [%s%s] %d/%d",
		label,
		strings.Repeat("#", filled),
		strings.Repeat(" ", barWidth-filled),
		current, total)

	// Terminate the line once the phase completes so the next write
	// does not clobber the finished bar.
	if current == total {
		fmt.Fprintln(b.w)
	}
}
