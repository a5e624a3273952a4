package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/tanq16/pullr/internal/utils"
)

// ProgressBar redraws a single progress line in place on w.
type ProgressBar struct {
	w           io.Writer
	barStyle    lipgloss.Style
	doneStyle   lipgloss.Style
	lastPercent int
	started     bool
}

func NewProgressBar(w io.Writer) *ProgressBar {
	renderer := lipgloss.NewRenderer(w)
	return &ProgressBar{
		w:         w,
		barStyle:  renderer.NewStyle().Foreground(barColor),
		doneStyle: renderer.NewStyle().Bold(true).Foreground(finishedColor),
	}
}

func (p *ProgressBar) Update(written, total int64) {
	p.draw(utils.Percent(written, total))
}

func (p *ProgressBar) Finish() {
	fmt.Fprintf(p.w, "\n%s\n", p.doneStyle.Render("Downloaded!"))
}

// Started reports whether anything has been drawn yet.
func (p *ProgressBar) Started() bool {
	return p.started
}

// LastPercent is the percent of the most recent redraw.
func (p *ProgressBar) LastPercent() int {
	return p.lastPercent
}

func (p *ProgressBar) draw(percent int) {
	p.started = true
	p.lastPercent = percent
	fmt.Fprint(p.w, "\r"+p.barStyle.Render(FormatProgressLine(percent)))
}
