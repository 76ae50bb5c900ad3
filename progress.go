package herald

import "strings"

// progressState tracks the bar lifecycle.
type progressState int

const (
	progressIdle progressState = iota
	progressDrawing
	progressDone
	progressEscaped
)

// ProgressBar renders a simple proportional bar on stdout. Informant
// dispatches that write to the terminal while the bar is mid-line finish
// the partial line first, emit normally, and the bar restarts from its
// beginning on a fresh line.
//
//	bar := herald.NewProgressBar(float64(len(files)))
//	for i, f := range files {
//		process(f)
//		bar.Draw(float64(i + 1))
//	}
//	bar.Done()
type ProgressBar struct {
	informer *Informer
	start    float64
	stop     float64
	width    int
	marker   string
	drawn    int
	state    progressState
}

// NewProgressBar returns a bar spanning [0, stop], attached to the
// active session.
func NewProgressBar(stop float64) *ProgressBar {
	return NewProgressBarRange(0, stop)
}

// NewProgressBarRange returns a bar spanning [start, stop].
func NewProgressBarRange(start, stop float64) *ProgressBar {
	n := Active()
	p := &ProgressBar{
		informer: n,
		start:    start,
		stop:     stop,
		width:    progressWidth(n),
		marker:   ".",
	}
	n.progress = p
	return p
}

func progressWidth(n *Informer) int {
	width := terminalWidth(n.stdout, defaultWrapWidth)
	if width > defaultWrapWidth {
		width = defaultWrapWidth
	}
	return width
}

// Draw advances the bar to reflect value's position within the range.
// Values are clamped to the range; Draw never moves the bar backward.
func (p *ProgressBar) Draw(value float64) {
	if p.state == progressDone || p.state == progressEscaped {
		return
	}
	if !p.visible() {
		return
	}
	frac := 0.0
	if p.stop != p.start {
		frac = (value - p.start) / (p.stop - p.start)
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	target := int(frac * float64(p.width))
	if target > p.drawn {
		p.informer.write(p.informer.stdout, strings.Repeat(p.marker, target-p.drawn))
		p.drawn = target
	}
	p.state = progressDrawing
}

// Done completes the bar. Unless Escape was called, the bar is drawn to
// its full width and the line is finished.
func (p *ProgressBar) Done() {
	if p.state == progressDone || p.state == progressEscaped {
		p.detach()
		return
	}
	if p.visible() {
		if p.drawn < p.width {
			p.informer.write(p.informer.stdout, strings.Repeat(p.marker, p.width-p.drawn))
		}
		p.informer.write(p.informer.stdout, "\n")
	}
	p.drawn = 0
	p.state = progressDone
	p.detach()
}

// Escape abandons the bar without forcing it to completion.
func (p *ProgressBar) Escape() {
	if p.state == progressDrawing && p.visible() {
		p.informer.write(p.informer.stdout, "\n")
	}
	p.state = progressEscaped
	p.detach()
}

// interrupt is called by the dispatcher before an informant writes while
// the bar is mid-line: finish the partial line so the message lands on
// its own line, and restart the bar afterward.
func (p *ProgressBar) interrupt() {
	if p.state != progressDrawing {
		return
	}
	if p.drawn > 0 && p.visible() {
		p.informer.write(p.informer.stdout, "\n")
	}
	p.drawn = 0
	p.state = progressIdle
}

// visible reports whether the bar may write at all; it obeys the same
// gating as ordinary display output.
func (p *ProgressBar) visible() bool {
	return DisplayInformant.Output.Resolve(p.informer)
}

func (p *ProgressBar) detach() {
	if p.informer.progress == p {
		p.informer.progress = nil
	}
}
