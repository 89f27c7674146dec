// Package clock renders wall time onto the seven segment display.
package clock

import (
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
)

// tick is how often the loop re-checks the time. Well under a second so
// the separator blink never visibly stutters.
const tick = 250 * time.Millisecond

// Renderer is the slice of the display driver the clock needs.
type Renderer interface {
	DisplayText(text string, rightJustify bool) error
}

// Clock periodically formats the current time and pushes it to the
// display. Any '.' in the layout renders as the decimal point of the digit
// before it, and blinks: it is dropped on odd seconds, the way a colon
// blinks on a bedside clock.
type Clock struct {
	disp   Renderer
	clock  clockwork.Clock
	format string
	done   chan struct{}
}

// New creates a clock rendering through disp. format is a time.Time layout
// such as "15.04".
func New(disp Renderer, format string) *Clock {
	return &Clock{
		disp:   disp,
		clock:  clockwork.NewRealClock(),
		format: format,
		done:   make(chan struct{}),
	}
}

// Run renders the time until Close is called, re-sending to the display
// only when the rendered text changes.
func (c *Clock) Run() {
	log.Infof("Starting clock with layout %q", c.format)

	last := ""
	for {
		if s := c.render(c.clock.Now()); s != last {
			last = s
			if err := c.disp.DisplayText(s, true); err != nil {
				log.Warn("Unable to render time: ", err)
			}
		}

		select {
		case <-c.done:
			return
		case <-c.clock.After(tick):
		}
	}
}

// Close stops the rendering loop.
func (c *Clock) Close() {
	close(c.done)
}

func (c *Clock) render(t time.Time) string {
	s := t.Format(c.format)
	if t.Second()%2 == 1 {
		s = strings.ReplaceAll(s, ".", "")
	}
	return s
}
