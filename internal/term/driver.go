package term

import (
	"context"
	"time"

	"fuelcell/internal/app"

	"github.com/gdamore/tcell/v2"
)

const helpLine = "space pause  +/- speed  n step  r reset  q quit"

// Driver runs a Runner against a tcell screen. Input is read on its own
// goroutine; all simulation mutation stays on the Run goroutine.
type Driver struct {
	screen  tcell.Screen
	runner  *app.Runner
	painter *Painter
	tps     int
}

// NewDriver wires runner to an initialized screen.
func NewDriver(screen tcell.Screen, runner *app.Runner, tps int) *Driver {
	if tps <= 0 {
		tps = 60
	}
	return &Driver{screen: screen, runner: runner, painter: NewPainter(), tps: tps}
}

// HandleEvent applies one input event and reports whether the loop should
// continue.
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case nil:
		return false
	case *tcell.EventKey:
		return d.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return true
}

// HandleKey applies a key press. r is only consulted for tcell.KeyRune.
func (d *Driver) HandleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		d.runner.SetRunning(true)
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return false
		case ' ':
			d.runner.TogglePause()
		case '+', '=':
			d.runner.AdjustSpeed(1)
		case '-', '_':
			d.runner.AdjustSpeed(-1)
		case 'n':
			d.runner.StepOnce()
		case 'r':
			d.runner.Reset(d.runner.Seed())
		case 's':
			d.runner.Reset(time.Now().UnixNano())
		}
	}
	return true
}

// Frame advances the runner by one host tick and redraws.
func (d *Driver) Frame() {
	d.runner.Tick()
	d.Draw()
}

// Draw paints the current scene without stepping.
func (d *Driver) Draw() {
	d.painter.Draw(d.screen, d.runner.Sim().Scene(), d.runner.Status()+"  |  "+helpLine)
	d.screen.Show()
}

// Run pumps input and ticks until the user quits or ctx is cancelled.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(d.tps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(done, d.screen.PollEvent, events)

	d.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !d.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			d.Frame()
		}
	}
}

// pumpEvents forwards polled events to out until poll returns nil or done is
// closed.
func pumpEvents(done <-chan struct{}, poll func() tcell.Event, out chan<- tcell.Event) {
	for {
		ev := poll()
		select {
		case out <- ev:
		case <-done:
			return
		}
		if ev == nil {
			return
		}
	}
}
