package engine

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dispenser/input"
	"github.com/lixenwraith/dispenser/parameter"
	"github.com/lixenwraith/dispenser/render"
)

// eventQueueSize buffers terminal events between the poller and the loop
const eventQueueSize = 100

// Loop drives a game against a terminal screen at a fixed frame rate
type Loop struct {
	game     *Game
	screen   tcell.Screen
	renderer *render.Renderer
	keys     *input.KeyTable
	mouse    input.MouseTracker
	time     TimeProvider
}

// NewLoop binds a game to a screen
// A nil provider uses the monotonic system clock
func NewLoop(g *Game, screen tcell.Screen, renderer *render.Renderer, tp TimeProvider) *Loop {
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}
	l := &Loop{
		game:     g,
		screen:   screen,
		renderer: renderer,
		keys:     input.DefaultKeyTable(),
		time:     tp,
	}
	renderer.Layout(g.Surface())
	return l
}

// Run processes input and frames until quit, context cancellation, or screen shutdown
// Terminal events are polled on a separate goroutine; all game mutation stays here
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, eventQueueSize)
	pollErr := make(chan error, 1)
	go l.poll(ctx, events, pollErr)

	last := l.time.Now()
	l.renderer.Draw(l.game.Scene())

	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-pollErr:
			return err

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !l.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			now := l.time.Now()
			l.game.Step(now.Sub(last))
			last = now
			l.renderer.Draw(l.game.Scene())
		}
	}
}

// poll forwards terminal events until the screen is finalized
func (l *Loop) poll(ctx context.Context, events chan<- tcell.Event, errs chan<- error) {
	defer close(events)
	defer func() {
		if r := recover(); r != nil {
			errs <- fmt.Errorf("event poller panic: %v\n%s", r, debug.Stack())
		}
	}()

	for {
		ev := l.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// handleEvent resolves a terminal event into an intent; returns false to quit
func (l *Loop) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return l.game.HandleIntent(l.keys.Resolve(ev), 0, 0)

	case *tcell.EventMouse:
		in, x, y := l.mouse.Resolve(ev)
		return l.game.HandleIntent(in, x, y)

	case *tcell.EventResize:
		l.screen.Sync()
		l.renderer.Resize(l.screen.Size())
		l.renderer.Layout(l.game.Surface())
	}
	return true
}
