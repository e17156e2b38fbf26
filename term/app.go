//go:build !js
// +build !js

// Package term runs the game in a terminal using tcell.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/simukka/pop-bubbles/common"
	"github.com/simukka/pop-bubbles/game"
)

// Each terminal cell covers CellWidth x CellHeight canvas pixels.
const (
	CellWidth  = 10.0
	CellHeight = 20.0

	hudRows = 1
)

// App drives a game session from terminal events.
type App struct {
	screen  tcell.Screen
	session *game.Session
	custom  game.DifficultyProfile
	start   time.Time

	mouseDown bool
}

// New creates an app on an initialized screen. custom is the profile started
// by the custom menu entry.
func New(screen tcell.Screen, opts game.Options, custom game.DifficultyProfile) *App {
	if custom.Name == "" {
		custom = game.Difficulties["custom"]
	}
	cols, rows := screen.Size()
	opts.Width, opts.Height = canvasSize(cols, rows)
	return &App{
		screen:  screen,
		session: game.NewSession(opts),
		custom:  custom,
		start:   time.Now(),
	}
}

// Session returns the driven session.
func (a *App) Session() *game.Session {
	return a.session
}

func canvasSize(cols, rows int) (float64, float64) {
	if rows <= hudRows {
		rows = hudRows + 1
	}
	return float64(cols) * CellWidth, float64(rows-hudRows) * CellHeight
}

// now is the monotonic clock in milliseconds.
func (a *App) now() float64 {
	return float64(time.Since(a.start).Microseconds()) / 1000
}

// Run processes events and ticks until the player quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	go a.screen.ChannelEvents(eventChan, quit)
	defer close(quit)

	ticker := time.NewTicker(time.Duration(game.FrameDuration * float64(time.Millisecond)))
	defer ticker.Stop()

	a.Draw(a.now())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			if a.HandleEvent(ev, a.now()) {
				return nil
			}
		case <-ticker.C:
			now := a.now()
			a.session.Tick(now)
			a.Draw(now)
		}
	}
}

// HandleEvent applies one terminal event. It reports whether the player quit.
func (a *App) HandleEvent(ev tcell.Event, now float64) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev, now)
	case *tcell.EventMouse:
		a.handleMouse(ev, now)
	case *tcell.EventResize:
		a.session.Resize(canvasSize(ev.Size()))
		a.screen.Sync()
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey, now float64) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	r := ev.Rune()
	if r == 'q' || r == 'Q' {
		return true
	}

	if a.session.Screen == game.ScreenMenu && r >= '1' && r <= '9' {
		a.startChoice(int(r-'1'), now)
		return false
	}

	a.session.KeyDown(string(r), now)
	return false
}

// startChoice starts the difficulty at index in the menu order.
func (a *App) startChoice(index int, now float64) {
	if index < 0 || index >= len(game.DifficultyOrder) {
		return
	}
	name := game.DifficultyOrder[index]
	profile := game.Difficulties[name]
	if name == "custom" {
		profile = a.custom
	}
	if err := a.session.Start(profile, now); err != nil {
		common.Warn("start failed", "err", err)
	}
}

// handleMouse pops on the press edge of the primary button.
func (a *App) handleMouse(ev *tcell.EventMouse, now float64) {
	down := ev.Buttons()&tcell.Button1 != 0
	pressed := down && !a.mouseDown
	a.mouseDown = down
	if !pressed {
		return
	}

	cx, cy := ev.Position()
	if cy < hudRows {
		return
	}
	x := (float64(cx) + 0.5) * CellWidth
	y := (float64(cy-hudRows) + 0.5) * CellHeight
	a.session.PointerDown(game.MousePointer, x, y, now)
}
