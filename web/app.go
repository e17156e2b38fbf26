//go:build js
// +build js

// Package web runs the game in a browser canvas.
package web

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/pop-bubbles/audio"
	"github.com/simukka/pop-bubbles/common"
	"github.com/simukka/pop-bubbles/game"
)

// App wires a session to the page: canvas, DOM overlays, input and audio.
type App struct {
	Canvas   *js.Object
	Ctx      *js.Object
	Session  *game.Session
	Renderer *Renderer
	HUD      *HUD
	Audio    *audio.AudioManager
	Sounds   *audio.Queue

	AnimationFrameID int
	dpr              float64
}

// NewApp builds the app around the canvas element.
func NewApp(canvas *js.Object, opts game.Options) *App {
	ctx := canvas.Call("getContext", "2d")
	dpr := js.Global.Get("devicePixelRatio").Float()
	if dpr <= 0 {
		dpr = 1
	}

	manager := audio.NewAudioManager(nil, common.NewSeededRNG(common.SessionSeed(uint32(js.Global.Get("Date").Call("now").Int64()), 0)))
	sounds := audio.NewQueue(manager, audio.AudioConfig.QueueDepth)
	opts.Sound = sounds

	a := &App{
		Canvas:   canvas,
		Ctx:      ctx,
		Renderer: &Renderer{Ctx: ctx},
		HUD:      NewHUD(),
		Audio:    manager,
		Sounds:   sounds,
		dpr:      dpr,
	}
	a.Session = game.NewSession(opts)
	a.resize()
	return a
}

// DevModeFromURL reports whether the page was opened with ?dev=1.
func DevModeFromURL() bool {
	search := js.Global.Get("location").Get("search").String()
	params := js.Global.Get("URLSearchParams").New(search)
	return params.Call("get", "dev").String() == "1"
}

func now() float64 {
	return js.Global.Get("performance").Call("now").Float()
}

// resize matches the canvas backing store to its CSS box.
func (a *App) resize() {
	rect := a.Canvas.Call("getBoundingClientRect")
	w, h := rect.Get("width").Float(), rect.Get("height").Float()
	a.Canvas.Set("width", w*a.dpr)
	a.Canvas.Set("height", h*a.dpr)
	a.Ctx.Call("setTransform", a.dpr, 0, 0, a.dpr, 0, 0)
	a.Session.Resize(w, h)
}

// initAudio creates the audio backend on the first user gesture.
func (a *App) initAudio() {
	if a.Audio.Ready() {
		return
	}
	backend, err := audio.NewWebAudioBackend()
	if err != nil {
		common.Warn("audio unavailable", "err", err)
		return
	}
	a.Audio.SetBackend(backend)
}

// Start registers the event handlers and begins the frame loop.
func (a *App) Start() {
	a.setupInputHandlers()
	a.setupDifficultySelection()
	a.HUD.Update(a.Session.Frame(now()))
	a.AnimationFrameID = js.Global.Call("requestAnimationFrame", a.GameLoopRAF).Int()
}

// GameLoopRAF advances and draws one frame per animation callback.
func (a *App) GameLoopRAF(currentTime float64) {
	a.AnimationFrameID = js.Global.Call("requestAnimationFrame", a.GameLoopRAF).Int()

	a.Session.Tick(currentTime)
	f := a.Session.Frame(currentTime)
	a.Renderer.Render(f)
	a.HUD.Update(f)
}

func (a *App) setupInputHandlers() {
	js.Global.Call("addEventListener", "resize", func() { a.resize() })

	a.Canvas.Call("addEventListener", "pointerdown", func(event *js.Object) {
		event.Call("preventDefault")
		a.initAudio()

		id := game.MousePointer
		if event.Get("pointerType").String() != "mouse" {
			id = game.PointerID("pointer-" + strconv.Itoa(event.Get("pointerId").Int()))
		}
		rect := a.Canvas.Call("getBoundingClientRect")
		x := event.Get("clientX").Float() - rect.Get("left").Float()
		y := event.Get("clientY").Float() - rect.Get("top").Float()
		a.Session.PointerDown(id, x, y, now())
	})

	preventDefault := func(event *js.Object) { event.Call("preventDefault") }
	a.Canvas.Call("addEventListener", "contextmenu", preventDefault)
	js.Global.Get("document").Call("addEventListener", "touchmove", preventDefault,
		map[string]interface{}{"passive": false})
	js.Global.Get("document").Call("addEventListener", "pointerdown", func() { a.initAudio() },
		map[string]interface{}{"once": true})

	js.Global.Get("document").Call("addEventListener", "keydown", func(event *js.Object) {
		key := game.TranslateKey(event.Get("key").String())
		switch key {
		case game.KeyMute, game.KeyPause, game.KeyRestart:
			a.Session.KeyDown(key, now())
			event.Call("preventDefault")
		}
	})

	if btn := byID("muteBtn"); btn != nil {
		btn.Call("addEventListener", "click", func() {
			a.initAudio()
			a.Session.ToggleMute()
		})
	}
	if btn := byID("playAgainBtn"); btn != nil {
		btn.Call("addEventListener", "click", func() { a.Session.Restart() })
	}
}

func (a *App) setupDifficultySelection() {
	buttons := js.Global.Get("document").Call("querySelectorAll", ".difficulty-btn")
	for i := 0; i < buttons.Length(); i++ {
		btn := buttons.Index(i)
		name := btn.Get("dataset").Get("difficulty").String()
		btn.Call("addEventListener", "click", func() {
			a.initAudio()
			if name == "custom" {
				setHidden(a.HUD.CustomSettings, false)
				return
			}
			if err := a.Session.StartByName(name, now()); err != nil {
				common.Warn("cannot start", "difficulty", name, "err", err)
			}
		})
	}

	for sliderID, valueID := range sliderIDs {
		slider, label := byID(sliderID), byID(valueID)
		if slider == nil || label == nil {
			continue
		}
		slider.Call("addEventListener", "input", func() {
			setText(label, slider.Get("value").String())
		})
	}

	if btn := byID("startCustomGame"); btn != nil {
		btn.Call("addEventListener", "click", func() {
			profile, err := game.NewCustomProfile(sliderValues())
			if err != nil {
				common.Warn("invalid custom difficulty", "err", err)
				return
			}
			if err := a.Session.Start(profile, now()); err != nil {
				common.Warn("cannot start", "err", err)
			}
		})
	}
}
