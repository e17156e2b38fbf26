//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/pop-bubbles/common"
	"github.com/simukka/pop-bubbles/game"
	"github.com/simukka/pop-bubbles/storage"
	"github.com/simukka/pop-bubbles/web"
)

func main() {
	doc := js.Global.Get("document")
	canvas := doc.Call("getElementById", "gameCanvas")
	if canvas == nil || canvas == js.Undefined {
		panic("canvas element not found")
	}

	devMode := web.DevModeFromURL()
	common.SetLogger(web.ConsoleLogger{Prefix: "pop"})
	common.EnableDebug = devMode

	seed := uint32(js.Global.Get("Date").Call("now").Int64())
	app := web.NewApp(canvas, game.Options{
		Rand:    common.NewSeededRNG(seed),
		Store:   storage.NewLocalStorage(game.HighScoreKey),
		DevMode: devMode,
	})
	common.Info("starting", "seed", seed, "dev", devMode)

	js.Global.Call("addEventListener", "beforeunload", func() {
		js.Global.Call("cancelAnimationFrame", app.AnimationFrameID)
	})
	app.Start()

	select {}
}
