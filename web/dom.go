//go:build js
// +build js

package web

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/pop-bubbles/game"
)

func byID(id string) *js.Object {
	el := js.Global.Get("document").Call("getElementById", id)
	if el == nil || el == js.Undefined {
		return nil
	}
	return el
}

// setHidden toggles the "hidden" class. Missing elements are ignored.
func setHidden(el *js.Object, hidden bool) {
	if el == nil {
		return
	}
	if hidden {
		el.Get("classList").Call("add", "hidden")
	} else {
		el.Get("classList").Call("remove", "hidden")
	}
}

func setText(el *js.Object, text string) {
	if el == nil {
		return
	}
	if el.Get("textContent").String() != text {
		el.Set("textContent", text)
	}
}

// HUD mirrors a frame onto the page's DOM overlays.
type HUD struct {
	DifficultyScreen *js.Object
	CustomSettings   *js.Object
	UI               *js.Object
	Score            *js.Object
	Combo            *js.Object
	Streak           *js.Object
	HighScore        *js.Object
	Difficulty       *js.Object
	Lives            *js.Object
	MuteBtn          *js.Object
	PauseOverlay     *js.Object
	GameOverOverlay  *js.Object
	FinalScore       *js.Object
	FinalHighScore   *js.Object
	FinalMaxStreak   *js.Object
	Banners          map[game.BannerKind]*js.Object

	lastScreen game.Screen
	synced     bool
}

// NewHUD looks up the overlay elements by id.
func NewHUD() *HUD {
	return &HUD{
		DifficultyScreen: byID("difficultyScreen"),
		CustomSettings:   byID("customSettings"),
		UI:               byID("ui"),
		Score:            byID("score"),
		Combo:            byID("combo"),
		Streak:           byID("streak"),
		HighScore:        byID("highScore"),
		Difficulty:       byID("difficulty"),
		Lives:            byID("lives"),
		MuteBtn:          byID("muteBtn"),
		PauseOverlay:     byID("pauseOverlay"),
		GameOverOverlay:  byID("gameOverOverlay"),
		FinalScore:       byID("finalScore"),
		FinalHighScore:   byID("finalHighScore"),
		FinalMaxStreak:   byID("finalMaxStreak"),
		Banners: map[game.BannerKind]*js.Object{
			game.BannerMissClick: byID("missClickFeedback"),
			game.BannerPenalty:   byID("penaltyFeedback"),
			game.BannerCombo:     byID("comboFeedback"),
			game.BannerStreak:    byID("streakFeedback"),
			game.BannerPerfect:   byID("perfectFeedback"),
		},
	}
}

// Update syncs the overlays with f.
func (h *HUD) Update(f game.Frame) {
	if !h.synced || h.lastScreen != f.Screen {
		h.switchScreen(f)
		h.lastScreen = f.Screen
		h.synced = true
	}

	setText(h.Score, FormatScore(f.Score))
	setText(h.HighScore, "High Score: "+FormatScore(f.HighScore))
	setText(h.Difficulty, f.Difficulty)
	setText(h.Lives, LivesText(f.Lives, f.MaxLives))

	setHidden(h.Combo, f.Combo <= 1)
	if f.Combo > 1 {
		setText(h.Combo, "x"+strconv.Itoa(f.Combo))
	}
	setHidden(h.Streak, f.Streak <= 1)
	if f.Streak > 1 {
		setText(h.Streak, "Streak: "+strconv.Itoa(f.Streak))
	}

	if f.Muted {
		setText(h.MuteBtn, "🔇")
	} else {
		setText(h.MuteBtn, "🔈")
	}

	visible := map[game.BannerKind]bool{}
	for _, k := range f.Banners {
		visible[k] = true
	}
	for k, el := range h.Banners {
		setHidden(el, !visible[k])
	}
	if visible[game.BannerStreak] {
		setText(h.Banners[game.BannerStreak], "Streak "+strconv.Itoa(f.Streak)+"!")
	}
	if visible[game.BannerPenalty] {
		setText(h.Banners[game.BannerPenalty], "💔")
	}
}

func (h *HUD) switchScreen(f game.Frame) {
	menu := f.Screen == game.ScreenMenu
	setHidden(h.DifficultyScreen, !menu)
	setHidden(h.UI, menu)
	setHidden(h.PauseOverlay, f.Screen != game.ScreenPaused)
	setHidden(h.GameOverOverlay, f.Screen != game.ScreenGameOver)
	if !menu {
		setHidden(h.CustomSettings, true)
	}
	if f.Screen == game.ScreenGameOver {
		setText(h.FinalScore, FormatScore(f.Stats.Score))
		setText(h.FinalHighScore, FormatScore(f.Stats.HighScore))
		setText(h.FinalMaxStreak, strconv.Itoa(f.Stats.MaxStreak))
	}
}

// sliderValues reads the custom difficulty sliders.
func sliderValues() game.CustomParams {
	read := func(id string, fallback int) int {
		el := byID(id)
		if el == nil {
			return fallback
		}
		v, err := strconv.Atoi(el.Get("value").String())
		if err != nil {
			return fallback
		}
		return v
	}
	d := game.DefaultCustomParams()
	return game.CustomParams{
		SpawnIntervalMs: read("spawnRateSlider", d.SpawnIntervalMs),
		MaxBubbles:      read("maxBubblesSlider", d.MaxBubbles),
		SizeMin:         read("sizeMinSlider", d.SizeMin),
		SizeMax:         read("sizeMaxSlider", d.SizeMax),
		Speed:           read("speedSlider", d.Speed),
		Penalty:         read("penaltySlider", d.Penalty),
	}
}

// sliderIDs maps each custom slider to its value label.
var sliderIDs = map[string]string{
	"spawnRateSlider":  "spawnRateValue",
	"maxBubblesSlider": "maxBubblesValue",
	"sizeMinSlider":    "sizeMinValue",
	"sizeMaxSlider":    "sizeMaxValue",
	"speedSlider":      "speedValue",
	"penaltySlider":    "penaltyValue",
}
