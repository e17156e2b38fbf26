//go:build !js
// +build !js

package term

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/simukka/pop-bubbles/game"
)

// Palette mirrors the browser renderer's primary bubble colors.
var Palette = struct {
	Bubbles    []tcell.Color
	Particles  []tcell.Color
	Background tcell.Color
	HUD        tcell.Color
	Accent     tcell.Color
	Warning    tcell.Color
	Dim        tcell.Color
}{
	Bubbles: []tcell.Color{
		tcell.NewHexColor(0xff6b6b),
		tcell.NewHexColor(0x96ceb4),
		tcell.NewHexColor(0x54a0ff),
		tcell.NewHexColor(0xff9f43),
	},
	Particles: []tcell.Color{
		tcell.NewHexColor(0xff6b6b),
		tcell.NewHexColor(0x4ecdc4),
		tcell.NewHexColor(0x45b7d1),
		tcell.NewHexColor(0x96ceb4),
		tcell.NewHexColor(0xfeca57),
		tcell.NewHexColor(0xff9ff3),
	},
	Background: tcell.NewHexColor(0x1a1a2e),
	HUD:        tcell.ColorWhite,
	Accent:     tcell.NewHexColor(0xfeca57),
	Warning:    tcell.NewHexColor(0xff6b6b),
	Dim:        tcell.NewHexColor(0x808080),
}

var bannerText = map[game.BannerKind]string{
	game.BannerMissClick: "MISS!",
	game.BannerPenalty:   "-1 LIFE",
	game.BannerCombo:     "COMBO!",
	game.BannerPerfect:   "PERFECT!",
}

// Draw renders the session at now.
func (a *App) Draw(now float64) {
	f := a.session.Frame(now)
	s := a.screen
	bg := tcell.StyleDefault.Background(Palette.Background)
	if f.SlowMo {
		bg = tcell.StyleDefault.Background(tcell.NewHexColor(0x10101c))
	}
	s.SetStyle(bg)
	s.Clear()

	switch f.Screen {
	case game.ScreenMenu:
		a.drawMenu(f)
	default:
		for _, b := range f.Bubbles {
			a.drawBubble(b, bg)
		}
		for _, p := range f.Particles {
			a.drawParticle(p, bg)
		}
		a.drawHUD(f)
		a.drawBanners(f)
		switch f.Screen {
		case game.ScreenPaused:
			a.center(0, "PAUSED  (p to resume)", bg.Foreground(Palette.HUD).Bold(true))
		case game.ScreenGameOver:
			a.drawGameOver(f, bg)
		}
	}
	s.Show()
}

// cell converts canvas coordinates to a terminal cell.
func cell(x, y float64) (int, int) {
	return int(math.Floor(x / CellWidth)), int(math.Floor(y/CellHeight)) + hudRows
}

func (a *App) drawBubble(b game.Bubble, bg tcell.Style) {
	style := bg.Foreground(Palette.Bubbles[b.ID%len(Palette.Bubbles)])
	x0, y0 := cell(b.X-b.Radius, b.Y-b.Radius)
	x1, y1 := cell(b.X+b.Radius, b.Y+b.Radius)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			px := (float64(cx) + 0.5) * CellWidth
			py := (float64(cy-hudRows) + 0.5) * CellHeight
			d := math.Hypot(px-b.X, py-b.Y)
			switch {
			case d <= b.Radius*0.6:
				a.put(cx, cy, '▓', style)
			case d <= b.Radius:
				a.put(cx, cy, '░', style)
			}
		}
	}
}

func (a *App) drawParticle(p game.Particle, bg tcell.Style) {
	switch p := p.(type) {
	case *game.Ripple:
		if p.Alpha < 0.1 {
			return
		}
		color := Palette.Particles[int(p.Radius/20)%5]
		steps := int(math.Max(8, p.Radius/4))
		for i := 0; i < steps; i++ {
			angle := 2 * math.Pi * float64(i) / float64(steps)
			cx, cy := cell(p.X+math.Cos(angle)*p.Radius, p.Y+math.Sin(angle)*p.Radius)
			a.put(cx, cy, '·', bg.Foreground(color))
		}
	case *game.Shard:
		color := Palette.Particles[p.Index%len(Palette.Particles)]
		cx, cy := cell(p.X, p.Y)
		r := '*'
		if p.Alpha < 0.4 {
			r = '.'
		}
		a.put(cx, cy, r, bg.Foreground(color))
	}
}

func (a *App) put(cx, cy int, r rune, style tcell.Style) {
	cols, rows := a.screen.Size()
	if cx < 0 || cy < hudRows || cx >= cols || cy >= rows {
		return
	}
	a.screen.SetContent(cx, cy, r, nil, style)
}

func (a *App) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}

// center writes s centered on the playfield, offset rows from the middle.
func (a *App) center(offset int, s string, style tcell.Style) {
	cols, rows := a.screen.Size()
	x := (cols - len([]rune(s))) / 2
	a.text(x, rows/2+offset, s, style)
}

func (a *App) drawHUD(f game.Frame) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(Palette.HUD)
	cols, _ := a.screen.Size()
	for x := 0; x < cols; x++ {
		a.screen.SetContent(x, 0, ' ', nil, style)
	}

	lives := strings.Repeat("♥", f.Lives) + strings.Repeat("♡", f.MaxLives-f.Lives)
	hud := fmt.Sprintf(" %d  %s  High Score: %d  %s", f.Score, lives, f.HighScore, f.Difficulty)
	if f.Combo > 1 {
		hud += fmt.Sprintf("  x%d", f.Combo)
	}
	if f.Streak > 1 {
		hud += fmt.Sprintf("  Streak: %d", f.Streak)
	}
	if f.SlowMo {
		hud += "  SLOW-MO"
	}
	if f.Muted {
		hud += "  [muted]"
	}
	if f.DevMode {
		hud += fmt.Sprintf("  FPS: %.0f", f.FPS)
	}
	a.text(0, 0, hud, style)
}

func (a *App) drawBanners(f game.Frame) {
	style := tcell.StyleDefault.Background(Palette.Background).Bold(true)
	row := -3
	for _, k := range f.Banners {
		text := bannerText[k]
		color := Palette.Accent
		switch k {
		case game.BannerStreak:
			text = fmt.Sprintf("Streak %d!", f.Streak)
		case game.BannerMissClick, game.BannerPenalty:
			color = Palette.Warning
		}
		a.center(row, text, style.Foreground(color))
		row++
	}
}

func (a *App) drawMenu(f game.Frame) {
	title := tcell.StyleDefault.Background(Palette.Background).Foreground(Palette.Accent).Bold(true)
	body := tcell.StyleDefault.Background(Palette.Background).Foreground(Palette.HUD)
	dim := body.Foreground(Palette.Dim)

	a.center(-6, "Pop! Bubbles", title)
	a.center(-4, fmt.Sprintf("High Score: %d", f.HighScore), body)
	for i, name := range game.DifficultyOrder {
		label := game.Difficulties[name].Name
		if name == "custom" {
			label = a.custom.Name
		}
		a.center(-2+i, fmt.Sprintf("%d  %-8s", i+1, label), body)
	}
	a.center(4, "click bubbles to pop them  ·  m mute  p pause  r restart  q quit", dim)
}

func (a *App) drawGameOver(f game.Frame, bg tcell.Style) {
	title := bg.Foreground(Palette.Warning).Bold(true)
	body := bg.Foreground(Palette.HUD)
	a.center(-2, "GAME OVER", title)
	a.center(0, fmt.Sprintf("Score: %d", f.Stats.Score), body)
	a.center(1, fmt.Sprintf("High Score: %d", f.Stats.HighScore), body)
	a.center(2, fmt.Sprintf("Best Streak: %d", f.Stats.MaxStreak), body)
	a.center(4, "r to play again", body.Foreground(Palette.Dim))
}
