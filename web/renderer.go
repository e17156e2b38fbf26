//go:build js
// +build js

package web

import (
	"math"
	"strconv"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/pop-bubbles/game"
)

// Renderer draws frames onto a 2D canvas context.
type Renderer struct {
	Ctx *js.Object
}

// Render draws one frame.
func (r *Renderer) Render(f game.Frame) {
	ctx := r.Ctx
	ctx.Call("clearRect", 0, 0, f.Width, f.Height)

	for _, b := range f.Bubbles {
		r.drawBubble(b)
	}
	for _, p := range f.Particles {
		r.drawParticle(p)
	}

	if a := VignetteAlpha(f.TimeScale); a > 0 {
		ctx.Set("fillStyle", "rgba("+Theme.VignetteColor+", "+strconv.FormatFloat(a, 'f', 2, 64)+")")
		ctx.Call("fillRect", 0, 0, f.Width, f.Height)
	}

	if f.DevMode {
		ctx.Set("fillStyle", Theme.FPSColor)
		ctx.Set("font", Theme.FPSFont)
		ctx.Call("fillText", "FPS: "+strconv.Itoa(int(f.FPS)), 10, f.Height-10)
	}
}

func (r *Renderer) drawBubble(b game.Bubble) {
	ctx := r.Ctx
	colors := BubbleColorSet(b.ID)

	gradient := ctx.Call("createRadialGradient", b.X, b.Y-b.Radius*0.3, 0, b.X, b.Y, b.Radius)
	gradient.Call("addColorStop", 0, Theme.BubbleCore)
	gradient.Call("addColorStop", 0.2, colors[0]+"80")
	gradient.Call("addColorStop", 0.5, colors[1]+"60")
	gradient.Call("addColorStop", 0.8, colors[2]+"40")
	gradient.Call("addColorStop", 1, colors[0]+"20")

	ctx.Set("fillStyle", gradient)
	ctx.Call("beginPath")
	ctx.Call("arc", b.X, b.Y, b.Radius, 0, math.Pi*2)
	ctx.Call("fill")

	// Outer glow
	ctx.Set("shadowColor", colors[0])
	ctx.Set("shadowBlur", Theme.BubbleShadowBlur)
	ctx.Set("strokeStyle", colors[0]+"40")
	ctx.Set("lineWidth", Theme.BubbleLineWidth)
	ctx.Call("beginPath")
	ctx.Call("arc", b.X, b.Y, b.Radius, 0, math.Pi*2)
	ctx.Call("stroke")
	ctx.Set("shadowBlur", 0)

	// Highlight
	hx, hy, hr := b.X-b.Radius*0.3, b.Y-b.Radius*0.3, b.Radius*0.4
	highlight := ctx.Call("createRadialGradient", hx, hy, 0, hx, hy, hr)
	highlight.Call("addColorStop", 0, Theme.HighlightColor)
	highlight.Call("addColorStop", 1, Theme.HighlightFade)
	ctx.Set("fillStyle", highlight)
	ctx.Call("beginPath")
	ctx.Call("arc", hx, hy, hr, 0, math.Pi*2)
	ctx.Call("fill")
}

func (r *Renderer) drawParticle(p game.Particle) {
	ctx := r.Ctx
	switch p := p.(type) {
	case *game.Ripple:
		color := RippleColor(p.Radius)
		ctx.Set("strokeStyle", WithAlpha(color, p.Alpha))
		ctx.Set("lineWidth", Theme.RippleLineWidth)
		ctx.Set("shadowColor", color)
		ctx.Set("shadowBlur", Theme.RippleShadowBlur)
		ctx.Call("beginPath")
		ctx.Call("arc", p.X, p.Y, p.Radius, 0, math.Pi*2)
		ctx.Call("stroke")
		ctx.Set("shadowBlur", 0)
	case *game.Shard:
		color := ShardColor(p.Index)
		ctx.Set("fillStyle", WithAlpha(color, p.Alpha))
		ctx.Set("shadowColor", color)
		ctx.Set("shadowBlur", Theme.ShardShadowBlur)
		ctx.Call("beginPath")
		ctx.Call("arc", p.X, p.Y, p.Size, 0, math.Pi*2)
		ctx.Call("fill")
		ctx.Set("shadowBlur", 0)
	}
}
