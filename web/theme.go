package web

import (
	"fmt"
	"math"
)

// Theme holds the visual styling of the browser renderer.
var Theme = struct {
	// Bubble gradient color sets, selected by bubble id.
	BubbleColors [][3]string
	// Ripple colors, selected by ripple radius.
	RippleColors []string
	// Shard colors, selected by shard index.
	ShardColors []string

	BubbleCore      string
	HighlightColor  string
	HighlightFade   string
	VignetteColor   string
	FPSColor        string
	FPSFont         string
	BubbleLineWidth float64
	RippleLineWidth float64

	BubbleShadowBlur float64
	RippleShadowBlur float64
	ShardShadowBlur  float64
	VignetteStrength float64
}{
	BubbleColors: [][3]string{
		{"#ff6b6b", "#4ecdc4", "#45b7d1"},
		{"#96ceb4", "#feca57", "#ff9ff3"},
		{"#54a0ff", "#5f27cd", "#00d2d3"},
		{"#ff9f43", "#ee5a24", "#0984e3"},
	},
	RippleColors: []string{"#ff6b6b", "#4ecdc4", "#45b7d1", "#96ceb4", "#feca57"},
	ShardColors:  []string{"#ff6b6b", "#4ecdc4", "#45b7d1", "#96ceb4", "#feca57", "#ff9ff3"},

	BubbleCore:      "rgba(255, 255, 255, 0.9)",
	HighlightColor:  "rgba(255, 255, 255, 0.6)",
	HighlightFade:   "rgba(255, 255, 255, 0)",
	VignetteColor:   "0, 0, 0",
	FPSColor:        "rgba(255, 255, 255, 0.7)",
	FPSFont:         "14px monospace",
	BubbleLineWidth: 2,
	RippleLineWidth: 3,

	BubbleShadowBlur: 15,
	RippleShadowBlur: 10,
	ShardShadowBlur:  8,
	VignetteStrength: 0.3,
}

// WithAlpha appends an alpha byte to a #rrggbb color.
func WithAlpha(color string, alpha float64) string {
	a := int(math.Floor(math.Max(0, math.Min(1, alpha)) * 255))
	return fmt.Sprintf("%s%02x", color, a)
}

// BubbleColorSet returns the gradient colors of a bubble.
func BubbleColorSet(id int) [3]string {
	n := len(Theme.BubbleColors)
	return Theme.BubbleColors[((id%n)+n)%n]
}

// RippleColor returns the stroke color of a ripple of the given radius.
func RippleColor(radius float64) string {
	return Theme.RippleColors[int(radius/20)%len(Theme.RippleColors)]
}

// ShardColor returns the fill color of a shard.
func ShardColor(index int) string {
	return Theme.ShardColors[index%len(Theme.ShardColors)]
}

// VignetteAlpha is the darkening applied during slow motion.
func VignetteAlpha(timeScale float64) float64 {
	if timeScale >= 1 {
		return 0
	}
	return (1 - timeScale) * Theme.VignetteStrength
}

// FormatScore groups thousands with commas.
func FormatScore(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return sign + s
}

// LivesText renders lives as filled and empty hearts.
func LivesText(lives, maxLives int) string {
	out := ""
	for i := 0; i < maxLives; i++ {
		if i < lives {
			out += "❤️"
		} else {
			out += "🤍"
		}
	}
	return out
}
