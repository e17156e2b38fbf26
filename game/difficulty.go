package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidProfile is returned for unknown difficulty names and custom
// parameters outside their input ranges.
var ErrInvalidProfile = errors.New("game: invalid difficulty profile")

// DifficultyProfile bundles the spawn and bubble parameters of a difficulty.
type DifficultyProfile struct {
	Name              string
	SpawnIntervalMs   float64
	MaxActiveBubbles  int
	SizeMin           float64
	SizeMax           float64
	BubbleSpeed       float64
	MissPenaltyPoints int
}

// DifficultyOrder lists the selectable difficulty names in menu order.
var DifficultyOrder = []string{"easy", "medium", "hard", "pro", "custom"}

// Difficulties holds the built-in profiles. "custom" is the default for the
// custom sliders.
var Difficulties = map[string]DifficultyProfile{
	"easy":   {Name: "Easy", SpawnIntervalMs: 1500, MaxActiveBubbles: 25, SizeMin: 35, SizeMax: 65, BubbleSpeed: 20, MissPenaltyPoints: 5},
	"medium": {Name: "Medium", SpawnIntervalMs: 1000, MaxActiveBubbles: 35, SizeMin: 25, SizeMax: 50, BubbleSpeed: 30, MissPenaltyPoints: 10},
	"hard":   {Name: "Hard", SpawnIntervalMs: 500, MaxActiveBubbles: 55, SizeMin: 30, SizeMax: 100, BubbleSpeed: 55, MissPenaltyPoints: 20},
	"pro":    {Name: "Pro", SpawnIntervalMs: 200, MaxActiveBubbles: 100, SizeMin: 20, SizeMax: 60, BubbleSpeed: 90, MissPenaltyPoints: 30},
	"custom": {Name: "Custom", SpawnIntervalMs: 1000, MaxActiveBubbles: 35, SizeMin: 25, SizeMax: 50, BubbleSpeed: 30, MissPenaltyPoints: 10},
}

// ProfileByName returns a built-in profile.
func ProfileByName(name string) (DifficultyProfile, error) {
	p, ok := Difficulties[strings.ToLower(name)]
	if !ok {
		return DifficultyProfile{}, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidProfile, name)
	}
	return p, nil
}

// IntRange is an inclusive input range.
type IntRange struct {
	Min, Max int
}

// Contains reports whether v is within the range.
func (r IntRange) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// CustomParams are the six slider values of the custom difficulty.
type CustomParams struct {
	SpawnIntervalMs int
	MaxBubbles      int
	SizeMin         int
	SizeMax         int
	Speed           int
	Penalty         int
}

// CustomRanges are the slider ranges of the custom difficulty.
var CustomRanges = struct {
	SpawnIntervalMs IntRange
	MaxBubbles      IntRange
	Size            IntRange
	Speed           IntRange
	Penalty         IntRange
}{
	SpawnIntervalMs: IntRange{100, 3000},
	MaxBubbles:      IntRange{5, 150},
	Size:            IntRange{10, 150},
	Speed:           IntRange{5, 200},
	Penalty:         IntRange{0, 100},
}

// DefaultCustomParams returns the slider defaults.
func DefaultCustomParams() CustomParams {
	d := Difficulties["custom"]
	return CustomParams{
		SpawnIntervalMs: int(d.SpawnIntervalMs),
		MaxBubbles:      d.MaxActiveBubbles,
		SizeMin:         int(d.SizeMin),
		SizeMax:         int(d.SizeMax),
		Speed:           int(d.BubbleSpeed),
		Penalty:         d.MissPenaltyPoints,
	}
}

// NewCustomProfile validates slider values against their ranges. A minimum
// size larger than the maximum is swapped rather than rejected.
func NewCustomProfile(p CustomParams) (DifficultyProfile, error) {
	checks := []struct {
		name  string
		value int
		r     IntRange
	}{
		{"spawn interval", p.SpawnIntervalMs, CustomRanges.SpawnIntervalMs},
		{"max bubbles", p.MaxBubbles, CustomRanges.MaxBubbles},
		{"min size", p.SizeMin, CustomRanges.Size},
		{"max size", p.SizeMax, CustomRanges.Size},
		{"speed", p.Speed, CustomRanges.Speed},
		{"penalty", p.Penalty, CustomRanges.Penalty},
	}
	for _, c := range checks {
		if !c.r.Contains(c.value) {
			return DifficultyProfile{}, fmt.Errorf("%w: %s %d outside [%d, %d]",
				ErrInvalidProfile, c.name, c.value, c.r.Min, c.r.Max)
		}
	}

	sizeMin, sizeMax := p.SizeMin, p.SizeMax
	if sizeMin > sizeMax {
		sizeMin, sizeMax = sizeMax, sizeMin
	}

	return DifficultyProfile{
		Name:              "Custom",
		SpawnIntervalMs:   float64(p.SpawnIntervalMs),
		MaxActiveBubbles:  p.MaxBubbles,
		SizeMin:           float64(sizeMin),
		SizeMax:           float64(sizeMax),
		BubbleSpeed:       float64(p.Speed),
		MissPenaltyPoints: p.Penalty,
	}, nil
}
