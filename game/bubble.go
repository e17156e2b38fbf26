package game

import (
	"math"

	"github.com/simukka/pop-bubbles/common"
)

// Bubble is a poppable target rising from the bottom of the canvas.
type Bubble struct {
	ID     int
	X, Y   float64
	Radius float64
	VX, VY float64
	BornAt float64
}

// Contains reports whether (x, y) is on the bubble.
func (b *Bubble) Contains(x, y float64) bool {
	return b.distance(x, y) <= b.Radius
}

func (b *Bubble) distance(x, y float64) float64 {
	return math.Hypot(x-b.X, y-b.Y)
}

// escaped reports whether the bubble has fully left the top, left or right edge.
func (b *Bubble) escaped(width float64) bool {
	return b.Y < -b.Radius || b.X < -b.Radius || b.X > width+b.Radius
}

// spawnBubble creates a bubble just below the bottom edge if the profile's
// bubble cap allows it.
func (s *Session) spawnBubble(now float64) *Bubble {
	p := s.Profile
	if len(s.Bubbles) >= p.MaxActiveBubbles {
		return nil
	}

	radius := common.RandomFloat(s.rng, p.SizeMin, p.SizeMax)
	x := s.Width / 2
	if s.Width > radius*2 {
		x = common.RandomFloat(s.rng, radius, s.Width-radius)
	}

	b := &Bubble{
		ID:     s.nextBubbleID,
		X:      x,
		Y:      s.Height + radius,
		Radius: radius,
		VX:     common.RandomFloat(s.rng, -Rules.DriftSpeed/2, Rules.DriftSpeed/2),
		VY:     -common.RandomFloat(s.rng, p.BubbleSpeed, p.BubbleSpeed+Rules.RiseJitter),
		BornAt: now,
	}
	s.nextBubbleID++
	s.Bubbles = append(s.Bubbles, b)
	return b
}

// spawn runs the spawn timer. The interval is re-jittered after every attempt.
func (s *Session) spawn(now float64) {
	if now-s.lastSpawnAt < s.spawnInterval {
		return
	}
	s.spawnBubble(now)
	s.lastSpawnAt = now
	s.spawnInterval = common.RandomFloat(s.rng, s.Profile.SpawnIntervalMs, s.Profile.SpawnIntervalMs+Rules.SpawnJitterMs)
}

// updateBubbles integrates bubble motion and removes escaped bubbles, one
// penalty per escape. Stops early if a penalty ends the game.
func (s *Session) updateBubbles(dt, now float64) {
	for i := len(s.Bubbles) - 1; i >= 0; i-- {
		b := s.Bubbles[i]

		b.X += b.VX * dt * s.TimeScale
		b.Y += b.VY * dt * s.TimeScale
		b.X += math.Sin(now*0.001+float64(b.ID)) * Rules.WobbleAmplitude

		if b.escaped(s.Width) {
			s.removeBubble(i)
			s.applyPenalty(now)
			if s.Screen != ScreenRunning {
				return
			}
		}
	}
}

// HitTest returns the index of the newest bubble containing (x, y), or -1.
func (s *Session) HitTest(x, y float64) int {
	for i := len(s.Bubbles) - 1; i >= 0; i-- {
		if s.Bubbles[i].Contains(x, y) {
			return i
		}
	}
	return -1
}

// removeBubble deletes a bubble keeping spawn order, which hit testing relies on.
func (s *Session) removeBubble(index int) *Bubble {
	b := s.Bubbles[index]
	copy(s.Bubbles[index:], s.Bubbles[index+1:])
	s.Bubbles[len(s.Bubbles)-1] = nil
	s.Bubbles = s.Bubbles[:len(s.Bubbles)-1]
	return b
}
