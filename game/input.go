package game

import "strings"

// Canonical control keys.
const (
	KeyMute    = "m"
	KeyPause   = "p"
	KeyRestart = "r"
)

// KeyMap maps alternative keys to canonical control keys.
var KeyMap = map[string]string{
	"escape": KeyPause,
	"esc":    KeyPause,
	" ":      KeyPause,
	"space":  KeyPause,
}

// TranslateKey converts a key name to its canonical control key.
func TranslateKey(key string) string {
	k := strings.ToLower(key)
	if mapped, ok := KeyMap[k]; ok {
		return mapped
	}
	return k
}

// PointerID identifies a pointer source: the mouse or one touch point.
type PointerID string

// MousePointer is the pointer id of the mouse.
const MousePointer PointerID = "mouse"

// PointerCooldowns rate-limits pointer-downs per pointer id.
type PointerCooldowns struct {
	window float64
	last   map[PointerID]float64
}

// NewPointerCooldowns creates a limiter allowing one press per window
// milliseconds for each pointer.
func NewPointerCooldowns(window float64) *PointerCooldowns {
	return &PointerCooldowns{
		window: window,
		last:   make(map[PointerID]float64),
	}
}

// Allow reports whether a press by id at now is accepted, and records it.
func (c *PointerCooldowns) Allow(id PointerID, now float64) bool {
	if t, ok := c.last[id]; ok && now-t < c.window {
		return false
	}
	c.last[id] = now
	if len(c.last) > 32 {
		c.prune(now)
	}
	return true
}

// prune forgets pointers whose cooldown has passed.
func (c *PointerCooldowns) prune(now float64) {
	for id, t := range c.last {
		if now-t >= c.window {
			delete(c.last, id)
		}
	}
}

// Shift moves every recorded press by d milliseconds.
func (c *PointerCooldowns) Shift(d float64) {
	for id := range c.last {
		c.last[id] += d
	}
}

// Reset forgets all pointers.
func (c *PointerCooldowns) Reset() {
	c.last = make(map[PointerID]float64)
}
