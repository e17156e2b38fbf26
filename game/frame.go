package game

// Frame is a read-only snapshot of a session for rendering.
type Frame struct {
	Width, Height float64
	Screen        Screen
	Difficulty    string

	Score     int
	HighScore int
	Combo     int
	Streak    int
	MaxStreak int
	Lives     int
	MaxLives  int

	TimeScale float64
	Muted     bool
	SlowMo    bool

	Bubbles []Bubble
	// Particles alias the session's pool and are valid until the next Tick.
	Particles []Particle
	Banners   []BannerKind
	Stats     GameOverStats

	DevMode bool
	FPS     float64
}

// Frame snapshots the session at now.
func (s *Session) Frame(now float64) Frame {
	bubbles := make([]Bubble, len(s.Bubbles))
	for i, b := range s.Bubbles {
		bubbles[i] = *b
	}

	return Frame{
		Width:      s.Width,
		Height:     s.Height,
		Screen:     s.Screen,
		Difficulty: s.Profile.Name,
		Score:      s.Score,
		HighScore:  s.HighScore,
		Combo:      s.Combo,
		Streak:     s.Streak,
		MaxStreak:  s.MaxStreak,
		Lives:      s.Lives,
		MaxLives:   Rules.MaxLives,
		TimeScale:  s.TimeScale,
		Muted:      s.Muted,
		SlowMo:     s.TimeScale < 1,
		Bubbles:    bubbles,
		Particles:  s.Particles.Active(),
		Banners:    s.Banners.Visible(now),
		Stats:      s.Stats,
		DevMode:    s.DevMode,
		FPS:        s.FPS.Current,
	}
}
