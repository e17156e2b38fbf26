package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/simukka/pop-bubbles/audio"
	"github.com/simukka/pop-bubbles/common"
)

// ErrInvalidTransition is returned when an action is not allowed on the
// current screen.
var ErrInvalidTransition = errors.New("game: invalid screen transition")

// Screen is the top-level state of a session.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenRunning
	ScreenPaused
	ScreenGameOver
)

var screenNames = [...]string{"menu", "running", "paused", "gameOver"}

func (s Screen) String() string {
	if s < 0 || int(s) >= len(screenNames) {
		return "unknown"
	}
	return screenNames[s]
}

// GameOverStats are the figures shown on the game-over screen.
type GameOverStats struct {
	Score     int
	HighScore int
	MaxStreak int
}

// Options configures a new session. Sound and Store may be nil.
type Options struct {
	Width, Height float64
	Rand          common.Rand
	Sound         SoundSink
	Store         HighScoreStore
	DevMode       bool
}

// Session is the complete state of one player's game. All times are
// milliseconds on the caller's monotonic clock.
type Session struct {
	Width, Height float64
	Screen        Screen
	Profile       DifficultyProfile

	Score     int
	HighScore int
	Combo     int
	Streak    int
	MaxStreak int
	Lives     int

	TimeScale   float64
	SlowMoEndAt float64
	LastPopAt   float64
	Muted       bool

	Bubbles   []*Bubble
	Particles *ParticlePool
	Banners   Banners
	Stats     GameOverStats

	DevMode bool
	FPS     FPSCounter

	rng       common.Rand
	reseed    seedable
	baseSeed  uint32
	runs      int
	sound     SoundSink
	store     HighScoreStore
	cooldowns *PointerCooldowns

	nextBubbleID  int
	lastSpawnAt   float64
	spawnInterval float64
	lastFrameAt   float64
	hasFrame      bool
	pausedAt      float64
}

// seedable is a generator that can be restarted from a new seed.
type seedable interface {
	Seed() uint32
	SetSeed(seed uint32)
}

// NewSession creates a session on the menu screen and loads the high score.
func NewSession(opts Options) *Session {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Rand == nil {
		opts.Rand = common.NewSeededRNG(1)
	}

	s := &Session{
		Width:     opts.Width,
		Height:    opts.Height,
		Screen:    ScreenMenu,
		Profile:   Difficulties["easy"],
		Particles: NewParticlePool(Rules.MaxParticles),
		DevMode:   opts.DevMode,
		rng:       opts.Rand,
		sound:     opts.Sound,
		store:     opts.Store,
		cooldowns: NewPointerCooldowns(Rules.PointerCooldownMs),
	}
	if r, ok := opts.Rand.(seedable); ok {
		s.reseed = r
		s.baseSeed = r.Seed()
	}
	s.reset()
	s.loadHighScore()
	return s
}

// reset clears everything but the high score and the mute state.
func (s *Session) reset() {
	s.Score = 0
	s.Combo = 0
	s.Streak = 0
	s.MaxStreak = 0
	s.Lives = Rules.MaxLives
	s.TimeScale = 1
	s.SlowMoEndAt = 0
	s.LastPopAt = math.Inf(-1)
	s.Bubbles = nil
	s.Particles.Clear()
	s.Banners.Clear()
	s.Stats = GameOverStats{}
	s.cooldowns.Reset()
	s.nextBubbleID = 0
	s.pausedAt = 0
}

// Resize changes the playfield dimensions.
func (s *Session) Resize(width, height float64) {
	if width > 0 {
		s.Width = width
	}
	if height > 0 {
		s.Height = height
	}
}

// Start begins a run with the given profile. Only allowed from the menu.
// A seeded generator is reseeded per run, so every run from the same base
// seed is reproducible and consecutive runs differ.
func (s *Session) Start(profile DifficultyProfile, now float64) error {
	if s.Screen != ScreenMenu {
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, s.Screen)
	}

	s.reset()
	s.runs++
	if s.reseed != nil {
		s.reseed.SetSeed(common.SessionSeed(s.baseSeed, s.runs))
	}
	s.Profile = profile
	s.spawnInterval = profile.SpawnIntervalMs
	s.lastSpawnAt = now - profile.SpawnIntervalMs
	s.lastFrameAt = now
	s.hasFrame = true
	s.Screen = ScreenRunning

	common.Info("game started", "difficulty", profile.Name, "run", s.runs)
	return nil
}

// StartByName starts a run with a built-in difficulty.
func (s *Session) StartByName(name string, now float64) error {
	profile, err := ProfileByName(name)
	if err != nil {
		return err
	}
	return s.Start(profile, now)
}

// Tick advances the simulation to now. Only a running session changes.
func (s *Session) Tick(now float64) {
	dt := 0.0
	if s.hasFrame {
		dt = math.Max(0, (now-s.lastFrameAt)/1000)
	}
	s.lastFrameAt = now
	s.hasFrame = true

	if s.DevMode {
		s.FPS.Update(now)
	}

	if s.Screen != ScreenRunning {
		return
	}

	s.spawn(now)
	s.updateBubbles(dt, now)
	if s.Screen != ScreenRunning {
		return
	}
	s.Particles.Update(dt, s.TimeScale)
	s.updateSlowMo(now)
}

// PointerDown handles a press at canvas coordinates (x, y). It reports
// whether the press was accepted.
func (s *Session) PointerDown(id PointerID, x, y, now float64) bool {
	if s.Screen != ScreenRunning {
		return false
	}
	if !s.cooldowns.Allow(id, now) {
		return false
	}

	if i := s.HitTest(x, y); i >= 0 {
		s.pop(i, x, y, now)
		return true
	}

	s.emit(audio.Event{Kind: audio.EventMiss})
	s.applyPenalty(now)
	s.Banners.Show(BannerMissClick, now)
	return true
}

// KeyDown handles a control key.
func (s *Session) KeyDown(key string, now float64) {
	switch TranslateKey(key) {
	case KeyMute:
		s.ToggleMute()
	case KeyPause:
		s.TogglePause(now)
	case KeyRestart:
		s.Restart()
	}
}

// ToggleMute flips the mute state and forwards it to the sound sink.
func (s *Session) ToggleMute() {
	s.SetMuted(!s.Muted)
}

// SetMuted sets the mute state.
func (s *Session) SetMuted(muted bool) {
	s.Muted = muted
	if m, ok := s.sound.(Muter); ok {
		m.SetMuted(muted)
	}
}

// TogglePause switches between running and paused. Resuming shifts every
// pending deadline by the time spent paused.
func (s *Session) TogglePause(now float64) {
	switch s.Screen {
	case ScreenRunning:
		s.Screen = ScreenPaused
		s.pausedAt = now
	case ScreenPaused:
		d := now - s.pausedAt
		s.lastSpawnAt += d
		s.LastPopAt += d
		s.SlowMoEndAt += d
		s.Banners.Shift(d)
		s.cooldowns.Shift(d)
		s.lastFrameAt = now
		s.Screen = ScreenRunning
	}
}

// Restart abandons the current run and returns to the menu.
func (s *Session) Restart() {
	if s.Screen == ScreenMenu {
		return
	}
	s.reset()
	s.Screen = ScreenMenu
}

func (s *Session) gameOver() {
	s.Screen = ScreenGameOver
	s.Stats = GameOverStats{
		Score:     s.Score,
		HighScore: s.HighScore,
		MaxStreak: s.MaxStreak,
	}
	s.emit(audio.Event{Kind: audio.EventGameOver})
	common.Info("game over", "score", s.Score, "highScore", s.HighScore, "maxStreak", s.MaxStreak)
}
