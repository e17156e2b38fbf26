package game

import (
	"errors"
	"math"
	"testing"

	"github.com/simukka/pop-bubbles/common"
)

func TestNewSession_Defaults(t *testing.T) {
	s := NewSession(Options{})

	if s.Screen != ScreenMenu {
		t.Errorf("Expected menu screen, got %s", s.Screen)
	}
	if s.Width != DefaultWidth || s.Height != DefaultHeight {
		t.Errorf("Expected %dx%d, got %vx%v", DefaultWidth, DefaultHeight, s.Width, s.Height)
	}
	if s.Lives != Rules.MaxLives {
		t.Errorf("Expected %d lives, got %d", Rules.MaxLives, s.Lives)
	}
	if s.TimeScale != 1 {
		t.Errorf("Expected time scale 1, got %v", s.TimeScale)
	}
	if !math.IsInf(s.LastPopAt, -1) {
		t.Errorf("Expected no previous pop, got %v", s.LastPopAt)
	}
}

func TestNewSession_StoreError(t *testing.T) {
	s := NewSession(Options{Store: &memStore{score: 99, err: errors.New("denied")}})
	if s.HighScore != 0 {
		t.Errorf("Expected high score 0 on load error, got %d", s.HighScore)
	}
}

func TestStart_OnlyFromMenu(t *testing.T) {
	s, _ := newRunningSession()

	err := s.StartByName("hard", 100)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition, got %v", err)
	}
	if s.Profile.Name != "Easy" {
		t.Errorf("Expected profile unchanged, got %s", s.Profile.Name)
	}
}

func TestStart_UnknownDifficulty(t *testing.T) {
	s := NewSession(Options{})
	if err := s.StartByName("nightmare", 0); !errors.Is(err, ErrInvalidProfile) {
		t.Errorf("Expected ErrInvalidProfile, got %v", err)
	}
	if s.Screen != ScreenMenu {
		t.Errorf("Expected menu screen, got %s", s.Screen)
	}
}

func TestTick_FirstSpawnImmediate(t *testing.T) {
	s, _ := newRunningSession()

	s.Tick(16)
	if len(s.Bubbles) != 1 {
		t.Fatalf("Expected one bubble after first tick, got %d", len(s.Bubbles))
	}

	s.Tick(32)
	if len(s.Bubbles) != 1 {
		t.Errorf("Expected no spawn before the interval, got %d bubbles", len(s.Bubbles))
	}

	// easy interval 1500 + 0.5 * 200 jitter
	s.Tick(16 + 1600)
	if len(s.Bubbles) != 2 {
		t.Errorf("Expected second spawn after the jittered interval, got %d bubbles", len(s.Bubbles))
	}
}

func TestTick_SpawnCap(t *testing.T) {
	s, _ := newRunningSession()
	s.Profile.MaxActiveBubbles = 2
	s.Profile.SpawnIntervalMs = 10

	for i := 1; i <= 20; i++ {
		s.Tick(float64(i) * 200)
	}

	if len(s.Bubbles) != 2 {
		t.Errorf("Expected bubble count capped at 2, got %d", len(s.Bubbles))
	}
}

func TestTick_BubbleRises(t *testing.T) {
	s, _ := newRunningSession()
	b := addBubble(s, 400, 300, 30)
	b.VY = -40
	s.lastSpawnAt = 0
	s.spawnInterval = 1e9

	s.Tick(500)

	if math.Abs(b.Y-280) > 1e-9 {
		t.Errorf("Expected y=280 after 0.5s, got %v", b.Y)
	}
}

func TestTick_SlowMoHalvesMotion(t *testing.T) {
	s, _ := newRunningSession()
	b := addBubble(s, 400, 300, 30)
	b.VY = -40
	s.TimeScale = 0.5
	s.SlowMoEndAt = 10000
	s.spawnInterval = 1e9

	s.Tick(500)

	if math.Abs(b.Y-290) > 1e-9 {
		t.Errorf("Expected y=290 under slow motion, got %v", b.Y)
	}
}

func TestTick_Escapes(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"top", 400, -100},
		{"left", -100, 300},
		{"right", 900, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newRunningSession()
			s.spawnInterval = 1e9
			s.Combo = 3
			addBubble(s, tt.x, tt.y, 30)

			s.Tick(16)

			if len(s.Bubbles) != 0 {
				t.Errorf("Expected escaped bubble removed, got %d", len(s.Bubbles))
			}
			if s.Lives != Rules.MaxLives-1 {
				t.Errorf("Expected exactly one penalty, got %d lives", s.Lives)
			}
			if s.Combo != 0 {
				t.Errorf("Expected combo reset, got %d", s.Combo)
			}
		})
	}
}

func TestTick_EscapesStopAtGameOver(t *testing.T) {
	s, _ := newRunningSession()
	s.spawnInterval = 1e9
	s.Lives = 1
	for i := 0; i < 3; i++ {
		addBubble(s, 400, -100, 30)
	}

	s.Tick(16)

	if s.Screen != ScreenGameOver {
		t.Fatalf("Expected game over, got %s", s.Screen)
	}
	if len(s.Bubbles) != 2 {
		t.Errorf("Expected processing to stop after game over, got %d bubbles left", len(s.Bubbles))
	}
}

func TestHitTest_NewestFirst(t *testing.T) {
	s, _ := newRunningSession()
	older := addBubble(s, 200, 200, 40)
	newer := addBubble(s, 220, 200, 40)

	s.PointerDown(MousePointer, 210, 200, 1000)

	if len(s.Bubbles) != 1 || s.Bubbles[0] != older {
		t.Errorf("Expected newest bubble %d popped, remaining %v", newer.ID, s.Bubbles)
	}
}

func TestPointerDown_Cooldown(t *testing.T) {
	s, _ := newRunningSession()
	for i := 0; i < 3; i++ {
		addBubble(s, 100, 100, 30)
	}

	if !s.PointerDown(MousePointer, 100, 100, 1000) {
		t.Error("Expected first press accepted")
	}
	if s.PointerDown(MousePointer, 100, 100, 1050) {
		t.Error("Expected press within cooldown rejected")
	}
	if !s.PointerDown("touch-1", 100, 100, 1050) {
		t.Error("Expected press from another pointer accepted")
	}
	if !s.PointerDown(MousePointer, 100, 100, 1100) {
		t.Error("Expected press after cooldown accepted")
	}
	if len(s.Bubbles) != 0 {
		t.Errorf("Expected three pops, %d bubbles left", len(s.Bubbles))
	}
}

func TestPointerDown_IgnoredOutsideRunning(t *testing.T) {
	s := NewSession(Options{})
	if s.PointerDown(MousePointer, 10, 10, 0) {
		t.Error("Expected press ignored on menu")
	}
	if s.Lives != Rules.MaxLives {
		t.Errorf("Expected no penalty on menu, got %d lives", s.Lives)
	}
}

func TestTogglePause(t *testing.T) {
	s, _ := newRunningSession()
	b := addBubble(s, 400, 300, 30)
	b.VY = -40
	s.spawnInterval = 1e9
	s.LastPopAt = 900
	s.SlowMoEndAt = 1500
	s.Banners.Show(BannerCombo, 900)

	s.KeyDown("p", 1000)
	if s.Screen != ScreenPaused {
		t.Fatalf("Expected paused, got %s", s.Screen)
	}

	s.Tick(3000)
	if b.Y != 300 {
		t.Errorf("Expected no motion while paused, got y=%v", b.Y)
	}
	if s.PointerDown(MousePointer, 400, 300, 3000) {
		t.Error("Expected press ignored while paused")
	}

	s.KeyDown("Escape", 6000)
	if s.Screen != ScreenRunning {
		t.Fatalf("Expected running, got %s", s.Screen)
	}
	if s.LastPopAt != 5900 {
		t.Errorf("Expected last pop shifted to 5900, got %v", s.LastPopAt)
	}
	if s.SlowMoEndAt != 6500 {
		t.Errorf("Expected slow-mo end shifted to 6500, got %v", s.SlowMoEndAt)
	}
	if !s.Banners.Active(BannerCombo, 6000) {
		t.Error("Expected combo banner to survive the pause")
	}

	s.Tick(6500)
	if math.Abs(b.Y-280) > 1e-9 {
		t.Errorf("Expected motion to resume without a jump, got y=%v", b.Y)
	}
}

func TestRestart_PreservesHighScore(t *testing.T) {
	s, _ := newRunningSession()
	addBubble(s, 100, 100, 30)
	s.PointerDown(MousePointer, 100, 100, 1000)
	s.PointerDown(MousePointer, 500, 500, 1200)

	s.KeyDown("r", 1300)

	if s.Screen != ScreenMenu {
		t.Errorf("Expected menu after restart, got %s", s.Screen)
	}
	if s.Score != 0 || s.Combo != 0 || s.Streak != 0 || s.MaxStreak != 0 {
		t.Errorf("Expected counters reset, got score %d combo %d streak %d max %d", s.Score, s.Combo, s.Streak, s.MaxStreak)
	}
	if s.Lives != Rules.MaxLives {
		t.Errorf("Expected lives reset, got %d", s.Lives)
	}
	if s.HighScore != 33 {
		t.Errorf("Expected high score kept at 33, got %d", s.HighScore)
	}
	if len(s.Bubbles) != 0 || s.Particles.ActiveCount != 0 {
		t.Error("Expected bubbles and particles cleared")
	}
}

func TestRestart_FromGameOver(t *testing.T) {
	s, _ := newRunningSession()
	s.Lives = 1
	s.PointerDown(MousePointer, 10, 10, 1000)

	s.Restart()
	if s.Screen != ScreenMenu {
		t.Fatalf("Expected menu, got %s", s.Screen)
	}
	if err := s.StartByName("pro", 2000); err != nil {
		t.Errorf("Expected a new run to start, got %v", err)
	}
}

func TestToggleMute(t *testing.T) {
	s, sink := newRunningSession()

	s.KeyDown("M", 0)
	if !s.Muted || !sink.muted {
		t.Error("Expected session and sink muted")
	}
	s.KeyDown("m", 0)
	if s.Muted || sink.muted {
		t.Error("Expected session and sink unmuted")
	}
}

func TestFrame_Snapshot(t *testing.T) {
	s, _ := newRunningSession()
	addBubble(s, 100, 100, 30)
	s.PointerDown(MousePointer, 100, 100, 1000)
	addBubble(s, 300, 300, 30)

	f := s.Frame(1000)

	if f.Screen != ScreenRunning || f.Score != 33 || f.Difficulty != "Easy" {
		t.Errorf("Unexpected frame header %+v", f)
	}
	if len(f.Bubbles) != 1 {
		t.Fatalf("Expected one bubble in frame, got %d", len(f.Bubbles))
	}
	f.Bubbles[0].X = 0
	if s.Bubbles[0].X != 300 {
		t.Error("Expected frame bubbles to be copies")
	}
	if len(f.Particles) != s.Particles.ActiveCount || len(f.Particles) == 0 {
		t.Errorf("Expected %d particles, got %d", s.Particles.ActiveCount, len(f.Particles))
	}
	if f.MaxLives != Rules.MaxLives {
		t.Errorf("Expected max lives %d, got %d", Rules.MaxLives, f.MaxLives)
	}
}

func TestScreenString(t *testing.T) {
	if ScreenGameOver.String() != "gameOver" || Screen(9).String() != "unknown" {
		t.Error("Unexpected screen names")
	}
}

func TestStart_ReseedsPerRun(t *testing.T) {
	firstRadius := func(s *Session) float64 {
		t.Helper()
		if err := s.StartByName("medium", 0); err != nil {
			t.Fatalf("Unexpected error %v", err)
		}
		s.Tick(0)
		if len(s.Bubbles) == 0 {
			t.Fatal("Expected a bubble on the first tick")
		}
		return s.Bubbles[0].Radius
	}

	a := NewSession(Options{Rand: common.NewSeededRNG(7)})
	run1 := firstRadius(a)
	a.Restart()
	run2 := firstRadius(a)
	if run1 == run2 {
		t.Errorf("Expected consecutive runs to differ, both got radius %v", run1)
	}

	b := NewSession(Options{Rand: common.NewSeededRNG(7)})
	if got := firstRadius(b); got != run1 {
		t.Errorf("Expected first run to be reproducible, got %v want %v", got, run1)
	}
	b.Restart()
	if got := firstRadius(b); got != run2 {
		t.Errorf("Expected second run to be reproducible, got %v want %v", got, run2)
	}
}
