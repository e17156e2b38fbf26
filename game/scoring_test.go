package game

import (
	"math"
	"testing"

	"github.com/simukka/pop-bubbles/audio"
)

func TestBaseScore(t *testing.T) {
	tests := []struct {
		radius float64
		want   int
	}{
		{30, 33},
		{20, 50},
		{10, 60},
		{150, 10},
		{50, 20},
	}
	for _, tt := range tests {
		if got := BaseScore(tt.radius); got != tt.want {
			t.Errorf("BaseScore(%v): expected %d, got %d", tt.radius, tt.want, got)
		}
	}
}

func TestMultiplier(t *testing.T) {
	tests := []struct {
		combo, streak int
		want          float64
	}{
		{1, 0, 1},
		{5, 5, 2.25},
		{2, 2, 1.32},
		{100, 0, 4},
	}
	for _, tt := range tests {
		if got := Multiplier(tt.combo, tt.streak); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Multiplier(%d, %d): expected %v, got %v", tt.combo, tt.streak, tt.want, got)
		}
	}
}

func TestPop_FirstPopScoresBase(t *testing.T) {
	s, sink := newRunningSession()
	addBubble(s, 200, 200, 30)

	if !s.PointerDown(MousePointer, 200, 200, 1000) {
		t.Fatal("Expected press to be accepted")
	}

	if s.Score != 33 {
		t.Errorf("Expected score 33, got %d", s.Score)
	}
	if s.Combo != 1 || s.Streak != 1 {
		t.Errorf("Expected combo 1 streak 1, got combo %d streak %d", s.Combo, s.Streak)
	}
	if len(s.Bubbles) != 0 {
		t.Errorf("Expected bubble removed, got %d bubbles", len(s.Bubbles))
	}
	if len(sink.events) != 1 || sink.events[0].Kind != audio.EventPop {
		t.Fatalf("Expected one pop event, got %v", sink.kinds())
	}
	if sink.events[0].Velocity != 1 || sink.events[0].PitchHint != 0.75 {
		t.Errorf("Expected velocity 1 pitch 0.75, got %v %v", sink.events[0].Velocity, sink.events[0].PitchHint)
	}
}

func TestPop_ComboWithinWindow(t *testing.T) {
	s, _ := newRunningSession()
	addBubble(s, 100, 100, 30)
	addBubble(s, 300, 300, 30)

	s.PointerDown(MousePointer, 100, 100, 1000)
	s.PointerDown(MousePointer, 300, 300, 1800)

	if s.Combo != 2 {
		t.Errorf("Expected combo 2 at the window edge, got %d", s.Combo)
	}
	// 33 + round(33 * 1.2 * 1.1)
	if s.Score != 33+44 {
		t.Errorf("Expected score %d, got %d", 33+44, s.Score)
	}
}

func TestPop_ComboResetsAfterWindow(t *testing.T) {
	s, _ := newRunningSession()
	addBubble(s, 100, 100, 30)
	addBubble(s, 300, 300, 30)

	s.PointerDown(MousePointer, 100, 100, 1000)
	s.PointerDown(MousePointer, 300, 300, 1801)

	if s.Combo != 1 {
		t.Errorf("Expected combo 1, got %d", s.Combo)
	}
	if s.Streak != 2 {
		t.Errorf("Expected streak to keep growing, got %d", s.Streak)
	}
	if s.Score != 66 {
		t.Errorf("Expected score 66, got %d", s.Score)
	}
}

func TestPop_ComboFiveStreakFive(t *testing.T) {
	s, _ := newRunningSession()
	s.Combo = 4
	s.Streak = 4
	s.LastPopAt = 900
	addBubble(s, 100, 100, 30)

	s.PointerDown(MousePointer, 100, 100, 1000)

	// round(33 * 2.25)
	if s.Score != 74 {
		t.Errorf("Expected score 74, got %d", s.Score)
	}
	if !s.Banners.Active(BannerCombo, 1000) {
		t.Error("Expected combo banner at combo 5")
	}
}

func TestPop_SlowMoMilestone(t *testing.T) {
	s, sink := newRunningSession()
	s.Combo = 7
	s.LastPopAt = 4900
	addBubble(s, 100, 100, 30)

	s.PointerDown(MousePointer, 100, 100, 5000)

	if s.TimeScale != 0.5 {
		t.Fatalf("Expected time scale 0.5, got %v", s.TimeScale)
	}
	if s.SlowMoEndAt != 5700 {
		t.Errorf("Expected slow-mo end at 5700, got %v", s.SlowMoEndAt)
	}
	kinds := sink.kinds()
	if len(kinds) != 2 || kinds[0] != audio.EventSlowMo || kinds[1] != audio.EventPop {
		t.Errorf("Expected slowMo then pop, got %v", kinds)
	}

	s.Tick(5700)
	if s.TimeScale != 0.5 {
		t.Errorf("Expected time scale held at 0.5, got %v", s.TimeScale)
	}

	s.Tick(5733)
	if math.Abs(s.TimeScale-0.52) > 1e-9 {
		t.Errorf("Expected time scale 0.52, got %v", s.TimeScale)
	}

	for i := 0; i < 40; i++ {
		s.Tick(5733 + float64(i+1)*33)
	}
	if s.TimeScale != 1 {
		t.Errorf("Expected time scale recovered to 1, got %v", s.TimeScale)
	}
}

func TestPop_StreakBanner(t *testing.T) {
	s, _ := newRunningSession()
	s.Combo = 1
	s.Streak = 9
	s.LastPopAt = 900
	addBubble(s, 100, 100, 30)

	s.PointerDown(MousePointer, 100, 100, 1000)

	if !s.Banners.Active(BannerStreak, 1000) {
		t.Error("Expected streak banner at streak 10")
	}
}

func TestPop_Perfect(t *testing.T) {
	tests := []struct {
		name    string
		offset  float64
		perfect bool
	}{
		{"center", 0, true},
		{"quarter radius", 10, true},
		{"half radius", 20, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, sink := newRunningSession()
			addBubble(s, 200, 200, 40)

			s.PointerDown(MousePointer, 200+tt.offset, 200, 1000)

			if got := sink.events[len(sink.events)-1].Perfect; got != tt.perfect {
				t.Errorf("Expected perfect %v, got %v", tt.perfect, got)
			}
			if got := s.Banners.Active(BannerPerfect, 1000); got != tt.perfect {
				t.Errorf("Expected perfect banner %v, got %v", tt.perfect, got)
			}
		})
	}
}

func TestPop_HighScoreSaved(t *testing.T) {
	store := &memStore{score: 10}
	s := NewSession(Options{Rand: fixedRand{0.5}, Store: store})
	if s.HighScore != 10 {
		t.Fatalf("Expected loaded high score 10, got %d", s.HighScore)
	}
	s.StartByName("medium", 0)
	addBubble(s, 100, 100, 30)

	s.PointerDown(MousePointer, 100, 100, 1000)

	if s.HighScore != 33 || store.score != 33 {
		t.Errorf("Expected high score 33 saved, got %d stored %d", s.HighScore, store.score)
	}
}

func TestPenalty_MissClick(t *testing.T) {
	s, sink := newRunningSession()
	s.Combo = 4
	s.Streak = 6

	s.PointerDown(MousePointer, 50, 50, 1000)

	if s.Lives != Rules.MaxLives-1 {
		t.Errorf("Expected %d lives, got %d", Rules.MaxLives-1, s.Lives)
	}
	if s.Combo != 0 || s.Streak != 0 {
		t.Errorf("Expected combo and streak reset, got %d %d", s.Combo, s.Streak)
	}
	if !s.Banners.Active(BannerMissClick, 1000) || !s.Banners.Active(BannerPenalty, 1000) {
		t.Error("Expected miss and penalty banners")
	}
	kinds := sink.kinds()
	if len(kinds) != 2 || kinds[0] != audio.EventMiss || kinds[1] != audio.EventLifeLost {
		t.Errorf("Expected miss then lifeLost, got %v", kinds)
	}
}

func TestPenalty_GameOver(t *testing.T) {
	s, sink := newRunningSession()
	s.Score = 120
	s.MaxStreak = 7
	s.Lives = 1

	s.PointerDown(MousePointer, 50, 50, 1000)

	if s.Screen != ScreenGameOver {
		t.Fatalf("Expected game over, got %s", s.Screen)
	}
	if s.Lives != 0 {
		t.Errorf("Expected 0 lives, got %d", s.Lives)
	}
	want := GameOverStats{Score: 120, HighScore: 0, MaxStreak: 7}
	if s.Stats != want {
		t.Errorf("Expected stats %+v, got %+v", want, s.Stats)
	}
	kinds := sink.kinds()
	if kinds[len(kinds)-1] != audio.EventGameOver {
		t.Errorf("Expected gameOver sound last, got %v", kinds)
	}

	b := addBubble(s, 300, 300, 30)
	b.VY = -50
	s.Tick(2000)
	if b.Y != 300 {
		t.Errorf("Expected bubbles frozen after game over, got y=%v", b.Y)
	}
	if s.PointerDown(MousePointer, 300, 300, 3000) {
		t.Error("Expected presses ignored after game over")
	}
}
