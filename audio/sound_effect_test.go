package audio

import (
	"errors"
	"testing"

	"github.com/simukka/pop-bubbles/common"
)

func TestBuildGraph_Durations(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		expected float64
	}{
		{"miss", Event{Kind: EventMiss}, 0.2},
		{"slowMo", Event{Kind: EventSlowMo}, 0.7},
		{"lifeLost", Event{Kind: EventLifeLost}, 0.8},
		{"gameOver", Event{Kind: EventGameOver}, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := BuildGraph(tt.event, common.NewSeededRNG(1))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !floatNear(g.Duration(), tt.expected, 1e-9) {
				t.Errorf("Expected duration %f, got %f", tt.expected, g.Duration())
			}
		})
	}
}

func TestBuildGraph_PopDurationRange(t *testing.T) {
	rng := common.NewSeededRNG(5)
	for i := 0; i < 50; i++ {
		g, err := BuildGraph(PopEvent(1, 0.5, false), rng)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if d := g.Duration(); d < 0.15 || d > 0.25 {
			t.Fatalf("Expected pop duration in [0.15, 0.25], got %f", d)
		}
		if len(g.Voices) != 2 {
			t.Fatalf("Expected tone and noise voices, got %d", len(g.Voices))
		}
	}
}

func TestBuildGraph_PerfectPopAddsSparkle(t *testing.T) {
	g, _ := BuildGraph(PopEvent(1, 0.5, true), common.NewSeededRNG(5))
	if len(g.Voices) != 3 {
		t.Errorf("Expected sparkle voice on perfect pop, got %d voices", len(g.Voices))
	}
}

func TestBuildGraph_Unknown(t *testing.T) {
	_, err := BuildGraph(Event{Kind: EventKind(42)}, common.NewSeededRNG(1))
	if !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("Expected ErrUnknownEvent, got %v", err)
	}
}

func TestPopEvent_ClampsInputs(t *testing.T) {
	ev := PopEvent(3, -1, false)
	if ev.Velocity != 1 || ev.PitchHint != 0 {
		t.Errorf("Expected clamped (1, 0), got (%f, %f)", ev.Velocity, ev.PitchHint)
	}
}

func TestParseEventKind(t *testing.T) {
	tests := []struct {
		input    string
		expected EventKind
	}{
		{"pop", EventPop},
		{"MISS", EventMiss},
		{"slowmo", EventSlowMo},
		{"lifeLost", EventLifeLost},
		{"gameover", EventGameOver},
	}
	for _, tt := range tests {
		got, err := ParseEventKind(tt.input)
		if err != nil || got != tt.expected {
			t.Errorf("ParseEventKind(%q) = %v, %v; expected %v", tt.input, got, err, tt.expected)
		}
	}
	if _, err := ParseEventKind("boom"); !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("Expected ErrUnknownEvent, got %v", err)
	}
}

func TestRender_SampleCountAndRange(t *testing.T) {
	g, _ := BuildGraph(Event{Kind: EventGameOver}, common.NewSeededRNG(1))
	samples := Render(g, 8000, 1)

	if len(samples) != 16000 {
		t.Fatalf("Expected 16000 samples, got %d", len(samples))
	}

	nonZero := false
	for i, s := range samples {
		if s < -1 || s > 1 {
			t.Fatalf("Sample %d out of range: %f", i, s)
		}
		if s != 0 {
			nonZero = true
		}
	}
	if !nonZero {
		t.Error("Expected audible samples")
	}
}

func TestRender_MasterVolumeZeroIsSilent(t *testing.T) {
	g, _ := BuildGraph(Event{Kind: EventMiss}, common.NewSeededRNG(1))
	for i, s := range Render(g, 8000, 0) {
		if s != 0 {
			t.Fatalf("Expected silence at sample %d, got %f", i, s)
		}
	}
}

func TestRender_EnvelopeFadesOut(t *testing.T) {
	g, _ := BuildGraph(Event{Kind: EventMiss}, common.NewSeededRNG(1))
	samples := Render(g, 8000, 1)

	var peak float32
	for _, s := range samples[len(samples)-20:] {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	if peak > 0.01 {
		t.Errorf("Expected tail below 0.01, got %f", peak)
	}
}

func TestOscillator_WaveRange(t *testing.T) {
	for _, w := range []WaveType{WaveSine, WaveSquare, WaveSawtooth, WaveTriangle} {
		osc := NewOscillator(w, 440)
		for i := 0; i < 1000; i++ {
			v := osc.Next(float64(i)/44100, 1.0/44100)
			if v < -1 || v > 1 {
				t.Fatalf("%s sample %d out of range: %f", w, i, v)
			}
		}
	}
}
