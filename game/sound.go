package game

import "github.com/simukka/pop-bubbles/audio"

// SoundSink receives sound events from the session. *audio.Queue and
// *audio.AudioManager both satisfy it.
type SoundSink interface {
	Emit(audio.Event)
}

// Muter is implemented by sinks that can be muted.
type Muter interface {
	SetMuted(bool)
}

func (s *Session) emit(ev audio.Event) {
	if s.sound != nil {
		s.sound.Emit(ev)
	}
}
