package game

import "github.com/simukka/pop-bubbles/common"

// HighScoreStore persists the best score across sessions.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

func (s *Session) loadHighScore() {
	if s.store == nil {
		return
	}
	score, err := s.store.Load()
	if err != nil {
		common.Debug("high score unavailable", "err", err)
		return
	}
	s.HighScore = score
}

func (s *Session) saveHighScore() {
	if s.store == nil {
		return
	}
	if err := s.store.Save(s.HighScore); err != nil {
		common.Debug("high score not saved", "err", err)
	}
}
