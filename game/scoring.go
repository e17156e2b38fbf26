package game

import (
	"math"

	"github.com/simukka/pop-bubbles/audio"
	"github.com/simukka/pop-bubbles/common"
)

// BaseScore is the score of a bubble before multipliers. Smaller bubbles are
// worth more.
func BaseScore(radius float64) int {
	base := int(math.Round(Rules.BaseScoreNumerator / radius))
	if base < Rules.MinBaseScore {
		return Rules.MinBaseScore
	}
	if base > Rules.MaxBaseScore {
		return Rules.MaxBaseScore
	}
	return base
}

// Multiplier is the combined combo and streak multiplier.
func Multiplier(combo, streak int) float64 {
	comboMult := math.Min(1+float64(combo-1)*Rules.ComboStep, Rules.MaxComboMultiplier)
	return comboMult * (1 + float64(streak)*Rules.StreakBonus)
}

func isMilestone(combo int, milestones []int) bool {
	for _, m := range milestones {
		if combo == m {
			return true
		}
	}
	return false
}

// pop resolves a hit on the bubble at index.
func (s *Session) pop(index int, x, y, now float64) {
	b := s.removeBubble(index)
	perfect := b.distance(x, y) <= b.Radius*Rules.PerfectRadiusFraction

	points := BaseScore(b.Radius)
	if now-s.LastPopAt <= Rules.ComboWindowMs {
		s.Combo++
		s.Streak++
		points = int(math.Round(float64(points) * Multiplier(s.Combo, s.Streak)))

		if isMilestone(s.Combo, Rules.ComboBannerAt) {
			s.Banners.Show(BannerCombo, now)
		}
		if s.Streak >= Rules.StreakBannerMin && s.Streak%Rules.StreakBannerEvery == 0 {
			s.Banners.Show(BannerStreak, now)
		}
	} else {
		s.Combo = 1
		s.Streak++
	}
	if s.Streak > s.MaxStreak {
		s.MaxStreak = s.Streak
	}

	s.Score += points
	s.LastPopAt = now

	if isMilestone(s.Combo, Rules.ComboMilestones) {
		s.triggerSlowMo(now)
	}

	s.Particles.EmitPop(b.X, b.Y, b.Radius, s.rng)

	velocity := b.Radius / 30
	pitchHint := (60 - b.Radius) / 40
	s.emit(audio.PopEvent(velocity, pitchHint, perfect))

	if perfect {
		s.Banners.Show(BannerPerfect, now)
	}

	if s.Score > s.HighScore {
		s.HighScore = s.Score
		s.saveHighScore()
	}

	common.Debug("pop", "bubble", b.ID, "points", points, "combo", s.Combo, "streak", s.Streak, "perfect", perfect)
}

// applyPenalty costs a life and breaks the combo and streak. Losing the last
// life ends the game.
func (s *Session) applyPenalty(now float64) {
	if s.Screen != ScreenRunning {
		return
	}

	s.Lives--
	s.Combo = 0
	s.Streak = 0

	if s.Lives <= 0 {
		s.Lives = 0
		s.gameOver()
		return
	}

	s.Banners.Show(BannerPenalty, now)
	s.emit(audio.Event{Kind: audio.EventLifeLost})
}

// triggerSlowMo drops the time scale for the slow-motion hold period.
func (s *Session) triggerSlowMo(now float64) {
	s.TimeScale = Rules.SlowMoScale
	s.SlowMoEndAt = now + Rules.SlowMoHoldMs
	s.emit(audio.Event{Kind: audio.EventSlowMo})
}

// updateSlowMo recovers the time scale once the hold period is over.
func (s *Session) updateSlowMo(now float64) {
	if s.TimeScale >= 1 || now <= s.SlowMoEndAt {
		return
	}
	s.TimeScale = math.Min(1, s.TimeScale+Rules.SlowMoRecoveryPerTick)
}
