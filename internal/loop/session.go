package loop

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
)

// Session carries state across levels: the current level index and the
// score banked from completed levels.
type Session struct {
	level    int
	wonScore float64
	rng      *rand.Rand
	logger   *log.Logger
}

// NewSession creates a session at level 0 drawing randomness from rng.
func NewSession(rng *rand.Rand, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{rng: rng, logger: logger}
}

// Level returns the current level index.
func (s *Session) Level() int {
	return s.level
}

// WonScore returns the score banked from completed levels.
func (s *Session) WonScore() float64 {
	return s.wonScore
}

// TotalScore is the banked score plus the live score of the current level.
func (s *Session) TotalScore(current float64) float64 {
	return s.wonScore + current
}

// NewLevel builds the level for the current index.
func (s *Session) NewLevel() (*Level, error) {
	return NewLevel(DefaultLevelConfig(s.level, s.rng, s.logger))
}

// Win banks the level score and advances to the next level.
func (s *Session) Win(score float64) {
	s.wonScore += score
	s.level++
	s.logger.Debug("session advanced", "level", s.level, "won_score", s.wonScore)
}

// Reset drops the banked score and returns to level 0.
func (s *Session) Reset() {
	s.wonScore = 0
	s.level = 0
	s.logger.Debug("session reset")
}
