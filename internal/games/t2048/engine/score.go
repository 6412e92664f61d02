package engine

import (
	"errors"

	"github.com/charmbracelet/log"
)

// BestStore persists the best score. Failures never affect play.
type BestStore interface {
	LoadBest() (int, error)
	SaveBest(best int) error
}

// GameResult summarizes a finished game.
type GameResult struct {
	SessionID uint64 `json:"session_id"`
	Size      int    `json:"size"`
	Score     int    `json:"score"`
	Best      int    `json:"best"`
	MaxTile   int    `json:"max_tile"`
	Steps     int    `json:"steps"`
}

// ScoreSync is told once per game over about the final score.
// Where and whether it persists the result is up to the implementation.
type ScoreSync interface {
	GameEnded(result GameResult) error
}

// MultiSync fans a result out to several sinks. Every sink is called even
// when an earlier one fails; the errors are joined.
type MultiSync []ScoreSync

// GameEnded implements ScoreSync.
func (m MultiSync) GameEnded(result GameResult) error {
	var errs []error
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.GameEnded(result); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ScoreTracker keeps the running score and the persisted best.
type ScoreTracker struct {
	score  int
	best   int
	store  BestStore
	logger *log.Logger
}

// NewScoreTracker loads the best score from store. A nil store or a failed
// load leaves best at 0 for this process only.
func NewScoreTracker(store BestStore, logger *log.Logger) *ScoreTracker {
	if logger == nil {
		logger = log.Default()
	}
	t := &ScoreTracker{store: store, logger: logger}
	if store != nil {
		best, err := store.LoadBest()
		if err != nil {
			logger.Warn("could not load best score", "error", err)
		} else if best > 0 {
			t.best = best
		}
	}
	return t
}

// Score returns the running score.
func (t *ScoreTracker) Score() int {
	return t.score
}

// Best returns the best score seen so far.
func (t *ScoreTracker) Best() int {
	return t.best
}

// Reset zeroes the running score. Best is kept.
func (t *ScoreTracker) Reset() {
	t.score = 0
}

// Add credits delta points and raises best immediately when it is beaten.
func (t *ScoreTracker) Add(delta int) {
	if delta <= 0 {
		return
	}
	t.score += delta
	if t.score <= t.best {
		return
	}
	t.best = t.score
	if t.store == nil {
		return
	}
	if err := t.store.SaveBest(t.best); err != nil {
		t.logger.Warn("could not save best score", "best", t.best, "error", err)
	}
}
