package storage

import (
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

// BestStore exposes one variant's best score to the engine.
type BestStore struct {
	store  *Store
	gameID string
}

// NewBestStore binds store to a variant's score key.
func NewBestStore(store *Store, gameID string) *BestStore {
	return &BestStore{store: store, gameID: gameID}
}

// LoadBest implements engine.BestStore.
func (b *BestStore) LoadBest() (int, error) {
	best, err := b.store.Best(b.gameID)
	if err != nil {
		return 0, err
	}
	// Databases written before best_scores existed only have history.
	if best == 0 {
		return b.store.HighScore(b.gameID)
	}
	return best, nil
}

// SaveBest implements engine.BestStore.
func (b *BestStore) SaveBest(best int) error {
	return b.store.SetBest(b.gameID, best)
}

// ScoreRecorder appends finished games to the score history.
type ScoreRecorder struct {
	store  *Store
	gameID string
}

// NewScoreRecorder binds store to a variant's score key.
func NewScoreRecorder(store *Store, gameID string) *ScoreRecorder {
	return &ScoreRecorder{store: store, gameID: gameID}
}

// GameEnded implements engine.ScoreSync. Games that scored nothing are not recorded.
func (r *ScoreRecorder) GameEnded(result engine.GameResult) error {
	if result.Score <= 0 {
		return nil
	}
	_, err := r.store.SaveScore(r.gameID, result.Score, result.MaxTile, result.Steps)
	return err
}

var (
	_ engine.BestStore = (*BestStore)(nil)
	_ engine.ScoreSync = (*ScoreRecorder)(nil)
)
