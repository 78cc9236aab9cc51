package storage

import "github.com/vovakirdan/shapefall/internal/shooter"

// Slot binds a Store to one game ID so a session can use it as its
// high-score store and run recorder.
type Slot struct {
	store  *Store
	gameID string
}

// Slot returns the persistence slot for a game.
func (s *Store) Slot(gameID string) *Slot {
	return &Slot{store: s, gameID: gameID}
}

// HighScore implements shooter.HighScoreStore.
func (sl *Slot) HighScore() (int, error) {
	return sl.store.HighScore(sl.gameID)
}

// SetHighScore implements shooter.HighScoreStore.
func (sl *Slot) SetHighScore(score int) error {
	return sl.store.SetHighScore(sl.gameID, score)
}

// RecordRun implements shooter.RunRecorder.
func (sl *Slot) RecordRun(score int) error {
	_, err := sl.store.SaveScore(sl.gameID, score)
	return err
}

// Ensure Slot implements the session collaborators
var (
	_ shooter.HighScoreStore = (*Slot)(nil)
	_ shooter.RunRecorder    = (*Slot)(nil)
)
