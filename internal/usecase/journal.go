package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-picker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-picker/internal/entity"
)

type resultRepo interface {
	Append(ctx context.Context, sessionID string, record *entity.ValidationRecord) error
	List(ctx context.Context, sessionID string, limit int64) ([]*entity.ValidationRecord, error)
	DeleteBySession(ctx context.Context, sessionID string) error
}

// Journal files validation answers under the current game session.
// A restart opens a new session, answers of the old one are discarded.
type Journal struct {
	resultRepo resultRepo

	mu        sync.RWMutex
	sessionID string
}

// NewJournal builds a journal, resultRepo may be nil to disable the history.
func NewJournal(resultRepo resultRepo) *Journal {
	return &Journal{
		resultRepo: resultRepo,
		sessionID:  uuid.NewString(),
	}
}

func (that *Journal) SessionID() string {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.sessionID
}

func (that *Journal) Enabled() bool {
	return that.resultRepo != nil
}

// Record stores a rendered answer in the current session.
func (that *Journal) Record(ctx context.Context, record *entity.ValidationRecord) error {
	if !that.Enabled() {
		return nil
	}

	if err := that.resultRepo.Append(ctx, that.SessionID(), record); err != nil {
		return fmt.Errorf("failed to record validation result: %w", err)
	}

	return nil
}

// History lists the answers of the current session, newest first.
func (that *Journal) History(ctx context.Context, limit int64) ([]*entity.ValidationRecord, error) {
	if !that.Enabled() {
		return nil, apperror.ErrHistoryDisabled
	}

	records, err := that.resultRepo.List(ctx, that.SessionID(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list validation results: %w", err)
	}

	return records, nil
}

// Rotate starts a new session and drops the records of the previous one.
func (that *Journal) Rotate(ctx context.Context) error {
	that.mu.Lock()
	previous := that.sessionID
	that.sessionID = uuid.NewString()
	that.mu.Unlock()

	if !that.Enabled() {
		return nil
	}

	if err := that.resultRepo.DeleteBySession(ctx, previous); err != nil {
		return fmt.Errorf("failed to drop previous session: %w", err)
	}

	return nil
}
