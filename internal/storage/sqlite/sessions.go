package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sandevgo/relaybot/internal/core"
	"github.com/sandevgo/relaybot/pkg/log"
)

// SessionsRepo persists relay sessions so history and one-shot flags
// survive restarts.
type SessionsRepo struct {
	db              *sql.DB
	historyCapacity int
}

func NewSessionsRepo(db *sql.DB, historyCapacity int) *SessionsRepo {
	return &SessionsRepo{db: db, historyCapacity: historyCapacity}
}

func (r *SessionsRepo) Get(ctx context.Context, userID int64) (*core.Session, error) {
	sess := core.NewSession(r.historyCapacity)

	query := `SELECT ack_sent, dialogue_started, history FROM sessions WHERE user_id = ?`
	var history string
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&sess.AckSent, &sess.DialogueStarted, &history)
	if errors.Is(err, sql.ErrNoRows) {
		log.FromCtx(ctx).Debug().Int64("user_id", userID).Msg("new session")
		return sess, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	if err := json.Unmarshal([]byte(history), sess.History); err != nil {
		return nil, fmt.Errorf("failed to unmarshal history: %w", err)
	}
	return sess, nil
}

func (r *SessionsRepo) Save(ctx context.Context, userID int64, sess *core.Session) error {
	history, err := json.Marshal(sess.History)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	query := `INSERT INTO sessions (user_id, ack_sent, dialogue_started, history, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
			ack_sent = excluded.ack_sent,
			dialogue_started = excluded.dialogue_started,
			history = excluded.history,
			updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, userID, sess.AckSent, sess.DialogueStarted, string(history)); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
