package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/sandevgo/relaybot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := NewDB(context.Background(), filepath.Join(t.TempDir(), "nested", "relaybot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func entry(content string) core.ConversationEntry {
	return core.ConversationEntry{Author: "@ira", Content: content, Timestamp: "01.01.2026 10:00"}
}

func TestSessionsRepo_GetUnknownUser(t *testing.T) {
	repo := NewSessionsRepo(newTestDB(t), 5)

	sess, err := repo.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, sess.AckSent)
	assert.False(t, sess.DialogueStarted)
	assert.Equal(t, 0, sess.History.Len())
	assert.Equal(t, 5, sess.History.Cap())
}

func TestSessionsRepo_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionsRepo(newTestDB(t), 5)

	sess := core.NewSession(5)
	sess.MarkAckSent()
	sess.History.Append(entry("Здравствуйте"))
	sess.History.Append(entry("[стикер]"))
	require.NoError(t, repo.Save(ctx, 42, sess))

	got, err := repo.Get(ctx, 42)
	require.NoError(t, err)
	assert.True(t, got.AckSent)
	assert.False(t, got.DialogueStarted)
	assert.Equal(t, sess.History.Entries(), got.History.Entries())
}

func TestSessionsRepo_Upsert(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewSessionsRepo(db, 5)

	sess := core.NewSession(5)
	sess.History.Append(entry("a"))
	require.NoError(t, repo.Save(ctx, 42, sess))

	sess.MarkAckSent()
	sess.MarkDialogueStarted()
	sess.History.Append(entry("b"))
	require.NoError(t, repo.Save(ctx, 42, sess))

	var rows int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&rows))
	assert.Equal(t, 1, rows)

	got, err := repo.Get(ctx, 42)
	require.NoError(t, err)
	assert.True(t, got.AckSent)
	assert.True(t, got.DialogueStarted)
	assert.Equal(t, 2, got.History.Len())
}

func TestSessionsRepo_SmallerCapacityKeepsTail(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	sess := core.NewSession(5)
	for _, c := range []string{"1", "2", "3", "4", "5"} {
		sess.History.Append(entry(c))
	}
	require.NoError(t, NewSessionsRepo(db, 5).Save(ctx, 42, sess))

	got, err := NewSessionsRepo(db, 2).Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, []core.ConversationEntry{entry("4"), entry("5")}, got.History.Entries())
}

func TestNewDB_MigrationsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "relaybot.db")

	db, err := NewDB(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = NewDB(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	_, err = NewSessionsRepo(db, 5).Get(ctx, 1)
	assert.NoError(t, err)
}
