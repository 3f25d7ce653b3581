package session

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSaveAndLoad(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok-123", testUser{ID: 1, Username: "alice"}))

	sess, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", sess.Token)

	var u testUser
	require.NoError(t, json.Unmarshal(sess.User, &u))
	assert.Equal(t, "alice", u.Username)
}

func TestSaveOverwritesPreviousSession(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok-1", testUser{ID: 1, Username: "alice"}))
	require.NoError(t, store.Save(ctx, "tok-2", testUser{ID: 2, Username: "bob"}))

	sess, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", sess.Token)
}

func TestLoadWithoutSession(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestClear(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok-1", testUser{ID: 1, Username: "alice"}))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	// Clearing an already-empty store is fine.
	require.NoError(t, store.Clear(ctx))
}
