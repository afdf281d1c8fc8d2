// internal/services/session_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fakestore/storefront-backend/internal/models"
	"github.com/fakestore/storefront-backend/internal/storage"
)

func TestSessionSaveScoped(t *testing.T) {
	ctx := context.Background()
	durable := storage.NewMemoryStore()
	scoped := storage.NewMemoryStore()
	sessions := NewSessionService(durable, scoped)

	user := models.SessionUser{ID: "u1", Name: "Demo", Email: "demo@fakestore.com"}
	require.NoError(t, sessions.Save(ctx, user, false))

	session, ok := sessions.Current(ctx)
	require.True(t, ok)
	assert.Equal(t, user, session.User)
	assert.False(t, session.RememberMe)
	assert.NotZero(t, session.Timestamp)

	// Without remember-me the durable store holds nothing
	_, err := durable.Get(ctx, storage.KeySession)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSessionSaveDurable(t *testing.T) {
	ctx := context.Background()
	durable := storage.NewMemoryStore()
	scoped := storage.NewMemoryStore()
	sessions := NewSessionService(durable, scoped)

	user := models.SessionUser{ID: "u1", Name: "Demo", Email: "demo@fakestore.com"}
	require.NoError(t, sessions.Save(ctx, user, true))

	session, ok := sessions.Current(ctx)
	require.True(t, ok)
	assert.True(t, session.RememberMe)

	// Survives loss of the scoped store
	rebooted := NewSessionService(durable, storage.NewMemoryStore())
	session, ok = rebooted.Current(ctx)
	require.True(t, ok)
	assert.Equal(t, user, session.User)
}

func TestSessionDurabilityChangeLeavesNoStaleRecord(t *testing.T) {
	ctx := context.Background()
	durable := storage.NewMemoryStore()
	scoped := storage.NewMemoryStore()
	sessions := NewSessionService(durable, scoped)

	user := models.SessionUser{ID: "u1", Name: "Demo", Email: "demo@fakestore.com"}
	require.NoError(t, sessions.Save(ctx, user, true))
	require.NoError(t, sessions.Save(ctx, user, false))

	_, err := durable.Get(ctx, storage.KeySession)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSessionClearIdempotent(t *testing.T) {
	ctx := context.Background()
	sessions := NewSessionService(storage.NewMemoryStore(), storage.NewMemoryStore())

	require.NoError(t, sessions.Clear(ctx))

	user := models.SessionUser{ID: "u1", Name: "Demo", Email: "demo@fakestore.com"}
	require.NoError(t, sessions.Save(ctx, user, true))
	require.NoError(t, sessions.Clear(ctx))
	require.NoError(t, sessions.Clear(ctx))

	_, ok := sessions.Current(ctx)
	assert.False(t, ok)
}

func TestSessionUnreadableRecordMeansNone(t *testing.T) {
	ctx := context.Background()
	durable := storage.NewMemoryStore()
	require.NoError(t, durable.Set(ctx, storage.KeySession, []byte("not json")))

	sessions := NewSessionService(durable, storage.NewMemoryStore())
	_, ok := sessions.Current(ctx)
	assert.False(t, ok)
}
