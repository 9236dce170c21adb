package storage

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tuneboxed/sessionstore/internal/logging"
	"github.com/tuneboxed/sessionstore/internal/models"
)

func sampleAccount(username string) *models.UserAccount {
	return &models.UserAccount{
		ID:        "id-" + username,
		Username:  username,
		Email:     username + "@example.com",
		Password:  "secret1",
		CreatedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestStateStore_LoadEmptyDatabase(t *testing.T) {
	ss := NewStateStore(setupDB(t), logging.NewNopLogger())
	ctx := context.Background()

	users, err := ss.LoadUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users)

	cur, err := ss.LoadCurrent(ctx)
	require.NoError(t, err)
	require.Nil(t, cur)
}

func TestStateStore_SaveAllRoundTrip(t *testing.T) {
	ss := NewStateStore(setupDB(t), logging.NewNopLogger())
	ctx := context.Background()

	alice := sampleAccount("alice")
	bob := sampleAccount("bob")
	require.NoError(t, ss.SaveAll(ctx, []*models.UserAccount{alice, bob}, alice))

	users, err := ss.LoadUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, alice, users[0])
	require.Equal(t, bob, users[1])

	cur, err := ss.LoadCurrent(ctx)
	require.NoError(t, err)
	require.Equal(t, alice, cur)
}

func TestStateStore_SaveAllWithNilCurrentRemovesPointer(t *testing.T) {
	ss := NewStateStore(setupDB(t), logging.NewNopLogger())
	ctx := context.Background()

	alice := sampleAccount("alice")
	require.NoError(t, ss.SaveAll(ctx, []*models.UserAccount{alice}, alice))
	require.NoError(t, ss.SaveAll(ctx, []*models.UserAccount{alice}, nil))

	cur, err := ss.LoadCurrent(ctx)
	require.NoError(t, err)
	require.Nil(t, cur)

	users, err := ss.LoadUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestStateStore_DeleteCurrentIdempotent(t *testing.T) {
	ss := NewStateStore(setupDB(t), logging.NewNopLogger())
	ctx := context.Background()

	require.NoError(t, ss.DeleteCurrent(ctx))

	require.NoError(t, ss.SaveCurrent(ctx, sampleAccount("alice")))
	require.NoError(t, ss.DeleteCurrent(ctx))
	require.NoError(t, ss.DeleteCurrent(ctx))

	cur, err := ss.LoadCurrent(ctx)
	require.NoError(t, err)
	require.Nil(t, cur)
}

func TestStateStore_Reset(t *testing.T) {
	ss := NewStateStore(setupDB(t), logging.NewNopLogger())
	ctx := context.Background()

	alice := sampleAccount("alice")
	require.NoError(t, ss.SaveAll(ctx, []*models.UserAccount{alice}, alice))
	require.NoError(t, ss.Reset(ctx))

	users, err := ss.LoadUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users)

	cur, err := ss.LoadCurrent(ctx)
	require.NoError(t, err)
	require.Nil(t, cur)
}

func TestStateStore_CorruptValuesLoadEmptyAndLog(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	var buf bytes.Buffer
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	ss := NewStateStore(db, log)

	repo := NewKVRepository(db)
	require.NoError(t, repo.Set(ctx, KeyUsers, []byte(`{not json`)))
	require.NoError(t, repo.Set(ctx, KeyCurrentUser, []byte(`broken`)))

	users, err := ss.LoadUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users)

	cur, err := ss.LoadCurrent(ctx)
	require.NoError(t, err)
	require.Nil(t, cur)

	out := buf.String()
	require.Contains(t, out, "level=WARN", "corruption must be observable in the logs")
	require.Contains(t, out, KeyUsers)
	require.Contains(t, out, KeyCurrentUser)
}
