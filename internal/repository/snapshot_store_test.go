package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parishledger/internal/database"
	"parishledger/internal/domain"
)

func newTestStore(t *testing.T) *SnapshotStore {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	store, err := NewSnapshotStore(db)
	require.NoError(t, err)
	return store
}

func TestSnapshotStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	in := SeedCelebrations()
	require.NoError(t, store.Save(ctx, CelebrationsKey, in))

	var out []domain.Celebration
	require.NoError(t, store.Load(ctx, CelebrationsKey, &out))
	require.Len(t, out, len(in))
	assert.Equal(t, in[0].Folio, out[0].Folio)
	assert.Equal(t, in[1].TotalCost, out[1].TotalCost)
	assert.Equal(t, domain.CelebrationPending, out[1].Status())
}

func TestSnapshotStore_SaveOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, CelebrationsKey, []domain.Celebration{{Folio: "a"}}))
	require.NoError(t, store.Save(ctx, CelebrationsKey, []domain.Celebration{{Folio: "b"}, {Folio: "c"}}))

	var out []domain.Celebration
	require.NoError(t, store.Load(ctx, CelebrationsKey, &out))
	require.Len(t, out, 2)
	assert.Equal(t, "b", out[0].Folio)
}

func TestSnapshotStore_KeysAreIndependent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, CelebrationsKey, []domain.Celebration{{Folio: "a"}}))
	require.NoError(t, store.Save(ctx, IntentionsKey, SeedIntentions()))

	var celebrations []domain.Celebration
	require.NoError(t, store.Load(ctx, CelebrationsKey, &celebrations))
	assert.Len(t, celebrations, 1)

	var intentions []domain.Intention
	require.NoError(t, store.Load(ctx, IntentionsKey, &intentions))
	assert.Len(t, intentions, 1)
}

func TestSnapshotStore_LoadMissingKey(t *testing.T) {
	store := newTestStore(t)

	var out []domain.Celebration
	err := store.Load(context.Background(), "no-such-key", &out)
	assert.ErrorIs(t, err, ErrNoSnapshot)
}
