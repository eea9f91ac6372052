//go:build integration

package storage

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore connects to a local Qdrant and rebuilds the collection.
// Skips the test if Qdrant is not running.
func setupTestStore(t *testing.T) *Store {
	store, err := NewStore("localhost", 6334, "")
	if err != nil {
		t.Skipf("Qdrant not available: %v", err)
	}

	err = store.RebuildCollection(context.Background())
	require.NoError(t, err, "Failed to rebuild collection")

	return store
}

func testVector(fill float32) []float32 {
	v := make([]float32, VectorDimension)
	for i := range v {
		v[i] = fill
	}
	return v
}

func TestEntrySearchRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	ctx := context.Background()

	entries := []*IndexEntry{
		{
			ID:         uuid.New().String(),
			Source:     "test/aspirin.pdf",
			ChunkIndex: 0,
			Text:       "Aspirin reduces fever.",
			Embedding:  testVector(0.1),
		},
		{
			ID:         uuid.New().String(),
			Source:     "test/aspirin.pdf",
			ChunkIndex: 1,
			Text:       "Aspirin is an NSAID.",
			Embedding:  testVector(0.2),
		},
	}

	require.NoError(t, store.UpsertEntries(ctx, entries))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)

	results, err := store.Search(ctx, testVector(0.1), 3)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	hit := results[0]
	assert.NotEmpty(t, hit.Text)
	assert.Equal(t, "test/aspirin.pdf", hit.Source)
	assert.Greater(t, hit.Score, 0.0)

	// Best-first ordering
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestSearch_EmptyCollectionReturnsNoResults(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	results, err := store.Search(context.Background(), testVector(0.5), 3)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRebuildCollection_DropsExistingEntries(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	ctx := context.Background()

	entry := &IndexEntry{
		ID:        uuid.New().String(),
		Source:    "test/old.pdf",
		Text:      "stale content",
		Embedding: testVector(0.3),
	}
	require.NoError(t, store.UpsertEntries(ctx, []*IndexEntry{entry}))

	// Rebuild is wholesale: previous contents must be gone.
	require.NoError(t, store.RebuildCollection(ctx))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)
}
