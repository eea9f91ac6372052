package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These checks run before any network call, so a zero-value Store is enough.

func TestUpsertEntries_RejectsWrongDimension(t *testing.T) {
	s := &Store{}

	entries := []*IndexEntry{
		{ID: "1", Text: "ok", Embedding: make([]float32, VectorDimension)},
		{ID: "2", Text: "bad", Embedding: make([]float32, 128)},
	}

	err := s.UpsertEntries(context.Background(), entries)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestUpsertEntries_EmptyIsNoop(t *testing.T) {
	s := &Store{}
	assert.NoError(t, s.UpsertEntries(context.Background(), nil))
}

func TestSearch_RejectsWrongDimension(t *testing.T) {
	s := &Store{}

	_, err := s.Search(context.Background(), make([]float32, 1536), 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
