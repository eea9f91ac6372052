package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_OverlapSharedBetweenChunks(t *testing.T) {
	chunker := NewChunker(10, 3)
	doc := Document{Source: "a.pdf", Text: "abcdefghijklmnopqrstuvwxyz"}

	chunks := chunker.Split(doc)
	require.Greater(t, len(chunks), 1)

	for i := 1; i < len(chunks); i++ {
		prev := chunks[i-1].Text
		tail := prev[len(prev)-3:]
		assert.True(t, strings.HasPrefix(chunks[i].Text, tail),
			"chunk %d should start with the trailing overlap of chunk %d", i, i-1)
	}
}

func TestSplit_Deterministic(t *testing.T) {
	chunker := NewChunker(50, 10)
	doc := Document{Source: "a.pdf", Text: strings.Repeat("medical reference text. ", 40)}

	first := chunker.Split(doc)
	second := chunker.Split(doc)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i], second[i])
	}
}

func TestSplit_ShortDocumentSingleChunk(t *testing.T) {
	chunker := NewChunker(500, 20)
	doc := Document{Source: "a.pdf", Text: "short text"}

	chunks := chunker.Split(doc)
	require.Len(t, chunks, 1)
	assert.Equal(t, "short text", chunks[0].Text)
	assert.Equal(t, 0, chunks[0].Index)
	assert.Equal(t, "a.pdf", chunks[0].Source)
}

func TestSplit_EmptyDocument(t *testing.T) {
	chunker := NewChunker(500, 20)
	chunks := chunker.Split(Document{Source: "a.pdf"})
	assert.Empty(t, chunks)
}

func TestSplit_IndexesAreSequential(t *testing.T) {
	chunker := NewChunker(20, 5)
	doc := Document{Source: "a.pdf", Text: strings.Repeat("x", 100)}

	chunks := chunker.Split(doc)
	require.Greater(t, len(chunks), 2)
	for i, chunk := range chunks {
		assert.Equal(t, i, chunk.Index)
	}
}

func TestNewChunker_ClampsOversizedOverlap(t *testing.T) {
	chunker := NewChunker(100, 100)
	assert.Equal(t, 25, chunker.overlap)

	chunker = NewChunker(0, -1)
	assert.Equal(t, DefaultChunkSize, chunker.chunkSize)
	assert.Equal(t, DefaultChunkOverlap, chunker.overlap)
}

func TestSplitAll_PreservesDocumentOrder(t *testing.T) {
	chunker := NewChunker(500, 20)
	docs := []Document{
		{Source: "first.pdf", Text: "first document"},
		{Source: "second.pdf", Text: "second document"},
	}

	chunks := chunker.SplitAll(docs)
	require.Len(t, chunks, 2)
	assert.Equal(t, "first.pdf", chunks[0].Source)
	assert.Equal(t, "second.pdf", chunks[1].Source)
}
