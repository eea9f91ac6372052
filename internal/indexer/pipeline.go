// Package indexer orchestrates the offline index build:
// load documents, chunk, embed, rebuild the remote collection.
package indexer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/anas-fareedi/Health-buddy/internal/document"
	"github.com/anas-fareedi/Health-buddy/internal/storage"
)

// DocumentSource yields the raw documents to index.
type DocumentSource interface {
	Load(dir string) ([]document.Document, error)
}

// Embedder turns chunk texts into vectors.
type Embedder interface {
	GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
}

// IndexStore is the write side of the vector index.
type IndexStore interface {
	RebuildCollection(ctx context.Context) error
	UpsertEntries(ctx context.Context, entries []*storage.IndexEntry) error
}

// Result contains statistics about an index build.
type Result struct {
	Documents int
	Chunks    int
	Duration  time.Duration
}

// Pipeline wires loader, chunker, embedder and store into one batch job.
type Pipeline struct {
	source   DocumentSource
	chunker  *document.Chunker
	embedder Embedder
	store    IndexStore
	logger   *slog.Logger
}

// NewPipeline creates a new indexing pipeline with the given components.
func NewPipeline(
	source DocumentSource,
	chunker *document.Chunker,
	embedder Embedder,
	store IndexStore,
	logger *slog.Logger,
) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		source:   source,
		chunker:  chunker,
		embedder: embedder,
		store:    store,
		logger:   logger,
	}
}

// Rebuild runs the full pipeline over the documents in dir. The remote
// collection is destroyed and repopulated wholesale; there is no partial or
// resumable state. A failure midway leaves the collection in an undefined
// state (deleted-but-empty or partially filled) — the job must simply be
// rerun.
func (p *Pipeline) Rebuild(ctx context.Context, dir string) (*Result, error) {
	start := time.Now()

	docs, err := p.source.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}
	p.logger.Info("Loaded documents", "count", len(docs), "dir", dir)

	chunks := p.chunker.SplitAll(docs)
	p.logger.Info("Split into chunks", "chunks", len(chunks))

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	embeddings, err := p.embedder.GenerateEmbeddings(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embeddings: %w", err)
	}
	if len(embeddings) != len(chunks) {
		return nil, fmt.Errorf("embeddings: got %d vectors for %d chunks", len(embeddings), len(chunks))
	}

	if err := p.store.RebuildCollection(ctx); err != nil {
		return nil, fmt.Errorf("rebuild collection: %w", err)
	}

	entries := make([]*storage.IndexEntry, len(chunks))
	for i, chunk := range chunks {
		entries[i] = &storage.IndexEntry{
			ID:         uuid.New().String(),
			Source:     chunk.Source,
			ChunkIndex: chunk.Index,
			Text:       chunk.Text,
			Embedding:  embeddings[i],
		}
	}

	if err := p.store.UpsertEntries(ctx, entries); err != nil {
		return nil, fmt.Errorf("store entries: %w", err)
	}

	result := &Result{
		Documents: len(docs),
		Chunks:    len(chunks),
		Duration:  time.Since(start),
	}
	p.logger.Info("Index build complete",
		"documents", result.Documents,
		"chunks", result.Chunks,
		"duration", result.Duration,
	)

	return result, nil
}
