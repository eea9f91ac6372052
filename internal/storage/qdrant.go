// Package storage wraps the Qdrant vector index holding the medical chunks.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/qdrant/go-client/qdrant"
)

// Store wraps the Qdrant client with connection management and health checks.
// It is safe for concurrent use by request handlers; the client is a
// stateless gRPC handle.
type Store struct {
	client *qdrant.Client
	host   string
	port   int
}

// NewStore creates a new Qdrant client with health validation.
// apiKey may be empty for a local deployment; when set, TLS is enabled for
// Qdrant Cloud. Performs a health check with retry on startup and fails fast
// if Qdrant is unreachable.
func NewStore(host string, port int, apiKey string) (*Store, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: apiKey != "",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	store := &Store{
		client: client,
		host:   host,
		port:   port,
	}

	ctx := context.Background()
	if err := store.healthCheckWithRetry(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: %v", ErrQdrantUnreachable, err)
	}

	return store, nil
}

// healthCheckWithRetry performs health check with exponential backoff.
// Initial interval 500ms, max interval 10s, max elapsed 30s.
func (s *Store) healthCheckWithRetry(ctx context.Context) error {
	exponentialBackoff := backoff.NewExponentialBackOff()
	exponentialBackoff.InitialInterval = 500 * time.Millisecond
	exponentialBackoff.MaxInterval = 10 * time.Second
	exponentialBackoff.MaxElapsedTime = 30 * time.Second

	return backoff.Retry(func() error {
		return s.Health(ctx)
	}, backoff.WithContext(exponentialBackoff, ctx))
}

// Health performs a single health check against Qdrant.
// Returns nil if Qdrant is healthy, error otherwise.
func (s *Store) Health(ctx context.Context) error {
	result, err := s.client.HealthCheck(ctx)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	if result == nil || result.Title == "" {
		return fmt.Errorf("health check returned invalid response")
	}

	return nil
}

// RebuildCollection deletes the medicalbot collection if it exists and
// creates a fresh one with 384-dimension cosine vectors. Destructive: any
// prior contents are lost, and delete+create is not atomic — a failure
// between the two leaves no collection behind.
func (s *Store) RebuildCollection(ctx context.Context) error {
	collections, err := s.client.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	for _, name := range collections {
		if name == CollectionName {
			if err := s.client.DeleteCollection(ctx, CollectionName); err != nil {
				return fmt.Errorf("failed to delete collection: %w", err)
			}
			break
		}
	}

	err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: CollectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     VectorDimension,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	return nil
}

// upsertWithRetry performs an upsert with exponential backoff. Only the
// offline index build reaches this; the serving path never writes.
func (s *Store) upsertWithRetry(ctx context.Context, points []*qdrant.PointStruct) error {
	exponentialBackoff := backoff.NewExponentialBackOff()
	exponentialBackoff.InitialInterval = 500 * time.Millisecond
	exponentialBackoff.MaxInterval = 10 * time.Second
	exponentialBackoff.MaxElapsedTime = 30 * time.Second

	operation := func() error {
		_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
			CollectionName: CollectionName,
			Points:         points,
		})
		return err
	}

	return backoff.Retry(operation, backoff.WithContext(exponentialBackoff, ctx))
}

// UpsertEntries stores index entries with their embeddings in Qdrant.
// Entries are batched in groups of 100 for performance. Every embedding must
// be exactly VectorDimension long; a mismatch aborts before any write.
func (s *Store) UpsertEntries(ctx context.Context, entries []*IndexEntry) error {
	if len(entries) == 0 {
		return nil
	}

	for i, entry := range entries {
		if len(entry.Embedding) != VectorDimension {
			return fmt.Errorf("%w: entry %d has %d dimensions, expected %d",
				ErrDimensionMismatch, i, len(entry.Embedding), VectorDimension)
		}
	}

	batchSize := 100
	for i := 0; i < len(entries); i += batchSize {
		end := min(i+batchSize, len(entries))

		batch := entries[i:end]
		points := make([]*qdrant.PointStruct, len(batch))

		for j, entry := range batch {
			points[j] = &qdrant.PointStruct{
				Id:      qdrant.NewIDUUID(entry.ID),
				Vectors: qdrant.NewVectors(entry.Embedding...),
				Payload: qdrant.NewValueMap(map[string]any{
					"text":        entry.Text,
					"source":      entry.Source,
					"chunk_index": entry.ChunkIndex,
				}),
			}
		}

		if err := s.upsertWithRetry(ctx, points); err != nil {
			return fmt.Errorf("failed to upsert batch %d-%d: %w", i, end, err)
		}
	}

	return nil
}

// Search performs cosine similarity search over the collection.
// Returns up to limit entries ordered best-first. An empty collection or a
// query with no hits returns an empty slice, not an error.
func (s *Store) Search(ctx context.Context, embedding []float32, limit int) ([]*ScoredEntry, error) {
	if len(embedding) != VectorDimension {
		return nil, fmt.Errorf("%w: query has %d dimensions, expected %d",
			ErrDimensionMismatch, len(embedding), VectorDimension)
	}

	results, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: CollectionName,
		Query:          qdrant.NewQuery(embedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search index: %w", err)
	}

	entries := make([]*ScoredEntry, 0, len(results))
	for _, result := range results {
		payload := result.Payload
		entries = append(entries, &ScoredEntry{
			Source:     payload["source"].GetStringValue(),
			ChunkIndex: int(payload["chunk_index"].GetIntegerValue()),
			Text:       payload["text"].GetStringValue(),
			Score:      float64(result.Score),
		})
	}

	return entries, nil
}

// Count returns the number of points stored in the collection.
func (s *Store) Count(ctx context.Context) (uint64, error) {
	collection, err := s.client.GetCollectionInfo(ctx, CollectionName)
	if err != nil {
		return 0, fmt.Errorf("failed to get collection: %w", err)
	}
	return collection.GetPointsCount(), nil
}

// Close closes the Qdrant client connection.
func (s *Store) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
