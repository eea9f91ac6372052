package storage

// IndexEntry is one record in the medicalbot collection: an embedding vector
// plus the original chunk text and its source metadata.
type IndexEntry struct {
	ID         string    // UUID point ID
	Source     string    // Source document, e.g. "gale-encyclopedia.pdf"
	ChunkIndex int       // Position of the chunk within its document
	Text       string    // Original chunk text
	Embedding  []float32 // 384-dim vector (text-embedding-3-small)
}

// ScoredEntry is a similarity-search hit with its cosine score.
type ScoredEntry struct {
	Source     string
	ChunkIndex int
	Text       string
	Score      float64
}

// CollectionName is the single Qdrant collection holding the medical index.
// The offline builder and the online server share this constant; they must
// never diverge.
const CollectionName = "medicalbot"

// VectorDimension is the embedding size. Matches embedding.Dimension (384).
const VectorDimension = 384
