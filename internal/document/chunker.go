package document

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 500

// DefaultChunkOverlap is the default number of characters shared between
// consecutive chunks.
const DefaultChunkOverlap = 20

// Chunk is a bounded slice of a document, the unit of retrieval.
type Chunk struct {
	Source string // Source of the parent document
	Index  int    // Position within the document (0, 1, 2...)
	Text   string // Chunk text content
}

// Chunker splits document text into fixed-size chunks with overlap.
// Splitting is by character count only; no sentence or paragraph awareness.
// Same input and parameters always produce the same chunk boundaries.
type Chunker struct {
	chunkSize int
	overlap   int
}

// NewChunker creates a Chunker. Non-positive size or negative overlap fall
// back to the defaults. Overlap must stay below the chunk size; otherwise it
// is clamped to a quarter of it.
func NewChunker(chunkSize, overlap int) *Chunker {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if overlap < 0 {
		overlap = DefaultChunkOverlap
	}
	if overlap >= chunkSize {
		overlap = chunkSize / 4
	}
	return &Chunker{
		chunkSize: chunkSize,
		overlap:   overlap,
	}
}

// Split returns the ordered chunks of a single document. Consecutive chunks
// share the trailing overlap characters of the previous chunk. An empty
// document yields no chunks.
func (c *Chunker) Split(doc Document) []Chunk {
	if doc.Text == "" {
		return nil
	}

	runes := []rune(doc.Text)
	total := len(runes)

	estimated := total/(c.chunkSize-c.overlap) + 1
	chunks := make([]Chunk, 0, estimated)

	start := 0
	for start < total {
		end := start + c.chunkSize
		if end > total {
			end = total
		}

		chunks = append(chunks, Chunk{
			Source: doc.Source,
			Index:  len(chunks),
			Text:   string(runes[start:end]),
		})

		if end == total {
			break
		}
		start += c.chunkSize - c.overlap
	}

	return chunks
}

// SplitAll splits every document, preserving document order.
func (c *Chunker) SplitAll(docs []Document) []Chunk {
	var chunks []Chunk
	for _, doc := range docs {
		chunks = append(chunks, c.Split(doc)...)
	}
	return chunks
}
