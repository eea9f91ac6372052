// Package mcp exposes the medical RAG operations to agent clients over the
// Model Context Protocol.
package mcp

// AskInput defines the input parameters for the ask_medical tool.
type AskInput struct {
	// Question is the health question to answer.
	Question string `json:"question" jsonschema:"required,description=The health question to answer from the indexed medical reference"`
}

// AskOutput contains the generated answer.
type AskOutput struct {
	// Answer is the generated answer text, grounded in retrieved context.
	Answer string `json:"answer"`
	// ContextFound reports whether any relevant chunks were retrieved.
	ContextFound bool `json:"context_found"`
}

// SearchInput defines the input parameters for the search_medical_context tool.
type SearchInput struct {
	// Query is the semantic search query.
	Query string `json:"query" jsonschema:"required,description=The semantic search query against the medical index"`
	// MaxResults is the maximum number of chunks to return.
	MaxResults int `json:"max_results,omitempty" jsonschema:"minimum=1,maximum=20,default=3,description=Maximum number of chunks to return"`
}

// SearchOutput contains the retrieved chunks.
type SearchOutput struct {
	// Results is the list of matching chunks, best-first.
	Results []ContextResult `json:"results"`
	// Message provides informational context (e.g. nothing matched).
	Message string `json:"message,omitempty"`
}

// ContextResult is a single retrieved chunk with its similarity score.
type ContextResult struct {
	// Text is the chunk text.
	Text string `json:"text"`
	// Source is the document the chunk came from.
	Source string `json:"source"`
	// ChunkIndex is the chunk's position within its source document.
	ChunkIndex int `json:"chunk_index"`
	// Score is the cosine similarity score.
	Score float64 `json:"score"`
}
