// Package rag implements retrieval-augmented answering: embed the question,
// fetch the most similar medical chunks, and condition the LLM on them.
package rag

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/anas-fareedi/Health-buddy/internal/storage"
)

// TopK is the number of chunks retrieved per question.
const TopK = 3

// NoContextMessage is the fixed user-facing reply when retrieval comes back
// empty. Returned with a 200, not an error.
const NoContextMessage = "I couldn't find relevant information to answer your question. Please try rephrasing."

// ErrNoContext signals that the index returned no chunks for the question.
var ErrNoContext = errors.New("no relevant context retrieved")

// Embedder produces the query vector. Must be the same model that embedded
// the index; only the shared dimension constant enforces this.
type Embedder interface {
	GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
}

// Retriever performs top-k similarity search over the index.
type Retriever interface {
	Search(ctx context.Context, embedding []float32, limit int) ([]*storage.ScoredEntry, error)
}

// Generator produces the final answer text from an assembled prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service orchestrates one question-answer round trip. It is stateless
// across requests: no session, no conversation memory, no caching. The
// client handles it holds are safe to share between concurrent requests.
type Service struct {
	embedder  Embedder
	retriever Retriever
	generator Generator
	prompt    *PromptTemplate
	logger    *slog.Logger
}

// NewService constructs the RAG service with its dependencies. A nil prompt
// uses the default medical template; a nil logger uses slog.Default.
func NewService(embedder Embedder, retriever Retriever, generator Generator, prompt *PromptTemplate, logger *slog.Logger) *Service {
	if prompt == nil {
		prompt = DefaultPromptTemplate()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		embedder:  embedder,
		retriever: retriever,
		generator: generator,
		prompt:    prompt,
		logger:    logger,
	}
}

// Answer runs the full pipeline for one question: embed, retrieve top-k,
// assemble the prompt, generate. Returns ErrNoContext when retrieval is
// empty. All other failures propagate unwrapped in meaning: there is no
// retry and no fallback answer.
func (s *Service) Answer(ctx context.Context, question string) (string, error) {
	entries, err := s.Retrieve(ctx, question, TopK)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		s.logger.Warn("No chunks retrieved", "question_len", len(question))
		return "", ErrNoContext
	}
	s.logger.Info("Retrieved context", "chunks", len(entries))

	texts := make([]string, len(entries))
	for i, entry := range entries {
		texts[i] = entry.Text
	}

	prompt := s.prompt.Assemble(texts, question)

	answer, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}

	return answer, nil
}

// Retrieve embeds the query and returns its top-limit index entries,
// best-first. Used directly by the MCP search tool.
func (s *Service) Retrieve(ctx context.Context, query string, limit int) ([]*storage.ScoredEntry, error) {
	embeddings, err := s.embedder.GenerateEmbeddings(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embed question: %w", err)
	}

	entries, err := s.retriever.Search(ctx, embeddings[0], limit)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}

	return entries, nil
}
