package rag

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anas-fareedi/Health-buddy/internal/storage"
)

type mockEmbedder struct {
	err error
}

func (m *mockEmbedder) GenerateEmbeddings(_ context.Context, texts []string) ([][]float32, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = make([]float32, storage.VectorDimension)
	}
	return out, nil
}

type mockRetriever struct {
	entries []*storage.ScoredEntry
	err     error
	gotK    int
}

func (m *mockRetriever) Search(_ context.Context, _ []float32, limit int) ([]*storage.ScoredEntry, error) {
	m.gotK = limit
	return m.entries, m.err
}

type mockGenerator struct {
	answer    string
	err       error
	gotPrompt string
}

func (m *mockGenerator) Generate(_ context.Context, prompt string) (string, error) {
	m.gotPrompt = prompt
	return m.answer, m.err
}

func aspirinEntries() []*storage.ScoredEntry {
	return []*storage.ScoredEntry{
		{Text: "Aspirin reduces fever.", Source: "gale.pdf", Score: 0.91},
		{Text: "Aspirin is an NSAID.", Source: "gale.pdf", Score: 0.88},
		{Text: "Common dose is 325mg.", Source: "gale.pdf", Score: 0.75},
	}
}

func TestAnswer_FullFlow(t *testing.T) {
	retriever := &mockRetriever{entries: aspirinEntries()}
	generator := &mockGenerator{answer: "Aspirin is used to reduce fever and inflammation."}
	svc := NewService(&mockEmbedder{}, retriever, generator, nil, nil)

	answer, err := svc.Answer(context.Background(), "What is aspirin used for?")
	require.NoError(t, err)
	assert.Equal(t, "Aspirin is used to reduce fever and inflammation.", answer)
	assert.Equal(t, TopK, retriever.gotK)

	// The assembled prompt must carry all three chunks joined by blank
	// lines, the literal question, and the Answer suffix, in order.
	prompt := generator.gotPrompt
	assert.Contains(t, prompt, "Aspirin reduces fever.\n\nAspirin is an NSAID.\n\nCommon dose is 325mg.")
	assert.Contains(t, prompt, "Question: What is aspirin used for?")
	assert.True(t, strings.HasSuffix(prompt, "Answer:"))
}

func TestAnswer_EmptyRetrieval(t *testing.T) {
	generator := &mockGenerator{answer: "should not be called"}
	svc := NewService(&mockEmbedder{}, &mockRetriever{}, generator, nil, nil)

	_, err := svc.Answer(context.Background(), "asdkjasdkj")
	require.ErrorIs(t, err, ErrNoContext)
	assert.Empty(t, generator.gotPrompt, "LLM must not be called without context")
}

// TestAnswer_GibberishWithLowScoreHits pins the second allowed behavior for
// nonsense queries: if the index still returns (low-similarity) chunks, the
// normal flow proceeds — the service applies no score threshold of its own.
func TestAnswer_GibberishWithLowScoreHits(t *testing.T) {
	retriever := &mockRetriever{entries: []*storage.ScoredEntry{
		{Text: "Aspirin reduces fever.", Score: 0.02},
	}}
	generator := &mockGenerator{answer: "I don't have enough information."}
	svc := NewService(&mockEmbedder{}, retriever, generator, nil, nil)

	answer, err := svc.Answer(context.Background(), "asdkjasdkj")
	require.NoError(t, err)
	assert.NotEmpty(t, answer)
	assert.Contains(t, generator.gotPrompt, "Aspirin reduces fever.")
}

func TestAnswer_EmbedderError(t *testing.T) {
	svc := NewService(&mockEmbedder{err: errors.New("rate limited")}, &mockRetriever{}, &mockGenerator{}, nil, nil)

	_, err := svc.Answer(context.Background(), "What is aspirin?")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embed question")
}

func TestAnswer_RetrieverError(t *testing.T) {
	retriever := &mockRetriever{err: errors.New("qdrant unreachable")}
	svc := NewService(&mockEmbedder{}, retriever, &mockGenerator{}, nil, nil)

	_, err := svc.Answer(context.Background(), "What is aspirin?")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search index")
}

func TestAnswer_GeneratorError(t *testing.T) {
	retriever := &mockRetriever{entries: aspirinEntries()}
	generator := &mockGenerator{err: errors.New("gemini rejected the request")}
	svc := NewService(&mockEmbedder{}, retriever, generator, nil, nil)

	_, err := svc.Answer(context.Background(), "What is aspirin?")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate answer")
}

func TestRetrieve_PassesLimit(t *testing.T) {
	retriever := &mockRetriever{entries: aspirinEntries()}
	svc := NewService(&mockEmbedder{}, retriever, &mockGenerator{}, nil, nil)

	entries, err := svc.Retrieve(context.Background(), "aspirin", 5)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, 5, retriever.gotK)
}
