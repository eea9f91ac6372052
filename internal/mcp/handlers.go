package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anas-fareedi/Health-buddy/internal/rag"
	"github.com/anas-fareedi/Health-buddy/internal/storage"
)

// RAG is the retrieval/answering dependency of the tool handlers.
// *rag.Service satisfies it.
type RAG interface {
	Answer(ctx context.Context, question string) (string, error)
	Retrieve(ctx context.Context, query string, limit int) ([]*storage.ScoredEntry, error)
}

// makeAskHandler creates the ask_medical tool handler. It runs the same
// embed → retrieve → generate flow as the chat endpoint; an empty retrieval
// is reported in-band rather than as a tool error.
func makeAskHandler(svc RAG) func(
	context.Context, *mcp.CallToolRequest, AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AskInput) (
		*mcp.CallToolResult, AskOutput, error,
	) {
		answer, err := svc.Answer(ctx, input.Question)
		if errors.Is(err, rag.ErrNoContext) {
			return nil, AskOutput{
				Answer:       rag.NoContextMessage,
				ContextFound: false,
			}, nil
		}
		if err != nil {
			return nil, AskOutput{}, fmt.Errorf("answer failed: %w", err)
		}

		return nil, AskOutput{Answer: answer, ContextFound: true}, nil
	}
}

// makeSearchHandler creates the search_medical_context tool handler.
// Returns raw top-k chunks with scores, best-first, without generation.
func makeSearchHandler(svc RAG) func(
	context.Context, *mcp.CallToolRequest, SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (
		*mcp.CallToolResult, SearchOutput, error,
	) {
		maxResults := input.MaxResults
		if maxResults <= 0 {
			maxResults = rag.TopK
		}

		entries, err := svc.Retrieve(ctx, input.Query, maxResults)
		if err != nil {
			return nil, SearchOutput{}, fmt.Errorf("search failed: %w", err)
		}

		results := make([]ContextResult, 0, len(entries))
		for _, entry := range entries {
			results = append(results, ContextResult{
				Text:       entry.Text,
				Source:     entry.Source,
				ChunkIndex: entry.ChunkIndex,
				Score:      entry.Score,
			})
		}

		if len(results) == 0 {
			return nil, SearchOutput{
				Results: []ContextResult{},
				Message: "No matching chunks found. Try broader search terms.",
			}, nil
		}

		return nil, SearchOutput{Results: results}, nil
	}
}
