package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiClient_MissingAPIKey(t *testing.T) {
	client, err := NewGeminiClient(context.Background(), "")
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestNewGeminiClient_UsesConfiguredModel(t *testing.T) {
	client, err := NewGeminiClient(context.Background(), "test-key")
	require.NoError(t, err)
	assert.Equal(t, GenerationModel, client.model)
}
