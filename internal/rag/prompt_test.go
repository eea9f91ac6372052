package rag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPromptTemplate_MissingPlaceholder(t *testing.T) {
	_, err := NewPromptTemplate("You are a helpful assistant.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "{context}")
}

func TestDefaultPromptTemplate(t *testing.T) {
	tmpl := DefaultPromptTemplate()
	require.NotNil(t, tmpl)
}

// TestAssemble_AspirinScenario pins the full prompt layout: all chunk texts
// joined by blank lines, then the literal question, then the Answer suffix,
// in that order.
func TestAssemble_AspirinScenario(t *testing.T) {
	tmpl := DefaultPromptTemplate()

	contexts := []string{
		"Aspirin reduces fever.",
		"Aspirin is an NSAID.",
		"Common dose is 325mg.",
	}
	question := "What is aspirin used for?"

	prompt := tmpl.Assemble(contexts, question)

	assert.Contains(t, prompt, "Aspirin reduces fever.\n\nAspirin is an NSAID.\n\nCommon dose is 325mg.")
	assert.Contains(t, prompt, "Question: What is aspirin used for?")
	assert.True(t, strings.HasSuffix(prompt, "Answer:"))

	ctxPos := strings.Index(prompt, "Aspirin reduces fever.")
	questionPos := strings.Index(prompt, "Question: What is aspirin used for?")
	answerPos := strings.LastIndex(prompt, "Answer:")
	assert.Less(t, ctxPos, questionPos)
	assert.Less(t, questionPos, answerPos)
}

func TestAssemble_NoPlaceholderLeftBehind(t *testing.T) {
	tmpl := DefaultPromptTemplate()
	prompt := tmpl.Assemble([]string{"some context"}, "a question")
	assert.NotContains(t, prompt, "{context}")
}

func TestAssemble_EmptyContexts(t *testing.T) {
	tmpl := DefaultPromptTemplate()
	prompt := tmpl.Assemble(nil, "a question")
	assert.Contains(t, prompt, "Context:\n\n")
	assert.Contains(t, prompt, "Question: a question")
}
