package rag

import (
	"fmt"
	"strings"
)

// SystemPrompt is the fixed instruction template for the medical assistant.
// The {context} placeholder is replaced with retrieved chunk texts.
const SystemPrompt = "You are a helpful medical chatbot assistant designed to answer health-related questions. " +
	"Use the following pieces of retrieved medical context to provide accurate answers. " +
	"If the answer is not in the provided context, clearly state that you don't have enough information. " +
	"Never make up medical information that isn't supported by the context. " +
	"Keep your answers clear, concise (3-5 sentences), and easy to understand. " +
	"Always remind users to consult with healthcare professionals for serious concerns.\n\n" +
	"Context:\n{context}"

const contextPlaceholder = "{context}"

// PromptTemplate assembles the final LLM prompt from retrieved context and a
// user question. The template must contain the {context} placeholder; that
// is checked at construction time since a missing placeholder is a
// configuration mistake, not a runtime condition.
type PromptTemplate struct {
	template string
}

// NewPromptTemplate validates and wraps an instruction template.
func NewPromptTemplate(template string) (*PromptTemplate, error) {
	if !strings.Contains(template, contextPlaceholder) {
		return nil, fmt.Errorf("prompt template missing %s placeholder", contextPlaceholder)
	}
	return &PromptTemplate{template: template}, nil
}

// DefaultPromptTemplate returns the template built from SystemPrompt.
func DefaultPromptTemplate() *PromptTemplate {
	t, err := NewPromptTemplate(SystemPrompt)
	if err != nil {
		// SystemPrompt is a compile-time constant containing the placeholder.
		panic(err)
	}
	return t
}

// Assemble joins the retrieved chunk texts with blank lines, substitutes
// them into the template, and appends the question/answer suffix.
func (t *PromptTemplate) Assemble(contexts []string, question string) string {
	joined := strings.Join(contexts, "\n\n")
	prompt := strings.ReplaceAll(t.template, contextPlaceholder, joined)
	return prompt + fmt.Sprintf("\n\nQuestion: %s\n\nAnswer:", question)
}
