// Package web provides the HTTP handlers for the chat service.
package web

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/anas-fareedi/Health-buddy/internal/rag"
)

// MaxMessageLength is the maximum accepted question length in characters,
// counted after trimming.
const MaxMessageLength = 1000

// AnswerService is the request-time RAG dependency of the chat endpoint.
type AnswerService interface {
	Answer(ctx context.Context, question string) (string, error)
}

// NewChatHandler creates the handler for POST /get. It validates the form
// field "msg", runs the RAG pipeline, and replies in plain text. Failures in
// the pipeline become a 500 whose body carries the error description; an
// empty retrieval is a 200 with the fixed no-information message.
func NewChatHandler(svc AnswerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		msg := strings.TrimSpace(r.FormValue("msg"))
		if msg == "" {
			http.Error(w, "Please enter a message.", http.StatusBadRequest)
			return
		}
		if utf8.RuneCountInString(msg) > MaxMessageLength {
			http.Error(w, "Message too long. Please keep it under 1000 characters.", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		answer, err := svc.Answer(r.Context(), msg)
		if errors.Is(err, rag.ErrNoContext) {
			w.Write([]byte(rag.NoContextMessage))
			return
		}
		if err != nil {
			http.Error(w, "Sorry, I encountered an error: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Write([]byte(answer))
	}
}
