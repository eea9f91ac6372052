// Package main provides the Health Buddy chat server entry point.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/anas-fareedi/Health-buddy/internal/embedding"
	"github.com/anas-fareedi/Health-buddy/internal/llm"
	mcpserver "github.com/anas-fareedi/Health-buddy/internal/mcp"
	"github.com/anas-fareedi/Health-buddy/internal/rag"
	"github.com/anas-fareedi/Health-buddy/internal/storage"
	"github.com/anas-fareedi/Health-buddy/internal/web"
)

func main() {
	// Load .env file if present (local development), ignore if missing (production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Create context that cancels on SIGTERM/SIGINT
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	// Configuration from environment, read once at startup
	qdrantHost := getEnv("QDRANT_HOST", "localhost")
	qdrantPort := getEnvInt("QDRANT_PORT", 6334)
	qdrantAPIKey := os.Getenv("QDRANT_API_KEY")
	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	port := getEnv("PORT", "8080")

	// Connect to the vector index
	store, err := storage.NewStore(qdrantHost, qdrantPort, qdrantAPIKey)
	if err != nil {
		log.Fatalf("failed to connect to Qdrant: %v", err)
	}
	defer store.Close()

	// Embedding client; must be the same model configuration the index
	// builder used (fatal if OPENAI_API_KEY is missing)
	embeddingClient, err := embedding.NewClient()
	if err != nil {
		log.Fatalf("failed to create embedding client: %v", err)
	}
	embedder := embedding.NewEmbedder(embeddingClient, 0) // Use default batch size

	// Generative model client (fatal if GEMINI_API_KEY is missing)
	gemini, err := llm.NewGeminiClient(ctx, geminiAPIKey)
	if err != nil {
		log.Fatalf("failed to create gemini client: %v", err)
	}

	service := rag.NewService(embedder, store, gemini, nil, nil)

	mux := http.NewServeMux()
	mux.HandleFunc("/", web.NewChatPageHandler())
	mux.HandleFunc("/get", web.NewChatHandler(service))
	mux.HandleFunc("/health", web.NewHealthHandler(store))

	// Optional MCP endpoint for agent clients
	if getEnv("MCP_ENABLED", "false") == "true" {
		server := mcpserver.NewServer(&mcpserver.Config{Service: service})
		mux.Handle("/mcp", mcpserver.NewHTTPHandler(server, nil))
		log.Println("MCP endpoint enabled at /mcp")
	}

	addr := "0.0.0.0:" + port
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		srv.Close()
	}()

	log.Printf("Starting Health Buddy on %s (chat at /, endpoint at /get, health at /health)", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("HTTP server error: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		var i int
		if _, err := fmt.Sscanf(v, "%d", &i); err == nil {
			return i
		}
	}
	return defaultValue
}
