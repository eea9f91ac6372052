// Package main provides the offline index builder CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/anas-fareedi/Health-buddy/internal/document"
	"github.com/anas-fareedi/Health-buddy/internal/embedding"
	"github.com/anas-fareedi/Health-buddy/internal/indexer"
	"github.com/anas-fareedi/Health-buddy/internal/storage"
)

var dataDir string

var rootCmd = &cobra.Command{
	Use:   "health-index",
	Short: "Health Buddy medical index builder",
	Long:  "CLI tool for managing the Health Buddy medical document index in Qdrant",
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Rebuild the medical index from local PDF documents",
	Long: `Destroys the existing medicalbot collection and rebuilds it from scratch.

This command:
1. Connects to Qdrant and verifies health
2. Loads all PDF documents from the data directory
3. Splits them into overlapping chunks and generates embeddings
4. Deletes and recreates the medicalbot collection
5. Upserts all chunk vectors

The rebuild is destructive and not atomic: a failure midway can leave the
collection empty or partially filled. Rerun the command to recover.

Environment variables:
  QDRANT_HOST     Qdrant hostname (default: localhost)
  QDRANT_PORT     Qdrant gRPC port (default: 6334)
  QDRANT_API_KEY  Qdrant API key (optional, enables TLS)
  OPENAI_API_KEY  OpenAI API key for embeddings (required)
  DATA_DIR        Document directory (default: Data), overridden by --data`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&dataDir, "data", "", "directory containing the source PDF documents")
	rootCmd.AddCommand(buildCmd)
}

func main() {
	// Load .env file if present (local development), ignore if missing (production)
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	start := time.Now()

	fmt.Println("Starting index build...")
	fmt.Println()

	qdrantHost := getEnv("QDRANT_HOST", "localhost")
	qdrantPort := getEnvInt("QDRANT_PORT", 6334)
	qdrantAPIKey := os.Getenv("QDRANT_API_KEY")

	dir := dataDir
	if dir == "" {
		dir = getEnv("DATA_DIR", "Data")
	}

	// 1. Connect to Qdrant
	fmt.Printf("Connecting to Qdrant at %s:%d...\n", qdrantHost, qdrantPort)
	store, err := storage.NewStore(qdrantHost, qdrantPort, qdrantAPIKey)
	if err != nil {
		return fmt.Errorf("Failed to connect to Qdrant: %w", err)
	}
	defer store.Close()

	// 2. Check health
	if err := store.Health(ctx); err != nil {
		return fmt.Errorf("Qdrant health check failed: %w", err)
	}
	fmt.Println("Qdrant healthy")

	// 3. Initialize embedding client
	embeddingClient, err := embedding.NewClient()
	if err != nil {
		return fmt.Errorf("Failed to create embedding client: %w", err)
	}
	embedder := embedding.NewEmbedder(embeddingClient, 0) // Use default batch size

	// 4. Initialize loader and chunker
	loader := document.NewLoader()
	chunker := document.NewChunker(document.DefaultChunkSize, document.DefaultChunkOverlap)

	// 5. Run the pipeline
	fmt.Println()
	fmt.Printf("Indexing documents from %s...\n", dir)
	pipeline := indexer.NewPipeline(loader, chunker, embedder, store, slog.Default())

	result, err := pipeline.Rebuild(ctx, dir)
	if err != nil {
		return fmt.Errorf("Indexing failed: %w", err)
	}

	// 6. Print results
	fmt.Println()
	fmt.Println("Index build complete!")
	fmt.Printf("  Documents: %d\n", result.Documents)
	fmt.Printf("  Chunks: %d\n", result.Chunks)
	fmt.Printf("  Duration: %s\n", result.Duration.Round(time.Second))

	fmt.Println()
	fmt.Printf("Total time: %s\n", time.Since(start).Round(time.Second))

	return nil
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
