package main

import (
	"context"
	"fmt"
	"os"

	"news-ingestor/bootstrap"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development.
	_ = godotenv.Load()

	ctx := context.Background()

	if err := bootstrap.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "news-ingestor: %v\n", err)
		os.Exit(1)
	}
}
