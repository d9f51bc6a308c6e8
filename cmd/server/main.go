// Command server runs the vocabulary and review HTTP API.
//
// Configuration comes from environment variables and an optional YAML file
// (CONFIG_PATH, default ./config.yaml). A local .env file, when present, is
// loaded first for development convenience.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/toevol/toevol-backend/internal/app"
)

func main() {
	_ = godotenv.Load()

	if err := app.Run(context.Background()); err != nil {
		log.Printf("server: %v", err)
		os.Exit(1)
	}
}
