package main

import (
	"context"
	"flag"
	"log"

	"taskflow-backend/internal/ai"
	"taskflow-backend/internal/config"
	"taskflow-backend/internal/docgen"
)

func main() {
	root := flag.String("root", ".", "source tree to document")
	flag.Parse()

	cfg := config.Load()

	if cfg.OpenAIKey == "" {
		log.Fatal("❌ OPENAI_API_KEY is required")
	}

	client := ai.New(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	gen := docgen.New(client, cfg.DocsDir)

	log.Println("🚀 Generating docs for", *root, "->", cfg.DocsDir)
	if err := gen.Run(context.Background(), *root); err != nil {
		log.Fatal("❌ Doc generation failed:", err)
	}
	log.Println("✅ Done")
}
