package docgen

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"taskflow-backend/internal/ai"
)

type Generator struct {
	AI     *ai.Client
	OutDir string
}

func New(client *ai.Client, outDir string) *Generator {
	return &Generator{AI: client, OutDir: outDir}
}

// Run documents every source file under root, one model call per file,
// sequentially. A failed file is logged and skipped; the walk goes on.
func (g *Generator) Run(ctx context.Context, root string) error {
	files, err := ListSourceFiles(root)
	if err != nil {
		return fmt.Errorf("docgen: %w", err)
	}
	if len(files) == 0 {
		log.Println("no source files found, nothing to document")
		return nil
	}

	deps, err := BuildDependencyMap(files)
	if err != nil {
		return fmt.Errorf("docgen: %w", err)
	}

	if err := os.MkdirAll(g.OutDir, 0o755); err != nil {
		return fmt.Errorf("docgen: %w", err)
	}

	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			log.Printf("[WARN] read %s failed: %v", file, err)
			continue
		}

		prompt := ai.BuildDocPrompt(file, string(raw), deps[file])

		doc, err := g.AI.Complete(ctx, prompt)
		if err != nil {
			log.Printf("[WARN] model call failed for %s: %v", file, err)
			continue
		}

		out := filepath.Join(g.OutDir, DocFileName(file))
		if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
			log.Printf("[WARN] write %s failed: %v", out, err)
			continue
		}

		log.Printf("documented %s -> %s", file, out)
	}

	return nil
}
