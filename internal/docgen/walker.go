// Package docgen walks a source tree and produces one Markdown document
// per source file by asking a language model.
package docgen

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var sourceExtensions = map[string]bool{
	".py":   true,
	".js":   true,
	".ts":   true,
	".java": true,
	".go":   true,
}

// ListSourceFiles collects documentable files under root. Paths that
// contain "test" or "fixture" anywhere below root are skipped.
func ListSourceFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !sourceExtensions[filepath.Ext(path)] {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		lower := strings.ToLower(filepath.ToSlash(rel))
		if strings.Contains(lower, "test") || strings.Contains(lower, "fixture") {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// BuildDependencyMap is a very simple static dependency detector: file A
// depends on file B when A's text mentions "import <stem of B>" or
// "from <stem of B>". Crude on purpose.
func BuildDependencyMap(files []string) (map[string][]string, error) {
	deps := make(map[string][]string, len(files))
	for _, f := range files {
		deps[f] = nil
	}

	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		content := string(raw)

		for _, other := range files {
			if other == file {
				continue
			}
			name := stem(other)
			if strings.Contains(content, "import "+name) || strings.Contains(content, "from "+name) {
				deps[file] = append(deps[file], other)
			}
		}
	}

	return deps, nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DocFileName flattens a source path into a single markdown file name,
// e.g. "internal/tasks/service.go" -> "internal_tasks_service.go.md".
func DocFileName(path string) string {
	clean := filepath.ToSlash(filepath.Clean(path))
	clean = strings.TrimPrefix(clean, "./")
	clean = strings.ReplaceAll(clean, "/", "_")
	return clean + ".md"
}
