package docgen

import (
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestListSourceFiles(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "app.py"), "print('hi')")
	write(t, filepath.Join(root, "util.go"), "package util")
	write(t, filepath.Join(root, "notes.md"), "# notes")
	write(t, filepath.Join(root, "app_test.py"), "def test(): pass")
	write(t, filepath.Join(root, "fixtures", "data.py"), "x = 1")
	write(t, filepath.Join(root, "sub", "handler.ts"), "export {}")

	files, err := ListSourceFiles(root)
	if err != nil {
		t.Fatal(err)
	}

	got := make(map[string]bool, len(files))
	for _, f := range files {
		rel, _ := filepath.Rel(root, f)
		got[filepath.ToSlash(rel)] = true
	}

	for _, want := range []string{"app.py", "util.go", "sub/handler.ts"} {
		if !got[want] {
			t.Errorf("missing %s in %v", want, got)
		}
	}
	for _, skip := range []string{"notes.md", "app_test.py", "fixtures/data.py"} {
		if got[skip] {
			t.Errorf("%s should have been skipped", skip)
		}
	}
}

func TestBuildDependencyMap(t *testing.T) {
	root := t.TempDir()
	util := filepath.Join(root, "util.py")
	app := filepath.Join(root, "app.py")
	other := filepath.Join(root, "other.py")
	write(t, util, "def helper(): pass")
	write(t, app, "import util\nutil.helper()")
	write(t, other, "print('standalone')")

	deps, err := BuildDependencyMap([]string{app, other, util})
	if err != nil {
		t.Fatal(err)
	}

	if len(deps[app]) != 1 || deps[app][0] != util {
		t.Fatalf("app deps = %v, want [%s]", deps[app], util)
	}
	if len(deps[other]) != 0 {
		t.Fatalf("other deps = %v, want none", deps[other])
	}
	if len(deps[util]) != 0 {
		t.Fatalf("util deps = %v, want none", deps[util])
	}
}

func TestDocFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"internal/tasks/service.go", "internal_tasks_service.go.md"},
		{"./app.py", "app.py.md"},
		{"main.go", "main.go.md"},
	}
	for _, tc := range cases {
		if got := DocFileName(tc.in); got != tc.want {
			t.Errorf("DocFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
