package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCompleteTalksChatCompletions(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"## Overview\ndocs"}}]}`))
	}))
	defer srv.Close()

	c := New("test-key", "test-model", srv.URL)
	out, err := c.Complete(context.Background(), "document this")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out != "## Overview\ndocs" {
		t.Fatalf("content = %q", out)
	}
	if gotPath != "/chat/completions" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("auth = %q", gotAuth)
	}
	if gotBody["model"] != "test-model" {
		t.Fatalf("model = %v", gotBody["model"])
	}
}

func TestCompleteSurfacesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := New("k", "m", srv.URL).Complete(context.Background(), "x"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestCompleteRejectsEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	if _, err := New("k", "m", srv.URL).Complete(context.Background(), "x"); err == nil {
		t.Fatal("expected error when model returns no text")
	}
}

func TestBuildDocPrompt(t *testing.T) {
	p := BuildDocPrompt("app.py", "print('hi')", []string{"util.py"})

	for _, want := range []string{
		"# File\napp.py",
		"- util.py",
		"print('hi')",
		"## Overview",
		"## Module Relationships",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	empty := BuildDocPrompt("app.py", "", nil)
	if !strings.Contains(empty, "None detected") {
		t.Error("prompt for file without deps should say None detected")
	}
}
