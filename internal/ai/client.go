package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client talks to an OpenAI-compatible chat-completions endpoint.
// BaseURL is configurable so a local server (e.g. Ollama's compat API)
// works too.
type Client struct {
	APIKey  string
	Model   string
	BaseURL string
}

func New(apiKey, model, baseURL string) *Client {
	return &Client{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Complete sends one user prompt and returns the assistant text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	body := map[string]interface{}{
		"model": c.Model,
		"messages": []map[string]interface{}{
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"temperature": 0.2,
	}

	bodyJSON, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(
		ctx,
		"POST",
		c.BaseURL+"/chat/completions",
		bytes.NewBuffer(bodyJSON),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	raw, _ := io.ReadAll(res.Body)
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model API returned %d: %s", res.StatusCode, string(raw))
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", err
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("model did not return text")
	}
	return parsed.Choices[0].Message.Content, nil
}
