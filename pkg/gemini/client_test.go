package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"skill-tracking-assistant/pkg/gemini"
)

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if _, ok := body["system_instruction"]; !ok {
			t.Error("expected system_instruction in request body")
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{"content": {"role": "model", "parts": [{"text": "{\"action\":\"chat\"}"}]}}
			],
			"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 5, "totalTokenCount": 17}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &gemini.Request{
		SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: "respond with JSON"}}},
		Messages: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: "hello"}}},
		},
	})
	if err != nil {
		t.Fatalf("GenerateContent failed: %v", err)
	}

	if len(resp.Content.Parts) != 1 || resp.Content.Parts[0].Text != `{"action":"chat"}` {
		t.Errorf("unexpected content: %+v", resp.Content)
	}
	if resp.Usage.TotalTokens != 17 {
		t.Errorf("expected 17 total tokens, got %d", resp.Usage.TotalTokens)
	}
}

func TestGenerateContentAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "boom"}`))
	}))
	defer ts.Close()

	client, _ := gemini.New(gemini.Config{APIKey: "test-key", APIURL: ts.URL})
	if _, err := client.GenerateContent(context.Background(), &gemini.Request{}); err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Fatal("expected error without API key")
	}
}
