package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOllamaComplete(t *testing.T) {
	var captured ollamaChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(ollamaChatResponse{
			Message: ollamaMessage{Role: "assistant", Content: "  I'm here with you.  "},
		})
	}))
	defer srv.Close()

	p := NewOllama(srv.URL, "mistral:latest")
	reply, err := p.Complete(context.Background(), "system prompt", "user message")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if reply != "I'm here with you." {
		t.Errorf("reply = %q, want trimmed content", reply)
	}
	if captured.Model != "mistral:latest" {
		t.Errorf("model = %q", captured.Model)
	}
	if captured.Stream {
		t.Error("stream should be false")
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" {
		t.Errorf("messages = %+v", captured.Messages)
	}
}

func TestOllamaCompleteErrors(t *testing.T) {
	t.Run("empty message", func(t *testing.T) {
		p := NewOllama("http://127.0.0.1:1", "m")
		if _, err := p.Complete(context.Background(), "sys", ""); !errors.Is(err, ErrEmptyMessage) {
			t.Errorf("err = %v, want ErrEmptyMessage", err)
		}
	})

	t.Run("server error surfaces as APIError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model not found", http.StatusNotFound)
		}))
		defer srv.Close()

		p := NewOllama(srv.URL, "missing")
		_, err := p.Complete(context.Background(), "sys", "hi")
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("err = %v, want APIError", err)
		}
		if apiErr.Status != http.StatusNotFound || apiErr.Provider != TypeOllama {
			t.Errorf("APIError = %+v", apiErr)
		}
	})

	t.Run("blank reply", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(ollamaChatResponse{Message: ollamaMessage{Content: "   "}})
		}))
		defer srv.Close()

		p := NewOllama(srv.URL, "m")
		if _, err := p.Complete(context.Background(), "sys", "hi"); !errors.Is(err, ErrEmptyReply) {
			t.Errorf("err = %v, want ErrEmptyReply", err)
		}
	})
}

func TestOpenAIComplete(t *testing.T) {
	var captured openAIChatRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "That sounds hard."}},
			},
		})
	}))
	defer srv.Close()

	p := NewOpenAI("sk-test", "gpt-4o-mini", srv.URL)
	p.Temperature = 0.2
	p.MaxTokens = 60

	reply, err := p.Complete(context.Background(), "classify", "text")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if reply != "That sounds hard." {
		t.Errorf("reply = %q", reply)
	}
	if auth != "Bearer sk-test" {
		t.Errorf("auth header = %q", auth)
	}
	if captured.Temperature != 0.2 || captured.MaxTokens != 60 {
		t.Errorf("options not forwarded: %+v", captured)
	}
}

func TestOpenAICompleteNotConfigured(t *testing.T) {
	p := NewOpenAI("", "gpt-4o-mini", "")
	if _, err := p.Complete(context.Background(), "sys", "hi"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

func TestOpenAICompleteNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	p := NewOpenAI("sk-test", "m", srv.URL)
	if _, err := p.Complete(context.Background(), "sys", "hi"); !errors.Is(err, ErrEmptyReply) {
		t.Errorf("err = %v, want ErrEmptyReply", err)
	}
}
