package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Ollama talks to a local Ollama server via its /api/chat endpoint
type Ollama struct {
	host  string
	model string

	// Temperature and NumPredict are passed through as request options
	Temperature float64
	NumPredict  int

	client *http.Client
}

// NewOllama creates an Ollama provider for the given host and model
func NewOllama(host, model string) *Ollama {
	return &Ollama{
		host:        strings.TrimRight(host, "/"),
		model:       model,
		Temperature: 0.7,
		NumPredict:  200,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  map[string]any  `json:"options,omitempty"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
}

// Complete sends a non-streaming chat request to Ollama
func (o *Ollama) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if userMessage == "" {
		return "", ErrEmptyMessage
	}

	reqBody := ollamaChatRequest{
		Model: o.model,
		Messages: []ollamaMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		Stream: false,
		Options: map[string]any{
			"temperature": o.Temperature,
			"num_predict": o.NumPredict,
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal ollama request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", o.host+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create ollama request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &APIError{Provider: TypeOllama, Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	var parsed ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode ollama response: %w", err)
	}

	reply := strings.TrimSpace(parsed.Message.Content)
	if reply == "" {
		return "", ErrEmptyReply
	}
	return reply, nil
}

// Name returns "ollama"
func (o *Ollama) Name() Type {
	return TypeOllama
}
