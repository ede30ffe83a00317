package reply

import (
	"context"
	"errors"
	"testing"

	"github.com/mira-care/mira-agent/internal/provider"
)

type stubProvider struct {
	name  provider.Type
	text  string
	err   error
	calls int
}

func (s *stubProvider) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	s.calls++
	return s.text, s.err
}

func (s *stubProvider) Name() provider.Type { return s.name }

func TestGenerateFirstProviderWins(t *testing.T) {
	first := &stubProvider{name: "ollama", text: "I'm glad you reached out."}
	second := &stubProvider{name: "openai", text: "should not be used"}

	g := NewGenerator([]provider.Provider{first, second})
	got := g.Generate(context.Background(), "hi")

	if got != "I'm glad you reached out." {
		t.Errorf("Generate = %q", got)
	}
	if second.calls != 0 {
		t.Error("second provider should not be called when the first succeeds")
	}
}

func TestGenerateFallsThroughOnError(t *testing.T) {
	first := &stubProvider{name: "ollama", err: errors.New("connection refused")}
	second := &stubProvider{name: "openai", text: "That sounds really hard."}

	g := NewGenerator([]provider.Provider{first, second})
	got := g.Generate(context.Background(), "hi")

	if got != "That sounds really hard." {
		t.Errorf("Generate = %q", got)
	}
	if first.calls != 1 {
		t.Errorf("first provider got %d attempts, want exactly 1", first.calls)
	}
}

func TestGenerateFallbackWhenChainExhausted(t *testing.T) {
	first := &stubProvider{name: "ollama", err: errors.New("down")}
	second := &stubProvider{name: "openai", err: errors.New("also down")}

	g := NewGenerator([]provider.Provider{first, second})
	got := g.Generate(context.Background(), "hi")

	if got != fallbackReply {
		t.Errorf("Generate = %q, want fallback", got)
	}
}

func TestGenerateEmptyChain(t *testing.T) {
	g := NewGenerator(nil)
	if got := g.Generate(context.Background(), "hi"); got != fallbackReply {
		t.Errorf("Generate = %q, want fallback", got)
	}
}

func TestGenerateSkipsWhitespaceReply(t *testing.T) {
	first := &stubProvider{name: "ollama", text: "   "}
	second := &stubProvider{name: "openai", text: "real reply"}

	g := NewGenerator([]provider.Provider{first, second})
	if got := g.Generate(context.Background(), "hi"); got != "real reply" {
		t.Errorf("Generate = %q", got)
	}
}

func TestStripRolePrefix(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Mira: how are you feeling?", "how are you feeling?"},
		{"ASSISTANT: take a breath", "take a breath"},
		{"ai: here for you", "here for you"},
		{"  mira:   extra padding  ", "extra padding"},
		{"no prefix here", "no prefix here"},
		{"admiral: not a role", "admiral: not a role"},
	}
	for _, tc := range cases {
		if got := stripRolePrefix(tc.in); got != tc.want {
			t.Errorf("stripRolePrefix(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
