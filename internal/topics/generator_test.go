package topics

import (
	"context"
	"errors"
	"testing"

	"date-topics/internal/llm"
)

type fakeLLM struct {
	resp  llm.Response
	err   error
	calls int
}

func (f *fakeLLM) Generate(ctx context.Context, msgs []llm.Message) (llm.Response, error) {
	f.calls++
	return f.resp, f.err
}

func TestParseTopics_DropsMalformedLines(t *testing.T) {
	text := "Stargazing: talk about constellations\nNo colon here\nFood: favorite cuisines"
	got := ParseTopics(text)
	if len(got) != 2 {
		t.Fatalf("want 2 topics, got %d: %+v", len(got), got)
	}
	if got[0].Topic != "Stargazing" || got[0].Details != "talk about constellations" {
		t.Fatalf("unexpected first topic: %+v", got[0])
	}
	if got[1].Topic != "Food" || got[1].Details != "favorite cuisines" {
		t.Fatalf("unexpected second topic: %+v", got[1])
	}
}

func TestParseTopics_SplitsOnFirstColon(t *testing.T) {
	got := ParseTopics("Movies: old ones: which and why")
	if len(got) != 1 {
		t.Fatalf("want 1 topic, got %d", len(got))
	}
	if got[0].Topic != "Movies" || got[0].Details != "old ones: which and why" {
		t.Fatalf("first-colon split violated: %+v", got[0])
	}
}

func TestParseTopics_EmptyAndUnusableInput(t *testing.T) {
	if got := ParseTopics(""); len(got) != 0 {
		t.Fatalf("empty input should yield no topics: %+v", got)
	}
	if got := ParseTopics("nothing usable\nat all"); len(got) != 0 {
		t.Fatalf("colon-less input should yield no topics: %+v", got)
	}
}

func TestGenerator_SendsFixedPromptPair(t *testing.T) {
	f := &fakeLLM{resp: llm.Response{Content: "A: B"}}
	var seen []llm.Message
	f2 := &captureLLM{inner: f, seen: &seen}
	g := NewGenerator(f2)
	got, err := g.Generate(context.Background())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(got) != 1 || got[0].Topic != "A" || got[0].Details != "B" {
		t.Fatalf("unexpected topics: %+v", got)
	}
	if len(seen) != 2 || seen[0].Role != "system" || seen[1].Role != "user" {
		t.Fatalf("expected system+user prompt pair, got %+v", seen)
	}
	if seen[0].Content != systemPrompt || seen[1].Content != userPrompt {
		t.Fatalf("prompt text must be fixed, got %+v", seen)
	}
}

type captureLLM struct {
	inner *fakeLLM
	seen  *[]llm.Message
}

func (c *captureLLM) Generate(ctx context.Context, msgs []llm.Message) (llm.Response, error) {
	*c.seen = append([]llm.Message(nil), msgs...)
	return c.inner.Generate(ctx, msgs)
}

func TestGenerator_PropagatesCollaboratorFailure(t *testing.T) {
	wantErr := errors.New("quota exceeded")
	g := NewGenerator(&fakeLLM{err: wantErr})
	if _, err := g.Generate(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("collaborator failure not propagated: %v", err)
	}
}
