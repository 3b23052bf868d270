package topics

import (
	"context"
	"fmt"
	"strings"

	"date-topics/internal/llm"
)

// The prompt pair is fixed; callers cannot influence it.
const (
	systemPrompt = "You are a helpful assistant."
	userPrompt   = "Generate 3 specific, conversation-friendly topics with a short explanation " +
		"that someone can use on a date. Topics should be unique and engaging."
)

// Generator produces the topics for one slot via the text-generation
// collaborator. Failures propagate to the caller; no retry here.
type Generator struct {
	llm llm.Client
}

func NewGenerator(client llm.Client) *Generator {
	return &Generator{llm: client}
}

func (g *Generator) Generate(ctx context.Context) ([]Topic, error) {
	resp, err := g.llm.Generate(ctx, []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	})
	if err != nil {
		return nil, fmt.Errorf("topic generation failed: %w", err)
	}
	return ParseTopics(resp.Content), nil
}

// ParseTopics splits free text into topic/details pairs: one pair per line,
// split on the first ":", details trimmed. Lines without a colon are dropped
// silently. Zero usable lines yields an empty result, which is valid — the
// parse is deliberately best-effort.
func ParseTopics(text string) []Topic {
	var out []Topic
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		name, details, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		out = append(out, Topic{Topic: name, Details: strings.TrimSpace(details)})
	}
	return out
}
