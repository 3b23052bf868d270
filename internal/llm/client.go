package llm

import "context"

type Message struct {
	Role    string
	Content string
}

type Response struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Client is the text-generation collaborator. Implementations carry their
// own generation parameters; callers only supply the conversation.
type Client interface {
	Generate(ctx context.Context, messages []Message) (Response, error)
}
