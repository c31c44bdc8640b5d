package llm

import "context"

// ChatModel is a minimal abstraction over chat-based LLMs used by the domain.
// The career-analysis usecase needs a single system+user exchange returning
// text; concrete providers stay hidden to preserve dependency direction.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
