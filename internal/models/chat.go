package models

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" | "assistant" | "system"
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the chat relay endpoints. Provider is
// only honored by /ai/chat ("gemini" | "heroku" | "auto", default auto).
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
	Provider string        `json:"provider,omitempty"`
}

// ChatUsage mirrors the token accounting returned by OpenAI-compatible
// providers.
type ChatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatResponse is the reply from a chat relay.
type ChatResponse struct {
	Message   ChatMessage `json:"message"`
	Citations []string    `json:"citations"`
	Provider  string      `json:"provider"`
	Usage     *ChatUsage  `json:"usage,omitempty"`
}
