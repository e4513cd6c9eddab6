package services

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"studybuddy-backend/internal/models"
)

// HerokuAIService talks to a Heroku-hosted, OpenAI-compatible inference
// endpoint through the chat completions API.
type HerokuAIService struct {
	client  *openai.Client
	modelID string
	timeout time.Duration
}

func NewHerokuAIService(baseURL, apiKey, modelID string, timeout time.Duration) *HerokuAIService {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL + "/v1"

	return &HerokuAIService{
		client:  openai.NewClientWithConfig(cfg),
		modelID: modelID,
		timeout: timeout,
	}
}

// Chat relays a conversation with the Study Buddy tutor priming and returns
// the assistant reply plus token usage.
func (s *HerokuAIService) Chat(ctx context.Context, messages []models.ChatMessage) (string, *models.ChatUsage, error) {
	if len(messages) == 0 {
		return "", nil, fmt.Errorf("messages array required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	chatMessages := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	chatMessages = append(chatMessages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: tutorSystemPrompt,
	})
	for _, m := range messages {
		role := openai.ChatMessageRoleUser
		switch m.Role {
		case "assistant":
			role = openai.ChatMessageRoleAssistant
		case "system":
			role = openai.ChatMessageRoleSystem
		}
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.modelID,
		Messages:    chatMessages,
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	if err != nil {
		return "", nil, fmt.Errorf("Heroku AI error: %w", err)
	}

	content := "(empty response)"
	if len(resp.Choices) > 0 && resp.Choices[0].Message.Content != "" {
		content = resp.Choices[0].Message.Content
	}

	usage := &models.ChatUsage{
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}
	return content, usage, nil
}
