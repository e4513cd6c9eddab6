package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"studybuddy-backend/internal/models"
)

const tutorSystemPrompt = "You are Study Buddy AI Assistant, a patient, encouraging study tutor. " +
	"Provide step-by-step explanations, cite sources when provided, and format math clearly (LaTeX syntax allowed)."

// GeminiService wraps the Gemini generative API. Every call runs under a
// bounded timeout; a timeout is reported as an ordinary provider error so
// callers can fail over to their deterministic path.
type GeminiService struct {
	client    *genai.Client
	modelName string
	timeout   time.Duration
}

func NewGeminiService(apiKey, modelName string, timeout time.Duration) (*GeminiService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{
		client:    client,
		modelName: modelName,
		timeout:   timeout,
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// GenerateJSON sends a single prompt in JSON mode and returns the raw text of
// the response. The text is not guaranteed to be valid JSON; callers run it
// through the extractor.
func (s *GeminiService) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	model := s.client.GenerativeModel(s.modelName)
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.3)
	model.SetTopP(0.95)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", fmt.Errorf("Gemini returned empty response")
	}
	return text, nil
}

// Chat relays a conversation to Gemini with the Study Buddy tutor priming and
// returns the assistant reply.
func (s *GeminiService) Chat(ctx context.Context, messages []models.ChatMessage) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("messages array required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	model := s.client.GenerativeModel(s.modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(tutorSystemPrompt)},
	}

	chat := model.StartChat()
	for _, m := range messages[:len(messages)-1] {
		role := "user"
		if m.Role == "assistant" {
			role = "model"
		}
		chat.History = append(chat.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}

	resp, err := chat.SendMessage(ctx, genai.Text(messages[len(messages)-1].Content))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		text = "(empty response)"
	}
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text.WriteString(string(t))
			}
		}
	}
	return strings.TrimSpace(text.String())
}
