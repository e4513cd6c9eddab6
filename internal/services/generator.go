package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"studybuddy-backend/internal/models"
	"studybuddy-backend/internal/planner"
)

// ErrNoProvider is returned when an operation requires a generative-AI
// provider and none is configured.
var ErrNoProvider = errors.New("no generative-AI provider configured")

const cacheTTL = time.Hour

// Generator orchestrates the plan/quiz generation pipeline: try the provider,
// then unconditionally validate/repair so the caller always receives a
// well-formed result. The provider is consulted at most once per request;
// failures are never retried against it.
type Generator struct {
	gemini *GeminiService
	cache  *redis.Client // optional provider-response cache, AI path only
}

func NewGenerator(gemini *GeminiService, cache *redis.Client) *Generator {
	return &Generator{gemini: gemini, cache: cache}
}

// HasProvider reports whether a generative-AI credential is configured.
func (g *Generator) HasProvider() bool {
	return g.gemini != nil
}

// GenerateSchedule returns a weekly schedule for the request. With a provider
// configured it asks for a structured plan and passes extracted JSON through
// unmodified; on any provider failure (network error, non-success status,
// timeout, empty or unparseable output) it falls back to the deterministic
// builder. It never fails.
func (g *Generator) GenerateSchedule(ctx context.Context, req models.ScheduleRequest) json.RawMessage {
	if g.gemini != nil {
		if raw, err := g.tryEnhanceSchedule(ctx, req); err == nil {
			return raw
		} else {
			log.Printf("schedule provider path failed, using fallback: %v", err)
		}
	}

	schedule := planner.BuildSchedule(req, time.Now())
	raw, _ := json.Marshal(schedule)
	return raw
}

func (g *Generator) tryEnhanceSchedule(ctx context.Context, req models.ScheduleRequest) (json.RawMessage, error) {
	inputs, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`You are Study Buddy, an expert study planner. Create an optimal weekly schedule with time blocks given the inputs. Output strict JSON with keys: schedule{view:"weekly", days:[{day:string, blocks:[{course:string, duration:number, milestone:string}]}]}, milestones:[{course,next:string[],deadline:string|null}], meta{generatedAt:number,strategy:string}. Inputs: %s`, inputs)

	text, err := g.generateJSON(ctx, prompt)
	if err != nil {
		return nil, err
	}

	raw, ok := planner.ExtractJSON(text)
	if !ok {
		return nil, fmt.Errorf("provider response contained no JSON object")
	}
	return raw, nil
}

// GenerateQuiz returns exactly question_count repaired questions. It returns
// ErrNoProvider when no credential is configured; any other provider failure
// degrades silently to the deterministic synthesizer.
func (g *Generator) GenerateQuiz(ctx context.Context, req models.QuizRequest) (models.QuizResult, error) {
	if g.gemini == nil {
		return models.QuizResult{}, ErrNoProvider
	}

	subject := req.Subject
	topic := req.Topic
	if subject == "" || topic == "" {
		derivedSubject, derivedTopic := planner.DeriveSubjectTopic(req.ExtractedText)
		if subject == "" {
			subject = derivedSubject
		}
		if topic == "" {
			topic = derivedTopic
		}
	}

	count := req.QuestionCount
	if count <= 0 {
		count = 10
	}

	raw, err := g.tryEnhanceQuiz(ctx, req, subject, topic, count)
	if err != nil {
		log.Printf("quiz provider path failed, using fallback: %v", err)
		return models.QuizResult{
			Questions: planner.SynthesizeQuestions(subject, topic, count),
			Meta:      models.QuizMeta{Difficulty: req.DifficultyLevel, Count: count},
		}, nil
	}

	questions := planner.CleanQuestions(raw, subject, topic, count)
	return models.QuizResult{
		Questions: questions,
		Meta:      models.QuizMeta{Difficulty: req.DifficultyLevel, Count: len(questions)},
	}, nil
}

func (g *Generator) tryEnhanceQuiz(ctx context.Context, req models.QuizRequest, subject, topic string, count int) ([]models.RawQuestion, error) {
	prompt := fmt.Sprintf(`You are Study Buddy, an expert quiz generator. Given Subject and Topic below, generate exactly %d varied multiple-choice questions (no duplicates).
- Do NOT echo instructions or meta text in questions.
- Keep options concise and non-redundant; exactly 4 options per question, one correct.
- Avoid repeating identical wording across questions; cover definitions, applications, examples, misconceptions.
- Output ONLY strict JSON with schema:
{ "questions": [ { "id": string, "type": "multiple_choice", "prompt": string, "options": string[4], "correct_answers": string[1], "explanations": string } ], "meta": { "difficulty": "%s", "count": %d } }
Subject: %s
Topic: %s`, count, req.DifficultyLevel, count, subject, topic)

	text, err := g.generateJSON(ctx, prompt)
	if err != nil {
		return nil, err
	}

	raw, ok := planner.ExtractJSON(text)
	if !ok {
		return nil, fmt.Errorf("provider response contained no JSON object")
	}

	var parsed struct {
		Questions []models.RawQuestion `json:"questions"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("provider JSON did not match quiz schema: %w", err)
	}
	if len(parsed.Questions) == 0 {
		return nil, fmt.Errorf("provider returned no questions")
	}
	return parsed.Questions, nil
}

// generateJSON calls the provider, consulting the Redis response cache when
// one is configured. Cache errors are ignored; the deterministic core never
// depends on the cache.
func (g *Generator) generateJSON(ctx context.Context, prompt string) (string, error) {
	var key string
	if g.cache != nil {
		sum := sha256.Sum256([]byte(prompt))
		key = "ai_response:" + hex.EncodeToString(sum[:16])
		if cached, err := g.cache.Get(ctx, key).Result(); err == nil && cached != "" {
			return cached, nil
		}
	}

	text, err := g.gemini.GenerateJSON(ctx, prompt)
	if err != nil {
		return "", err
	}

	if g.cache != nil {
		if err := g.cache.Set(ctx, key, text, cacheTTL).Err(); err != nil {
			log.Printf("failed to cache provider response: %v", err)
		}
	}
	return text, nil
}
