package planner

import (
	"fmt"
	"strings"
	"testing"

	"studybuddy-backend/internal/models"
)

func TestCleanQuestions_RepairsMalformedBatch(t *testing.T) {
	raw := []models.RawQuestion{
		{
			Prompt:         "What is velocity?   Include 4 options and make them plausible.",
			Options:        []string{"Rate of change of position", "rate of change of position", "A force"},
			CorrectAnswers: []string{"Rate of change of position"},
		},
		{
			Question: "what is velocity? Provide correct_answers as an array.",
			Answer:   "Rate of change of position",
		},
		{
			Prompt: "What is acceleration ?",
			// No options, no declared correct answer.
		},
	}

	cleaned := CleanQuestions(raw, "Physics", "kinematics", 5)

	if len(cleaned) != 5 {
		t.Fatalf("Expected 5 questions, got %d", len(cleaned))
	}

	// Instruction leakage stripped from the first prompt.
	if cleaned[0].Prompt != "What is velocity?" {
		t.Errorf("Expected sanitized prompt, got %q", cleaned[0].Prompt)
	}

	// The second raw question duplicates the first (case-insensitive prompt
	// after sanitization), so question two comes from the third raw entry.
	if !strings.HasPrefix(cleaned[1].Prompt, "What is acceleration") {
		t.Errorf("Expected dedup to skip the duplicate prompt, got %q", cleaned[1].Prompt)
	}

	// Question with no declared answer gets a synthesized one.
	if cleaned[1].CorrectAnswers[0] != "kinematics relates to Physics" {
		t.Errorf("Expected synthesized correct answer, got %q", cleaned[1].CorrectAnswers[0])
	}

	for i, q := range cleaned {
		if q.Type != "multiple_choice" {
			t.Errorf("Question %d: expected multiple_choice, got %q", i, q.Type)
		}
		if q.ID == "" {
			t.Errorf("Question %d has empty ID", i)
		}
		assertQuestionInvariants(t, q.Options, q.CorrectAnswers)
	}
}

func TestCleanQuestions_BackfillsToTarget(t *testing.T) {
	cleaned := CleanQuestions(nil, "Math", "algebra", 3)

	if len(cleaned) != 3 {
		t.Fatalf("Expected 3 questions, got %d", len(cleaned))
	}
	for i, q := range cleaned {
		assertQuestionInvariants(t, q.Options, q.CorrectAnswers)
		if q.ID != fmt.Sprintf("q%d", i+1) {
			t.Errorf("Question %d: expected sequential ID, got %q", i, q.ID)
		}
	}
}

func TestCleanQuestions_TruncatesToTarget(t *testing.T) {
	raw := []models.RawQuestion{
		{Prompt: "Q one?", Answer: "a"},
		{Prompt: "Q two?", Answer: "b"},
		{Prompt: "Q three?", Answer: "c"},
	}

	cleaned := CleanQuestions(raw, "Math", "algebra", 2)

	if len(cleaned) != 2 {
		t.Fatalf("Expected 2 questions, got %d", len(cleaned))
	}
	if cleaned[1].Prompt != "Q two?" {
		t.Errorf("Expected input order preserved, got %q", cleaned[1].Prompt)
	}
}

func TestCleanQuestions_ForcesCorrectIntoOptions(t *testing.T) {
	raw := []models.RawQuestion{
		{
			Prompt:         "Pick the right one.",
			Options:        []string{"wrong a", "wrong b", "wrong c", "wrong d"},
			CorrectAnswers: []string{"the right one"},
		},
	}

	cleaned := CleanQuestions(raw, "Math", "algebra", 1)

	if cleaned[0].Options[0] != "the right one" {
		t.Errorf("Expected correct answer forced into slot 0, got %v", cleaned[0].Options)
	}
	assertQuestionInvariants(t, cleaned[0].Options, cleaned[0].CorrectAnswers)
}

func TestCleanQuestions_Idempotent(t *testing.T) {
	raw := []models.RawQuestion{
		{
			Prompt:  "What is   gravity ? Include 4 options for this.",
			Options: []string{"A force", "a force", "A color"},
			Answer:  "A force",
		},
	}

	once := CleanQuestions(raw, "Physics", "gravity", 2)

	reRaw := make([]models.RawQuestion, len(once))
	for i, q := range once {
		reRaw[i] = models.RawQuestion{
			ID:             q.ID,
			Prompt:         q.Prompt,
			Options:        q.Options,
			CorrectAnswers: q.CorrectAnswers,
			Explanations:   q.Explanations,
		}
	}

	twice := CleanQuestions(reRaw, "Physics", "gravity", 2)

	if len(once) != len(twice) {
		t.Fatalf("Expected stable length, got %d then %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].Prompt != twice[i].Prompt {
			t.Errorf("Question %d prompt changed on re-clean: %q vs %q", i, once[i].Prompt, twice[i].Prompt)
		}
		if len(once[i].Options) != len(twice[i].Options) {
			t.Fatalf("Question %d option count changed on re-clean", i)
		}
		for j := range once[i].Options {
			if once[i].Options[j] != twice[i].Options[j] {
				t.Errorf("Question %d option %d changed on re-clean: %q vs %q", i, j, once[i].Options[j], twice[i].Options[j])
			}
		}
		if once[i].CorrectAnswers[0] != twice[i].CorrectAnswers[0] {
			t.Errorf("Question %d correct answer changed on re-clean", i)
		}
	}
}
