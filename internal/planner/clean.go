package planner

import (
	"fmt"
	"regexp"
	"strings"

	"studybuddy-backend/internal/models"
)

var (
	// Models occasionally echo generation instructions into the prompt text.
	leakedOptionsPattern = regexp.MustCompile(`(?is)include 4 options.*$`)
	leakedAnswersPattern = regexp.MustCompile(`(?is)provide correct_answers.*$`)
	whitespacePattern    = regexp.MustCompile(`\s+`)
	spaceBeforeDot       = regexp.MustCompile(`\s+\.`)
)

// CleanQuestions repairs a candidate list of provider-produced (or partially
// missing) questions into exactly target valid, deduplicated multiple-choice
// questions, backfilling with synthetic ones as needed. The result always
// satisfies the quiz invariants: 4 distinct options per question, one correct
// answer, and that answer present in the options.
func CleanQuestions(raw []models.RawQuestion, subject, topic string, target int) []models.Question {
	seen := make(map[string]bool)
	cleaned := make([]models.Question, 0, target)

	for _, q := range raw {
		prompt := q.Prompt
		if prompt == "" {
			prompt = q.Question
		}
		prompt = sanitizePrompt(prompt)
		if prompt == "" {
			continue
		}
		key := strings.ToLower(prompt)
		if seen[key] {
			continue
		}
		seen[key] = true

		correct := resolveCorrect(q, subject, topic)
		options := uniqOptions(q.Options, correct, subject, topic)

		id := q.ID
		if id == "" {
			id = fmt.Sprintf("q%d", len(cleaned)+1)
		}

		cleaned = append(cleaned, models.Question{
			ID:             id,
			Type:           "multiple_choice",
			Prompt:         prompt,
			Options:        options,
			CorrectAnswers: []string{correct},
			Explanations:   q.Explanations,
		})
		if len(cleaned) >= target {
			break
		}
	}

	// Backfill with synthetic questions, continuing the index sequence.
	for len(cleaned) < target {
		cleaned = append(cleaned, questionTemplate(subject, topic, len(cleaned)+1))
	}

	return cleaned
}

// sanitizePrompt strips known instruction-leakage suffixes, then collapses
// whitespace and normalizes spacing before sentence-final periods.
func sanitizePrompt(p string) string {
	p = leakedOptionsPattern.ReplaceAllString(p, "")
	p = leakedAnswersPattern.ReplaceAllString(p, "")
	p = whitespacePattern.ReplaceAllString(p, " ")
	p = spaceBeforeDot.ReplaceAllString(p, ".")
	return strings.TrimSpace(p)
}

// resolveCorrect accepts the first declared correct answer, a legacy "answer"
// field, or synthesizes one as a last resort. A question never leaves the
// cleaner without a correct answer.
func resolveCorrect(q models.RawQuestion, subject, topic string) string {
	if len(q.CorrectAnswers) > 0 {
		if c := strings.TrimSpace(q.CorrectAnswers[0]); c != "" {
			return c
		}
	}
	if c := strings.TrimSpace(q.Answer); c != "" {
		return c
	}
	return fmt.Sprintf("%s relates to %s", topic, subject)
}

// uniqOptions dedupes candidate options case-insensitively (order preserved),
// tops the set up to 4 with synthetic distractors, and force-inserts the
// correct answer at index 0 when it is not already present.
func uniqOptions(opts []string, correct, subject, topic string) []string {
	out := make([]string, 0, 4)
	set := make(map[string]bool)
	for _, o := range opts {
		t := strings.TrimSpace(o)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if set[key] {
			continue
		}
		set[key] = true
		out = append(out, t)
	}

	for n := len(out); len(out) < 4; n++ {
		filler := distractor(topic, subject, n)
		key := strings.ToLower(filler)
		if set[key] {
			continue
		}
		set[key] = true
		out = append(out, filler)
	}

	out = out[:4]

	found := false
	for _, o := range out {
		if o == correct {
			found = true
			break
		}
	}
	if !found {
		out[0] = correct
	}

	return out
}
