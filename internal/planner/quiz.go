package planner

import (
	"fmt"

	"studybuddy-backend/internal/models"
)

var promptTemplates = [5]string{
	"Which statement about %s in %s is most accurate?",
	"Which example best illustrates %s in %s?",
	"Which formula/fact is associated with %s in %s?",
	"Which misconception about %s in %s is FALSE?",
	"Which application uses %s most directly in %s?",
}

var distractorPool = [6]string{
	"%s is unrelated to %s",
	"%s only appears in biology",
	"%s cannot be measured",
	"%s is purely historical",
	"%s is always random",
	"%s has no real-world uses",
}

// SynthesizeQuestions produces exactly count fully-formed multiple-choice
// questions for a subject/topic pair, deterministically shaped from the
// fixed templates. It never fails.
func SynthesizeQuestions(subject, topic string, count int) []models.Question {
	questions := make([]models.Question, 0, count)
	for i := 1; i <= count; i++ {
		questions = append(questions, questionTemplate(subject, topic, i))
	}
	return questions
}

// questionTemplate builds the i-th synthetic question, cycling the 5 prompt
// templates. The first option is always the correct one.
func questionTemplate(subject, topic string, i int) models.Question {
	prompt := fmt.Sprintf(promptTemplates[(i-1)%len(promptTemplates)], topic, subject)
	options := []string{
		fmt.Sprintf("%s relates to %s fundamentals", topic, subject),
		fmt.Sprintf("%s is unrelated to %s", topic, subject),
		fmt.Sprintf("%s only appears in biology", topic),
		fmt.Sprintf("%s cannot be measured", topic),
	}
	return models.Question{
		ID:             fmt.Sprintf("q%d", i),
		Type:           "multiple_choice",
		Prompt:         prompt,
		Options:        options,
		CorrectAnswers: []string{options[0]},
		Explanations:   fmt.Sprintf("%s is foundational within %s.", topic, subject),
	}
}

// distractor returns the n-th synthetic incorrect option, cycling a fixed
// 6-item pool so repeated fills for the same question vary by position.
func distractor(topic, subject string, n int) string {
	idx := n % len(distractorPool)
	if idx == 0 {
		return fmt.Sprintf(distractorPool[idx], topic, subject)
	}
	return fmt.Sprintf(distractorPool[idx], topic)
}
