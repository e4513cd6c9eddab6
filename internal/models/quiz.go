package models

// QuizRequest is the payload for the quiz generator tool. Subject and topic
// are optional; when absent they are derived from the extracted text.
type QuizRequest struct {
	ExtractedText   string   `json:"extracted_text"`
	Subject         string   `json:"subject,omitempty"`
	Topic           string   `json:"topic,omitempty"`
	QuestionCount   int      `json:"question_count"`
	DifficultyLevel string   `json:"difficulty_level"` // "easy" | "medium" | "hard"
	QuestionTypes   []string `json:"question_types"`   // only multiple_choice is materialized
}

// Question is a fully repaired multiple-choice question: exactly 4 distinct
// options, exactly one correct answer, and that answer present in options.
type Question struct {
	ID             string   `json:"id"`
	Type           string   `json:"type"` // always "multiple_choice"
	Prompt         string   `json:"prompt"`
	Options        []string `json:"options"`
	CorrectAnswers []string `json:"correct_answers"`
	Explanations   string   `json:"explanations"`
}

// RawQuestion is a loosely structured candidate as the provider returns it.
// Models sometimes use "question" instead of "prompt" and a bare "answer"
// instead of "correct_answers"; the cleaner accepts both.
type RawQuestion struct {
	ID             string   `json:"id"`
	Prompt         string   `json:"prompt"`
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	CorrectAnswers []string `json:"correct_answers"`
	Answer         string   `json:"answer"`
	Explanations   string   `json:"explanations"`
}

type QuizMeta struct {
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

// QuizResult is the quiz generator response.
type QuizResult struct {
	Questions []Question `json:"questions"`
	Meta      QuizMeta   `json:"meta"`
}
