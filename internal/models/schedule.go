package models

// Course is one subject the student is studying. Identity is the name;
// callers own uniqueness.
type Course struct {
	Name   string   `json:"name"`
	Topics []string `json:"topics,omitempty"`
}

// Deadline associates a course (by name, first match wins) with an ISO date.
type Deadline struct {
	Course string `json:"course"`
	Date   string `json:"date"`
}

// ScheduleRequest is the payload for the schedule generator tool.
// AvailableHours is a pointer so a missing or non-numeric field can be
// rejected instead of silently reading as zero.
type ScheduleRequest struct {
	Courses          []Course   `json:"courses"`
	Deadlines        []Deadline `json:"deadlines"`
	AvailableHours   *float64   `json:"available_hours"` // per week
	LearningStyle    string     `json:"learning_style,omitempty"`
	PrioritySubjects []string   `json:"priority_subjects,omitempty"`
}

// TimeBlock is a contiguous study block within one day.
type TimeBlock struct {
	Course    string `json:"course"`
	Duration  int    `json:"duration"` // hours
	Milestone string `json:"milestone,omitempty"`
}

// DayPlan holds the blocks for a single weekday. All 7 days are always
// present, in calendar order, even when empty.
type DayPlan struct {
	Day    string      `json:"day"`
	Blocks []TimeBlock `json:"blocks"`
}

type WeeklySchedule struct {
	View string    `json:"view"` // always "weekly"
	Days []DayPlan `json:"days"`
}

// Milestone is the derived short-term goal summary for one course.
type Milestone struct {
	Course   string   `json:"course"`
	Next     []string `json:"next"`
	Deadline *string  `json:"deadline"`
}

type ScheduleMeta struct {
	GeneratedAt int64  `json:"generatedAt"` // unix milliseconds
	Strategy    string `json:"strategy"`
}

// Schedule is the schedule generator response, identical in shape whether it
// came from the provider or the deterministic builder.
type Schedule struct {
	Schedule   WeeklySchedule `json:"schedule"`
	Milestones []Milestone    `json:"milestones"`
	Meta       ScheduleMeta   `json:"meta"`
}
