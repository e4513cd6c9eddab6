package planner

import (
	"testing"
	"time"

	"studybuddy-backend/internal/models"
)

func hoursPtr(h float64) *float64 { return &h }

func TestBuildSchedule_SevenDays(t *testing.T) {
	req := models.ScheduleRequest{
		Courses:        []models.Course{{Name: "Math"}},
		AvailableHours: hoursPtr(10),
	}

	schedule := BuildSchedule(req, time.Now())

	if schedule.Schedule.View != "weekly" {
		t.Errorf("Expected weekly view, got %q", schedule.Schedule.View)
	}

	expected := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	if len(schedule.Schedule.Days) != len(expected) {
		t.Fatalf("Expected %d days, got %d", len(expected), len(schedule.Schedule.Days))
	}
	for i, day := range schedule.Schedule.Days {
		if day.Day != expected[i] {
			t.Errorf("Day %d: expected %q, got %q", i, expected[i], day.Day)
		}
	}
}

func TestBuildSchedule_PriorityWeighting(t *testing.T) {
	req := models.ScheduleRequest{
		Courses: []models.Course{
			{Name: "Math", Topics: []string{"algebra", "geometry"}},
			{Name: "Physics", Topics: []string{"mechanics"}},
		},
		Deadlines:        []models.Deadline{{Course: "Math", Date: "2025-06-01"}},
		AvailableHours:   hoursPtr(10),
		LearningStyle:    "visual",
		PrioritySubjects: []string{"Math"},
	}

	schedule := BuildSchedule(req, time.Now())

	// 10 weekly hours → 2 per day. Priority Math weighs 2 of total 3,
	// so round(2/3*2)=1 for each course fills the day exactly.
	for _, day := range schedule.Schedule.Days {
		total := 0
		for _, b := range day.Blocks {
			total += b.Duration
			if b.Duration < 1 {
				t.Errorf("%s: block for %s has duration %d", day.Day, b.Course, b.Duration)
			}
		}
		if total != 2 {
			t.Errorf("%s: expected 2 total hours, got %d", day.Day, total)
		}
	}

	if schedule.Meta.Strategy != StrategyFallback {
		t.Errorf("Expected strategy %q, got %q", StrategyFallback, schedule.Meta.Strategy)
	}
}

func TestBuildSchedule_MinimumOneHourPerDay(t *testing.T) {
	tests := []struct {
		name  string
		hours *float64
	}{
		{"one weekly hour", hoursPtr(1)},
		{"zero weekly hours", hoursPtr(0)},
		{"nil hours", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := models.ScheduleRequest{
				Courses:        []models.Course{{Name: "Chemistry"}},
				AvailableHours: tc.hours,
			}

			schedule := BuildSchedule(req, time.Now())

			for _, day := range schedule.Schedule.Days {
				if len(day.Blocks) != 1 {
					t.Fatalf("%s: expected 1 block, got %d", day.Day, len(day.Blocks))
				}
				if day.Blocks[0].Duration != 1 {
					t.Errorf("%s: expected duration 1, got %d", day.Day, day.Blocks[0].Duration)
				}
			}
		})
	}
}

func TestBuildSchedule_RemainderLastDayOnly(t *testing.T) {
	// 20 weekly hours → 4 per day, 3 courses. Equal weights give each
	// round(1/3*4)=1, leaving 1 unspent hour per day. Only Sunday's last
	// block absorbs it.
	req := models.ScheduleRequest{
		Courses: []models.Course{
			{Name: "Math"}, {Name: "Physics"}, {Name: "History"},
		},
		AvailableHours: hoursPtr(20),
	}

	schedule := BuildSchedule(req, time.Now())
	days := schedule.Schedule.Days

	for _, day := range days[:6] {
		last := day.Blocks[len(day.Blocks)-1]
		if last.Duration != 1 {
			t.Errorf("%s: expected last block duration 1, got %d", day.Day, last.Duration)
		}
	}

	sunday := days[6]
	last := sunday.Blocks[len(sunday.Blocks)-1]
	if last.Duration != 2 {
		t.Errorf("Sun: expected last block to absorb remainder (duration 2), got %d", last.Duration)
	}
}

func TestBuildSchedule_GeneratedAtMillis(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	req := models.ScheduleRequest{
		Courses:        []models.Course{{Name: "Math"}},
		AvailableHours: hoursPtr(5),
	}

	schedule := BuildSchedule(req, now)
	if schedule.Meta.GeneratedAt != now.UnixMilli() {
		t.Errorf("Expected generated_at %d, got %d", now.UnixMilli(), schedule.Meta.GeneratedAt)
	}
}

func TestBuildMilestones(t *testing.T) {
	courses := []models.Course{
		{Name: "Math", Topics: []string{"algebra", "geometry", "calculus", "trig"}},
		{Name: "History"},
	}
	deadlines := []models.Deadline{{Course: "Math", Date: "2025-06-01"}}

	milestones := BuildMilestones(courses, deadlines)

	if len(milestones) != 2 {
		t.Fatalf("Expected 2 milestones, got %d", len(milestones))
	}

	math := milestones[0]
	if len(math.Next) != 3 || math.Next[0] != "algebra" || math.Next[2] != "calculus" {
		t.Errorf("Expected first 3 topics for Math, got %v", math.Next)
	}
	if math.Deadline == nil || *math.Deadline != "2025-06-01" {
		t.Errorf("Expected Math deadline 2025-06-01, got %v", math.Deadline)
	}

	history := milestones[1]
	wantDefault := []string{"Review notes", "Practice problems", "Self-quiz"}
	if len(history.Next) != 3 {
		t.Fatalf("Expected default study loop for History, got %v", history.Next)
	}
	for i, step := range wantDefault {
		if history.Next[i] != step {
			t.Errorf("History next[%d]: expected %q, got %q", i, step, history.Next[i])
		}
	}
	if history.Deadline != nil {
		t.Errorf("Expected no deadline for History, got %v", *history.Deadline)
	}
}
