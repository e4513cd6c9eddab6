package planner

import (
	"fmt"
	"math"
	"time"

	"studybuddy-backend/internal/models"
)

// StrategyFallback marks a schedule produced by the deterministic builder.
const StrategyFallback = "fallback_proportional"

var weekDays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// BuildSchedule produces a full weekly time-block schedule without any AI
// call. It never fails on a validated request, even with zero deadlines or
// zero priority subjects.
//
// Weekly hours are spread over a 5-day assumption and then applied uniformly
// to all 7 days. Courses named in priority_subjects weigh 2, others 1, and
// each day walks the courses in input order until its budget is spent. Any
// leftover budget is absorbed into the last block of the last day only.
func BuildSchedule(req models.ScheduleRequest, now time.Time) models.Schedule {
	var availableHours float64
	if req.AvailableHours != nil {
		availableHours = *req.AvailableHours
	}
	hoursPerDay := int(math.Round(availableHours / 5))
	if hoursPerDay < 1 {
		hoursPerDay = 1
	}

	priorities := make(map[string]bool, len(req.PrioritySubjects))
	for _, s := range req.PrioritySubjects {
		priorities[s] = true
	}

	weights := make([]int, len(req.Courses))
	totalWeight := 0
	for i, c := range req.Courses {
		weights[i] = 1
		if priorities[c.Name] {
			weights[i] = 2
		}
		totalWeight += weights[i]
	}
	if totalWeight == 0 {
		totalWeight = 1
	}

	days := make([]models.DayPlan, len(weekDays))
	for di, name := range weekDays {
		day := models.DayPlan{Day: name, Blocks: []models.TimeBlock{}}
		remaining := hoursPerDay
		for ci, c := range req.Courses {
			share := int(math.Round(float64(weights[ci]) / float64(totalWeight) * float64(hoursPerDay)))
			if share < 1 {
				share = 1
			}
			duration := share
			if duration > remaining {
				duration = remaining
			}
			if duration <= 0 {
				continue
			}
			remaining -= duration
			day.Blocks = append(day.Blocks, models.TimeBlock{
				Course:    c.Name,
				Duration:  duration,
				Milestone: fmt.Sprintf("Focus on key topic for %s", c.Name),
			})
			if remaining <= 0 {
				break
			}
		}
		// Remainder absorption: last day only.
		if di == len(weekDays)-1 && remaining > 0 && len(day.Blocks) > 0 {
			day.Blocks[len(day.Blocks)-1].Duration += remaining
		}
		days[di] = day
	}

	return models.Schedule{
		Schedule:   models.WeeklySchedule{View: "weekly", Days: days},
		Milestones: BuildMilestones(req.Courses, req.Deadlines),
		Meta: models.ScheduleMeta{
			GeneratedAt: now.UnixMilli(),
			Strategy:    StrategyFallback,
		},
	}
}

// BuildMilestones derives one milestone per input course: the first three
// topics when the course has any, otherwise a fixed study loop, plus the
// first matching deadline date if one exists.
func BuildMilestones(courses []models.Course, deadlines []models.Deadline) []models.Milestone {
	milestones := make([]models.Milestone, 0, len(courses))
	for _, c := range courses {
		next := []string{"Review notes", "Practice problems", "Self-quiz"}
		if len(c.Topics) > 0 {
			if len(c.Topics) > 3 {
				next = c.Topics[:3]
			} else {
				next = c.Topics
			}
		}

		var deadline *string
		for _, d := range deadlines {
			if d.Course == c.Name {
				date := d.Date
				deadline = &date
				break
			}
		}

		milestones = append(milestones, models.Milestone{
			Course:   c.Name,
			Next:     next,
			Deadline: deadline,
		})
	}
	return milestones
}
