package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportPeriod echoes the requested date window.
type ReportPeriod struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ReportWorkout is the projection of a workout inside a report.
type ReportWorkout struct {
	ID             string               `json:"id"`
	Title          string               `json:"title"`
	ScheduledDate  time.Time            `json:"scheduledDate"`
	Status         domain.WorkoutStatus `json:"status"`
	CompletionRate float64              `json:"completionRate"`
}

// Report aggregates a user's workouts over a date window. CompletionRate
// is the share of workouts whose status reached "completed", rendered with
// two decimals; it is distinct from the per-workout exercise rate.
type Report struct {
	Period            ReportPeriod    `json:"period"`
	TotalWorkouts     int             `json:"totalWorkouts"`
	CompletedWorkouts int             `json:"completedWorkouts"`
	CompletionRate    string          `json:"completionRate"`
	Workouts          []ReportWorkout `json:"workouts"`
}

// ReportService summarizes a caller's workouts within a date range.
type ReportService interface {
	WorkoutReport(ctx context.Context, ownerID primitive.ObjectID, startDate, endDate string) (*Report, error)
}

type reportService struct {
	workoutRepo repository.WorkoutRepository
}

// NewReportService creates a new instance of reportService.
func NewReportService(workoutRepo repository.WorkoutRepository) ReportService {
	return &reportService{workoutRepo: workoutRepo}
}

// WorkoutReport computes the completion summary for an inclusive date window.
func (s *reportService) WorkoutReport(ctx context.Context, ownerID primitive.ObjectID, startDate, endDate string) (*Report, error) {
	if strings.TrimSpace(startDate) == "" || strings.TrimSpace(endDate) == "" {
		return nil, invalidField("", "start date and end date are required")
	}
	start, err := parseCalendarDate("startDate", startDate)
	if err != nil {
		return nil, err
	}
	end, err := parseCalendarDate("endDate", endDate)
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, invalidField("startDate", "start date cannot be later than end date")
	}

	workouts, err := s.workoutRepo.FindByOwner(ctx, ownerID, repository.WorkoutFilter{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, err
	}

	total := len(workouts)
	completed := 0
	for _, w := range workouts {
		if w.Status == domain.StatusCompleted {
			completed++
		}
	}
	rate := 0.0
	if total > 0 {
		rate = float64(completed) / float64(total) * 100
	}

	report := &Report{
		Period: ReportPeriod{
			StartDate: startDate,
			EndDate:   endDate,
		},
		TotalWorkouts:     total,
		CompletedWorkouts: completed,
		CompletionRate:    fmt.Sprintf("%.2f", rate),
		Workouts:          make([]ReportWorkout, 0, total),
	}
	for _, w := range workouts {
		report.Workouts = append(report.Workouts, ReportWorkout{
			ID:             w.ID.Hex(),
			Title:          w.Title,
			ScheduledDate:  w.ScheduledDate,
			Status:         w.Status,
			CompletionRate: w.CompletionRate,
		})
	}

	return report, nil
}
