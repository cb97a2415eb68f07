package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestWorkoutReportPendingWorkout(t *testing.T) {
	repo := newMemWorkoutRepo()
	workouts := NewWorkoutService(repo)
	reports := NewReportService(repo)
	ctx := context.Background()
	owner := primitive.NewObjectID()

	created, err := workouts.Create(ctx, owner, legDay())
	require.NoError(t, err)

	report, err := reports.WorkoutReport(ctx, owner, "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	require.Equal(t, 1, report.TotalWorkouts)
	// Status defaults to pending, so nothing counts as completed even
	// though every exercise is done.
	require.Equal(t, 0, report.CompletedWorkouts)
	require.Equal(t, "0.00", report.CompletionRate)
	require.Len(t, report.Workouts, 1)
	require.Equal(t, created.ID.Hex(), report.Workouts[0].ID)
	require.Equal(t, float64(100), report.Workouts[0].CompletionRate)
	require.Equal(t, "2024-01-01", report.Period.StartDate)
	require.Equal(t, "2024-01-31", report.Period.EndDate)
}

func TestWorkoutReportMixedStatuses(t *testing.T) {
	repo := newMemWorkoutRepo()
	workouts := NewWorkoutService(repo)
	reports := NewReportService(repo)
	ctx := context.Background()
	owner := primitive.NewObjectID()

	first, err := workouts.Create(ctx, owner, legDay())
	require.NoError(t, err)
	_, err = workouts.Update(ctx, owner, first.ID.Hex(), WorkoutUpdate{Status: strPtr("completed")})
	require.NoError(t, err)

	second := legDay()
	second.ScheduledDate = "2024-01-15"
	_, err = workouts.Create(ctx, owner, second)
	require.NoError(t, err)

	report, err := reports.WorkoutReport(ctx, owner, "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	require.Equal(t, 2, report.TotalWorkouts)
	require.Equal(t, 1, report.CompletedWorkouts)
	require.Equal(t, "50.00", report.CompletionRate)
}

func TestWorkoutReportEmptyWindow(t *testing.T) {
	reports := NewReportService(newMemWorkoutRepo())

	report, err := reports.WorkoutReport(context.Background(), primitive.NewObjectID(), "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	require.Equal(t, 0, report.TotalWorkouts)
	require.Equal(t, "0.00", report.CompletionRate)
	require.Empty(t, report.Workouts)
}

func TestWorkoutReportScopedToOwner(t *testing.T) {
	repo := newMemWorkoutRepo()
	workouts := NewWorkoutService(repo)
	reports := NewReportService(repo)
	ctx := context.Background()

	_, err := workouts.Create(ctx, primitive.NewObjectID(), legDay())
	require.NoError(t, err)

	report, err := reports.WorkoutReport(ctx, primitive.NewObjectID(), "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	require.Equal(t, 0, report.TotalWorkouts)
}

func TestWorkoutReportValidation(t *testing.T) {
	reports := NewReportService(newMemWorkoutRepo())
	ctx := context.Background()
	owner := primitive.NewObjectID()

	var validationErr *ValidationError

	_, err := reports.WorkoutReport(ctx, owner, "", "2024-01-31")
	require.ErrorAs(t, err, &validationErr)

	_, err = reports.WorkoutReport(ctx, owner, "2024-01-01", "")
	require.ErrorAs(t, err, &validationErr)

	_, err = reports.WorkoutReport(ctx, owner, "not-a-date", "2024-01-31")
	require.ErrorAs(t, err, &validationErr)

	_, err = reports.WorkoutReport(ctx, owner, "2024-02-01", "2024-01-01")
	require.ErrorAs(t, err, &validationErr)
}
