package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"fittrack/internal/domain"
	"fittrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxCommentLength = 500

// WorkoutInput carries the fields required to create a workout.
type WorkoutInput struct {
	Title         string
	ScheduledDate string
	ScheduledTime string
	Exercises     []domain.Exercise
}

// WorkoutUpdate carries the optional fields of a workout update; nil means
// "leave as is". Status has no enforced transition graph.
type WorkoutUpdate struct {
	Title         *string
	ScheduledDate *string
	ScheduledTime *string
	Exercises     *[]domain.Exercise
	Status        *string
	Duration      *int
	Notes         *string
}

// ListFilter carries the raw query values of a workout listing.
type ListFilter struct {
	Status    string
	StartDate string
	EndDate   string
}

// WorkoutService manages the workout aggregate: creation, filtered listing,
// updates with completion-rate recomputation, comments and deletion. Every
// operation is scoped to the owner.
type WorkoutService interface {
	Create(ctx context.Context, ownerID primitive.ObjectID, in WorkoutInput) (*domain.Workout, error)
	List(ctx context.Context, ownerID primitive.ObjectID, filter ListFilter) ([]domain.Workout, error)
	Update(ctx context.Context, ownerID primitive.ObjectID, workoutID string, upd WorkoutUpdate) (*domain.Workout, error)
	Delete(ctx context.Context, ownerID primitive.ObjectID, workoutID string) error
	AddComment(ctx context.Context, ownerID primitive.ObjectID, workoutID, text string) ([]domain.Comment, error)
	UpdateComment(ctx context.Context, ownerID primitive.ObjectID, workoutID, commentID, text string) (*domain.Comment, error)
	DeleteComment(ctx context.Context, ownerID primitive.ObjectID, workoutID, commentID string) ([]domain.Comment, error)
}

type workoutService struct {
	workoutRepo repository.WorkoutRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{workoutRepo: workoutRepo}
}

// Create validates the input and persists a new pending workout owned by
// the caller. The completion rate is computed at save time.
func (s *workoutService) Create(ctx context.Context, ownerID primitive.ObjectID, in WorkoutInput) (*domain.Workout, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, invalidField("title", "title is required")
	}
	if err := validateExercises(in.Exercises); err != nil {
		return nil, err
	}
	scheduledDate, err := parseCalendarDate("scheduledDate", in.ScheduledDate)
	if err != nil {
		return nil, err
	}
	if err := validateTimeOfDay(in.ScheduledTime); err != nil {
		return nil, err
	}

	workout := &domain.Workout{
		UserID:        ownerID,
		Title:         strings.TrimSpace(in.Title),
		ScheduledDate: scheduledDate,
		ScheduledTime: in.ScheduledTime,
		Exercises:     in.Exercises,
		Status:        domain.StatusPending,
		Comments:      []domain.Comment{},
	}
	workout.RecomputeCompletionRate()

	id, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, err
	}
	workout.ID = id

	return workout, nil
}

// List returns the caller's workouts matching the filter, ordered by
// scheduled date then time. An empty result set is reported as not found;
// the clients rely on that behavior.
func (s *workoutService) List(ctx context.Context, ownerID primitive.ObjectID, filter ListFilter) ([]domain.Workout, error) {
	var repoFilter repository.WorkoutFilter

	if filter.Status != "" {
		status, ok := domain.ParseWorkoutStatus(filter.Status)
		if !ok {
			return nil, invalidField("status", "invalid status value, must be one of: pending, in-progress, completed, cancelled")
		}
		repoFilter.Status = &status
	}

	if filter.StartDate != "" || filter.EndDate != "" {
		start, err := parseCalendarDate("startDate", filter.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := parseCalendarDate("endDate", filter.EndDate)
		if err != nil {
			return nil, err
		}
		repoFilter.StartDate = &start
		repoFilter.EndDate = &end
	}

	workouts, err := s.workoutRepo.FindByOwner(ctx, ownerID, repoFilter)
	if err != nil {
		return nil, err
	}
	if len(workouts) == 0 {
		return nil, ErrWorkoutNotFound
	}
	return workouts, nil
}

// Update applies the provided fields to an owned workout, validating each
// independently, and recomputes the completion rate when exercises change.
func (s *workoutService) Update(ctx context.Context, ownerID primitive.ObjectID, workoutID string, upd WorkoutUpdate) (*domain.Workout, error) {
	workout, err := s.getOwned(ctx, ownerID, workoutID)
	if err != nil {
		return nil, err
	}

	exercisesChanged := false
	if upd.Title != nil {
		if strings.TrimSpace(*upd.Title) == "" {
			return nil, invalidField("title", "title cannot be blank")
		}
		workout.Title = strings.TrimSpace(*upd.Title)
	}
	if upd.ScheduledDate != nil {
		scheduledDate, err := parseCalendarDate("scheduledDate", *upd.ScheduledDate)
		if err != nil {
			return nil, err
		}
		workout.ScheduledDate = scheduledDate
	}
	if upd.ScheduledTime != nil {
		if err := validateTimeOfDay(*upd.ScheduledTime); err != nil {
			return nil, err
		}
		workout.ScheduledTime = *upd.ScheduledTime
	}
	if upd.Exercises != nil {
		if err := validateExercises(*upd.Exercises); err != nil {
			return nil, err
		}
		workout.Exercises = *upd.Exercises
		exercisesChanged = true
	}
	if upd.Status != nil {
		status, ok := domain.ParseWorkoutStatus(*upd.Status)
		if !ok {
			return nil, invalidField("status", "invalid status value, must be one of: pending, in-progress, completed, cancelled")
		}
		workout.Status = status
	}
	if upd.Duration != nil {
		if *upd.Duration <= 0 {
			return nil, invalidField("duration", "invalid duration value: duration must be a positive number")
		}
		workout.Duration = upd.Duration
	}
	if upd.Notes != nil {
		workout.Notes = strings.TrimSpace(*upd.Notes)
	}

	if exercisesChanged {
		workout.RecomputeCompletionRate()
	}

	if err := s.update(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// Delete removes a whole owned workout aggregate.
func (s *workoutService) Delete(ctx context.Context, ownerID primitive.ObjectID, workoutID string) error {
	id, err := parseWorkoutID(workoutID)
	if err != nil {
		return err
	}
	if err := s.workoutRepo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	return nil
}

// AddComment appends a comment with a generated ID and timestamp, and
// returns the full comment sequence.
func (s *workoutService) AddComment(ctx context.Context, ownerID primitive.ObjectID, workoutID, text string) ([]domain.Comment, error) {
	cleaned, err := validateCommentText(text)
	if err != nil {
		return nil, err
	}

	workout, err := s.getOwned(ctx, ownerID, workoutID)
	if err != nil {
		return nil, err
	}

	workout.Comments = append(workout.Comments, domain.Comment{
		ID:        primitive.NewObjectID(),
		Text:      cleaned,
		CreatedAt: time.Now().UTC(),
	})

	if err := s.update(ctx, workout); err != nil {
		return nil, err
	}
	return workout.Comments, nil
}

// UpdateComment replaces the text of a comment located by its ID within
// the parent workout.
func (s *workoutService) UpdateComment(ctx context.Context, ownerID primitive.ObjectID, workoutID, commentID, text string) (*domain.Comment, error) {
	cleaned, err := validateCommentText(text)
	if err != nil {
		return nil, err
	}

	workout, commentIdx, err := s.getOwnedComment(ctx, ownerID, workoutID, commentID)
	if err != nil {
		return nil, err
	}

	workout.Comments[commentIdx].Text = cleaned

	if err := s.update(ctx, workout); err != nil {
		return nil, err
	}
	comment := workout.Comments[commentIdx]
	return &comment, nil
}

// DeleteComment removes a comment by ID (first match) and returns the
// remaining sequence.
func (s *workoutService) DeleteComment(ctx context.Context, ownerID primitive.ObjectID, workoutID, commentID string) ([]domain.Comment, error) {
	workout, commentIdx, err := s.getOwnedComment(ctx, ownerID, workoutID, commentID)
	if err != nil {
		return nil, err
	}

	workout.Comments = append(workout.Comments[:commentIdx], workout.Comments[commentIdx+1:]...)

	if err := s.update(ctx, workout); err != nil {
		return nil, err
	}
	return workout.Comments, nil
}

// --- helpers ---

func (s *workoutService) getOwned(ctx context.Context, ownerID primitive.ObjectID, workoutID string) (*domain.Workout, error) {
	id, err := parseWorkoutID(workoutID)
	if err != nil {
		return nil, err
	}
	workout, err := s.workoutRepo.GetByOwner(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) getOwnedComment(ctx context.Context, ownerID primitive.ObjectID, workoutID, commentID string) (*domain.Workout, int, error) {
	workout, err := s.getOwned(ctx, ownerID, workoutID)
	if err != nil {
		return nil, 0, err
	}
	cid, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return nil, 0, invalidField("commentId", "invalid comment identifier")
	}
	idx := workout.FindComment(cid)
	if idx < 0 {
		return nil, 0, ErrCommentNotFound
	}
	return workout, idx, nil
}

func (s *workoutService) update(ctx context.Context, workout *domain.Workout) error {
	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	return nil
}

func parseWorkoutID(workoutID string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(workoutID)
	if err != nil {
		return primitive.NilObjectID, invalidField("id", "invalid workout identifier")
	}
	return id, nil
}

func validateExercises(exercises []domain.Exercise) error {
	if len(exercises) == 0 {
		return invalidField("exercises", "exercises must be a non-empty array")
	}
	for _, ex := range exercises {
		if strings.TrimSpace(ex.Name) == "" {
			return invalidField("exercises", "each exercise must have a name")
		}
	}
	return nil
}

func validateCommentText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", invalidField("text", "comment text is required")
	}
	if utf8.RuneCountInString(trimmed) > maxCommentLength {
		return "", invalidField("text", "comment text must be at most %d characters", maxCommentLength)
	}
	return trimmed, nil
}
