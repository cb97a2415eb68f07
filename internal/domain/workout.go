package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutStatus tracks where a scheduled session stands. No transition
// graph is enforced; any value can be set directly through an update.
type WorkoutStatus string

const (
	StatusPending    WorkoutStatus = "pending"
	StatusInProgress WorkoutStatus = "in-progress"
	StatusCompleted  WorkoutStatus = "completed"
	StatusCancelled  WorkoutStatus = "cancelled"
)

// ParseWorkoutStatus validates a status value case-insensitively.
func ParseWorkoutStatus(s string) (WorkoutStatus, bool) {
	switch WorkoutStatus(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, true
	case StatusInProgress:
		return StatusInProgress, true
	case StatusCompleted:
		return StatusCompleted, true
	case StatusCancelled:
		return StatusCancelled, true
	default:
		return "", false
	}
}

// Set is a single set of an exercise.
type Set struct {
	Weight    float64 `bson:"weight" json:"weight"`
	Reps      int     `bson:"reps" json:"reps"`
	Completed bool    `bson:"completed" json:"completed"`
}

// Exercise is one entry of a workout's exercise list.
type Exercise struct {
	Name      string `bson:"name" json:"name"`
	Sets      []Set  `bson:"sets,omitempty" json:"sets,omitempty"`
	Notes     string `bson:"notes,omitempty" json:"notes,omitempty"`
	Completed bool   `bson:"completed" json:"completed"`
}

// Comment is a sub-document of a workout, addressed by its own ID.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Text      string             `bson:"text" json:"text"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Workout is a scheduled training session owned by exactly one user.
// All lookups go through owner + id together, never id alone.
type Workout struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"user" json:"user"`
	Title          string             `bson:"title" json:"title"`
	ScheduledDate  time.Time          `bson:"scheduledDate" json:"scheduledDate"`
	ScheduledTime  string             `bson:"scheduledTime" json:"scheduledTime"` // "HH:MM"
	Exercises      []Exercise         `bson:"exercises" json:"exercises"`
	Status         WorkoutStatus      `bson:"status" json:"status"`
	Comments       []Comment          `bson:"comments" json:"comments"`
	CompletionRate float64            `bson:"completionRate" json:"completionRate"`
	Duration       *int               `bson:"duration,omitempty" json:"duration,omitempty"` // minutes
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RecomputeCompletionRate derives the completion rate from the exercise
// completion flags: completed / total * 100, or 0 with no exercises.
// Every mutation path that touches Exercises must call this before the
// workout is persisted; the rate is never taken from client input.
func (w *Workout) RecomputeCompletionRate() {
	if len(w.Exercises) == 0 {
		w.CompletionRate = 0
		return
	}
	completed := 0
	for _, ex := range w.Exercises {
		if ex.Completed {
			completed++
		}
	}
	w.CompletionRate = float64(completed) / float64(len(w.Exercises)) * 100
}

// FindComment returns the index of the first comment with the given ID,
// or -1 when absent.
func (w *Workout) FindComment(id primitive.ObjectID) int {
	for i, c := range w.Comments {
		if c.ID == id {
			return i
		}
	}
	return -1
}
