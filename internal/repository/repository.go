package repository

import (
	"context"
	"time"

	"fittrack/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicateKey = RepositoryError("duplicate key")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
// Emails are expected to be lowercased by the caller; the store keeps a
// unique index on the email field.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// WorkoutFilter narrows a listing to a status and/or an inclusive
// scheduled-date window. Nil fields are ignored.
type WorkoutFilter struct {
	Status    *domain.WorkoutStatus
	StartDate *time.Time
	EndDate   *time.Time
}

// WorkoutRepository defines the interface for interacting with workout data.
// Single-workout operations take the owner together with the ID so that a
// workout belonging to another user is indistinguishable from a missing one.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByOwner(ctx context.Context, ownerID, id primitive.ObjectID) (*domain.Workout, error)
	FindByOwner(ctx context.Context, ownerID primitive.ObjectID, filter WorkoutFilter) ([]domain.Workout, error)
	Update(ctx context.Context, workout *domain.Workout) error
	Delete(ctx context.Context, ownerID, id primitive.ObjectID) error
}
