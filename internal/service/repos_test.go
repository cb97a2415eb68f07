package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes backing the service tests. They mirror the
// store semantics the services rely on: unique emails, owner-scoped workout
// lookups and date-then-time listing order.

type memUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[primitive.ObjectID]domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, repository.ErrDuplicateKey
		}
	}
	user.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return user.ID, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := u
	return &copied, nil
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, u := range r.users {
		if id != user.ID && u.Email == user.Email {
			return repository.ErrDuplicateKey
		}
	}
	user.UpdatedAt = time.Now().UTC()
	r.users[user.ID] = *user
	return nil
}

type memWorkoutRepo struct {
	mu       sync.Mutex
	workouts map[primitive.ObjectID]domain.Workout
}

func newMemWorkoutRepo() *memWorkoutRepo {
	return &memWorkoutRepo{workouts: make(map[primitive.ObjectID]domain.Workout)}
}

func (r *memWorkoutRepo) Create(_ context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	workout.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	workout.CreatedAt = now
	workout.UpdatedAt = now
	r.workouts[workout.ID] = *workout
	return workout.ID, nil
}

func (r *memWorkoutRepo) GetByOwner(_ context.Context, ownerID, id primitive.ObjectID) (*domain.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.workouts[id]
	if !ok || w.UserID != ownerID {
		return nil, repository.ErrNotFound
	}
	copied := w
	return &copied, nil
}

func (r *memWorkoutRepo) FindByOwner(_ context.Context, ownerID primitive.ObjectID, filter repository.WorkoutFilter) ([]domain.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Workout
	for _, w := range r.workouts {
		if w.UserID != ownerID {
			continue
		}
		if filter.Status != nil && w.Status != *filter.Status {
			continue
		}
		if filter.StartDate != nil && w.ScheduledDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && w.ScheduledDate.After(*filter.EndDate) {
			continue
		}
		result = append(result, w)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].ScheduledDate.Equal(result[j].ScheduledDate) {
			return result[i].ScheduledDate.Before(result[j].ScheduledDate)
		}
		return result[i].ScheduledTime < result[j].ScheduledTime
	})
	return result, nil
}

func (r *memWorkoutRepo) Update(_ context.Context, workout *domain.Workout) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.workouts[workout.ID]
	if !ok || existing.UserID != workout.UserID {
		return repository.ErrNotFound
	}
	workout.UpdatedAt = time.Now().UTC()
	r.workouts[workout.ID] = *workout
	return nil
}

func (r *memWorkoutRepo) Delete(_ context.Context, ownerID, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.workouts[id]
	if !ok || w.UserID != ownerID {
		return repository.ErrNotFound
	}
	delete(r.workouts, id)
	return nil
}
