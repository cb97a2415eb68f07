package mongo

import (
	"context"
	"errors"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository using MongoDB.
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new instance of mongoWorkoutRepository.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

// Create inserts a new workout into the database.
func (r *mongoWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	if workout.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("workout owner is required")
	}

	workout.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	workout.CreatedAt = now
	workout.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, workout)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetByOwner retrieves a workout by ID, scoped to its owner. A workout owned
// by someone else comes back as ErrNotFound.
func (r *mongoWorkoutRepository) GetByOwner(ctx context.Context, ownerID, id primitive.ObjectID) (*domain.Workout, error) {
	var workout domain.Workout
	filter := bson.M{"_id": id, "user": ownerID}

	err := r.collection.FindOne(ctx, filter).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// FindByOwner retrieves the owner's workouts matching the filter, ordered by
// scheduled date then scheduled time ascending.
func (r *mongoWorkoutRepository) FindByOwner(ctx context.Context, ownerID primitive.ObjectID, filter repository.WorkoutFilter) ([]domain.Workout, error) {
	query := bson.M{"user": ownerID}
	if filter.Status != nil {
		query["status"] = *filter.Status
	}
	if filter.StartDate != nil || filter.EndDate != nil {
		dateRange := bson.M{}
		if filter.StartDate != nil {
			dateRange["$gte"] = *filter.StartDate
		}
		if filter.EndDate != nil {
			dateRange["$lte"] = *filter.EndDate
		}
		query["scheduledDate"] = dateRange
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "scheduledDate", Value: 1},
		{Key: "scheduledTime", Value: 1},
	})

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var workouts []domain.Workout
	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return workouts, nil
}

// Update replaces the stored workout, scoped to its owner.
func (r *mongoWorkoutRepository) Update(ctx context.Context, workout *domain.Workout) error {
	workout.UpdatedAt = time.Now().UTC()

	filter := bson.M{"_id": workout.ID, "user": workout.UserID}
	result, err := r.collection.ReplaceOne(ctx, filter, workout)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a whole workout aggregate, scoped to its owner.
func (r *mongoWorkoutRepository) Delete(ctx context.Context, ownerID, id primitive.ObjectID) error {
	filter := bson.M{"_id": id, "user": ownerID}
	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureWorkoutIndexes creates necessary indexes for the workouts collection.
// Listings and reports always filter by owner and scheduled date.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user", Value: 1},
				{Key: "scheduledDate", Value: 1},
			},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
