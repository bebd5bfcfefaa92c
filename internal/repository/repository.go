package repository

import (
	"alcyxob/exercise-tracker/internal/domain"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors from other failures.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
}

// ExerciseRepository defines the interface for interacting with exercise
// log entries. Reads return entries in storage (insertion) order, which the
// log-filtering rules depend on.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Exercise, error)
}
