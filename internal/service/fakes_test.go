package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes. Slices keep insertion order, matching the
// storage-order guarantee of the mongo implementations.

type fakeUserRepo struct {
	users []domain.User
	err   error
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	r.users = append(r.users, *user)
	return user.ID, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.users {
		if r.users[i].ID == id {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetAll(_ context.Context) ([]domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]domain.User(nil), r.users...), nil
}

type fakeExerciseRepo struct {
	entries []domain.Exercise
	err     error
}

func (r *fakeExerciseRepo) Create(_ context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	exercise.ID = primitive.NewObjectID()
	exercise.CreatedAt = time.Now().UTC()
	r.entries = append(r.entries, *exercise)
	return exercise.ID, nil
}

func (r *fakeExerciseRepo) GetByUserID(_ context.Context, userID primitive.ObjectID) ([]domain.Exercise, error) {
	if r.err != nil {
		return nil, r.err
	}
	var entries []domain.Exercise
	for _, entry := range r.entries {
		if entry.UserID == userID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}
