package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateUser(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	user, err := svc.CreateUser(context.Background(), "alice")
	require.NoError(t, err)

	assert.False(t, user.ID.IsZero())
	assert.Equal(t, "alice", user.Username)
	assert.Len(t, repo.users, 1)
}

func TestCreateUser_EmptyUsername(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	_, err := svc.CreateUser(context.Background(), "")
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Empty(t, repo.users, "no record should be created")
}

func TestCreateUser_DuplicateUsernamesAllowed(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	first, err := svc.CreateUser(context.Background(), "alice")
	require.NoError(t, err)
	second, err := svc.CreateUser(context.Background(), "alice")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestListUsers_StorageOrder(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	for _, name := range []string{"alice", "bob", "carol"} {
		_, err := svc.CreateUser(context.Background(), name)
		require.NoError(t, err)
	}

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
	assert.Equal(t, "carol", users[2].Username)
}

func TestGetUserByID_NotFound(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})

	_, err := svc.GetUserByID(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserByID_StoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("connection reset")
	svc := NewUserService(&fakeUserRepo{err: storeErr})

	_, err := svc.GetUserByID(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}
