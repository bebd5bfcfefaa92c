package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrValidationFailed = errors.New("validation failed")
)

// UserService exposes the user operations backing the /api/users routes.
type UserService interface {
	CreateUser(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// userService implements the UserService interface.
type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

// CreateUser registers a new user. Duplicate usernames are allowed; the only
// rule is that the username must not be empty.
func (s *userService) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	if username == "" {
		return nil, ErrValidationFailed
	}

	user := &domain.User{
		Username: username,
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, userID)
}

// ListUsers returns every registered user in storage order.
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.GetAll(ctx)
}

// GetUserByID retrieves a single user.
func (s *userService) GetUserByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
