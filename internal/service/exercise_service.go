package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidDate is returned when a client-supplied date cannot be parsed.
var ErrInvalidDate = errors.New("invalid date format")

// Accepted layouts for client-supplied dates, tried in order.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// LogFilter narrows a user's exercise log. Nil fields mean "not supplied";
// the handlers drop malformed query values before they reach the service.
type LogFilter struct {
	Limit *int
	From  *time.Time
	To    *time.Time
}

// ExerciseService exposes the exercise-log operations backing the
// /api/users/:id/exercises and /api/users/:id/logs routes.
type ExerciseService interface {
	LogExercise(ctx context.Context, userID primitive.ObjectID, description string, duration int, date string) (*domain.User, *domain.Exercise, error)
	GetUserLogs(ctx context.Context, userID primitive.ObjectID, filter LogFilter) (*domain.User, []domain.Exercise, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	userRepo     repository.UserRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, userRepo repository.UserRepository) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		userRepo:     userRepo,
	}
}

// LogExercise records one exercise entry against an existing user and returns
// the owning user together with the stored entry.
//
// The user-existence check and the insert are not atomic, but users are never
// deleted so the reference cannot go stale.
func (s *exerciseService) LogExercise(ctx context.Context, userID primitive.ObjectID, description string, duration int, date string) (*domain.User, *domain.Exercise, error) {
	if description == "" || duration == 0 {
		return nil, nil, ErrValidationFailed
	}

	entryDate, err := parseEntryDate(date)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}

	exercise := &domain.Exercise{
		UserID:      user.ID,
		Description: description,
		Duration:    duration,
		Date:        entryDate,
	}

	if _, err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, nil, err
	}

	return user, exercise, nil
}

// GetUserLogs returns a user's exercise entries, narrowed by the filter.
//
// The limit is applied to the storage-order sequence BEFORE the date range
// is, so a limit combined with from/to can return fewer than limit entries.
// Existing clients of the API depend on this ordering.
func (s *exerciseService) GetUserLogs(ctx context.Context, userID primitive.ObjectID, filter LogFilter) (*domain.User, []domain.Exercise, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}

	entries, err := s.exerciseRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if filter.Limit != nil && len(entries) > *filter.Limit {
		entries = entries[:*filter.Limit]
	}

	if filter.From != nil || filter.To != nil {
		kept := make([]domain.Exercise, 0, len(entries))
		for _, entry := range entries {
			if filter.From != nil && entry.Date.Before(*filter.From) {
				continue
			}
			if filter.To != nil && entry.Date.After(*filter.To) {
				continue
			}
			kept = append(kept, entry)
		}
		entries = kept
	}

	return user, entries, nil
}

// parseEntryDate resolves the optional client-supplied date for a new entry.
// An empty value defaults to the current time.
func parseEntryDate(date string) (time.Time, error) {
	if date == "" {
		return time.Now().UTC(), nil
	}
	return ParseDate(date)
}

// ParseDate parses a client-supplied date value (YYYY-MM-DD or RFC 3339).
func ParseDate(date string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
