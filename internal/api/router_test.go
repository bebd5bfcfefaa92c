package api

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"alcyxob/exercise-tracker/internal/service"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repositories backing the router under test. Slices keep
// insertion order, like the mongo implementations.

type memUserRepo struct {
	users []domain.User
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	r.users = append(r.users, *user)
	return user.ID, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetAll(_ context.Context) ([]domain.User, error) {
	return append([]domain.User(nil), r.users...), nil
}

type memExerciseRepo struct {
	entries []domain.Exercise
}

func (r *memExerciseRepo) Create(_ context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	exercise.ID = primitive.NewObjectID()
	exercise.CreatedAt = time.Now().UTC()
	r.entries = append(r.entries, *exercise)
	return exercise.ID, nil
}

func (r *memExerciseRepo) GetByUserID(_ context.Context, userID primitive.ObjectID) ([]domain.Exercise, error) {
	var entries []domain.Exercise
	for _, entry := range r.entries {
		if entry.UserID == userID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// newTestRouter wires real services over in-memory repositories.
func newTestRouter(userRepo repository.UserRepository, exerciseRepo repository.ExerciseRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.Out = io.Discard

	router := gin.New()
	router.Use(RequestID())

	userService := service.NewUserService(userRepo)
	exerciseService := service.NewExerciseService(exerciseRepo, userRepo)
	SetupRoutes(router, log, userService, exerciseService)

	return router
}

func postForm(t *testing.T, router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func performJSON(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
