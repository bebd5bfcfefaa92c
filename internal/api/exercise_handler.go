package api

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/service"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// entryDateLayout renders entry dates the way the web client displays them,
// e.g. "Mon Aug 31 2026".
const entryDateLayout = "Mon Jan 02 2006"

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
	log             *logrus.Logger
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService, log *logrus.Logger) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService, log: log}
}

// --- DTOs ---

// LogExerciseRequest defines the expected body for logging an exercise.
// Duration arrives as text from form submissions, so it is parsed by hand.
type LogExerciseRequest struct {
	Description string `form:"description" json:"description"`
	Duration    string `form:"duration" json:"duration"`
	Date        string `form:"date" json:"date"`
}

// LogExerciseResponse is the DTO returned after logging an exercise.
// ID carries the OWNING USER's id, not the entry's own id; the entry id is
// internal and clients were never given it.
type LogExerciseResponse struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"id"`
}

// LogEntryResponse is one entry inside a UserLogResponse.
type LogEntryResponse struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// UserLogResponse is the DTO for a user's filtered exercise log.
type UserLogResponse struct {
	Username string             `json:"username"`
	Count    int                `json:"count"`
	ID       string             `json:"id"`
	Log      []LogEntryResponse `json:"log"`
}

// --- Handler Methods ---

// LogExercise handles POST /api/users/:id/exercises.
func (h *ExerciseHandler) LogExercise(c *gin.Context) {
	var req LogExerciseRequest
	_ = c.ShouldBind(&req)

	if req.Description == "" || req.Duration == "" {
		respondError(c, "Please provide a description and duration")
		return
	}

	duration, err := strconv.Atoi(req.Duration)
	if err != nil {
		respondError(c, "Please provide a description and duration")
		return
	}

	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, err.Error())
		return
	}

	user, exercise, err := h.exerciseService.LogExercise(c.Request.Context(), userID, req.Description, duration, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationFailed):
			respondError(c, "Please provide a description and duration")
		case errors.Is(err, service.ErrInvalidDate):
			respondError(c, "Invalid date format")
		case errors.Is(err, service.ErrUserNotFound):
			respondError(c, "User not found!")
		default:
			respondStoreError(c, h.log, err)
		}
		return
	}

	respondOK(c, LogExerciseResponse{
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date.Format(entryDateLayout),
		ID:          user.ID.Hex(),
	})
}

// GetUserLogs handles GET /api/users/:id/logs.
func (h *ExerciseHandler) GetUserLogs(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondError(c, "Please provide an id")
		return
	}

	userID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		respondError(c, err.Error())
		return
	}

	filter := parseLogFilter(c)

	user, entries, err := h.exerciseService.GetUserLogs(c.Request.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, "User not found!")
			return
		}
		respondStoreError(c, h.log, err)
		return
	}

	respondOK(c, UserLogResponse{
		Username: user.Username,
		Count:    len(entries),
		ID:       user.ID.Hex(),
		Log:      mapEntriesToResponse(entries),
	})
}

// parseLogFilter reads limit/from/to from the query string. Malformed values
// are ignored rather than rejected; the filter is simply not applied.
func parseLogFilter(c *gin.Context) service.LogFilter {
	var filter service.LogFilter

	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit >= 0 {
			filter.Limit = &limit
		}
	}
	if raw := c.Query("from"); raw != "" {
		if from, err := service.ParseDate(raw); err == nil {
			filter.From = &from
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err := service.ParseDate(raw); err == nil {
			filter.To = &to
		}
	}

	return filter
}

func mapEntriesToResponse(entries []domain.Exercise) []LogEntryResponse {
	responses := make([]LogEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = LogEntryResponse{
			Description: entry.Description,
			Duration:    entry.Duration,
			Date:        entry.Date.Format(entryDateLayout),
		}
	}
	return responses
}
