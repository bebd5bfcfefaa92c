package api

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/service"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// UserHandler holds the user service dependency.
type UserHandler struct {
	userService service.UserService
	log         *logrus.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService, log *logrus.Logger) *UserHandler {
	return &UserHandler{userService: userService, log: log}
}

// --- DTOs ---

// CreateUserRequest defines the expected body for registering a user.
// The original web client submits url-encoded forms, API consumers send JSON.
type CreateUserRequest struct {
	Username string `form:"username" json:"username"`
}

// UserResponse is the DTO for returning a user record.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// MapUserToResponse converts a domain.User to a UserResponse DTO.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:       user.ID.Hex(),
		Username: user.Username,
	}
}

// --- Handler Methods ---

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	// A bind failure is treated the same as a missing username.
	_ = c.ShouldBind(&req)

	if req.Username == "" {
		respondError(c, "Please provide a username")
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			respondError(c, "Please provide a username")
			return
		}
		respondStoreError(c, h.log, err)
		return
	}

	respondOK(c, MapUserToResponse(user))
}

// ListUsers handles GET /api/users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondStoreError(c, h.log, err)
		return
	}

	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = MapUserToResponse(&user)
	}

	respondOK(c, responses)
}
