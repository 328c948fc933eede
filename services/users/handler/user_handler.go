package handler

import (
	"fmt"
	"net/http"
	"strconv"

	model "car-auction/internal/models"
	"car-auction/utils"

	"github.com/gin-gonic/gin"
)

// AddUserRequest is the payload for POST /users.
type AddUserRequest struct {
	Name string `json:"name" binding:"required"`
}

// UserServiceInterface is the registry surface the handler consumes.
type UserServiceInterface interface {
	AddUser(name string) (model.User, error)
	GetUserByID(userID int) (model.User, error)
	GetUserByName(name string) (model.User, error)
	ListUsers() []model.User
}

type UserHandler struct {
	service UserServiceInterface
}

func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// AddUserHandler handles POST /users
func (h *UserHandler) AddUserHandler(c *gin.Context) {
	var req AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "AddUserHandler", err)
		return
	}

	user, err := h.service.AddUser(req.Name)
	if err != nil {
		status, message := utils.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AddUserHandler: failed to add user", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, user, "user added successfully")
	utils.LogSuccess("AddUserHandler", "user added successfully", map[string]any{
		"user_id": user.ID,
		"name":    user.Name,
	})
}

// GetUserHandler handles GET /users/:user_id
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		utils.HandleBindError(c, "GetUserHandler", fmt.Errorf("user_id must be an integer: %w", err))
		return
	}

	user, err := h.service.GetUserByID(userID)
	if err != nil {
		status, message := utils.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetUserHandler: user not found", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "user retrieved successfully")
	utils.LogSuccess("GetUserHandler", "user retrieved successfully", map[string]any{"user_id": user.ID})
}

// ListUsersHandler handles GET /users; with a ?name= query it resolves a
// single user by name instead.
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		user, err := h.service.GetUserByName(name)
		if err != nil {
			status, message := utils.MapErrorToHTTP(err)
			utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
			utils.Warn("ListUsersHandler: user not found", map[string]any{"name": name, "error": err.Error()})
			return
		}
		utils.JSONResponse(c, http.StatusOK, user, "user retrieved successfully")
		utils.LogSuccess("ListUsersHandler", "user retrieved successfully", map[string]any{"user_id": user.ID})
		return
	}

	users := h.service.ListUsers()
	utils.JSONResponse(c, http.StatusOK, users, "users retrieved successfully")
	utils.LogSuccess("ListUsersHandler", "users retrieved successfully", map[string]any{"count": len(users)})
}
