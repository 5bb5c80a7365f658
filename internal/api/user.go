package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/feastbook/backend/internal/middleware"
	"github.com/feastbook/backend/internal/service"
	"github.com/feastbook/backend/internal/types"
)

// UserHandler serves the /users routes.
type UserHandler struct {
	users *service.UserService
	auth  *service.AuthService
}

func NewUserHandler(users *service.UserService, auth *service.AuthService) *UserHandler {
	return &UserHandler{users: users, auth: auth}
}

// RegisterRoutes mounts the user routes on the given group. loginLimiter
// is applied only to the login endpoint.
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup, loginLimiter gin.HandlerFunc) {
	users := router.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.GET("/me", middleware.AuthMiddleware(h.auth), h.Me)
		users.GET("/:id", h.GetUser)
		users.POST("", h.CreateUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
		if loginLimiter != nil {
			users.POST("/login", loginLimiter, h.Login)
		} else {
			users.POST("/login", h.Login)
		}
	}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	user, err := h.users.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req types.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	user, err := h.users.CreateUser(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	var req types.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	user, err := h.users.UpdateUser(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted successfully", "id": id})
}

// Login authenticates a user and issues a token. Failures are always the
// same generic 400 so the endpoint cannot be used to enumerate accounts.
func (h *UserHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}
	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, types.LoginResponse{
		AccessToken: token,
		User: types.UserSummary{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
		},
	})
}

// Me returns the user identified by the bearer token.
func (h *UserHandler) Me(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	user, err := h.users.GetUser(c.Request.Context(), userID.(uuid.UUID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
