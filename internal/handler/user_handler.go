package handler

import (
	"log"
	"net/http"
	"strconv"

	"user_service/internal/middleware"
	"user_service/internal/model"
	"user_service/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes the user service over HTTP.
// Envelope codes are used as the HTTP status.
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

func parseUserID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return 0, false
	}
	return id, true
}

func (h *UserHandler) AddUser(c *gin.Context) {
	var req model.UserForCreationDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.service.AddUser(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error adding user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add user"})
		return
	}
	c.JSON(resp.Code, resp)
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {
	var params model.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters: " + err.Error()})
		return
	}

	resp, err := h.service.GetAllUsers(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		log.Printf("Error listing users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	c.JSON(resp.Code, resp)
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetUserByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("Error getting user %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}
	c.JSON(resp.Code, resp)
}

func (h *UserHandler) ModifyUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	var req model.UserForCreationDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.service.ModifyUser(c.Request.Context(), id, req)
	if err != nil {
		log.Printf("Error modifying user %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	c.JSON(resp.Code, resp)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	resp, err := h.service.DeleteUser(c.Request.Context(), id)
	if err != nil {
		log.Printf("Error deleting user %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(resp.Code, resp)
}

// Me returns the record of the authenticated caller
func (h *UserHandler) Me(c *gin.Context) {
	id, ok := middleware.AuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user ID not found in context"})
		return
	}

	resp, err := h.service.GetUserByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("Error getting current user %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}
	c.JSON(resp.Code, resp)
}

// RegisterUserRoutes registers user routes. Creation is public, the rest need authMW.
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	users := rg.Group("/users")
	{
		users.POST("", h.AddUser)
	}

	authed := rg.Group("/users")
	authed.Use(authMW)
	{
		authed.GET("", h.GetAllUsers)
		authed.GET("/:id", h.GetUserByID)
		authed.PUT("/:id", h.ModifyUser)
		authed.DELETE("/:id", h.DeleteUser)
	}

	rg.GET("/me", authMW, h.Me)
}
