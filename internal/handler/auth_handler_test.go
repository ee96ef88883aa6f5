package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"user_service/internal/model"
	"user_service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubAuthService struct {
	err error
}

func (s stubAuthService) Login(_ context.Context, login, password string) (*model.UserDTO, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return &model.UserDTO{ID: 1, Username: login}, "token-" + login, nil
}

func newAuthRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewAuthHandler(svc).RegisterAuthRoutes(r.Group("/api/v1"))
	return r
}

func TestLogin_Handler(t *testing.T) {
	r := newAuthRouter(stubAuthService{})

	w := doJSON(r, http.MethodPost, "/api/v1/auth/login", map[string]string{"login": "alice", "password": "secret"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"token-alice"`)
}

func TestLogin_Handler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		body   map[string]string
		status int
	}{
		{"missing password", nil, map[string]string{"login": "alice"}, http.StatusBadRequest},
		{"bad credentials", service.ErrInvalidCredentials, map[string]string{"login": "alice", "password": "x"}, http.StatusUnauthorized},
		{"storage fault", errors.New("db down"), map[string]string{"login": "alice", "password": "x"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAuthRouter(stubAuthService{err: tt.err})
			w := doJSON(r, http.MethodPost, "/api/v1/auth/login", tt.body)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
