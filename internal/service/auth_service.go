package service

import (
	"context"
	"errors"
	"fmt"

	"user_service/internal/model"
	"user_service/internal/repository"
	"user_service/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid login or password")

// AuthService provides authentication related services
type AuthService interface {
	Login(ctx context.Context, login, password string) (*model.UserDTO, string, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
	}
}

// Login authenticates a user by username or phone and returns a JWT token.
// Username and phone are looked up separately: one user's username may equal
// another user's phone, so the first row matching either is not enough.
func (s *authService) Login(ctx context.Context, login, password string) (*model.UserDTO, string, error) {
	for _, lookup := range []model.UserLookup{{Username: &login}, {Phone: &login}} {
		user, err := s.userRepo.FindOne(ctx, lookup)
		if err != nil {
			return nil, "", fmt.Errorf("error finding user by login: %w", err)
		}
		if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
			continue
		}

		token, err := s.jwtUtil.GenerateToken(user.ID, user.Username)
		if err != nil {
			return nil, "", fmt.Errorf("failed to generate token: %w", err)
		}
		return model.ToUserDTO(user), token, nil
	}

	return nil, "", ErrInvalidCredentials
}
