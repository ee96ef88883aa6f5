package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"user_service/internal/model"
	"user_service/internal/repository"
	"user_service/internal/utils"
)

// UserService provides CRUD operations on user records.
// Every operation answers with a model.Response envelope; the error return is
// reserved for storage and hashing faults.
type UserService interface {
	AddUser(ctx context.Context, dto model.UserForCreationDTO) (model.Response[*model.UserDTO], error)
	DeleteUser(ctx context.Context, id int64) (model.Response[bool], error)
	GetAllUsers(ctx context.Context, params model.PaginationParams, search string) (model.Response[[]model.UserDTO], error)
	GetUserByID(ctx context.Context, id int64) (model.Response[*model.UserDTO], error)
	ModifyUser(ctx context.Context, id int64, dto model.UserForCreationDTO) (model.Response[*model.UserDTO], error)
}

type userService struct {
	repo   repository.UserRepository
	legacy bool
}

// NewUserService creates a new UserService.
//
// With legacy set, responses match the legacy API: conflicts
// are reported as 404, a non-empty list page answers 404 with no value, and
// ModifyUser persists the stored record without applying the input.
func NewUserService(repo repository.UserRepository, legacy bool) UserService {
	return &userService{repo: repo, legacy: legacy}
}

func (s *userService) conflictCode() int {
	if s.legacy {
		return http.StatusNotFound
	}
	return http.StatusConflict
}

func (s *userService) conflict(existing *model.User) model.Response[*model.UserDTO] {
	return model.Response[*model.UserDTO]{
		Code:    s.conflictCode(),
		Message: model.MsgAlreadyExists,
		Value:   model.ToUserDTO(existing),
	}
}

func (s *userService) AddUser(ctx context.Context, dto model.UserForCreationDTO) (model.Response[*model.UserDTO], error) {
	existing, err := s.repo.FindOne(ctx, model.ByUsernameOrPhone(dto.Username, dto.Phone))
	if err != nil {
		return model.Response[*model.UserDTO]{}, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return s.conflict(existing), nil
	}

	user := dto.ToUser()
	user.PasswordHash, err = utils.HashPassword(dto.Password)
	if err != nil {
		return model.Response[*model.UserDTO]{}, err
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	if err := s.repo.Create(ctx, user); err != nil {
		// Lost the race against a concurrent insert; the unique index caught it.
		if utils.IsPGUniqueViolation(err) {
			return s.conflict(nil), nil
		}
		return model.Response[*model.UserDTO]{}, fmt.Errorf("failed to create user in repository: %w", err)
	}
	return model.OK(model.ToUserDTO(user)), nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) (model.Response[bool], error) {
	user, err := s.repo.FindOne(ctx, model.ByID(id))
	if err != nil {
		return model.Response[bool]{}, fmt.Errorf("failed to find user for deletion: %w", err)
	}
	if user == nil {
		return model.NotFound(model.MsgNotFoundByID, false), nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return model.Response[bool]{}, fmt.Errorf("failed to delete user in repository: %w", err)
	}
	return model.OK(true), nil
}

func (s *userService) GetAllUsers(ctx context.Context, params model.PaginationParams, search string) (model.Response[[]model.UserDTO], error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return model.Response[[]model.UserDTO]{}, fmt.Errorf("failed to list users: %w", err)
	}
	page := utils.Paginate(users, params)

	// The legacy API answers a non-empty page with 404 and no payload.
	if s.legacy && len(page) > 0 {
		return model.NotFound[[]model.UserDTO](model.MsgSuccess, nil), nil
	}

	return model.OK(model.ToUserDTOs(filterByFirstName(page, search))), nil
}

func (s *userService) GetUserByID(ctx context.Context, id int64) (model.Response[*model.UserDTO], error) {
	user, err := s.repo.FindOne(ctx, model.ByID(id))
	if err != nil {
		return model.Response[*model.UserDTO]{}, fmt.Errorf("failed to find user by ID: %w", err)
	}
	if user == nil {
		return model.NotFound[*model.UserDTO](model.MsgNotFoundByID, nil), nil
	}
	return model.OK(model.ToUserDTO(user)), nil
}

func (s *userService) ModifyUser(ctx context.Context, id int64, dto model.UserForCreationDTO) (model.Response[*model.UserDTO], error) {
	user, err := s.repo.FindOne(ctx, model.ByID(id))
	if err != nil {
		return model.Response[*model.UserDTO]{}, fmt.Errorf("failed to find user for update: %w", err)
	}
	if user == nil {
		return model.NotFound[*model.UserDTO](model.MsgNotFoundByID, nil), nil
	}

	if !s.legacy {
		// Checked one field at a time so the record itself cannot mask a clash on the other.
		for _, lookup := range []model.UserLookup{{Username: &dto.Username}, {Phone: &dto.Phone}} {
			other, err := s.repo.FindOne(ctx, lookup)
			if err != nil {
				return model.Response[*model.UserDTO]{}, fmt.Errorf("failed to check existing user: %w", err)
			}
			if other != nil && other.ID != user.ID {
				return s.conflict(other), nil
			}
		}

		dto.ApplyTo(user)
		user.PasswordHash, err = utils.HashPassword(dto.Password)
		if err != nil {
			return model.Response[*model.UserDTO]{}, err
		}
		user.UpdatedAt = time.Now()
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if utils.IsPGUniqueViolation(err) {
			return s.conflict(nil), nil
		}
		return model.Response[*model.UserDTO]{}, fmt.Errorf("failed to update user in repository: %w", err)
	}
	return model.OK(model.ToUserDTO(user)), nil
}

// filterByFirstName keeps users whose first name contains search, ignoring case.
// An empty search keeps everything.
func filterByFirstName(users []model.User, search string) []model.User {
	if search == "" {
		return users
	}
	needle := strings.ToLower(search)
	filtered := make([]model.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.FirstName), needle) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}
