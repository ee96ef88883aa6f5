package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"user_service/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool the repositories use
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserRepository defines operations for user data
type UserRepository interface {
	FindOne(ctx context.Context, lookup model.UserLookup) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) error
	FindAll(ctx context.Context) ([]model.User, error)
}

const userColumns = `id, username, phone, first_name, password_hash, created_at, updated_at`

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

// FindOne retrieves the first user matching any field set in lookup.
// A missing row is reported as (nil, nil).
func (r *userRepository) FindOne(ctx context.Context, lookup model.UserLookup) (*model.User, error) {
	if lookup.IsEmpty() {
		return nil, errors.New("empty user lookup")
	}

	var conditions []string
	args := []any{}
	argCount := 1

	if lookup.ID != nil {
		conditions = append(conditions, fmt.Sprintf("id = $%d", argCount))
		args = append(args, *lookup.ID)
		argCount++
	}
	if lookup.Username != nil {
		conditions = append(conditions, fmt.Sprintf("username = $%d", argCount))
		args = append(args, *lookup.Username)
		argCount++
	}
	if lookup.Phone != nil {
		conditions = append(conditions, fmt.Sprintf("phone = $%d", argCount))
		args = append(args, *lookup.Phone)
	}

	sql := `SELECT ` + userColumns + ` FROM users WHERE ` + strings.Join(conditions, " OR ") + ` ORDER BY id LIMIT 1`

	user := &model.User{}
	err := r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Username, &user.Phone, &user.FirstName,
		&user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found is not an error here, service layer decides
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// Create inserts a new user and sets its ID
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (username, phone, first_name, password_hash, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRow(ctx, sql,
		user.Username, user.Phone, user.FirstName, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Update overwrites every mutable column of the user row
func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	sql := `UPDATE users
            SET username = $1, phone = $2, first_name = $3, password_hash = $4, updated_at = $5
            WHERE id = $6 RETURNING updated_at`
	err := r.db.QueryRow(ctx, sql,
		user.Username, user.Phone, user.FirstName, user.PasswordHash, user.UpdatedAt, user.ID,
	).Scan(&user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("user %d not found for update", user.ID)
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// Delete removes a user row. Rows affected is not inspected.
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// FindAll retrieves every user, unpaginated
func (r *userRepository) FindAll(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Phone, &u.FirstName,
			&u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}
