package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tracklab/timesheet-backend-go/internal/domain/user"
	"github.com/tracklab/timesheet-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `u.id, u.email, u.password_hash, u.role, u.oauth_provider, u.oauth_provider_id,
	   u.created_at, u.updated_at, e.id`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.OAuthProvider, &u.OAuthProviderID,
		&u.CreatedAt, &u.UpdatedAt, &u.EmployeeID,
	)
	return u, err
}

// Create implements user.UserRepository.
func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (email, password_hash, role, oauth_provider, oauth_provider_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		u.Email, u.PasswordHash, u.Role, u.OAuthProvider, u.OAuthProviderID,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.get(ctx, `WHERE u.id = $1`, id)
}

// GetByEmail implements user.UserRepository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.get(ctx, `WHERE u.email = $1`, email)
}

func (r *userRepository) get(ctx context.Context, where string, arg string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN employees e ON e.email = u.email
		` + where

	u, err := scanUser(q.QueryRow(ctx, query, arg))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// GetByOAuth implements user.UserRepository.
func (r *userRepository) GetByOAuth(ctx context.Context, provider, providerID string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN employees e ON e.email = u.email
		WHERE u.oauth_provider = $1 AND u.oauth_provider_id = $2
	`

	u, err := scanUser(q.QueryRow(ctx, query, provider, providerID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by oauth: %w", err)
	}

	return u, nil
}

// Update implements user.UserRepository.
func (r *userRepository) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET email = $1,
			password_hash = $2,
			role = $3,
			oauth_provider = $4,
			oauth_provider_id = $5,
			updated_at = NOW()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query,
		u.Email, u.PasswordHash, u.Role, u.OAuthProvider, u.OAuthProviderID, u.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
