package database

import (
	"context"
	"errors"

	"app/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserStore persists User records in PostgreSQL.
type UserStore struct {
	pool *pgxpool.Pool
}

func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{pool: pool}
}

// CreateUser inserts a new user. Returns ErrUsernameTaken when the username
// is already registered.
func (s *UserStore) CreateUser(ctx context.Context, username, passwordHash string) (models.User, error) {
	var user models.User

	query := `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, username, password_hash`

	err := s.pool.QueryRow(ctx, query, username, passwordHash).Scan(
		&user.ID, &user.Username, &user.PasswordHash,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, err
	}

	return user, nil
}

// GetUserByUsername looks up a single user by username, hash included.
func (s *UserStore) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User

	query := `SELECT id, username, password_hash FROM users WHERE username = $1`

	err := s.pool.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}

	return user, nil
}

// ListUsers returns every user. The password hash column is never selected.
func (s *UserStore) ListUsers(ctx context.Context) ([]models.User, error) {
	query := `SELECT id, username FROM users ORDER BY username`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}
