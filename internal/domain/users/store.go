package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateRole(ctx context.Context, userID int64, role string) error
	UpdateResetToken(ctx context.Context, email, tokenHash string, expires time.Time) error
	GetByResetToken(ctx context.Context, tokenHash string) (*User, error)
	UpdatePassword(ctx context.Context, userID int64, hash []byte) error
	SaveRefreshToken(ctx context.Context, userID int64, refreshToken string) error
	GetRefreshToken(ctx context.Context, userID int64) (string, error)
	DeleteRefreshToken(ctx context.Context, userID int64) error
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, user *User) error {
	const query = `
        INSERT INTO users (first_name, last_name, email, phone, role, password_hash, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, true)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Phone,
		user.Role,
		user.Password.Hash(),
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, userID int64) (*User, error) {
	const query = `
        SELECT id, first_name, last_name, email, phone, role, password_hash, is_active, created_at, updated_at
        FROM users
        WHERE id = $1 AND is_active = true
    `
	return r.scanUser(r.db.QueryRow(ctx, query, userID))
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	const query = `
        SELECT id, first_name, last_name, email, phone, role, password_hash, is_active, created_at, updated_at
        FROM users
        WHERE email = $1 AND is_active = true
    `
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *Repository) scanUser(row pgx.Row) (*User, error) {
	var u User
	var hash []byte
	err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.Phone,
		&u.Role,
		&hash,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.Password.SetHash(hash)
	return &u, nil
}

func (r *Repository) UpdateRole(ctx context.Context, userID int64, role string) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET role = $2, updated_at = now() WHERE id = $1`, userID, role)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) UpdateResetToken(ctx context.Context, email, tokenHash string, expires time.Time) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE users
        SET reset_password_token = $2, reset_password_expires = $3, updated_at = now()
        WHERE email = $1 AND is_active = true
    `, email, tokenHash, expires)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByResetToken matches only unexpired tokens, so an expired token reads
// the same as a missing one.
func (r *Repository) GetByResetToken(ctx context.Context, tokenHash string) (*User, error) {
	const query = `
        SELECT id, first_name, last_name, email, phone, role, password_hash, is_active, created_at, updated_at
        FROM users
        WHERE reset_password_token = $1 AND reset_password_expires > now() AND is_active = true
    `
	return r.scanUser(r.db.QueryRow(ctx, query, tokenHash))
}

// UpdatePassword also clears any outstanding reset token, making it
// single-use.
func (r *Repository) UpdatePassword(ctx context.Context, userID int64, hash []byte) error {
	_, err := r.db.Exec(ctx, `
        UPDATE users
        SET password_hash = $2, reset_password_token = NULL, reset_password_expires = NULL, updated_at = now()
        WHERE id = $1
    `, userID, hash)
	return err
}

func (r *Repository) SaveRefreshToken(ctx context.Context, userID int64, refreshToken string) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET refresh_token = $2, updated_at = now() WHERE id = $1`, userID, refreshToken)
	return err
}

func (r *Repository) GetRefreshToken(ctx context.Context, userID int64) (string, error) {
	var token string
	err := r.db.QueryRow(ctx, `SELECT COALESCE(refresh_token, '') FROM users WHERE id = $1`, userID).Scan(&token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return token, nil
}

func (r *Repository) DeleteRefreshToken(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET refresh_token = NULL, updated_at = now() WHERE id = $1`, userID)
	return err
}
