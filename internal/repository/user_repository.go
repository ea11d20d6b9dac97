package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/harmonia/academy-backend/internal/model"
)

// UserRepository handles user data access. Users are keyed by email.
type UserRepository struct {
	db DBTX
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `email, name, photo_url, role, created_at, updated_at`

func scanUser(row pgx.Row, u *model.User) error {
	return row.Scan(&u.Email, &u.Name, &u.PhotoURL, &u.Role, &u.CreatedAt, &u.UpdatedAt)
}

// Upsert creates or replaces the profile stored under an email.
func (r *UserRepository) Upsert(ctx context.Context, u *model.User) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO users (email, name, photo_url, role)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (email) DO UPDATE SET
			name = EXCLUDED.name,
			photo_url = EXCLUDED.photo_url,
			role = COALESCE(EXCLUDED.role, users.role),
			updated_at = now()
		 RETURNING created_at, updated_at`,
		u.Email, u.Name, u.PhotoURL, u.Role,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
}

// GetByEmail retrieves a user. Returns pgx.ErrNoRows if absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email), u)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// List retrieves all users.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
}

// ListByRole retrieves users holding the given role.
func (r *UserRepository) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY created_at`, role)
}

// Insert creates a user. A duplicate email fails on the primary key.
func (r *UserRepository) Insert(ctx context.Context, u *model.User) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO users (email, name, photo_url, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		u.Email, u.Name, u.PhotoURL, u.Role,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
}

func (r *UserRepository) list(ctx context.Context, sql string, args ...any) ([]model.User, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := scanUser(rows, &u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
