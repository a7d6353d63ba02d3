package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/expgenwoo218/aibuup24/internal/interview"
	"github.com/expgenwoo218/aibuup24/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrDuplicateEmail is returned when a signup collides with an existing row.
var ErrDuplicateEmail = errors.New("email already registered")

type ProfileRepository struct {
	db *pgxpool.Pool
}

func (r *ProfileRepository) Create(ctx context.Context, email, passwordHash, nickname string) (model.Profile, error) {
	id := uuid.New()
	const q = `
INSERT INTO profiles (id, email, password_hash, nickname, role, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())
RETURNING id, email, password_hash, nickname, role, coalesce(persona_memo, ''), created_at, updated_at
`
	var p model.Profile
	row := r.db.QueryRow(ctx, q, id, email, passwordHash, nickname, model.RoleSilver)
	if err := scanProfile(row, &p); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.Profile{}, fmt.Errorf("%w: %s", ErrDuplicateEmail, email)
		}
		return model.Profile{}, fmt.Errorf("insert profile: %w", err)
	}
	return p, nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Profile, error) {
	const q = `
SELECT id, email, password_hash, nickname, role, coalesce(persona_memo, ''), created_at, updated_at
FROM profiles
WHERE id = $1
`
	var p model.Profile
	if err := scanProfile(r.db.QueryRow(ctx, q, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, fmt.Errorf("%w: profile %s", interview.ErrNotFound, id)
		}
		return model.Profile{}, fmt.Errorf("scan profile by id: %w", err)
	}
	return p, nil
}

func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (model.Profile, error) {
	const q = `
SELECT id, email, password_hash, nickname, role, coalesce(persona_memo, ''), created_at, updated_at
FROM profiles
WHERE lower(email) = lower($1)
`
	var p model.Profile
	if err := scanProfile(r.db.QueryRow(ctx, q, email), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, fmt.Errorf("%w: profile %s", interview.ErrNotFound, email)
		}
		return model.Profile{}, fmt.Errorf("scan profile by email: %w", err)
	}
	return p, nil
}

func (r *ProfileRepository) List(ctx context.Context) ([]model.Profile, error) {
	const q = `
SELECT id, email, password_hash, nickname, role, coalesce(persona_memo, ''), created_at, updated_at
FROM profiles
ORDER BY created_at DESC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}
	defer rows.Close()

	var out []model.Profile
	for rows.Next() {
		var p model.Profile
		if err := scanProfile(rows, &p); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProfileRepository) UpdateRole(ctx context.Context, id uuid.UUID, role model.Role) error {
	const q = `UPDATE profiles SET role = $1, updated_at = now() WHERE id = $2`
	tag, err := r.db.Exec(ctx, q, role, id)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: profile %s", interview.ErrNotFound, id)
	}
	return nil
}

// UpdatePersonaMemo stores the admin-private memo. The value arrives already
// encrypted; this layer treats it as opaque.
func (r *ProfileRepository) UpdatePersonaMemo(ctx context.Context, id uuid.UUID, memo string) error {
	const q = `UPDATE profiles SET persona_memo = $1, updated_at = now() WHERE id = $2`
	tag, err := r.db.Exec(ctx, q, memo, id)
	if err != nil {
		return fmt.Errorf("update persona memo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: profile %s", interview.ErrNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner, p *model.Profile) error {
	return row.Scan(&p.ID, &p.Email, &p.PasswordHash, &p.Nickname, &p.Role,
		&p.PersonaMemo, &p.CreatedAt, &p.UpdatedAt)
}
