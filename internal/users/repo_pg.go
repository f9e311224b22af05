package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type PGRepo struct {
	db *sql.DB
}

func NewPGRepo(db *sql.DB) *PGRepo {
	return &PGRepo{db: db}
}

func (r *PGRepo) Upsert(ctx context.Context, user User) error {
	if user.Role == "" {
		user.Role = RoleUser
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (email, full_name, picture_url, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (email) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			picture_url = EXCLUDED.picture_url,
			updated_at = NOW()
	`, user.Email, user.FullName, nullableString(user.PictureURL), user.Role)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT email, full_name, picture_url, role, total_resumes, login_count, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email)
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (r *PGRepo) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT email, full_name, picture_url, role, total_resumes, login_count, created_at, updated_at
		FROM users
		ORDER BY email
	`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (User, error) {
	var (
		user    User
		picture sql.NullString
	)
	err := row.Scan(
		&user.Email,
		&user.FullName,
		&picture,
		&user.Role,
		&user.TotalResumes,
		&user.LoginCount,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return User{}, err
	}
	if picture.Valid {
		user.PictureURL = picture.String
	}
	return user, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
