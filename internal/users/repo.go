package users

import "context"

// Repo defines persistence operations for users.
type Repo interface {
	Upsert(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
}
