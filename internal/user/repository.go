package user

import "context"

// Repository defines the storage interface for users.
type Repository interface {
	// CreateUser adds a user and sets its ID.
	CreateUser(ctx context.Context, u *User) error

	// GetUser retrieves a user by ID. Returns ErrUserNotFound if missing.
	GetUser(ctx context.Context, id int64) (*User, error)

	// ListUsers returns all users in insertion order.
	ListUsers(ctx context.Context) ([]User, error)

	// CountUsers returns the number of stored users.
	CountUsers(ctx context.Context) (int, error)

	// Close releases any resources held by the repository.
	Close() error
}

// Seed inserts samples when the repository is empty. It returns the number of users
// inserted.
func Seed(ctx context.Context, repo Repository, samples []User) (int, error) {
	n, err := repo.CountUsers(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	for i := range samples {
		u := samples[i]
		u.ID = 0
		if err := repo.CreateUser(ctx, &u); err != nil {
			return i, err
		}
	}
	return len(samples), nil
}
