// Package user defines the sample records browsed with the table component.
package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/javiermolinar/widgetkit/internal/tui/datatable"
)

// Validation errors.
var (
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrInvalidAge   = errors.New("age must be between 0 and 150")
	ErrInvalidEmail = errors.New("email is not a valid address")
)

// Domain errors.
var (
	ErrUserNotFound = errors.New("user not found")
)

// User is one row of the users table.
type User struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Age   int    `json:"age" db:"age"`
	Email string `json:"email" db:"email"`
}

// RowID implements datatable.Identifiable.
func (u User) RowID() datatable.ID {
	return datatable.IntID(u.ID)
}

// Validate checks the user fields.
func (u User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return ErrEmptyName
	}
	if u.Age < 0 || u.Age > 150 {
		return fmt.Errorf("%w: got %d", ErrInvalidAge, u.Age)
	}
	if u.Email != "" {
		if _, err := mail.ParseAddress(u.Email); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidEmail, u.Email)
		}
	}
	return nil
}

// String returns a one-line description of the user.
func (u User) String() string {
	return fmt.Sprintf("#%d %s (%d) %s", u.ID, u.Name, u.Age, u.Email)
}

// Columns returns the table columns for users. Name and age are sortable.
func Columns() []datatable.Column[User] {
	return []datatable.Column[User]{
		{Key: "name", Title: "Name", DataIndex: "name", Sortable: true},
		{Key: "age", Title: "Age", DataIndex: "age", Sortable: true},
		{Key: "email", Title: "Email", DataIndex: "email"},
	}
}

// Samples returns the default user set.
func Samples() []User {
	return []User{
		{ID: 1, Name: "Alice", Age: 25, Email: "alice@example.com"},
		{ID: 2, Name: "Bob", Age: 30, Email: "bob@example.com"},
		{ID: 3, Name: "Charlie", Age: 28, Email: "charlie@example.com"},
	}
}
