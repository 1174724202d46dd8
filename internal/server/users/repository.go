package users

import (
	"context"
)

// Repository is the credential store. There are deliberately no update or
// delete operations: accounts are only ever created.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
}
