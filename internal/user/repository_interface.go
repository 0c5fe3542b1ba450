package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	CreateMany(ctx context.Context, users []User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context, role Role) ([]User, error)
	Update(ctx context.Context, id string, fn func(u *User) error) (*User, error)
}
