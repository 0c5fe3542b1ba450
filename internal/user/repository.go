package user

import (
	"context"
	"errors"
	"strings"

	"fitconnect/internal/storage"
)

var ErrUserNotFound = errors.New("user not found")

type repository struct {
	users *storage.Collection[User]
}

func NewRepository(store storage.Store) Repository {
	return &repository{
		users: storage.NewCollection[User](store, storage.KeyUsers),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.CreateMany(ctx, []User{*u})
}

// CreateMany stores all users or none; any email already taken aborts the write.
func (r *repository) CreateMany(ctx context.Context, users []User) error {
	return r.users.Update(ctx, func(items []User) ([]User, error) {
		taken := make(map[string]bool, len(items)+len(users))
		for _, existing := range items {
			taken[normalizeEmail(existing.Email)] = true
		}
		for _, u := range users {
			email := normalizeEmail(u.Email)
			if taken[email] {
				return nil, ErrEmailExists
			}
			taken[email] = true
		}
		return append(items, users...), nil
	})
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	email = normalizeEmail(email)
	u, found, err := r.users.Find(ctx, func(u User) bool { return normalizeEmail(u.Email) == email })
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	u, found, err := r.users.Find(ctx, func(u User) bool { return u.ID == id })
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

// List returns users with role, or everyone when role is empty.
func (r *repository) List(ctx context.Context, role Role) ([]User, error) {
	return r.users.Filter(ctx, func(u User) bool { return role == "" || u.Role == role })
}

func (r *repository) Update(ctx context.Context, id string, fn func(u *User) error) (*User, error) {
	var result User

	err := r.users.Update(ctx, func(items []User) ([]User, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			updated := items[i]
			if err := fn(&updated); err != nil {
				return nil, err
			}
			items[i] = updated
			result = updated
			return items, nil
		}
		return nil, ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
