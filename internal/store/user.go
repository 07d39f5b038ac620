package store

import (
	"context"
	"fmt"

	"github.com/soltrack/soltrack/ent"
	"github.com/soltrack/soltrack/ent/user"
)

// userRepo implements UserRepo using the ent client.
type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Create(ctx context.Context, u *User) error {
	create := r.client.User.Create().
		SetID(u.ID).
		SetName(u.Name).
		SetGrade(u.Grade)
	if u.Age > 0 {
		create = create.SetAge(u.Age)
	}
	created, err := create.Save(ctx)
	if err != nil {
		return fmt.Errorf("create user %s: %w", u.ID, err)
	}
	u.CreatedAt = created.CreatedAt
	return nil
}

func (r *userRepo) Get(ctx context.Context, id string) (*User, error) {
	u, err := r.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("user %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get user %q: %w", id, err)
	}
	return entUserToStore(u), nil
}

func (r *userRepo) List(ctx context.Context) ([]*User, error) {
	rows, err := r.client.User.Query().
		Order(ent.Asc(user.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]*User, len(rows))
	for i, u := range rows {
		out[i] = entUserToStore(u)
	}
	return out, nil
}

func entUserToStore(u *ent.User) *User {
	return &User{
		ID:        u.ID,
		Name:      u.Name,
		Grade:     u.Grade,
		Age:       u.Age,
		CreatedAt: u.CreatedAt,
	}
}
