package readstore

import (
	"context"

	"hotelhub/internal/infra"
	"hotelhub/internal/usecase/queries"
)

type UserReadStore struct {
	client Querier
}

func NewUserReadStore(client Querier) *UserReadStore {
	return &UserReadStore{client: client}
}

func (r *UserReadStore) FindByID(ctx context.Context, userID string) (*queries.UserView, error) {
	query := `*[_type == "user" && _id == $userId][0]{
		"id": _id,
		name,
		email,
		image,
		about,
		isAdmin,
		"createdAt": _createdAt
	}`

	var user *queries.UserView
	if err := r.client.Fetch(ctx, query, map[string]any{"userId": userID}, &user); err != nil {
		return nil, infra.WrapRepoErr("failed to fetch user", err)
	}
	if user == nil {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return user, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	query := `*[_type == "user" && email == $email][0]{
		"id": _id,
		name,
		email,
		image,
		about,
		isAdmin,
		password,
		"createdAt": _createdAt
	}`

	var row *struct {
		queries.UserView
		Password string `json:"password"`
	}
	if err := r.client.Fetch(ctx, query, map[string]any{"email": email}, &row); err != nil {
		return nil, "", infra.WrapRepoErr("failed to fetch user by email", err)
	}
	if row == nil {
		return nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return &row.UserView, row.Password, nil
}
