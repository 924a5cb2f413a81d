package queries

import (
	"context"
	"time"

	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/errs"
)

var ErrUserNotFound = errs.New("user not found")

type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Image     string    `json:"image"`
	About     string    `json:"about"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserReadStore interface {
	FindByID(ctx context.Context, userID string) (*UserView, error)
	// FindByEmail additionally returns the stored password hash for login.
	FindByEmail(ctx context.Context, email string) (*UserView, string, error)
}

type UserQueries interface {
	GetProfile(ctx context.Context, userID string) (*UserView, error)
}

type userQueriesImpl struct {
	repo UserReadStore
}

func NewUserQueries(repo UserReadStore) UserQueries {
	return &userQueriesImpl{repo: repo}
}

func (q *userQueriesImpl) GetProfile(ctx context.Context, userID string) (*UserView, error) {
	view, err := q.repo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}
