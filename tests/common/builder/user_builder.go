//go:build unit

package builder

import (
	"time"

	"hotelhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID      string
	Name    string
	Email   string
	IsAdmin bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:    uuid.NewString(),
		Name:  "Test Guest",
		Email: "test@example.com",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.IsAdmin = true
	return u
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Image:     "https://cdn.example.com/avatars/default.png",
		About:     "Frequent traveller",
		IsAdmin:   u.IsAdmin,
		CreatedAt: time.Now(),
	}
}
