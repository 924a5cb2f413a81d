package response

import (
	"log/slog"
	"time"

	"hotelhub/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Image     string    `json:"image"`
	About     string    `json:"about"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromUserView(v *queries.UserView) UserResponse {
	var resp UserResponse
	if err := copier.Copy(&resp, v); err != nil {
		slog.Error("Failed to copy user view to response", "error", err)
	}
	return resp
}
