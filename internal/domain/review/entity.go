package review

import (
	"time"

	"hotelhub/internal/pkg/errs"
)

var (
	ErrMissingUser = errs.New("review requires a user reference")
	ErrMissingRoom = errs.New("review requires a room reference")
)

// Review holds a single guest's rating of a room. The one-review-per-(user,
// room) invariant is enforced by an application-level existence check before
// the write, not by the aggregate itself.
type Review struct {
	userID    string
	roomID    string
	rating    Rating
	text      Text
	createdAt time.Time
}

func NewReview(userID, roomID string, rating Rating, text Text, now time.Time) (*Review, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	if roomID == "" {
		return nil, ErrMissingRoom
	}
	return &Review{
		userID:    userID,
		roomID:    roomID,
		rating:    rating,
		text:      text,
		createdAt: now,
	}, nil
}

func (r *Review) UserID() string       { return r.userID }
func (r *Review) RoomID() string       { return r.roomID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Text() Text           { return r.text }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
