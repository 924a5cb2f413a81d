package review

import (
	"strings"

	"hotelhub/internal/pkg/errs"
)

const MaxTextLength = 1000

var (
	ErrInvalidRating = errs.New("rating must be between 1 and 5")
	ErrEmptyText     = errs.New("review text cannot be empty")
	ErrTextTooLong   = errs.New("review text exceeds maximum length")
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

type Text struct {
	text string
}

func NewText(s string) (Text, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Text{}, ErrEmptyText
	}
	if len(t) > MaxTextLength {
		return Text{}, ErrTextTooLong
	}
	return Text{text: t}, nil
}

func (t Text) String() string { return t.text }
