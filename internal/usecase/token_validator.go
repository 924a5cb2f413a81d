package usecase

import (
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/pkg/jwt"
)

var ErrTokenValidation = errs.New("token validation failed")

// Session is the authenticated identity carried through request context.
type Session struct {
	UserID  string
	Name    string
	IsAdmin bool
}

type TokenValidator interface {
	ValidateToken(token string) (*Session, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (v *tokenValidatorImpl) ValidateToken(token string) (*Session, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	return &Session{
		UserID:  claims.UserID,
		Name:    claims.Name,
		IsAdmin: claims.IsAdmin,
	}, nil
}
