package infra

import (
	"errors"

	"hotelhub/internal/pkg/errs"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds. The content platform is reached over
// HTTP, so every transport problem (network failure, non-2xx status, malformed
// payload) collapses into CONTENT_API_FAILURE; callers never retry.
const (
	KindNotFound          RepositoryErrorKind = "NOT_FOUND"
	KindContentAPIFailure RepositoryErrorKind = "CONTENT_API_FAILURE"
	KindBadPayload        RepositoryErrorKind = "BAD_PAYLOAD"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies a low-level error. The kind defaults to
// CONTENT_API_FAILURE when none is given.
func WrapRepoErr(msg string, err error, kinds ...RepositoryErrorKind) error {
	kind := KindContentAPIFailure
	if len(kinds) > 0 {
		kind = kinds[0]
	}
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
