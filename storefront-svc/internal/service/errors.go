package service

import (
	"context"
	"errors"

	"restrofi/storefront-svc/internal/apperr"
	"restrofi/storefront-svc/internal/domain"
)

// lookupError turns a repository miss into NOT_FOUND and anything else into a
// dependency failure.
func lookupError(err error, what string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperr.Wrap(apperr.CodeNotFound, err, what+" not found")
	}
	return externalError(err, "load "+what)
}

// externalError classifies a failed collaborator call. Timeouts and
// cancellations are reported the same way as any other failure.
func externalError(err error, action string) error {
	if apperr.As(err) != nil {
		return err
	}
	e := apperr.Wrap(apperr.CodeDependency, err, action+" failed")
	if errors.Is(err, context.DeadlineExceeded) {
		e = e.WithDetails(map[string]any{"reason": "timeout"})
	}
	return e
}
