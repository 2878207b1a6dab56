package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"crowdfund/internal/entity"
	"crowdfund/pkg/logger"
)

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID uint
	Role   entity.UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}

// ImageStore uploads images and returns their public URL. *s3.Client satisfies it.
type ImageStore interface {
	UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
}

func isDomainError(err error) bool {
	for _, kind := range []error{
		entity.ErrValidation,
		entity.ErrNotFound,
		entity.ErrConflict,
		entity.ErrInvalidCredentials,
		entity.ErrForbidden,
		entity.ErrInvalidTransition,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// fail passes domain errors through and wraps everything else, which by then
// has already caused the surrounding transaction to roll back.
func fail(log *logger.Logger, op string, err error) error {
	if isDomainError(err) {
		return err
	}
	log.Error("Failed to %s: %v", op, err)
	return fmt.Errorf("failed to %s: %w", op, err)
}

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{entity.ErrValidation}, args...)...)
}

// notFound reads as "<what> not found" and matches entity.ErrNotFound.
func notFound(what string) error {
	return fmt.Errorf("%s %w", what, entity.ErrNotFound)
}

// named replaces a bare repository ErrNotFound with one naming the missing record.
func named(err error, what string) error {
	if errors.Is(err, entity.ErrNotFound) {
		return notFound(what)
	}
	return err
}
