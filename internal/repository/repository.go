package repository

import (
	"context"

	"gauravfit/coach-app/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// SessionRepository persists the single session snapshot. There is at
// most one snapshot per running instance; Load returns ErrNotFound
// when nothing has been saved yet.
type SessionRepository interface {
	Save(ctx context.Context, snap *domain.SessionSnapshot) error
	Load(ctx context.Context) (*domain.SessionSnapshot, error)
	Delete(ctx context.Context) error
}
