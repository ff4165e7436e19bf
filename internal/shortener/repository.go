package shortener

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no entry exists for a code.
	ErrNotFound = errors.New("short url not found")

	// ErrCodeExists is returned by Repository.Save when the code is already registered.
	ErrCodeExists = errors.New("short code already exists")
)

// Repository is the short-code registry.
//
// Save must check for an existing code and insert in a single atomic step, so that
// two concurrent saves of the same new code cannot both succeed.
type Repository interface {
	Save(ctx context.Context, shortURL *ShortURL) error
	GetByCode(ctx context.Context, code Code) (*ShortURL, error)
	Exists(ctx context.Context, code Code) (bool, error)
}
