package shortener

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no mapping exists for a code.
	ErrNotFound = errors.New("short url not found")

	// ErrCodeTaken is returned by Repository.SaveNew when the code is already mapped.
	ErrCodeTaken = errors.New("short code already taken")
)

// Code represents a short URL code.
type Code string

// ShortURL represents a shortened URL entity.
type ShortURL struct {
	Code        Code
	OriginalURL string
	CreatedAt   time.Time
}

// Repository stores code->url mappings. Entries are never updated or deleted
// through the service, so implementations only need to support appends and reads.
type Repository interface {
	// Save stores the mapping without checking whether the code is already in use.
	Save(ctx context.Context, shortURL *ShortURL) error

	// SaveNew stores the mapping only if the code is unused.
	// Returns ErrCodeTaken otherwise.
	SaveNew(ctx context.Context, shortURL *ShortURL) error

	// GetByCode returns ErrNotFound if no mapping exists.
	GetByCode(ctx context.Context, code Code) (*ShortURL, error)

	// List returns every stored mapping in creation order.
	List(ctx context.Context) ([]*ShortURL, error)
}
