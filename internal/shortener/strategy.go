package shortener

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrCodeSpaceExhausted is returned when every attempt produced a code that was already taken.
var ErrCodeSpaceExhausted = errors.New("no free short code after retries")

// Strategy defines the interface for URL shortening strategies.
type Strategy interface {
	Shorten(ctx context.Context, url string) (*ShortURL, error)
}

// CodeGenerator generates short codes.
type CodeGenerator func() string

// TokenStrategy generates a new random code for each URL, including repeated ones.
type TokenStrategy struct {
	store        Repository
	generateCode CodeGenerator
	maxAttempts  int
	now          func() time.Time
}

// TokenOption configures a TokenStrategy.
type TokenOption func(*TokenStrategy)

// WithCollisionRetries makes the strategy reject codes that are already mapped and
// regenerate up to attempts times. With attempts <= 1 codes are saved unchecked.
func WithCollisionRetries(attempts int) TokenOption {
	return func(s *TokenStrategy) {
		s.maxAttempts = attempts
	}
}

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenStrategy) {
		s.now = now
	}
}

// NewTokenStrategy creates a new token-based shortening strategy.
func NewTokenStrategy(store Repository, generator CodeGenerator, opts ...TokenOption) *TokenStrategy {
	s := &TokenStrategy{
		store:        store,
		generateCode: generator,
		maxAttempts:  1,
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *TokenStrategy) Shorten(ctx context.Context, url string) (*ShortURL, error) {
	if s.maxAttempts <= 1 {
		shortURL := s.newShortURL(url)

		// Collisions are not detected here; the code space makes them unlikely.
		if err := s.store.Save(ctx, shortURL); err != nil {
			return nil, fmt.Errorf("save short url: %w", err)
		}

		return shortURL, nil
	}

	for range s.maxAttempts {
		shortURL := s.newShortURL(url)

		err := s.store.SaveNew(ctx, shortURL)
		if err == nil {
			return shortURL, nil
		}

		if !errors.Is(err, ErrCodeTaken) {
			return nil, fmt.Errorf("save short url: %w", err)
		}
	}

	return nil, ErrCodeSpaceExhausted
}

func (s *TokenStrategy) newShortURL(url string) *ShortURL {
	return &ShortURL{
		Code:        Code(s.generateCode()),
		OriginalURL: url,
		CreatedAt:   s.now(),
	}
}
