package shortener

import (
	"context"
	"fmt"
	"net/url"
)

// ShortenInput is a request to shorten URL, optionally under a caller-chosen code.
type ShortenInput struct {
	URL        string
	CustomCode string
}

// Service validates shorten requests, delegates code allocation to a Strategy and
// resolves codes back to their destination.
type Service struct {
	store    Repository
	strategy Strategy
}

// NewService creates a shortening service over the given registry and strategy.
func NewService(store Repository, strategy Strategy) *Service {
	return &Service{
		store:    store,
		strategy: strategy,
	}
}

// Provider returns the name of the configured strategy.
func (s *Service) Provider() string {
	return s.strategy.Name()
}

func (s *Service) Shorten(ctx context.Context, in ShortenInput) (*Result, error) {
	if in.URL == "" {
		return nil, ErrURLRequired
	}

	if err := ValidateURL(in.URL); err != nil {
		return nil, err
	}

	code := Code(in.CustomCode)

	if code != "" {
		if !code.Valid() {
			return nil, ErrInvalidCodeFormat
		}

		taken, err := s.store.Exists(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("check custom code: %w", err)
		}

		if taken {
			return nil, ErrCodeTaken
		}
	}

	return s.strategy.Shorten(ctx, in.URL, code)
}

// Resolve returns the destination registered for code. Malformed codes are reported
// as ErrNotFound without consulting the registry.
func (s *Service) Resolve(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", ErrCodeRequired
	}

	if !Code(code).Valid() {
		return "", ErrNotFound
	}

	shortURL, err := s.store.GetByCode(ctx, Code(code))
	if err != nil {
		return "", err
	}

	return shortURL.OriginalURL, nil
}

// ValidateURL checks that rawURL is an absolute URL with a scheme and a host.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return ErrInvalidURL
	}

	return nil
}
