package shortener

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// MaxGenerateAttempts bounds how often a generated code is re-drawn after a collision.
const MaxGenerateAttempts = 5

const ProviderLocal = "local"

// Result is a successfully shortened URL.
type Result struct {
	ShortURL

	// Link is the public short URL handed back to the caller.
	Link     string
	Provider string
}

// Strategy allocates a code for an already validated URL.
type Strategy interface {
	Shorten(ctx context.Context, url string, customCode Code) (*Result, error)
	Name() string
}

// CodeGenerator generates random short codes.
type CodeGenerator func() string

// TokenStrategy stores codes in the local registry. Custom codes are used as given,
// otherwise a random code is generated and re-drawn on collision.
type TokenStrategy struct {
	store        Repository
	generateCode CodeGenerator
	baseURL      string
	maxAttempts  int
}

// NewTokenStrategy creates a registry-backed shortening strategy.
func NewTokenStrategy(store Repository, generator CodeGenerator, baseURL string) *TokenStrategy {
	return &TokenStrategy{
		store:        store,
		generateCode: generator,
		baseURL:      strings.TrimRight(baseURL, "/"),
		maxAttempts:  MaxGenerateAttempts,
	}
}

func (s *TokenStrategy) Name() string {
	return ProviderLocal
}

func (s *TokenStrategy) Shorten(ctx context.Context, url string, customCode Code) (*Result, error) {
	if customCode != "" {
		shortURL := &ShortURL{
			Code:        customCode,
			OriginalURL: url,
			IsCustom:    true,
			CreatedAt:   time.Now(),
		}

		if err := s.store.Save(ctx, shortURL); err != nil {
			if errors.Is(err, ErrCodeExists) {
				return nil, ErrCodeTaken
			}

			return nil, err
		}

		return s.result(shortURL), nil
	}

	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		shortURL := &ShortURL{
			Code:        Code(s.generateCode()),
			OriginalURL: url,
			CreatedAt:   time.Now(),
		}

		err := s.store.Save(ctx, shortURL)
		if err == nil {
			return s.result(shortURL), nil
		}

		if !errors.Is(err, ErrCodeExists) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w after %d attempts", ErrCodeSpaceExhausted, s.maxAttempts)
}

func (s *TokenStrategy) result(shortURL *ShortURL) *Result {
	return &Result{
		ShortURL: *shortURL,
		Link:     fmt.Sprintf("%s/%s", s.baseURL, shortURL.Code),
		Provider: ProviderLocal,
	}
}
