package shortener_test

import (
	"context"
	"errors"

	"github.com/serroba/web-toolbox/internal/shortener"
)

var errMock = errors.New("mock error")

const testURL = "https://example.com"

// mockStore is a test double for Repository that records calls and can fail on demand.
type mockStore struct {
	saveErr   error
	getErr    error
	existsErr error
	exists    bool
	calls     int
	saved     []*shortener.ShortURL
}

func (m *mockStore) Save(_ context.Context, shortURL *shortener.ShortURL) error {
	m.calls++
	m.saved = append(m.saved, shortURL)

	return m.saveErr
}

func (m *mockStore) GetByCode(_ context.Context, code shortener.Code) (*shortener.ShortURL, error) {
	m.calls++

	if m.getErr != nil {
		return nil, m.getErr
	}

	return &shortener.ShortURL{Code: code, OriginalURL: testURL}, nil
}

func (m *mockStore) Exists(_ context.Context, _ shortener.Code) (bool, error) {
	m.calls++

	return m.exists, m.existsErr
}
