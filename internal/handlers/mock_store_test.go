package handlers_test

import (
	"context"
	"errors"

	"github.com/serroba/shortlink/internal/shortener"
)

var errMock = errors.New("mock error")

const testURL = "https://example.com/page"

// mockStore is a test double for shortener.Repository that can be configured to return errors.
type mockStore struct {
	saveErr      error
	getByCodeErr error
	listErr      error
}

func (m *mockStore) Save(_ context.Context, _ *shortener.ShortURL) error {
	return m.saveErr
}

func (m *mockStore) SaveNew(_ context.Context, _ *shortener.ShortURL) error {
	return m.saveErr
}

func (m *mockStore) GetByCode(_ context.Context, code shortener.Code) (*shortener.ShortURL, error) {
	if m.getByCodeErr != nil {
		return nil, m.getByCodeErr
	}

	return &shortener.ShortURL{Code: code, OriginalURL: testURL}, nil
}

func (m *mockStore) List(_ context.Context) ([]*shortener.ShortURL, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}

	return nil, nil
}
