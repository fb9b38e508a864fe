package store

import (
	"context"
	"sync"

	"github.com/serroba/shortlink/internal/shortener"
)

// MemoryStore is an in-memory implementation of shortener.Repository.
// Contents live only as long as the process.
type MemoryStore struct {
	mu    sync.RWMutex
	urls  map[shortener.Code]*shortener.ShortURL
	order []shortener.Code // creation order, each code once
}

// NewMemoryStore creates a new empty in-memory URL store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		urls: make(map[shortener.Code]*shortener.ShortURL),
	}
}

func (m *MemoryStore) Save(_ context.Context, shortURL *shortener.ShortURL) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.put(shortURL)

	return nil
}

func (m *MemoryStore) SaveNew(_ context.Context, shortURL *shortener.ShortURL) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.urls[shortURL.Code]; ok {
		return shortener.ErrCodeTaken
	}

	m.put(shortURL)

	return nil
}

func (m *MemoryStore) GetByCode(_ context.Context, code shortener.Code) (*shortener.ShortURL, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	url, ok := m.urls[code]
	if !ok {
		return nil, shortener.ErrNotFound
	}

	c := *url

	return &c, nil
}

func (m *MemoryStore) List(_ context.Context) ([]*shortener.ShortURL, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	urls := make([]*shortener.ShortURL, 0, len(m.order))

	for _, code := range m.order {
		c := *m.urls[code]
		urls = append(urls, &c)
	}

	return urls, nil
}

// Len returns the number of stored mappings.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.urls)
}

// put must be called with mu held for writing.
func (m *MemoryStore) put(shortURL *shortener.ShortURL) {
	if _, exists := m.urls[shortURL.Code]; !exists {
		m.order = append(m.order, shortURL.Code)
	}

	c := *shortURL
	m.urls[shortURL.Code] = &c
}

// Compile-time check.
var _ shortener.Repository = (*MemoryStore)(nil)
