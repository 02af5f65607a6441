package middleware

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"cinema-catalog/internal/cache"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore is an in-process cache.Store with tag tracking.
type memoryStore struct {
	entries map[string]cache.Entry
	tags    map[string][]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		entries: map[string]cache.Entry{},
		tags:    map[string][]string{},
	}
}

func (s *memoryStore) Key(method, path, query string) string {
	return method + ":" + path + "?" + query
}

func (s *memoryStore) Get(_ context.Context, key string) (cache.Entry, bool) {
	entry, ok := s.entries[key]
	return entry, ok
}

func (s *memoryStore) Set(_ context.Context, key, tag string, entry cache.Entry) error {
	s.entries[key] = entry
	s.tags[tag] = append(s.tags[tag], key)
	return nil
}

func (s *memoryStore) EvictByTag(_ context.Context, tag string) error {
	for _, key := range s.tags[tag] {
		delete(s.entries, key)
	}
	delete(s.tags, tag)
	return nil
}

func newCachedApp(store ResponseCache) (*fiber.App, *int) {
	hits := 0
	app := fiber.New()
	app.Get("/items", CacheResponses(store, "items"), func(c *fiber.Ctx) error {
		hits++
		c.Set("x-total-count", "1")
		return c.JSON([]fiber.Map{{"id": 1}})
	})
	return app, &hits
}

func TestCacheServesSecondRequestFromStore(t *testing.T) {
	store := newMemoryStore()
	app, hits := newCachedApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/items", nil))
	require.NoError(t, err)
	assert.Equal(t, "MISS", resp.Header.Get("X-Cache"))

	resp, err = app.Test(httptest.NewRequest("GET", "/items", nil))
	require.NoError(t, err)
	assert.Equal(t, "HIT", resp.Header.Get("X-Cache"))
	assert.Equal(t, "1", resp.Header.Get("x-total-count"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1}]`, string(body))
	assert.Equal(t, 1, *hits)
}

func TestCacheVariesByQueryString(t *testing.T) {
	store := newMemoryStore()
	app, hits := newCachedApp(store)

	_, err := app.Test(httptest.NewRequest("GET", "/items?pageNumber=1", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/items?pageNumber=2", nil))
	require.NoError(t, err)

	assert.Equal(t, 2, *hits)
}

func TestCacheBypassesAuthorizedRequests(t *testing.T) {
	store := newMemoryStore()
	app, hits := newCachedApp(store)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/items", nil)
		req.Header.Set("Authorization", "Bearer token")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Empty(t, resp.Header.Get("X-Cache"))
	}

	assert.Equal(t, 2, *hits)
	assert.Empty(t, store.entries)
}

func TestEvictByTagInvalidatesCachedResponses(t *testing.T) {
	store := newMemoryStore()
	app, hits := newCachedApp(store)

	_, err := app.Test(httptest.NewRequest("GET", "/items", nil))
	require.NoError(t, err)

	require.NoError(t, store.EvictByTag(context.Background(), "items"))

	resp, err := app.Test(httptest.NewRequest("GET", "/items", nil))
	require.NoError(t, err)
	assert.Equal(t, "MISS", resp.Header.Get("X-Cache"))
	assert.Equal(t, 2, *hits)
}
