package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *QueryCache {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "cache.json"), time.Minute)
}

func TestGetSet_RoundTrip(t *testing.T) {
	c := newTestCache(t)

	c.Set("books:list", []string{"dune"}, TagBooks)

	var got []string
	require.True(t, c.Get("books:list", &got))
	assert.Equal(t, []string{"dune"}, got)
}

func TestGet_MissingKey(t *testing.T) {
	c := newTestCache(t)

	var got []string
	assert.False(t, c.Get("nope", &got))
}

// A mutation evicts exactly the queries carrying one of its tags.
func TestInvalidateFor_EvictsByTag(t *testing.T) {
	c := newTestCache(t)

	c.Set("books:list", 1, TagBooks)
	c.Set("shelves:list", 2, TagShelves)
	c.Set("categories:list", 3, TagCategories)
	c.Set("movies:list", 4, TagMovies)

	// a book mutation touches shelf counts too, but never categories or movies
	c.InvalidateFor("books/create")

	var v int
	assert.False(t, c.Get("books:list", &v))
	assert.False(t, c.Get("shelves:list", &v))
	assert.True(t, c.Get("categories:list", &v))
	assert.True(t, c.Get("movies:list", &v))
}

func TestInvalidateFor_LogoutDropsEverything(t *testing.T) {
	c := newTestCache(t)

	c.Set("books:list", 1, TagBooks)
	c.Set("shelves:list", 2, TagShelves)
	c.Set("categories:list", 3, TagCategories)
	c.Set("movies:list", 4, TagMovies)

	c.InvalidateFor("auth/logout")

	assert.Equal(t, 0, c.Len())
}

func TestInvalidateFor_UnknownMutationIsNoop(t *testing.T) {
	c := newTestCache(t)

	c.Set("books:list", 1, TagBooks)
	c.InvalidateFor("books/sparkle")

	assert.Equal(t, 1, c.Len())
}

func TestShelfDelete_EvictsBooksAndMovies(t *testing.T) {
	c := newTestCache(t)

	c.Set("books:list", 1, TagBooks)
	c.Set("movies:list", 2, TagMovies)
	c.Set("shelves:list", 3, TagShelves)
	c.Set("categories:list", 4, TagCategories)

	// deleting a shelf unshelves books and movies, so their caches go stale
	c.InvalidateFor("shelves/delete")

	var v int
	assert.False(t, c.Get("books:list", &v))
	assert.False(t, c.Get("movies:list", &v))
	assert.False(t, c.Get("shelves:list", &v))
	assert.True(t, c.Get("categories:list", &v))
}

func TestMaxAge_ExpiresEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	c := New(path, time.Nanosecond)

	c.Set("books:list", 1, TagBooks)
	time.Sleep(time.Millisecond)

	var v int
	assert.False(t, c.Get("books:list", &v))
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	c := New(path, time.Minute)
	c.Set("books:list", []string{"dune"}, TagBooks)
	c.Save()

	reloaded := New(path, time.Minute)
	var got []string
	require.True(t, reloaded.Get("books:list", &got))
	assert.Equal(t, []string{"dune"}, got)

	// tags survive the round trip and still drive invalidation
	reloaded.InvalidateFor("books/delete")
	assert.False(t, reloaded.Get("books:list", &got))
}
