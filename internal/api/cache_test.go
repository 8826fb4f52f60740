package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rbui/rbui/pkg/scoring"
)

func TestResultCache_LRU(t *testing.T) {
	c := NewResultCache(2)
	a := &scoring.ScoreResult{PlatformID: "a"}
	b := &scoring.ScoreResult{PlatformID: "b"}
	d := &scoring.ScoreResult{PlatformID: "d"}

	c.Put("a", a, "run-a")
	c.Put("b", b, "run-b")

	// Touch a so b becomes the eviction candidate.
	got, runID := c.Get("a")
	assert.Same(t, a, got)
	assert.Equal(t, "run-a", runID)

	c.Put("d", d, "run-d")
	assert.Equal(t, 2, c.Len())

	got, _ = c.Get("b")
	assert.Nil(t, got, "b should have been evicted")
	got, _ = c.Get("a")
	assert.Same(t, a, got)
	got, _ = c.Get("d")
	assert.Same(t, d, got)
}

func TestResultCache_Replace(t *testing.T) {
	c := NewResultCache(0)
	c.Put("k", &scoring.ScoreResult{TotalScore: 1}, "r1")
	c.Put("k", &scoring.ScoreResult{TotalScore: 2}, "r2")

	got, runID := c.Get("k")
	assert.Equal(t, 2.0, got.TotalScore)
	assert.Equal(t, "r2", runID)
	assert.Equal(t, 1, c.Len())
}

func TestNewResultCacheFromEnv(t *testing.T) {
	t.Setenv("RESULT_CACHE_SIZE", "3")
	c := NewResultCacheFromEnv()
	assert.Equal(t, 3, c.maxSize)

	t.Setenv("RESULT_CACHE_SIZE", "nope")
	c = NewResultCacheFromEnv()
	assert.Equal(t, 256, c.maxSize)
}
