package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisTranslationCacheRequiresAddr(t *testing.T) {
	_, err := NewRedisTranslationCache("", "", 0, time.Hour, "")
	assert.Error(t, err)
}

func TestTranslationCacheDefaultsAndKeys(t *testing.T) {
	c, err := NewRedisTranslationCache("localhost:6379", "", 0, 0, "")
	require.NoError(t, err)
	defer c.Close()

	rc := c.(*redisTranslationCache)
	assert.Equal(t, 24*time.Hour, rc.ttl)
	assert.Equal(t, "nl2sql:abc", rc.key("abc"))
}

func TestNilClientIsNoop(t *testing.T) {
	c := &redisTranslationCache{}
	ctx := context.Background()

	val, ok, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, val)
	assert.NoError(t, c.Set(ctx, "k", "SELECT 1"))
	assert.NoError(t, c.Close())
}
