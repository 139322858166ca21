package storage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sentiment-bot/internal/domain/entity"
)

func TestQueryCache_SingleSlot(t *testing.T) {
	c := NewQueryCache(1)
	c.Put("alien", []entity.Movie{{ID: "tt1"}})

	got, ok := c.Get("alien")
	require.True(t, ok)
	require.Equal(t, "tt1", got[0].ID)

	c.Put("heat", []entity.Movie{{ID: "tt2"}})
	_, ok = c.Get("alien")
	require.False(t, ok)
	require.Equal(t, 1, c.Len())
}

func TestQueryCache_Capacity(t *testing.T) {
	c := NewQueryCache(2)
	c.Put("a", nil)
	c.Put("b", nil)
	_, _ = c.Get("a")
	c.Put("c", nil)

	_, ok := c.Get("a")
	require.True(t, ok)
	_, ok = c.Get("b")
	require.False(t, ok)

}

func TestQueryCache_NonPositiveCapacity(t *testing.T) {
	c := NewQueryCache(0)
	c.Put("a", nil)
	c.Put("b", nil)
	require.Equal(t, 1, c.Len())
}
