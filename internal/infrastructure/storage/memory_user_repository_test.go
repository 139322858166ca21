package storage

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentiment-bot/internal/domain/entity"
)

func TestMemoryUserRepository_GetCreatesUser(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	u, err := repo.Get(ctx, 7, 70)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, u.State)
	require.Equal(t, entity.DefaultTextEngine, u.Engine)

	// Изменение копии не попадает в хранилище
	u.SetState(entity.StateProcessing)
	u, err = repo.Get(ctx, 7, 70)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, u.State)
}

func TestMemoryUserRepository_Save(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	u := entity.NewUser(8, 80)
	require.NoError(t, u.SetEngine(entity.EngineText2Emotion))
	require.NoError(t, repo.Save(ctx, u))

	got, err := repo.Get(ctx, 8, 80)
	require.NoError(t, err)
	require.Equal(t, entity.EngineText2Emotion, got.Engine)
}

func TestMemoryUserRepository_UpdateRollsBackOnError(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	_, err := repo.Update(ctx, 9, 90, func(u *entity.User) error {
		u.SetState(entity.StateAwaitingMovie)
		return errors.New("boom")
	})
	require.Error(t, err)

	u, err := repo.Get(ctx, 9, 90)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, u.State)
}

func TestMemoryUserRepository_ConcurrentUpdate(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			state := entity.StateAwaitingText
			if i%2 == 0 {
				state = entity.StateAwaitingPhoto
			}
			_, err := repo.Update(ctx, 1, 10, func(u *entity.User) error {
				u.SetState(state)
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	u, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Contains(t, []entity.UserState{entity.StateAwaitingText, entity.StateAwaitingPhoto}, u.State)
}
