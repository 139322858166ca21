package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sentiment-bot/internal/domain/entity"
	"sentiment-bot/internal/infrastructure/storage"
)

func newVaderClassifier() *Classifier {
	return NewClassifier(WithVader(compoundFunc(func(text string) (float64, error) {
		if text == "awful" {
			return -0.8, nil
		}
		return 0.6, nil
	}), nil))
}

func TestMovieService_Analyze(t *testing.T) {
	source := new(MockReviewSource)
	source.On("Search", mock.Anything, "matrix").Return([]entity.Movie{
		{ID: "tt1", Title: "The Matrix", Reviews: []string{"great", "awful", "nice"}},
		{ID: "tt2", Title: "The Matrix Online"},
	}, nil).Once()

	svc := NewMovieService(newVaderClassifier(), source, storage.NewQueryCache(1), nil)
	ctx := context.Background()

	report, err := svc.Analyze(ctx, "  matrix ", entity.EngineVader)
	require.NoError(t, err)
	assert.False(t, report.Cached)
	require.Len(t, report.Movies, 2)

	first := report.Movies[0]
	assert.False(t, first.NoReviews)
	assert.Equal(t, 3, first.Tally.Total)
	assert.Equal(t, entity.LabelPositive, first.Labels[0].Label)
	assert.Equal(t, 2, first.Labels[0].Count)

	assert.True(t, report.Movies[1].NoReviews)
	assert.Nil(t, report.Movies[1].Tally)

	report, err = svc.Analyze(ctx, "matrix", entity.EngineVader)
	require.NoError(t, err)
	assert.True(t, report.Cached)

	source.AssertExpectations(t)
}

func TestMovieService_NewQueryEvictsCachedOne(t *testing.T) {
	source := new(MockReviewSource)
	source.On("Search", mock.Anything, "alien").Return([]entity.Movie{}, nil).Twice()
	source.On("Search", mock.Anything, "heat").Return([]entity.Movie{}, nil).Once()

	svc := NewMovieService(newVaderClassifier(), source, storage.NewQueryCache(1), nil)
	ctx := context.Background()

	for _, q := range []string{"alien", "heat", "alien"} {
		report, err := svc.Analyze(ctx, q, entity.EngineVader)
		require.NoError(t, err)
		assert.False(t, report.Cached)
		assert.Empty(t, report.Movies)
	}
	source.AssertExpectations(t)
}

func TestMovieService_Errors(t *testing.T) {
	source := new(MockReviewSource)
	source.On("Search", mock.Anything, "down").Return(nil, errors.New("timeout")).Once()

	svc := NewMovieService(newVaderClassifier(), source, nil, nil)
	ctx := context.Background()

	_, err := svc.Analyze(ctx, "   ", entity.EngineVader)
	require.ErrorIs(t, err, entity.ErrInvalidInput)

	_, err = svc.Analyze(ctx, "x", entity.EngineID(77))
	require.ErrorIs(t, err, entity.ErrUnsupportedEngine)

	_, err = svc.Analyze(ctx, "x", entity.EngineFlair)
	require.ErrorIs(t, err, entity.ErrEngineUnavailable)

	_, err = svc.Analyze(ctx, "down", entity.EngineVader)
	require.ErrorIs(t, err, entity.ErrUpstreamFailure)

	source.AssertExpectations(t)
}
