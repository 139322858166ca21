package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentiment-bot/internal/domain/entity"
	"sentiment-bot/internal/domain/port"
)

func TestVaderLabel(t *testing.T) {
	tests := []struct {
		compound float64
		want     entity.Label
	}{
		{0.05, entity.LabelPositive},
		{0.9, entity.LabelPositive},
		{0.049, entity.LabelNeutral},
		{0, entity.LabelNeutral},
		{-0.049, entity.LabelNeutral},
		{-0.05, entity.LabelNegative},
		{-1, entity.LabelNegative},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, vaderLabel(tt.compound), "compound=%v", tt.compound)
	}
}

func TestPolarityLabel_Monotonic(t *testing.T) {
	for p := -1.0; p <= 1.0; p += 0.001 {
		label, rounded := polarityLabel(p)
		switch {
		case rounded > 0:
			require.Equal(t, entity.LabelPositive, label, "polarity=%v", p)
		case rounded < 0:
			require.Equal(t, entity.LabelNegative, label, "polarity=%v", p)
		default:
			require.Equal(t, entity.LabelNeutral, label, "polarity=%v", p)
		}
	}

	label, rounded := polarityLabel(0.004)
	assert.Equal(t, entity.LabelNeutral, label)
	assert.Zero(t, rounded)

	label, _ = polarityLabel(-0.006)
	assert.Equal(t, entity.LabelNegative, label)
}

func TestFlairLabel_ConfidenceGate(t *testing.T) {
	for _, native := range []string{"POSITIVE", "NEGATIVE", "positive"} {
		for c := 0.0; c < 0.60; c += 0.05 {
			label, err := flairLabel(native, c)
			require.NoError(t, err)
			require.Equal(t, entity.LabelNeutral, label)
		}
	}

	label, err := flairLabel("POSITIVE", 0.60)
	require.NoError(t, err)
	assert.Equal(t, entity.LabelPositive, label)

	label, err = flairLabel("NEGATIVE", 0.99)
	require.NoError(t, err)
	assert.Equal(t, entity.LabelNegative, label)

	_, err = flairLabel("MIXED", 0.9)
	require.ErrorIs(t, err, entity.ErrUpstreamFailure)

	label, err = flairLabel("MIXED", 0.3)
	require.NoError(t, err)
	assert.Equal(t, entity.LabelNeutral, label)
}

func TestEmotionLabel(t *testing.T) {
	t.Run("second above threshold compounds", func(t *testing.T) {
		label, top, err := emotionLabel(map[string]float64{"happy": 0.6, "sad": 0.5, "neutral": 0.3, "fear": 0.1, "angry": 0.0})
		require.NoError(t, err)
		assert.Equal(t, entity.Label("happy - sad"), label)
		assert.Equal(t, entity.EmotionHappy, top.Emotion)
	})

	t.Run("tie resolved by label descending", func(t *testing.T) {
		label, _, err := emotionLabel(map[string]float64{"happy": 0.4, "sad": 0.4, "neutral": 0.3, "fear": 0.1, "angry": 0.0})
		require.NoError(t, err)
		assert.Equal(t, entity.Label("sad - happy"), label)
	})

	t.Run("dominant emotion stays single", func(t *testing.T) {
		label, _, err := emotionLabel(map[string]float64{"Happy": 0.7, "Angry": 0.1, "Surprise": 0.2, "Sad": 0, "Fear": 0})
		require.NoError(t, err)
		assert.Equal(t, entity.Label("happy"), label)
	})

	t.Run("unknown emotion fails", func(t *testing.T) {
		_, _, err := emotionLabel(map[string]float64{"bored": 1})
		require.ErrorIs(t, err, entity.ErrUpstreamFailure)
	})

	t.Run("empty distribution fails", func(t *testing.T) {
		_, _, err := emotionLabel(nil)
		require.ErrorIs(t, err, entity.ErrUpstreamFailure)
	})
}

func TestFacesResult(t *testing.T) {
	t.Run("no faces", func(t *testing.T) {
		r, err := facesResult(&port.FaceDetection{})
		require.NoError(t, err)
		assert.Empty(t, r.Subjects)
		assert.Equal(t, entity.EmotionNeutral, r.Top.Emotion)
		assert.Equal(t, 0.0, r.Top.Score)
	})

	t.Run("scores rounded and names normalized", func(t *testing.T) {
		r, err := facesResult(&port.FaceDetection{
			Faces: []port.FaceScores{{
				Box:    entity.Box{X: 1, Y: 2, Width: 30, Height: 30},
				Scores: map[string]float64{"Happy": 0.876, "Sad": 0.031},
			}},
			Top:      "happy",
			TopScore: 0.876,
		})
		require.NoError(t, err)
		require.Len(t, r.Subjects, 1)
		assert.Equal(t, 0.88, r.Subjects[0].Emotions[entity.EmotionHappy])
		assert.Equal(t, 0.03, r.Subjects[0].Emotions[entity.EmotionSad])
		assert.Equal(t, entity.EmotionScore{Emotion: entity.EmotionHappy, Score: 0.88}, *r.Top)
	})

	t.Run("unknown face emotion fails", func(t *testing.T) {
		_, err := facesResult(&port.FaceDetection{
			Faces: []port.FaceScores{{Scores: map[string]float64{"contempt": 0.9}}},
			Top:   "contempt",
		})
		require.ErrorIs(t, err, entity.ErrUpstreamFailure)
	})
}
