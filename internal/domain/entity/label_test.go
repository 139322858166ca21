package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEmotion(t *testing.T) {
	e, ok := ParseEmotion("Happy")
	require.True(t, ok)
	require.Equal(t, EmotionHappy, e)

	_, ok = ParseEmotion("bored")
	require.False(t, ok)
}

func TestParseSentiment(t *testing.T) {
	l, ok := ParseSentiment("POSITIVE")
	require.True(t, ok)
	require.Equal(t, LabelPositive, l)

	_, ok = ParseSentiment("MIXED")
	require.False(t, ok)
}

func TestCompoundLabel(t *testing.T) {
	l := CompoundLabel(EmotionHappy, EmotionSad)
	require.Equal(t, Label("happy - sad"), l)
	require.True(t, l.IsCompound())
	require.Equal(t, []string{"happy", "sad"}, l.Parts())
	require.Equal(t, "😊😢", l.Emoji())
	require.Equal(t, "😞", LabelNegative.Emoji())
}
