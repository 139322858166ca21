package emotion

import (
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentiment-bot/internal/domain/entity"
)

func writeMetadata(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meta.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMetadata(t *testing.T) {
	path := writeMetadata(t, `{
		"input_shape": [1, 1, 48, 48],
		"output_shape": [1, 7],
		"classes": ["angry","disgust","fear","happy","sad","surprise","neutral"],
		"image_size": 48,
		"softmax": true
	}`)

	meta, err := LoadMetadata(path)
	require.NoError(t, err)
	assert.Equal(t, 1, meta.Channels)
	assert.Equal(t, "input", meta.InputName)
	assert.Equal(t, "output", meta.OutputName)
	assert.Len(t, meta.Classes, 7)
}

func TestLoadMetadata_Invalid(t *testing.T) {
	_, err := LoadMetadata(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	_, err = LoadMetadata(writeMetadata(t, `{"input_shape":[1,3,48,48],"output_shape":[1,7],"classes":["happy"],"image_size":48,"channels":1}`))
	require.ErrorContains(t, err, "input shape")

	_, err = LoadMetadata(writeMetadata(t, `{"input_shape":[1,1,48,48],"output_shape":[1,1],"classes":["happy","sad"],"image_size":48}`))
	require.ErrorContains(t, err, "output shape")

	_, err = LoadMetadata(writeMetadata(t, `not json`))
	require.ErrorContains(t, err, "parse metadata")
}

func TestPreprocess(t *testing.T) {
	crop := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			crop.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}

	gray := Preprocess(crop, Metadata{ImageSize: 4, Channels: 1})
	require.Len(t, gray, 16)
	assert.InDelta(t, 1.0, gray[5], 0.01)

	rgb := Preprocess(crop, Metadata{ImageSize: 4, Channels: 3})
	require.Len(t, rgb, 48)
	assert.InDelta(t, 1.0, rgb[32], 0.01)
}

func TestSoftmax(t *testing.T) {
	p := Softmax([]float32{1, 1, 1, 1})
	for _, v := range p {
		assert.InDelta(t, 0.25, v, 1e-9)
	}

	p = Softmax([]float32{1000, 0})
	assert.InDelta(t, 1.0, p[0], 1e-9)
	assert.Nil(t, Softmax(nil))
}

func TestScoresFromOutput(t *testing.T) {
	meta := Metadata{Classes: []string{"happy", "sad"}}
	scores := scoresFromOutput([]float32{0.75, 0.25, 0.99}, meta)
	assert.Equal(t, map[string]float64{"happy": 0.75, "sad": 0.25}, scores)
}

type fakeLocator struct {
	boxes []entity.Box
	err   error
}

func (l fakeLocator) LocateFaces(context.Context, *entity.Image) ([]entity.Box, error) {
	return l.boxes, l.err
}

type fakeCropClassifier struct {
	scores []map[string]float64
	calls  int
}

func (c *fakeCropClassifier) ClassifyCrop(context.Context, image.Image) (map[string]float64, error) {
	s := c.scores[c.calls]
	c.calls++
	return s, nil
}

func rgb(w, h int) *entity.Image {
	return &entity.Image{Width: w, Height: h, Channels: 3, Pix: make([]uint8, w*h*3)}
}

func TestFER_DetectEmotions(t *testing.T) {
	classifier := &fakeCropClassifier{scores: []map[string]float64{
		{"happy": 0.2, "sad": 0.7},
		{"happy": 0.9, "sad": 0.1},
	}}
	fer := NewFER(fakeLocator{boxes: []entity.Box{
		{X: 0, Y: 0, Width: 4, Height: 4},
		{X: 50, Y: 50, Width: 4, Height: 4},
		{X: 4, Y: 4, Width: 4, Height: 4},
	}}, classifier)

	d, err := fer.DetectEmotions(context.Background(), rgb(10, 10))
	require.NoError(t, err)
	require.Len(t, d.Faces, 2)
	assert.Equal(t, 2, classifier.calls)
	assert.Equal(t, "sad", d.Top)
	assert.Equal(t, 0.7, d.TopScore)
}

func TestFER_NoFaces(t *testing.T) {
	fer := NewFER(fakeLocator{}, &fakeCropClassifier{})

	d, err := fer.DetectEmotions(context.Background(), rgb(10, 10))
	require.NoError(t, err)
	assert.Empty(t, d.Faces)
	assert.Empty(t, d.Top)
}

func TestFER_LocatorError(t *testing.T) {
	fer := NewFER(fakeLocator{err: errors.New("cascade broken")}, &fakeCropClassifier{})

	_, err := fer.DetectEmotions(context.Background(), rgb(10, 10))
	require.ErrorContains(t, err, "cascade broken")
}

func TestArgmaxTieBreak(t *testing.T) {
	name, score := argmax(map[string]float64{"happy": 0.5, "sad": 0.5, "fear": 0.1})
	assert.Equal(t, "sad", name)
	assert.Equal(t, 0.5, score)
}
