package entity

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, c color.RGBA) *Image {
	pix := make([]uint8, 0, w*h*3)
	for i := 0; i < w*h; i++ {
		pix = append(pix, c.R, c.G, c.B)
	}
	return &Image{Width: w, Height: h, Channels: 3, Pix: pix}
}

func TestImage_Validate(t *testing.T) {
	require.NoError(t, solidImage(4, 3, color.RGBA{R: 1}).Validate())

	var nilImg *Image
	require.ErrorIs(t, nilImg.Validate(), ErrInvalidInput)

	gray := &Image{Width: 2, Height: 2, Channels: 1, Pix: make([]uint8, 4)}
	require.ErrorIs(t, gray.Validate(), ErrInvalidInput)

	short := &Image{Width: 2, Height: 2, Channels: 3, Pix: make([]uint8, 11)}
	require.ErrorIs(t, short.Validate(), ErrInvalidInput)
}

func TestImage_Crop(t *testing.T) {
	img := solidImage(10, 10, color.RGBA{R: 200, G: 100, B: 50})
	img.Pix[(2*10+3)*3] = 7

	crop := img.Crop(Box{X: 3, Y: 2, Width: 4, Height: 20})
	require.Equal(t, 4, crop.Bounds().Dx())
	require.Equal(t, 8, crop.Bounds().Dy())
	require.Equal(t, color.RGBA{R: 7, G: 100, B: 50, A: 255}, crop.RGBAAt(0, 0))
}

func TestImage_ToRGBA(t *testing.T) {
	img := solidImage(2, 2, color.RGBA{R: 10, G: 20, B: 30})
	rgba := img.ToRGBA()
	require.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 255}, rgba.RGBAAt(1, 1))
}
