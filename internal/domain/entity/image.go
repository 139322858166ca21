package entity

import (
	"fmt"
	"image"
	"image/color"
)

// Image декодированное изображение: построчная сетка H×W×C, 8 бит на канал
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// Validate проверяет, что изображение пригодно для движков лиц
func (img *Image) Validate() error {
	if img == nil || len(img.Pix) == 0 {
		return fmt.Errorf("%w: empty image", ErrInvalidInput)
	}
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("%w: bad dimensions %dx%d", ErrInvalidInput, img.Width, img.Height)
	}
	if img.Channels < 3 {
		return fmt.Errorf("%w: image has %d channel(s), need 3", ErrInvalidInput, img.Channels)
	}
	if want := img.Width * img.Height * img.Channels; len(img.Pix) != want {
		return fmt.Errorf("%w: pixel buffer has %d bytes, want %d", ErrInvalidInput, len(img.Pix), want)
	}
	return nil
}

// At возвращает цвет пикселя (для 3+ каналов)
func (img *Image) At(x, y int) color.RGBA {
	i := (y*img.Width + x) * img.Channels
	return color.RGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: 255}
}

// ToRGBA переводит изображение в image.RGBA
func (img *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			out.SetRGBA(x, y, img.At(x, y))
		}
	}
	return out
}

// Crop вырезает область, обрезанную по границам изображения
func (img *Image) Crop(box Box) *image.RGBA {
	r := image.Rect(box.X, box.Y, box.X+box.Width, box.Y+box.Height).
		Intersect(image.Rect(0, 0, img.Width, img.Height))
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			out.SetRGBA(x-r.Min.X, y-r.Min.Y, img.At(x, y))
		}
	}
	return out
}
