package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"

	"sentiment-bot/internal/domain/entity"
	"sentiment-bot/internal/domain/port"
)

// DefaultMaxPixels предел Width*Height, если он не задан в конфигурации
const DefaultMaxPixels = 40_000_000

// Decoder декодирует JPEG и PNG в entity.Image.
// Серые и палитровые изображения дают один канал и отклоняются движком лиц.
type Decoder struct {
	maxPixels int
}

// NewDecoder создаёт декодер; maxPixels <= 0 означает DefaultMaxPixels
func NewDecoder(maxPixels int) *Decoder {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	return &Decoder{maxPixels: maxPixels}
}

// Decode возвращает изображение и имя формата.
// Размеры читаются из заголовка до выделения буфера пикселей.
func (d *Decoder) Decode(data []byte) (*entity.Image, string, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: unsupported image format (JPEG, PNG): %w", entity.ErrInvalidInput, err)
	}
	if err := d.checkSize(cfg.Width, cfg.Height); err != nil {
		return nil, "", err
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: unsupported image format (JPEG, PNG): %w", entity.ErrInvalidInput, err)
	}
	return FromImage(img), format, nil
}

func (d *Decoder) checkSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: image has empty dimensions %dx%d", entity.ErrInvalidInput, w, h)
	}
	// w*h > maxPixels без переполнения
	if w > d.maxPixels/h {
		return fmt.Errorf("%w: image is too large: %dx%d exceeds %d pixels", entity.ErrInvalidInput, w, h, d.maxPixels)
	}
	return nil
}

// FromImage переводит image.Image в построчную сетку H×W×C
func FromImage(img image.Image) *entity.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if isSingleChannel(img) {
		pix := make([]uint8, 0, w*h)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
				pix = append(pix, g.Y)
			}
		}
		return &entity.Image{Width: w, Height: h, Channels: 1, Pix: pix}
	}

	pix := make([]uint8, 0, w*h*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			pix = append(pix, uint8(r>>8), uint8(g>>8), uint8(bl>>8))
		}
	}
	return &entity.Image{Width: w, Height: h, Channels: 3, Pix: pix}
}

func isSingleChannel(img image.Image) bool {
	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.Paletted:
		return true
	}
	return false
}

// Проверка реализации интерфейса
var _ port.ImageDecoder = (*Decoder)(nil)
