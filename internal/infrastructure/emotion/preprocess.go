package emotion

import (
	"image"
	"math"

	"github.com/nfnt/resize"
)

// Preprocess приводит вырезанное лицо к входу модели: квадрат ImageSize,
// значения в [0,1], для 3 каналов: раскладка CHW.
func Preprocess(crop image.Image, meta Metadata) []float32 {
	size := uint(meta.ImageSize)
	resized := resize.Resize(size, size, crop, resize.Lanczos3)

	b := resized.Bounds()
	w, h := b.Dx(), b.Dy()
	plane := w * h
	out := make([]float32, meta.Channels*plane)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := resized.At(b.Min.X+x, b.Min.Y+y).RGBA()
			rn := float32(r) / 65535.0
			gn := float32(g) / 65535.0
			bn := float32(bl) / 65535.0

			i := y*w + x
			if meta.Channels == 1 {
				out[i] = 0.299*rn + 0.587*gn + 0.114*bn
				continue
			}
			out[i] = rn
			out[plane+i] = gn
			out[2*plane+i] = bn
		}
	}
	return out
}

// Softmax нормирует логиты в вероятности
func Softmax(logits []float32) []float64 {
	if len(logits) == 0 {
		return nil
	}
	maxV := logits[0]
	for _, v := range logits[1:] {
		if v > maxV {
			maxV = v
		}
	}

	out := make([]float64, len(logits))
	var sum float64
	for i, v := range logits {
		out[i] = math.Exp(float64(v - maxV))
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

// scoresFromOutput сопоставляет выход модели с классами
func scoresFromOutput(output []float32, meta Metadata) map[string]float64 {
	n := len(meta.Classes)
	if len(output) < n {
		n = len(output)
	}

	var values []float64
	if meta.Softmax {
		values = Softmax(output[:n])
	} else {
		values = make([]float64, n)
		for i := 0; i < n; i++ {
			values[i] = float64(output[i])
		}
	}

	scores := make(map[string]float64, n)
	for i := 0; i < n; i++ {
		scores[meta.Classes[i]] = values[i]
	}
	return scores
}
