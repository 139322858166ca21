//go:build !onnx
// +build !onnx

package emotion

import (
	"context"
	"image"
)

// ONNXClassifier заглушка (без ONNX Runtime)
type ONNXClassifier struct{}

// NewONNXClassifier возвращает ошибку, если сборка без тега onnx.
func NewONNXClassifier(modelPath, metadataPath string) (*ONNXClassifier, error) {
	_ = modelPath
	_ = metadataPath
	return nil, ErrNotEnabled
}

// ClassifyCrop возвращает ошибку, если сборка без тега onnx.
func (c *ONNXClassifier) ClassifyCrop(ctx context.Context, crop image.Image) (map[string]float64, error) {
	_ = ctx
	_ = crop
	return nil, ErrNotEnabled
}

// Close ничего не делает.
func (c *ONNXClassifier) Close() error {
	return nil
}
