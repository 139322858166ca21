package emotion

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNotEnabled сборка без ONNX Runtime
var ErrNotEnabled = errors.New("onnx build tag is not enabled")

// Metadata описание ONNX-модели эмоций
type Metadata struct {
	InputShape  []int64  `json:"input_shape"`
	OutputShape []int64  `json:"output_shape"`
	Classes     []string `json:"classes"`
	ImageSize   int      `json:"image_size"`
	Channels    int      `json:"channels"`
	Softmax     bool     `json:"softmax"`
	InputName   string   `json:"input_name"`
	OutputName  string   `json:"output_name"`
}

// LoadMetadata читает и проверяет JSON с описанием модели
func LoadMetadata(path string) (*Metadata, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}

	var meta Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}

	if meta.Channels == 0 {
		meta.Channels = 1
	}
	if meta.InputName == "" {
		meta.InputName = "input"
	}
	if meta.OutputName == "" {
		meta.OutputName = "output"
	}
	if err := meta.validate(); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (m *Metadata) validate() error {
	if m.ImageSize <= 0 {
		return fmt.Errorf("metadata: image_size must be positive")
	}
	if m.Channels != 1 && m.Channels != 3 {
		return fmt.Errorf("metadata: channels must be 1 or 3, got %d", m.Channels)
	}
	if len(m.Classes) == 0 {
		return fmt.Errorf("metadata: classes are empty")
	}
	if want := int64(m.Channels * m.ImageSize * m.ImageSize); product(m.InputShape) != want {
		return fmt.Errorf("metadata: input shape %v does not hold %d values", m.InputShape, want)
	}
	if product(m.OutputShape) < int64(len(m.Classes)) {
		return fmt.Errorf("metadata: output shape %v is smaller than %d classes", m.OutputShape, len(m.Classes))
	}
	return nil
}

func product(shape []int64) int64 {
	if len(shape) == 0 {
		return 0
	}
	n := int64(1)
	for _, d := range shape {
		n *= d
	}
	return n
}
