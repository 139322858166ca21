package entity

import (
	"fmt"
	"strings"
)

// EngineID идентификатор движка классификации (закрытое перечисление)
type EngineID int

const (
	EngineVader EngineID = iota + 1
	EngineTextBlob
	EngineFlair
	EngineText2Emotion
	EngineFER
)

// Modality тип входных данных, которые принимает движок
type Modality string

const (
	ModalityText  Modality = "text"
	ModalityImage Modality = "image"
)

var engineNames = map[EngineID]string{
	EngineVader:        "vader",
	EngineTextBlob:     "textblob",
	EngineFlair:        "flair",
	EngineText2Emotion: "text2emotion",
	EngineFER:          "fer",
}

// AllEngines возвращает все известные движки в стабильном порядке
func AllEngines() []EngineID {
	return []EngineID{EngineVader, EngineTextBlob, EngineFlair, EngineText2Emotion, EngineFER}
}

// TextEngines возвращает движки, работающие с текстом
func TextEngines() []EngineID {
	return []EngineID{EngineVader, EngineTextBlob, EngineFlair, EngineText2Emotion}
}

// Valid сообщает, входит ли идентификатор в перечисление
func (id EngineID) Valid() bool {
	_, ok := engineNames[id]
	return ok
}

func (id EngineID) String() string {
	if name, ok := engineNames[id]; ok {
		return name
	}
	return fmt.Sprintf("engine(%d)", int(id))
}

// Modality возвращает тип входа, который ожидает движок
func (id EngineID) Modality() Modality {
	if id == EngineFER {
		return ModalityImage
	}
	return ModalityText
}

// ParseEngineID разбирает имя движка без учёта регистра.
func ParseEngineID(name string) (EngineID, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for id, n := range engineNames {
		if n == key {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedEngine, name)
}

// MarshalText позволяет сериализовать EngineID в JSON как строку
func (id EngineID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}
