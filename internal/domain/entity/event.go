package entity

import "time"

// ClassificationEvent событие об успешной классификации
type ClassificationEvent struct {
	ID        string        `json:"id"`
	Engine    EngineID      `json:"engine"`
	Modality  Modality      `json:"modality"`
	Label     Label         `json:"label"`
	Faces     int           `json:"faces,omitempty"`
	Duration  time.Duration `json:"-"`
	Timestamp time.Time     `json:"timestamp"`
}
