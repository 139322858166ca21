package entity

// ResultKind вид результата движка
type ResultKind string

const (
	KindLabel ResultKind = "label" // Одна метка (текстовые движки)
	KindFaces ResultKind = "faces" // Распределения по найденным лицам
)

// EngineResult нормализованный результат классификации
type EngineResult struct {
	Engine EngineID   `json:"engine"`
	Kind   ResultKind `json:"kind"`

	// Поля KindLabel
	Label      Label    `json:"label,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
	Score      *float64 `json:"score,omitempty"`

	// Поля KindFaces
	Subjects []DetectedSubject `json:"subjects,omitempty"`
	Top      *EmotionScore     `json:"top,omitempty"`
}

// NewLabelResult создаёт результат с одной меткой
func NewLabelResult(engine EngineID, label Label) *EngineResult {
	return &EngineResult{Engine: engine, Kind: KindLabel, Label: label}
}

// WithScore задаёт исходную оценку движка
func (r *EngineResult) WithScore(score float64) *EngineResult {
	r.Score = &score
	return r
}

// WithConfidence задаёт уверенность движка
func (r *EngineResult) WithConfidence(confidence float64) *EngineResult {
	r.Confidence = &confidence
	return r
}

// NewFacesResult создаёт результат по лицам. Пустой список лиц даёт (neutral, 0).
func NewFacesResult(subjects []DetectedSubject, top EmotionScore) *EngineResult {
	if subjects == nil {
		subjects = []DetectedSubject{}
	}
	if len(subjects) == 0 {
		top = EmotionScore{Emotion: EmotionNeutral, Score: 0}
	}
	return &EngineResult{Engine: EngineFER, Kind: KindFaces, Subjects: subjects, Top: &top}
}

// DisplayLabel возвращает метку для вывода и подсчёта
func (r *EngineResult) DisplayLabel() Label {
	if r.Kind == KindFaces && r.Top != nil {
		return Label(r.Top.Emotion)
	}
	return r.Label
}
