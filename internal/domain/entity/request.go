package entity

// PredictionRequest вход классификации: либо текст, либо изображение
type PredictionRequest struct {
	modality Modality
	text     string
	image    *Image
}

// TextRequest создаёт текстовый запрос
func TextRequest(text string) PredictionRequest {
	return PredictionRequest{modality: ModalityText, text: text}
}

// ImageRequest создаёт запрос с изображением
func ImageRequest(img *Image) PredictionRequest {
	return PredictionRequest{modality: ModalityImage, image: img}
}

// Modality возвращает тип входа
func (r PredictionRequest) Modality() Modality {
	return r.modality
}

// Text возвращает текст запроса
func (r PredictionRequest) Text() string {
	return r.text
}

// Image возвращает изображение запроса
func (r PredictionRequest) Image() *Image {
	return r.image
}
