package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sentiment-bot/internal/domain/entity"
	"sentiment-bot/internal/domain/port"
)

// TextRequest тело запроса к сервису моделей
type TextRequest struct {
	Text string `json:"text"`
}

// PolarityResponse ответ TextBlob
type PolarityResponse struct {
	Polarity float64 `json:"polarity"`
}

// PredictResponse ответ Flair
type PredictResponse struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// EmotionsResponse ответ text2emotion
type EmotionsResponse struct {
	Emotions map[string]float64 `json:"emotions"`
}

// HealthResponse состояние сервиса моделей
type HealthResponse struct {
	Status  string          `json:"status"`
	Engines map[string]bool `json:"engines"`
}

// ModelService HTTP-клиент сервиса, в котором работают TextBlob, Flair и text2emotion
type ModelService struct {
	baseURL    string
	httpClient *http.Client
}

// NewModelService создаёт клиент сервиса моделей
func NewModelService(baseURL string, timeout time.Duration) *ModelService {
	return &ModelService{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Polarity возвращает полярность TextBlob
func (c *ModelService) Polarity(ctx context.Context, text string) (float64, error) {
	var resp PolarityResponse
	if err := c.post(ctx, "/textblob/polarity", text, &resp); err != nil {
		return 0, err
	}
	return resp.Polarity, nil
}

// Predict возвращает метку Flair и её уверенность
func (c *ModelService) Predict(ctx context.Context, text string) (string, float64, error) {
	var resp PredictResponse
	if err := c.post(ctx, "/flair/predict", text, &resp); err != nil {
		return "", 0, err
	}
	return resp.Label, resp.Confidence, nil
}

// Emotions возвращает распределение text2emotion
func (c *ModelService) Emotions(ctx context.Context, text string) (map[string]float64, error) {
	var resp EmotionsResponse
	if err := c.post(ctx, "/text2emotion/emotions", text, &resp); err != nil {
		return nil, err
	}
	return resp.Emotions, nil
}

// Health проверяет сервис моделей
func (c *ModelService) Health(ctx context.Context) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model service returned status %d", resp.StatusCode)
	}

	var result HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}

// Probe проверяет при старте, что движок загружен в сервисе моделей
func (c *ModelService) Probe(ctx context.Context, engine entity.EngineID) error {
	health, err := c.Health(ctx)
	if err != nil {
		return err
	}
	if !health.Engines[engine.String()] {
		return fmt.Errorf("engine %s is not loaded by model service (status %q)", engine, health.Status)
	}
	return nil
}

func (c *ModelService) post(ctx context.Context, path, text string, out interface{}) error {
	body, err := json.Marshal(TextRequest{Text: text})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("model service returned status %d", resp.StatusCode)
		}
		return fmt.Errorf("model service returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// Проверка реализации интерфейсов
var (
	_ port.PolarityScorer = (*ModelService)(nil)
	_ port.LabelPredictor = (*ModelService)(nil)
	_ port.EmotionScorer  = (*ModelService)(nil)
)
