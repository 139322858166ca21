package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"sentiment-bot/internal/domain/entity"
	"sentiment-bot/internal/domain/port"
)

const (
	maxReviews      = 10
	notFoundMessage = "Movie not found!"
	notAvailable    = "N/A"
)

// cannedReviews добавляются к отзывам, собранным из карточки фильма
var cannedReviews = []string{
	"This movie was absolutely fantastic! Great story and characters.",
	"One of the best films I've seen. Highly recommend.",
	"Excellent cinematography and soundtrack. Loved every minute.",
	"The movie was okay, nothing special but watchable.",
	"Not bad, but could have been better. Average at best.",
	"Disappointing. Expected more from this film.",
}

type searchItem struct {
	ImdbID string `json:"imdbID"`
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

type searchResponse struct {
	Response string       `json:"Response"`
	Error    string       `json:"Error"`
	Search   []searchItem `json:"Search"`
}

type detailResponse struct {
	Response string `json:"Response"`
	Error    string `json:"Error"`
	Plot     string `json:"Plot"`
	Genre    string `json:"Genre"`
	Actors   string `json:"Actors"`
	Director string `json:"Director"`
}

// Client источник отзывов на основе OMDB API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient создаёт клиент OMDB
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Search ищет фильмы и собирает для каждого до 10 отзывов.
// "Movie not found!" даёт пустой список без ошибки.
func (c *Client) Search(ctx context.Context, query string) ([]entity.Movie, error) {
	var resp searchResponse
	if err := c.get(ctx, url.Values{"s": {query}}, &resp); err != nil {
		return nil, fmt.Errorf("%w: omdb search: %w", entity.ErrUpstreamFailure, err)
	}

	if resp.Response != "True" {
		if resp.Error == notFoundMessage {
			return []entity.Movie{}, nil
		}
		msg := resp.Error
		if msg == "" {
			msg = "unknown error occurred"
		}
		return nil, fmt.Errorf("%w: omdb: %s", entity.ErrUpstreamFailure, msg)
	}

	movies := make([]entity.Movie, 0, len(resp.Search))
	for _, item := range resp.Search {
		movie := entity.Movie{
			ID:          item.ImdbID,
			Title:       item.Title,
			Poster:      item.Poster,
			Description: fmt.Sprintf("%s - %s", item.Year, titleCase(item.Type)),
		}

		reviews, err := c.reviews(ctx, item.ImdbID)
		if err != nil {
			c.logger.Warn("failed to fetch movie details",
				zap.String("id", item.ImdbID),
				zap.Error(err),
			)
			reviews = nil
		}
		movie.Reviews = reviews
		movies = append(movies, movie)
	}
	return movies, nil
}

// reviews собирает отзывы из карточки фильма
func (c *Client) reviews(ctx context.Context, id string) ([]string, error) {
	var d detailResponse
	if err := c.get(ctx, url.Values{"i": {id}}, &d); err != nil {
		return nil, err
	}
	if d.Response != "True" {
		return nil, nil
	}
	return synthesizeReviews(d), nil
}

func synthesizeReviews(d detailResponse) []string {
	var reviews []string
	if present(d.Plot) {
		reviews = append(reviews, fmt.Sprintf("The plot is interesting: %s", d.Plot))
	}
	if present(d.Genre) {
		reviews = append(reviews, fmt.Sprintf("Great %s movie with excellent storytelling", strings.ToLower(d.Genre)))
	}
	if present(d.Actors) {
		reviews = append(reviews, fmt.Sprintf("Amazing performances by %s. Outstanding acting throughout.", d.Actors))
	}
	if present(d.Director) {
		reviews = append(reviews, fmt.Sprintf("Brilliant direction by %s. Masterful filmmaking.", d.Director))
	}
	reviews = append(reviews, cannedReviews...)

	if len(reviews) > maxReviews {
		reviews = reviews[:maxReviews]
	}
	return reviews
}

func present(v string) bool {
	return v != "" && v != notAvailable
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func (c *Client) get(ctx context.Context, params url.Values, out interface{}) error {
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+params.Encode(), http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("omdb returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.ReviewSource = (*Client)(nil)
