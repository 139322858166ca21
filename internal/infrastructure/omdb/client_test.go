package omdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentiment-bot/internal/domain/entity"
)

func newOMDBServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "secret", q.Get("apikey"))

		switch {
		case q.Get("s") == "matrix":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"Response": "True",
				"Search": []map[string]string{
					{"imdbID": "tt0133093", "Title": "The Matrix", "Year": "1999", "Type": "movie", "Poster": "http://img/1.jpg"},
					{"imdbID": "tt0000001", "Title": "Matrix Show", "Year": "2001", "Type": "series", "Poster": "N/A"},
					{"imdbID": "tt0000002", "Title": "Broken", "Year": "2002", "Type": "movie"},
				},
			})
		case q.Get("s") == "zzz":
			json.NewEncoder(w).Encode(map[string]string{"Response": "False", "Error": "Movie not found!"})
		case q.Get("s") == "limit":
			json.NewEncoder(w).Encode(map[string]string{"Response": "False", "Error": "Request limit reached!"})
		case q.Get("i") == "tt0133093":
			json.NewEncoder(w).Encode(map[string]string{
				"Response": "True",
				"Plot":     "A hacker learns the truth.",
				"Genre":    "Action, Sci-Fi",
				"Actors":   "Keanu Reeves",
				"Director": "N/A",
			})
		case q.Get("i") == "tt0000001":
			json.NewEncoder(w).Encode(map[string]string{"Response": "False", "Error": "Incorrect IMDb ID."})
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Search(t *testing.T) {
	srv := newOMDBServer(t)
	c := NewClient(srv.URL, "secret", 5*time.Second, nil)

	movies, err := c.Search(context.Background(), "matrix")
	require.NoError(t, err)
	require.Len(t, movies, 3)

	m := movies[0]
	assert.Equal(t, "tt0133093", m.ID)
	assert.Equal(t, "1999 - Movie", m.Description)
	assert.Equal(t, []string{
		"The plot is interesting: A hacker learns the truth.",
		"Great action, sci-fi movie with excellent storytelling",
		"Amazing performances by Keanu Reeves. Outstanding acting throughout.",
		"This movie was absolutely fantastic! Great story and characters.",
		"One of the best films I've seen. Highly recommend.",
		"Excellent cinematography and soundtrack. Loved every minute.",
		"The movie was okay, nothing special but watchable.",
		"Not bad, but could have been better. Average at best.",
		"Disappointing. Expected more from this film.",
	}, m.Reviews)

	assert.Equal(t, "2001 - Series", movies[1].Description)
	assert.Empty(t, movies[1].Reviews)
	assert.False(t, movies[2].HasReviews())
}

func TestClient_SearchNotFound(t *testing.T) {
	srv := newOMDBServer(t)
	c := NewClient(srv.URL, "secret", 5*time.Second, nil)

	movies, err := c.Search(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Empty(t, movies)

	_, err = c.Search(context.Background(), "limit")
	require.ErrorIs(t, err, entity.ErrUpstreamFailure)
	assert.Contains(t, err.Error(), "Request limit reached!")

	_, err = c.Search(context.Background(), "boom")
	require.ErrorIs(t, err, entity.ErrUpstreamFailure)
}

func TestSynthesizeReviews_Capped(t *testing.T) {
	reviews := synthesizeReviews(detailResponse{Plot: "p", Genre: "Drama", Actors: "a", Director: "d"})
	require.Len(t, reviews, 10)
	assert.Equal(t, "Brilliant direction by d. Masterful filmmaking.", reviews[3])
	assert.Equal(t, "Disappointing. Expected more from this film.", reviews[9])
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Movie", titleCase("movie"))
	assert.Equal(t, "Tv Episode", titleCase("tv episode"))
	assert.Equal(t, "", titleCase(""))
}
