package geocode

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sinodiaspora/story-map-api/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestResolver(baseURL string) *NominatimResolver {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewNominatimResolver(&config.Config{
		GeocodeBaseURL:   baseURL,
		GeocodeUserAgent: "story-map-api-test/1.0",
		GeocodeLanguage:  "zh,en",
		GeocodeTimeout:   2 * time.Second,
	}, logger)
}

func TestReverseLookup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Nominatim требует идентифицирующие заголовки
		assert.Equal(t, "story-map-api-test/1.0", r.Header.Get("User-Agent"))
		assert.Equal(t, "zh,en", r.Header.Get("Accept-Language"))
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		assert.NotEmpty(t, r.URL.Query().Get("lat"))
		assert.NotEmpty(t, r.URL.Query().Get("lon"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"display_name": "Rue de Rivoli, Paris, France"}`))
	}))
	defer srv.Close()

	r := newTestResolver(srv.URL)
	got := r.ReverseLookup(context.Background(), 48.8566, 2.3522)
	assert.Equal(t, "Rue de Rivoli, Paris, France", got)
}

func TestReverseLookup_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	r := newTestResolver(srv.URL)
	assert.Equal(t, UnknownAddress, r.ReverseLookup(context.Background(), 48.85, 2.35))
}

func TestReverseLookup_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	r := newTestResolver(srv.URL)
	assert.Equal(t, UnknownAddress, r.ReverseLookup(context.Background(), 48.85, 2.35))
}

func TestReverseLookup_EmptyDisplayName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"display_name": ""}`))
	}))
	defer srv.Close()

	r := newTestResolver(srv.URL)
	assert.Equal(t, UnknownAddress, r.ReverseLookup(context.Background(), 48.85, 2.35))
}

func TestReverseLookup_NetworkError(t *testing.T) {
	// Сервер сразу закрыт: любой сетевой сбой деградирует до сентинела
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	r := newTestResolver(srv.URL)
	assert.Equal(t, UnknownAddress, r.ReverseLookup(context.Background(), 48.85, 2.35))
}
