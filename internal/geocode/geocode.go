package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sinodiaspora/story-map-api/internal/config"
	"github.com/sirupsen/logrus"
)

// UnknownAddress - запасное значение адреса: геокодер не должен блокировать
// отправку истории, любая его ошибка деградирует до этой строки.
const UnknownAddress = "unknown address"

//go:generate mockgen -source=geocode.go -destination=mocks/mocks.go -package=mocks

// Resolver превращает координаты в человекочитаемый адрес
type Resolver interface {
	ReverseLookup(ctx context.Context, lat, lng float64) string
}

// NominatimResolver - клиент обратного геокодирования для
// Nominatim-совместимого сервиса
type NominatimResolver struct {
	baseURL    string
	userAgent  string
	language   string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewNominatimResolver создает клиент с таймаутом из конфигурации
func NewNominatimResolver(cfg *config.Config, logger *logrus.Logger) *NominatimResolver {
	return &NominatimResolver{
		baseURL:   cfg.GeocodeBaseURL,
		userAgent: cfg.GeocodeUserAgent,
		language:  cfg.GeocodeLanguage,
		httpClient: &http.Client{
			Timeout: cfg.GeocodeTimeout,
		},
		logger: logger,
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

// ReverseLookup запрашивает display_name для точки. Ошибок наружу не
// отдает: сеть, статус или кривой JSON - все сводится к UnknownAddress.
func (r *NominatimResolver) ReverseLookup(ctx context.Context, lat, lng float64) string {
	log := r.logger.WithFields(logrus.Fields{"component": "geocode", "lat": lat, "lng": lng})

	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lng))
	q.Set("zoom", "18")
	q.Set("addressdetails", "1")

	reqURL := fmt.Sprintf("%s/reverse?%s", r.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		log.WithError(err).Warn("Failed to build reverse geocoding request")
		return UnknownAddress
	}

	// Nominatim требует идентифицирующий User-Agent
	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set("Accept-Language", r.language)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("Reverse geocoding request failed")
		return UnknownAddress
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithField("status", resp.StatusCode).Warn("Reverse geocoding returned non-OK status")
		return UnknownAddress
	}

	var parsed reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.WithError(err).Warn("Failed to decode reverse geocoding response")
		return UnknownAddress
	}
	if parsed.DisplayName == "" {
		return UnknownAddress
	}
	return parsed.DisplayName
}
