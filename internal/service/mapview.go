package service

import (
	"context"
	"fmt"

	"github.com/sinodiaspora/story-map-api/internal/models"
	"github.com/sinodiaspora/story-map-api/internal/region"
	"github.com/sirupsen/logrus"
)

// Markers - лента маркеров карты: истории и активные пространства с
// координатами
type Markers struct {
	Stories []*models.Submission `json:"stories"`
	Spaces  []*models.Space      `json:"spaces"`
}

// MapMarkers собирает по одному маркеру на каждую размеченную историю и
// каждое активное размеченное пространство
func (s *Service) MapMarkers(ctx context.Context) (*Markers, error) {
	log := s.logger.WithFields(logrus.Fields{"service": "mapview", "method": "MapMarkers"})

	subs, err := s.submissions.ListAll(ctx)
	if err != nil {
		// Сломанный список деградирует до пустого, вид остается живым
		log.WithError(err).Error("Failed to list submissions for markers")
		subs = nil
	}
	spaces, err := s.spaces.ListActive(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list spaces for markers")
		spaces = nil
	}

	m := &Markers{
		Stories: make([]*models.Submission, 0, len(subs)),
		Spaces:  make([]*models.Space, 0, len(spaces)),
	}
	for _, sub := range subs {
		if sub.HasLocation() {
			m.Stories = append(m.Stories, sub)
		}
	}
	for _, sp := range spaces {
		if sp.HasLocation() {
			m.Spaces = append(m.Spaces, sp)
		}
	}
	return m, nil
}

// SearchResult - найденная история плюс вьюпорт для фокусировки карты
type SearchResult struct {
	Story    *models.Submission `json:"story"`
	Viewport region.Viewport    `json:"viewport"`
}

// Зум вьюпорта при фокусировке на конкретной истории
const storyFocusZoom = 13

// SearchByID ищет историю по точному строковому совпадению
// идентификатора. Линейный скан: коллекции небольшие, индекс не нужен.
func (s *Service) SearchByID(ctx context.Context, query string) (*SearchResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "mapview",
		"method":  "SearchByID",
		"query":   query,
	})

	subs, err := s.submissions.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list submissions for search")
		return nil, fmt.Errorf("service: could not search submissions: %w", err)
	}

	for _, sub := range subs {
		if sub.ID.String() != query {
			continue
		}
		if !sub.HasLocation() {
			return &SearchResult{Story: sub, Viewport: region.FocusAll}, nil
		}
		return &SearchResult{
			Story:    sub,
			Viewport: region.Viewport{Lat: *sub.Lat, Lng: *sub.Lng, Zoom: storyFocusZoom},
		}, nil
	}

	log.Info("Submission not found by id")
	return nil, ErrNotFound
}

// FocusRegion возвращает вьюпорт для токена селектора региона;
// неизвестный токен - ErrNotFound
func (s *Service) FocusRegion(token string) (region.Viewport, error) {
	vp, ok := region.Focus(token)
	if !ok {
		return region.Viewport{}, ErrNotFound
	}
	return vp, nil
}
