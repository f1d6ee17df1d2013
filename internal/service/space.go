package service

import (
	"context"
	"fmt"

	"github.com/sinodiaspora/story-map-api/internal/models"
	"github.com/sinodiaspora/story-map-api/internal/tagfilter"
	"github.com/sirupsen/logrus"
)

// CreateSpace регистрирует пространство поддержки. Адрес при наличии
// координат дозаполняется геокодером, если форма его не прислала.
func (s *Service) CreateSpace(ctx context.Context, space *models.Space) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "space",
		"method":  "CreateSpace",
		"name":    space.Name,
	})

	space.Status = models.SpaceStatusActive
	if space.Address == "" && space.HasLocation() {
		space.Address = s.geocoder.ReverseLookup(ctx, *space.Lat, *space.Lng)
	}

	if err := s.spaces.Create(ctx, space); err != nil {
		log.WithError(err).Error("Failed to create space in repository")
		return fmt.Errorf("service: could not create space: %w", err)
	}
	log.WithField("space_id", space.ID).Info("Space created")
	return nil
}

// ListSpaces отдает активные пространства, отфильтрованные по региону и
// тегам. Пустые фильтры пропускают все; порядок хранилища (новые сверху)
// сохраняется.
func (s *Service) ListSpaces(ctx context.Context, regionToken string, tags []string) ([]*models.Space, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "space",
		"method":  "ListSpaces",
		"region":  regionToken,
	})

	spaces, err := s.spaces.ListActive(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list spaces from repository")
		return nil, fmt.Errorf("service: could not list spaces: %w", err)
	}

	return tagfilter.Filter(spaces, regionToken, tags), nil
}
