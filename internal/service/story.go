package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sinodiaspora/story-map-api/internal/alert"
	"github.com/sinodiaspora/story-map-api/internal/draft"
	"github.com/sinodiaspora/story-map-api/internal/models"
	"github.com/sinodiaspora/story-map-api/internal/receipt"
	"github.com/sinodiaspora/story-map-api/internal/region"
	"github.com/sirupsen/logrus"
)

// Сколько секунд клиенту держать баннер успешной отправки
const SuccessNoticeTTLSeconds = 5

// Лимит историй для страницы архива
const archiveLimit = 20

// SubmitResult - итог отправки истории: сама запись, соседние истории и
// экстренное уведомление (только в ответе, не в базе)
type SubmitResult struct {
	Story            *models.Submission   `json:"story"`
	Nearby           []*models.Submission `json:"nearby"`
	EmergencyNotice  string               `json:"emergency_notice,omitempty"`
	NoticeTTLSeconds int                  `json:"notice_ttl_seconds"`
}

// SubmitStory проводит полную последовательность отправки. Порядок
// фиксированный для каждой отправки: вставка -> разрешение адреса ->
// поиск соседей -> ответ.
func (s *Service) SubmitStory(ctx context.Context, sub *models.Submission) (*SubmitResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "story",
		"method":  "SubmitStory",
	})

	// Предусловие: без координат запись в хранилище не идет вовсе
	if !sub.HasLocation() {
		log.Warn("Submission rejected: missing location")
		return nil, draft.ErrMissingLocation
	}

	sub.Region = string(region.FromCoordinates(*sub.Lat, *sub.Lng))

	if err := s.submissions.Create(ctx, sub); err != nil {
		log.WithError(err).Error("Failed to create submission in repository")
		return nil, fmt.Errorf("service: could not create submission: %w", err)
	}
	log = log.WithField("submission_id", sub.ID)
	log.Info("Submission created")

	// Адрес разрешается после вставки; сбой геокодера деградирует до
	// сентинела и отправку не блокирует
	sub.Address = s.geocoder.ReverseLookup(ctx, *sub.Lat, *sub.Lng)
	if err := s.submissions.UpdateAddress(ctx, sub.ID, sub.Address); err != nil {
		log.WithError(err).Warn("Failed to persist resolved address")
	}

	nearby, err := s.submissions.FindNearby(ctx, *sub.Lat, *sub.Lng, s.cfg.NearbyRadiusDegrees, sub.ID)
	if err != nil {
		// Соседние истории - украшение ответа, их потеря не должна
		// ронять отправку
		log.WithError(err).Warn("Nearby lookup failed")
		nearby = []*models.Submission{}
	}

	result := &SubmitResult{
		Story:            sub,
		Nearby:           nearby,
		NoticeTTLSeconds: SuccessNoticeTTLSeconds,
	}

	if draft.EmergencyAlertVisible(sub.FeelingScore) {
		result.EmergencyNotice = draft.EmergencyNotice
		event := alert.Event{
			SubmissionID: sub.ID,
			Region:       sub.Region,
			FeelingScore: sub.FeelingScore,
			Lat:          sub.Lat,
			Lng:          sub.Lng,
			Timestamp:    time.Now().UTC(),
		}
		if err := s.alerts.Publish(ctx, event); err != nil {
			log.WithError(err).Error("Failed to publish emergency alert")
		}
	}

	log.WithField("nearby", len(nearby)).Info("Submission completed")
	return result, nil
}

// GetStory получает историю по ID через кеш
func (s *Service) GetStory(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "story",
		"method":        "GetStory",
		"submission_id": id,
	})

	cached, err := s.submissions.GetFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Cache lookup failed")
	}
	if cached != nil {
		return cached, nil
	}

	sub, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		// Отсутствие строки и отказ хранилища - разные исходы: первый
		// для клиента, второй для оператора
		if errors.Is(err, pgx.ErrNoRows) {
			log.WithError(err).Warn("Submission not found in repository")
			return nil, ErrNotFound
		}
		log.WithError(err).Error("Failed to get submission from repository")
		return nil, fmt.Errorf("service: could not get submission: %w", err)
	}

	if err := s.submissions.SetCache(ctx, sub); err != nil {
		log.WithError(err).Warn("Failed to cache submission")
	}
	return sub, nil
}

// ListStories возвращает истории с пагинацией, новые сверху
func (s *Service) ListStories(ctx context.Context, page, pageSize int) ([]*models.Submission, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "story",
		"method":    "ListStories",
		"page":      page,
		"page_size": pageSize,
	})

	subs, err := s.submissions.ListRecent(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list submissions from repository")
		return nil, fmt.Errorf("service: could not list submissions: %w", err)
	}
	return subs, nil
}

// ArchiveStories - лента архива: свежие истории, не больше archiveLimit
func (s *Service) ArchiveStories(ctx context.Context) ([]*models.Submission, error) {
	return s.ListStories(ctx, 1, archiveLimit)
}

// NearbyStories ищет истории рядом с указанной (плоское расстояние в
// градусах, сама история исключается)
func (s *Service) NearbyStories(ctx context.Context, id uuid.UUID) ([]*models.Submission, error) {
	sub, err := s.GetStory(ctx, id)
	if err != nil {
		return nil, err
	}
	if !sub.HasLocation() {
		return []*models.Submission{}, nil
	}
	nearby, err := s.submissions.FindNearby(ctx, *sub.Lat, *sub.Lng, s.cfg.NearbyRadiusDegrees, sub.ID)
	if err != nil {
		return nil, fmt.Errorf("service: nearby lookup failed: %w", err)
	}
	return nearby, nil
}

// RenderReceipt строит PNG-квитанцию для опубликованной истории
func (s *Service) RenderReceipt(ctx context.Context, id uuid.UUID) ([]byte, error) {
	sub, err := s.GetStory(ctx, id)
	if err != nil {
		return nil, err
	}
	png, err := receipt.Render(sub)
	if err != nil {
		// Экспорт можно повторить, состояние не трогаем
		s.logger.WithError(err).WithField("submission_id", id).Error("Receipt rasterization failed")
		return nil, fmt.Errorf("service: receipt export failed: %w", err)
	}
	return png, nil
}

// StashHandoff откладывает историю для открытия в другом окне
func (s *Service) StashHandoff(ctx context.Context, id uuid.UUID) error {
	sub, err := s.GetStory(ctx, id)
	if err != nil {
		return err
	}
	if err := s.handoff.Stash(ctx, sub); err != nil {
		return fmt.Errorf("service: could not stash handoff: %w", err)
	}
	return nil
}

// ClaimHandoff забирает отложенную историю; запись одноразовая и
// удаляется при чтении
func (s *Service) ClaimHandoff(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	sub, err := s.handoff.Claim(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not claim handoff: %w", err)
	}
	if sub == nil {
		return nil, ErrNotFound
	}
	return sub, nil
}

// Stats - количество записей за окно статистики
type Stats struct {
	Stories  int `json:"stories"`
	Spaces   int `json:"spaces"`
	Comments int `json:"comments"`
}

// GetStats считает созданные записи за настроенное окно времени
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	since := time.Now().Add(-time.Duration(s.cfg.StatsTimeWindowMinutes) * time.Minute)

	stories, err := s.submissions.CountSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("service: could not count submissions: %w", err)
	}
	spaces, err := s.spaces.CountSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("service: could not count spaces: %w", err)
	}
	comments, err := s.comments.CountSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("service: could not count comments: %w", err)
	}
	return &Stats{Stories: stories, Spaces: spaces, Comments: comments}, nil
}
