package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sinodiaspora/story-map-api/internal/models"
	"github.com/sirupsen/logrus"
)

// AddComment добавляет видимый комментарий к существующей истории
func (s *Service) AddComment(ctx context.Context, submissionID uuid.UUID, text string) (*models.Comment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "comment",
		"method":        "AddComment",
		"submission_id": submissionID,
	})

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("service: comment text must not be empty")
	}

	// Комментарий осмыслен только против существующей истории
	if _, err := s.GetStory(ctx, submissionID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		SubmissionID: submissionID,
		Text:         text,
		Visible:      true,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		log.WithError(err).Error("Failed to create comment in repository")
		return nil, fmt.Errorf("service: could not create comment: %w", err)
	}
	return comment, nil
}

// ListComments возвращает видимые комментарии истории, новые сверху
func (s *Service) ListComments(ctx context.Context, submissionID uuid.UUID) ([]*models.Comment, error) {
	comments, err := s.comments.ListVisible(ctx, submissionID)
	if err != nil {
		s.logger.WithError(err).WithField("submission_id", submissionID).Error("Failed to list comments")
		return nil, fmt.Errorf("service: could not list comments: %w", err)
	}
	return comments, nil
}

// SetCommentVisibility - модерация: скрыть или вернуть комментарий
func (s *Service) SetCommentVisibility(ctx context.Context, id uuid.UUID, visible bool) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "comment",
		"method":     "SetCommentVisibility",
		"comment_id": id,
		"visible":    visible,
	})

	if err := s.comments.SetVisibility(ctx, id, visible); err != nil {
		log.WithError(err).Error("Failed to update comment visibility")
		return fmt.Errorf("service: could not update comment visibility: %w", err)
	}
	log.Info("Comment visibility updated")
	return nil
}
