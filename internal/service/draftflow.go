package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sinodiaspora/story-map-api/internal/draft"
	"github.com/sirupsen/logrus"
)

// DraftView - черновик вместе с производными флагами формы. Флаги
// пересчитываются на каждом чтении из текущей оценки, без гистерезиса.
type DraftView struct {
	Token              uuid.UUID    `json:"token"`
	Draft              *draft.Draft `json:"draft"`
	ShowViolencePicker bool         `json:"show_violence_picker"`
	ShowEmergencyAlert bool         `json:"show_emergency_alert"`
	EmergencyNotice    string       `json:"emergency_notice,omitempty"`
	RequiredFields     []string     `json:"required_fields"`
}

func newDraftView(token uuid.UUID, d *draft.Draft) *DraftView {
	view := &DraftView{
		Token:              token,
		Draft:              d,
		ShowViolencePicker: draft.ViolencePickerRequired(d.FeelingScore),
		ShowEmergencyAlert: draft.EmergencyAlertVisible(d.FeelingScore),
		RequiredFields:     draft.RequiredFields(d.FeelingScore),
	}
	if view.ShowEmergencyAlert {
		view.EmergencyNotice = draft.EmergencyNotice
	}
	return view
}

// StartDraft открывает новую сессию черновика
func (s *Service) StartDraft(ctx context.Context) (*DraftView, error) {
	token := uuid.New()
	d := draft.New()
	if err := s.drafts.Save(ctx, token, d); err != nil {
		return nil, fmt.Errorf("service: could not start draft: %w", err)
	}
	s.logger.WithFields(logrus.Fields{"service": "draft", "token": token}).Info("Draft session started")
	return newDraftView(token, d), nil
}

// GetDraft возвращает черновик с производными флагами
func (s *Service) GetDraft(ctx context.Context, token uuid.UUID) (*DraftView, error) {
	d, err := s.drafts.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("service: could not load draft: %w", err)
	}
	if d == nil {
		return nil, ErrNotFound
	}
	return newDraftView(token, d), nil
}

// UpdateDraft применяет мутацию к черновику и сохраняет его обратно.
// Мутация - чистый редьюсер из пакета draft.
func (s *Service) UpdateDraft(ctx context.Context, token uuid.UUID, apply func(*draft.Draft) error) (*DraftView, error) {
	d, err := s.drafts.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("service: could not load draft: %w", err)
	}
	if d == nil {
		return nil, ErrNotFound
	}

	if err := apply(d); err != nil {
		return nil, err
	}

	if err := s.drafts.Save(ctx, token, d); err != nil {
		return nil, fmt.Errorf("service: could not save draft: %w", err)
	}
	return newDraftView(token, d), nil
}

// CancelDraft отменяет сессию: все наработки черновика пропадают
func (s *Service) CancelDraft(ctx context.Context, token uuid.UUID) error {
	if err := s.drafts.Delete(ctx, token); err != nil {
		return fmt.Errorf("service: could not cancel draft: %w", err)
	}
	s.logger.WithFields(logrus.Fields{"service": "draft", "token": token}).Info("Draft session cancelled")
	return nil
}

// SubmitDraft проверяет черновик и отправляет его как историю. Проверка
// идет до любого обращения к базе; при StoreWriteFailure сессия
// сохраняется, чтобы пользователь мог повторить отправку.
func (s *Service) SubmitDraft(ctx context.Context, token uuid.UUID) (*SubmitResult, error) {
	d, err := s.drafts.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("service: could not load draft: %w", err)
	}
	if d == nil {
		return nil, ErrNotFound
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}

	result, err := s.SubmitStory(ctx, d.ToSubmission())
	if err != nil {
		return nil, err
	}

	// Успех: сессия больше не нужна, форма возвращается в idle
	d.MarkSubmitted()
	if err := s.drafts.Delete(ctx, token); err != nil {
		s.logger.WithError(err).WithField("token", token).Warn("Failed to delete submitted draft session")
	}
	return result, nil
}
