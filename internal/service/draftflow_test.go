package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sinodiaspora/story-map-api/internal/draft"
	"github.com/sinodiaspora/story-map-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStartDraft(t *testing.T) {
	// Подготовка
	svc, m := newTestService(t)
	ctx := context.Background()

	// Ожидания
	m.drafts.EXPECT().
		Save(ctx, gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	view, err := svc.StartDraft(ctx)

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, view.Token)
	assert.Equal(t, draft.StageIdle, view.Draft.Stage)
	assert.False(t, view.ShowViolencePicker)
	assert.False(t, view.ShowEmergencyAlert)
}

func TestUpdateDraft_ScoreRecomputesFlags(t *testing.T) {
	// Подготовка
	svc, m := newTestService(t)
	ctx := context.Background()
	token := uuid.New()
	d := draft.New()
	require.NoError(t, d.PlacePin(48.85, 2.35))

	// Ожидания
	m.drafts.EXPECT().Get(ctx, token).Return(d, nil).Times(1)
	m.drafts.EXPECT().Save(ctx, token, d).Return(nil).Times(1)

	// Действие: оценка -95 включает оба флага
	view, err := svc.UpdateDraft(ctx, token, func(d *draft.Draft) error {
		return d.SetScore(-95)
	})

	// Проверки
	require.NoError(t, err)
	assert.True(t, view.ShowViolencePicker)
	assert.True(t, view.ShowEmergencyAlert)
	assert.Equal(t, draft.EmergencyNotice, view.EmergencyNotice)
	assert.Contains(t, view.RequiredFields, "violence_type")
}

func TestUpdateDraft_NotFound(t *testing.T) {
	// Подготовка
	svc, m := newTestService(t)
	ctx := context.Background()
	token := uuid.New()

	// Ожидания: сессии нет, Save не вызывается
	m.drafts.EXPECT().Get(ctx, token).Return(nil, nil).Times(1)

	// Действие
	view, err := svc.UpdateDraft(ctx, token, func(d *draft.Draft) error { return nil })

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, view)
}

func TestUpdateDraft_ReducerFailureSkipsSave(t *testing.T) {
	// Подготовка
	svc, m := newTestService(t)
	ctx := context.Background()
	token := uuid.New()
	d := draft.New()
	require.NoError(t, d.PlacePin(48.85, 2.35))

	// Ожидания: отказ редьюсера не должен сохранять черновик
	m.drafts.EXPECT().Get(ctx, token).Return(d, nil).Times(1)

	// Действие
	view, err := svc.UpdateDraft(ctx, token, func(d *draft.Draft) error {
		return d.SetScore(-200)
	})

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, draft.ErrScoreRange)
	assert.Nil(t, view)
}

func TestSubmitDraft_MissingLocation(t *testing.T) {
	// Подготовка: черновик без координат, к хранилищу историй обращений нет
	svc, m := newTestService(t)
	ctx := context.Background()
	token := uuid.New()
	d := draft.New()

	// Ожидания: сессия остается на месте для повтора
	m.drafts.EXPECT().Get(ctx, token).Return(d, nil).Times(1)

	// Действие
	result, err := svc.SubmitDraft(ctx, token)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, draft.ErrMissingLocation)
	assert.Nil(t, result)
}

func TestSubmitDraft_Success(t *testing.T) {
	// Подготовка
	svc, m := newTestService(t)
	ctx := context.Background()
	token := uuid.New()
	d := draft.New()
	require.NoError(t, d.PlacePin(48.8566, 2.3522))
	require.NoError(t, d.SetStory("咖啡馆", "有人帮了我"))
	require.NoError(t, d.SetScore(40))

	// Ожидания: после успешной отправки сессия удаляется
	m.drafts.EXPECT().Get(ctx, token).Return(d, nil).Times(1)
	m.submissions.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, s *models.Submission) error {
			s.ID = uuid.New()
			return nil
		}).Times(1)
	m.geocoder.EXPECT().ReverseLookup(ctx, 48.8566, 2.3522).Return("Paris, France").Times(1)
	m.submissions.EXPECT().UpdateAddress(ctx, gomock.Any(), "Paris, France").Return(nil).Times(1)
	m.submissions.EXPECT().
		FindNearby(ctx, 48.8566, 2.3522, 0.5, gomock.Any()).
		Return([]*models.Submission{}, nil).
		Times(1)
	m.drafts.EXPECT().Delete(ctx, token).Return(nil).Times(1)

	// Действие
	result, err := svc.SubmitDraft(ctx, token)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "咖啡馆", result.Story.HereHappened)
	assert.Equal(t, draft.StageSubmitted, d.Stage)
}

func TestSubmitDraft_StoreFailureKeepsSession(t *testing.T) {
	// Подготовка
	svc, m := newTestService(t)
	ctx := context.Background()
	token := uuid.New()
	d := draft.New()
	require.NoError(t, d.PlacePin(48.85, 2.35))

	// Ожидания: вставка падает, Delete не вызывается
	m.drafts.EXPECT().Get(ctx, token).Return(d, nil).Times(1)
	m.submissions.EXPECT().Create(ctx, gomock.Any()).Return(assert.AnError).Times(1)

	// Действие
	result, err := svc.SubmitDraft(ctx, token)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, result)
	assert.NotEqual(t, draft.StageSubmitted, d.Stage)
}
