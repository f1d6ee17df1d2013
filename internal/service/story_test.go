package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	alertmocks "github.com/sinodiaspora/story-map-api/internal/alert/mocks"
	"github.com/sinodiaspora/story-map-api/internal/config"
	"github.com/sinodiaspora/story-map-api/internal/draft"
	geocodemocks "github.com/sinodiaspora/story-map-api/internal/geocode/mocks"
	"github.com/sinodiaspora/story-map-api/internal/models"
	"github.com/sinodiaspora/story-map-api/internal/region"
	"github.com/sinodiaspora/story-map-api/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	submissions *mocks.MockSubmissionRepository
	spaces      *mocks.MockSpaceRepository
	comments    *mocks.MockCommentRepository
	handoff     *mocks.MockHandoffStore
	drafts      *mocks.MockDraftStore
	geocoder    *geocodemocks.MockResolver
	alerts      *alertmocks.MockPublisher
}

// newTestService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestService(t *testing.T) (*Service, *testMocks) {
	ctrl := gomock.NewController(t)
	m := &testMocks{
		submissions: mocks.NewMockSubmissionRepository(ctrl),
		spaces:      mocks.NewMockSpaceRepository(ctrl),
		comments:    mocks.NewMockCommentRepository(ctrl),
		handoff:     mocks.NewMockHandoffStore(ctrl),
		drafts:      mocks.NewMockDraftStore(ctrl),
		geocoder:    geocodemocks.NewMockResolver(ctrl),
		alerts:      alertmocks.NewMockPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		NearbyRadiusDegrees:    0.5,
		StatsTimeWindowMinutes: 60,
	}

	svc := New(m.submissions, m.spaces, m.comments, m.handoff, m.drafts, m.geocoder, m.alerts, logger, cfg)
	return svc, m
}

func ptr(v float64) *float64 { return &v }

func TestSubmitStory_Success(t *testing.T) {
	// Подготовка
	svc, m := newTestService(t)
	ctx := context.Background()
	sub := &models.Submission{
		Lat:          ptr(48.8566),
		Lng:          ptr(2.3522),
		HereHappened: "咖啡馆",
		Description:  "有人帮了我",
		FeelingScore: 40,
	}

	// Ожидания: вставка -> разрешение адреса -> поиск соседей
	m.submissions.EXPECT().
		Create(ctx, sub).
		DoAndReturn(func(ctx context.Context, s *models.Submission) error {
			s.ID = uuid.New()
			return nil
		}).Times(1)
	m.geocoder.EXPECT().
		ReverseLookup(ctx, 48.8566, 2.3522).
		Return("Paris, France").
		Times(1)
	m.submissions.EXPECT().
		UpdateAddress(ctx, gomock.Any(), "Paris, France").
		Return(nil).
		Times(1)
	m.submissions.EXPECT().
		FindNearby(ctx, 48.8566, 2.3522, 0.5, gomock.Any()).
		Return([]*models.Submission{{ID: uuid.New()}}, nil).
		Times(1)
	// Оценка выше порога: экстренное событие не публикуется
	m.alerts.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := svc.SubmitStory(ctx, sub)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, string(region.Europe), result.Story.Region)
	assert.Equal(t, "Paris, France", result.Story.Address)
	assert.Len(t, result.Nearby, 1)
	assert.Empty(t, result.EmergencyNotice)
	assert.Equal(t, SuccessNoticeTTLSeconds, result.NoticeTTLSeconds)
}

func TestSubmitStory_MissingLocation(t *testing.T) {
	// Подготовка: ни одного вызова репозитория не ожидается
	svc, _ := newTestService(t)
	ctx := context.Background()
	sub := &models.Submission{
		HereHappened: "地铁站",
		FeelingScore: -30,
	}

	// Действие
	result, err := svc.SubmitStory(ctx, sub)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, draft.ErrMissingLocation)
	assert.Nil(t, result)
}

func TestSubmitStory_EmergencyAlert(t *testing.T) {
	// Подготовка
	svc, m := newTestService(t)
	ctx := context.Background()
	sub := &models.Submission{
		Lat:          ptr(51.5074),
		Lng:          ptr(-0.1278),
		FeelingScore: -95,
		ViolenceType: []string{"sexual_harassment"},
	}

	// Ожидания
	m.submissions.EXPECT().
		Create(ctx, sub).
		DoAndReturn(func(ctx context.Context, s *models.Submission) error {
			s.ID = uuid.New()
			return nil
		}).Times(1)
	m.geocoder.EXPECT().ReverseLookup(ctx, 51.5074, -0.1278).Return("London, UK").Times(1)
	m.submissions.EXPECT().UpdateAddress(ctx, gomock.Any(), "London, UK").Return(nil).Times(1)
	m.submissions.EXPECT().
		FindNearby(ctx, 51.5074, -0.1278, 0.5, gomock.Any()).
		Return([]*models.Submission{}, nil).
		Times(1)
	m.alerts.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	result, err := svc.SubmitStory(ctx, sub)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, draft.EmergencyNotice, result.EmergencyNotice)
}

func TestSubmitStory_NearbyFailureDegrades(t *testing.T) {
	// Подготовка: сбой поиска соседей не роняет отправку
	svc, m := newTestService(t)
	ctx := context.Background()
	sub := &models.Submission{
		Lat:          ptr(40.4168),
		Lng:          ptr(-3.7038),
		FeelingScore: 10,
	}

	// Ожидания
	m.submissions.EXPECT().
		Create(ctx, sub).
		DoAndReturn(func(ctx context.Context, s *models.Submission) error {
			s.ID = uuid.New()
			return nil
		}).Times(1)
	m.geocoder.EXPECT().ReverseLookup(ctx, 40.4168, -3.7038).Return("Madrid, Spain").Times(1)
	m.submissions.EXPECT().UpdateAddress(ctx, gomock.Any(), "Madrid, Spain").Return(nil).Times(1)
	m.submissions.EXPECT().
		FindNearby(ctx, 40.4168, -3.7038, 0.5, gomock.Any()).
		Return(nil, fmt.Errorf("query timeout")).
		Times(1)

	// Действие
	result, err := svc.SubmitStory(ctx, sub)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, result.Nearby)
}

func TestGetStory_Success_FromCache(t *testing.T) {
	// Подготовка
	svc, m := newTestService(t)
	ctx := context.Background()
	id := uuid.New()
	expected := &models.Submission{ID: id, Description: "история из кеша"}

	// Ожидания
	m.submissions.EXPECT().GetFromCache(ctx, id).Return(expected, nil).Times(1)

	// Действие
	sub, err := svc.GetStory(ctx, id)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, sub)
}

func TestGetStory_Success_FromDB(t *testing.T) {
	// Подготовка
	svc, m := newTestService(t)
	ctx := context.Background()
	id := uuid.New()
	expected := &models.Submission{ID: id, Description: "история из БД"}

	// Ожидания
	m.submissions.EXPECT().GetFromCache(ctx, id).Return(nil, nil).Times(1)
	m.submissions.EXPECT().GetByID(ctx, id).Return(expected, nil).Times(1)
	m.submissions.EXPECT().SetCache(ctx, expected).Return(nil).Times(1)

	// Действие
	sub, err := svc.GetStory(ctx, id)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, sub)
}

func TestGetStory_NotFound(t *testing.T) {
	// Подготовка
	svc, m := newTestService(t)
	ctx := context.Background()
	id := uuid.New()

	// Ожидания
	m.submissions.EXPECT().GetFromCache(ctx, id).Return(nil, nil).Times(1)
	m.submissions.EXPECT().GetByID(ctx, id).Return(nil, fmt.Errorf("submission with id %s not found: %w", id, pgx.ErrNoRows)).Times(1)

	// Действие
	sub, err := svc.GetStory(ctx, id)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, sub)
}

func TestGetStory_StoreReadFailure(t *testing.T) {
	// Подготовка
	svc, m := newTestService(t)
	ctx := context.Background()
	id := uuid.New()

	// Ожидания: отказ базы - это не отсутствие записи
	m.submissions.EXPECT().GetFromCache(ctx, id).Return(nil, nil).Times(1)
	m.submissions.EXPECT().GetByID(ctx, id).Return(nil, assert.AnError).Times(1)

	// Действие
	sub, err := svc.GetStory(ctx, id)

	// Проверки
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, sub)
}

func TestClaimHandoff_Burns(t *testing.T) {
	// Подготовка
	svc, m := newTestService(t)
	ctx := context.Background()
	id := uuid.New()
	stashed := &models.Submission{ID: id}

	// Ожидания: первое чтение отдает запись, второе - уже нет
	gomock.InOrder(
		m.handoff.EXPECT().Claim(ctx, id).Return(stashed, nil),
		m.handoff.EXPECT().Claim(ctx, id).Return(nil, nil),
	)

	// Действие и проверки
	sub, err := svc.ClaimHandoff(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, stashed, sub)

	sub, err = svc.ClaimHandoff(ctx, id)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, sub)
}

func TestGetStats_Success(t *testing.T) {
	// Подготовка
	svc, m := newTestService(t)
	ctx := context.Background()

	// Ожидания
	m.submissions.EXPECT().CountSince(ctx, gomock.Any()).Return(12, nil).Times(1)
	m.spaces.EXPECT().CountSince(ctx, gomock.Any()).Return(3, nil).Times(1)
	m.comments.EXPECT().CountSince(ctx, gomock.Any()).Return(7, nil).Times(1)

	// Действие
	stats, err := svc.GetStats(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, &Stats{Stories: 12, Spaces: 3, Comments: 7}, stats)
}
