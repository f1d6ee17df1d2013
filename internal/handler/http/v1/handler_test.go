package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	alertmocks "github.com/sinodiaspora/story-map-api/internal/alert/mocks"
	"github.com/sinodiaspora/story-map-api/internal/archive"
	"github.com/sinodiaspora/story-map-api/internal/config"
	"github.com/sinodiaspora/story-map-api/internal/draft"
	geocodemocks "github.com/sinodiaspora/story-map-api/internal/geocode/mocks"
	"github.com/sinodiaspora/story-map-api/internal/models"
	"github.com/sinodiaspora/story-map-api/internal/service"
	"github.com/sinodiaspora/story-map-api/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerMocks struct {
	submissions *mocks.MockSubmissionRepository
	spaces      *mocks.MockSpaceRepository
	comments    *mocks.MockCommentRepository
	handoff     *mocks.MockHandoffStore
	drafts      *mocks.MockDraftStore
	geocoder    *geocodemocks.MockResolver
	alerts      *alertmocks.MockPublisher
}

// newTestHandler собирает хэндлер поверх настоящего сервиса с
// мокированными репозиториями
func newTestHandler(t *testing.T) (*handlerMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &handlerMocks{
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
		APIKeys:                []string{"test-api-key"},
		NearbyRadiusDegrees:    0.5,
		StatsTimeWindowMinutes: 60,
	}

	svc := service.New(m.submissions, m.spaces, m.comments, m.handoff, m.drafts, m.geocoder, m.alerts, logger, cfg)
	library := archive.NewLibrary(t.TempDir(), logger)
	handler := NewHandler(svc, library, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestStartDraft(t *testing.T) {
	m, router := newTestHandler(t)

	m.drafts.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/drafts", nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp service.DraftView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEqual(t, uuid.Nil, resp.Token)
	assert.Equal(t, draft.StageIdle, resp.Draft.Stage)
}

func TestGetDraft_InvalidToken(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/drafts/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid draft token")
}

func TestPlacePin_Success(t *testing.T) {
	m, router := newTestHandler(t)
	token := uuid.New()
	d := draft.New()

	lat, lng := 48.8566, 2.3522
	m.drafts.EXPECT().Get(gomock.Any(), token).Return(d, nil).Times(1)
	m.drafts.EXPECT().Save(gomock.Any(), token, gomock.Any()).Return(nil).Times(1)

	body, _ := json.Marshal(PlacePinRequest{Latitude: &lat, Longitude: &lng})
	w := makeRequest(router, "POST", "/api/v1/drafts/"+token.String()+"/pin", bytes.NewBuffer(body))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp service.DraftView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, draft.StagePinPlaced, resp.Draft.Stage)
}

func TestPlacePin_ZeroCoordinateIsValid(t *testing.T) {
	m, router := newTestHandler(t)
	token := uuid.New()
	d := draft.New()

	// Экватор - настоящая координата, нулевое значение не значит
	// "поле не заполнено"
	lat, lng := 0.0, 6.73
	m.drafts.EXPECT().Get(gomock.Any(), token).Return(d, nil).Times(1)
	m.drafts.EXPECT().Save(gomock.Any(), token, gomock.Any()).Return(nil).Times(1)

	body, _ := json.Marshal(PlacePinRequest{Latitude: &lat, Longitude: &lng})
	w := makeRequest(router, "POST", "/api/v1/drafts/"+token.String()+"/pin", bytes.NewBuffer(body))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp service.DraftView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, draft.StagePinPlaced, resp.Draft.Stage)
	require.NotNil(t, resp.Draft.Lat)
	assert.Equal(t, 0.0, *resp.Draft.Lat)
}

func TestPlacePin_MissingCoordinate(t *testing.T) {
	_, router := newTestHandler(t)
	token := uuid.New()
	lat := 48.8566

	body, _ := json.Marshal(PlacePinRequest{Latitude: &lat})
	w := makeRequest(router, "POST", "/api/v1/drafts/"+token.String()+"/pin", bytes.NewBuffer(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Longitude' failed on the 'required' tag")
}

func TestSubmitDraft_MissingLocation(t *testing.T) {
	m, router := newTestHandler(t)
	token := uuid.New()

	// Черновик без координат: к хранилищу историй обращений нет,
	// сессия не удаляется
	m.drafts.EXPECT().Get(gomock.Any(), token).Return(draft.New(), nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/drafts/"+token.String()+"/submit", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "missing location")
}

func TestSubmitDraft_Success(t *testing.T) {
	m, router := newTestHandler(t)
	token := uuid.New()
	d := draft.New()
	require.NoError(t, d.PlacePin(48.8566, 2.3522))
	require.NoError(t, d.SetStory("咖啡馆", "有人帮了我"))
	require.NoError(t, d.SetScore(40))

	m.drafts.EXPECT().Get(gomock.Any(), token).Return(d, nil).Times(1)
	m.submissions.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.Submission) error {
			s.ID = uuid.New()
			return nil
		}).Times(1)
	m.geocoder.EXPECT().ReverseLookup(gomock.Any(), 48.8566, 2.3522).Return("Paris, France").Times(1)
	m.submissions.EXPECT().UpdateAddress(gomock.Any(), gomock.Any(), "Paris, France").Return(nil).Times(1)
	m.submissions.EXPECT().
		FindNearby(gomock.Any(), 48.8566, 2.3522, 0.5, gomock.Any()).
		Return([]*models.Submission{}, nil).
		Times(1)
	m.drafts.EXPECT().Delete(gomock.Any(), token).Return(nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/drafts/"+token.String()+"/submit", nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Europe", resp.Story.Region)
	assert.Equal(t, service.SuccessNoticeTTLSeconds, resp.NoticeTTLSeconds)
}

func TestCreateStory_MissingLocation(t *testing.T) {
	_, router := newTestHandler(t)

	// Без координат к хранилищу историй обращений нет
	body, _ := json.Marshal(CreateStoryRequest{Description: "有人帮了我", FeelingScore: 40})
	w := makeRequest(router, "POST", "/api/v1/stories", bytes.NewBuffer(body))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "missing location")
}

func TestCreateStory_Success(t *testing.T) {
	m, router := newTestHandler(t)
	lat, lng := 48.8566, 2.3522

	m.submissions.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.Submission) error {
			// Оценка выше порога: типы насилия отброшены на входе
			assert.Empty(t, s.ViolenceType)
			s.ID = uuid.New()
			return nil
		}).Times(1)
	m.geocoder.EXPECT().ReverseLookup(gomock.Any(), lat, lng).Return("Paris, France").Times(1)
	m.submissions.EXPECT().UpdateAddress(gomock.Any(), gomock.Any(), "Paris, France").Return(nil).Times(1)
	m.submissions.EXPECT().
		FindNearby(gomock.Any(), lat, lng, 0.5, gomock.Any()).
		Return([]*models.Submission{}, nil).
		Times(1)

	body, _ := json.Marshal(CreateStoryRequest{
		Latitude:     &lat,
		Longitude:    &lng,
		HereHappened: "咖啡馆",
		Description:  "有人帮了我",
		FeelingScore: 40,
		ViolenceType: []string{"verbal"},
	})
	w := makeRequest(router, "POST", "/api/v1/stories", bytes.NewBuffer(body))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Europe", resp.Story.Region)
	assert.Empty(t, resp.EmergencyNotice)
}

func TestGetStory_InvalidID(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/stories/9999", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid story ID")
}

func TestGetStory_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()

	m.submissions.EXPECT().GetFromCache(gomock.Any(), id).Return(nil, nil).Times(1)
	m.submissions.EXPECT().GetByID(gomock.Any(), id).Return(nil, fmt.Errorf("submission with id %s not found: %w", id, pgx.ErrNoRows)).Times(1)

	w := makeRequest(router, "GET", "/api/v1/stories/"+id.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "record not found")
}

func TestGetStory_StoreReadFailure(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()

	// Отказ базы не выдается за отсутствие записи
	m.submissions.EXPECT().GetFromCache(gomock.Any(), id).Return(nil, nil).Times(1)
	m.submissions.EXPECT().GetByID(gomock.Any(), id).Return(nil, assert.AnError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/stories/"+id.String(), nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestSearchStories_NotFound(t *testing.T) {
	m, router := newTestHandler(t)

	m.submissions.EXPECT().ListAll(gomock.Any()).Return([]*models.Submission{}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/stories/search?q=9999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListSpaces_WithFilters(t *testing.T) {
	m, router := newTestHandler(t)
	lat, lng := 40.4168, -3.7038
	matching := &models.Space{
		ID:      uuid.New(),
		Name:    "Madrid Women Center",
		Address: "Calle Mayor, Madrid, Spain",
		Tags:    "women_support,shelter",
		Lat:     &lat,
		Lng:     &lng,
		Status:  models.SpaceStatusActive,
	}
	other := &models.Space{
		ID:      uuid.New(),
		Name:    "Paris Legal Aid",
		Address: "Rue de Rivoli, Paris, France",
		Tags:    "legal_aid",
		Status:  models.SpaceStatusActive,
	}

	m.spaces.EXPECT().ListActive(gomock.Any()).Return([]*models.Space{matching, other}, nil).Times(1)

	// Метка 女性援助 канонизируется в women_support
	w := makeRequest(router, "GET", "/api/v1/spaces?region=madrid&tags=%E5%A5%B3%E6%80%A7%E6%8F%B4%E5%8A%A9", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []*SpaceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, matching.ID, resp[0].ID)
}

func TestCreateSpace_ValidationError(t *testing.T) {
	_, router := newTestHandler(t)

	// Отсутствует Name
	body, _ := json.Marshal(CreateSpaceRequest{Address: "Madrid"})
	w := makeRequest(router, "POST", "/api/v1/spaces", bytes.NewBuffer(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Name' failed on the 'required' tag")
}

func TestCreateSpace_UnpairedCoordinates(t *testing.T) {
	_, router := newTestHandler(t)
	lat := 40.4168

	// Одинокая широта отбивается валидацией, а не ограничением базы
	body, _ := json.Marshal(CreateSpaceRequest{Name: "Madrid Women Center", Latitude: &lat})
	w := makeRequest(router, "POST", "/api/v1/spaces", bytes.NewBuffer(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Longitude' failed on the 'required_with' tag")
}

func TestMapFocus(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/map/focus?region=paris", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp ViewportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 48.8566, resp.Latitude)
	assert.Equal(t, 12, resp.Zoom)

	w = makeRequest(router, "GET", "/api/v1/map/focus?region=atlantis", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClaimHandoff_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()

	m.handoff.EXPECT().Claim(gomock.Any(), id).Return(nil, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/handoff/"+id.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetStats_RequiresAPIKey(t *testing.T) {
	m, router := newTestHandler(t)

	// Без ключа
	w := makeRequest(router, "GET", "/api/v1/stats", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// С ключом
	m.submissions.EXPECT().CountSince(gomock.Any(), gomock.Any()).Return(5, nil).Times(1)
	m.spaces.EXPECT().CountSince(gomock.Any(), gomock.Any()).Return(2, nil).Times(1)
	m.comments.EXPECT().CountSince(gomock.Any(), gomock.Any()).Return(9, nil).Times(1)

	w = makeRequest(router, "GET", "/api/v1/stats", nil, map[string]string{"X-API-Key": "test-api-key"})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, StatsResponse{Stories: 5, Spaces: 2, Comments: 9}, resp)
}

func TestSetCommentVisibility_RequiresAPIKey(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()
	visible := false
	body, _ := json.Marshal(SetVisibilityRequest{Visible: &visible})

	// Без ключа сервис не вызывается
	w := makeRequest(router, "PATCH", "/api/v1/comments/"+id.String()+"/visibility", bytes.NewBuffer(body))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// С ключом
	m.comments.EXPECT().SetVisibility(gomock.Any(), id, false).Return(nil).Times(1)
	body, _ = json.Marshal(SetVisibilityRequest{Visible: &visible})
	w = makeRequest(router, "PATCH", "/api/v1/comments/"+id.String()+"/visibility", bytes.NewBuffer(body), map[string]string{"X-API-Key": "test-api-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
