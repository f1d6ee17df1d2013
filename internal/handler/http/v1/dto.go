package v1

import (
	"time"

	"github.com/google/uuid"
)

// PlacePinRequest DTO для установки булавки на карте
// @Description DTO для установки булавки на карте
type PlacePinRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// UpdateDraftRequest DTO для частичного обновления черновика.
// Заполненные поля применяются по очереди, nil-поля пропускаются.
// @Description DTO для частичного обновления черновика
type UpdateDraftRequest struct {
	HereHappened    *string   `json:"here_happened,omitempty" validate:"omitempty,max=40"`
	Description     *string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	FeelingScore    *int      `json:"feeling_score,omitempty" validate:"omitempty,gte=-100,lte=100"`
	ViolenceType    *[]string `json:"violence_type,omitempty"`
	ScenarioTags    *[]string `json:"scenario_tags,omitempty"`
	Praise          *string   `json:"praise,omitempty"`
	Criticism       *string   `json:"criticism,omitempty"`
	TogglePraise    bool      `json:"toggle_praise,omitempty"`
	ToggleCriticism bool      `json:"toggle_criticism,omitempty"`
}

// CreateStoryRequest DTO для прямой отправки истории (без сессии черновика)
// @Description DTO для прямой отправки истории
type CreateStoryRequest struct {
	Latitude     *float64        `json:"latitude" validate:"required_with=Longitude,omitempty,latitude"`
	Longitude    *float64        `json:"longitude" validate:"required_with=Latitude,omitempty,longitude"`
	HereHappened string          `json:"here_happened" validate:"omitempty,max=40"`
	Description  string          `json:"description" validate:"omitempty,max=2000"`
	FeelingScore int             `json:"feeling_score" validate:"gte=-100,lte=100"`
	ViolenceType []string        `json:"violence_type,omitempty"`
	Scenario     ScenarioRequest `json:"scenario"`
}

// ScenarioRequest DTO для контекста истории
// @Description DTO для контекста истории
type ScenarioRequest struct {
	Tags          []string `json:"tags,omitempty"`
	Praise        string   `json:"praise,omitempty"`
	Criticism     string   `json:"criticism,omitempty"`
	ShowPraise    bool     `json:"showPraise"`
	ShowCriticism bool     `json:"showCriticism"`
}

// CreateSpaceRequest DTO для регистрации пространства поддержки
// @Description DTO для регистрации пространства поддержки
type CreateSpaceRequest struct {
	Name           string   `json:"name" validate:"required,min=2,max=255"`
	Address        string   `json:"address,omitempty"`
	ContactPhone   string   `json:"contact_phone,omitempty"`
	Email          string   `json:"email,omitempty" validate:"omitempty,email"`
	AdditionalNote string   `json:"additional_note,omitempty"`
	Tags           string   `json:"tags,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty" validate:"required_with=Longitude,omitempty,latitude"`
	Longitude      *float64 `json:"longitude,omitempty" validate:"required_with=Latitude,omitempty,longitude"`
}

// CreateCommentRequest DTO для добавления комментария
// @Description DTO для добавления комментария
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

// SetVisibilityRequest DTO для модерации видимости комментария
// @Description DTO для модерации видимости комментария
type SetVisibilityRequest struct {
	Visible *bool `json:"visible" validate:"required"`
}

// StoryResponse DTO для ответа с историей
// @Description DTO для ответа с историей
type StoryResponse struct {
	ID           uuid.UUID        `json:"id"`
	Latitude     *float64         `json:"latitude"`
	Longitude    *float64         `json:"longitude"`
	HereHappened string           `json:"here_happened"`
	Description  string           `json:"description"`
	FeelingScore int              `json:"feeling_score"`
	ViolenceType []string         `json:"violence_type,omitempty"`
	Scenario     ScenarioResponse `json:"scenario"`
	Region       string           `json:"region"`
	Address      string           `json:"address"`
	CreatedAt    time.Time        `json:"created_at"`
}

// ScenarioResponse DTO для контекста истории
// @Description DTO для контекста истории
type ScenarioResponse struct {
	Tags          []string `json:"tags,omitempty"`
	Praise        string   `json:"praise,omitempty"`
	Criticism     string   `json:"criticism,omitempty"`
	ShowPraise    bool     `json:"showPraise"`
	ShowCriticism bool     `json:"showCriticism"`
}

// SubmitResponse DTO для итога отправки истории
// @Description DTO для итога отправки истории
type SubmitResponse struct {
	Story            *StoryResponse   `json:"story"`
	Nearby           []*StoryResponse `json:"nearby"`
	EmergencyNotice  string           `json:"emergency_notice,omitempty"`
	NoticeTTLSeconds int              `json:"notice_ttl_seconds"`
}

// SpaceResponse DTO для ответа с пространством поддержки
// @Description DTO для ответа с пространством поддержки
type SpaceResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	ContactPhone   string    `json:"contact_phone,omitempty"`
	Email          string    `json:"email,omitempty"`
	AdditionalNote string    `json:"additional_note,omitempty"`
	Tags           string    `json:"tags"`
	Latitude       *float64  `json:"latitude"`
	Longitude      *float64  `json:"longitude"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// CommentResponse DTO для ответа с комментарием
// @Description DTO для ответа с комментарием
type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// MarkersResponse DTO для маркеров карты
// @Description DTO для маркеров карты
type MarkersResponse struct {
	Stories []*StoryResponse `json:"stories"`
	Spaces  []*SpaceResponse `json:"spaces"`
}

// ViewportResponse DTO для вьюпорта карты
// @Description DTO для вьюпорта карты
type ViewportResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom"`
}

// SearchResponse DTO для результата поиска истории
// @Description DTO для результата поиска истории
type SearchResponse struct {
	Story    *StoryResponse   `json:"story"`
	Viewport ViewportResponse `json:"viewport"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	Stories  int `json:"stories"`
	Spaces   int `json:"spaces"`
	Comments int `json:"comments"`
}
