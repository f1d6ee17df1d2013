package draft

import (
	"errors"

	"github.com/sinodiaspora/story-map-api/internal/models"
)

// Stage - этап жизненного цикла черновика истории
type Stage string

const (
	StageIdle      Stage = "idle"
	StagePinPlaced Stage = "pin_placed"
	StageEditing   Stage = "editing"
	StageSubmitted Stage = "submitted"
)

// Пороги оценки, за которыми форма требует дополнительные поля.
// Это бизнес-правила, а не оформление: проверяются на каждом изменении
// оценки, чисто как функция текущего значения.
const (
	ViolencePickerThreshold = -50
	EmergencyAlertThreshold = -90
)

// EmergencyNotice - фиксированное сообщение с контактами экстренной
// помощи. Показывается пользователю, в базу не пишется.
const EmergencyNotice = "如果你现在处于危险中，请立即拨打当地紧急电话 112。你并不孤单。"

var (
	ErrMissingLocation = errors.New("missing location: both lat and lng must be set")
	ErrScoreRange      = errors.New("feeling_score must be in [-100, 100]")
	ErrWrongStage      = errors.New("operation not allowed in current draft stage")
)

// Draft - черновик истории. Меняется только через функции-редьюсеры ниже,
// каждая из которых сохраняет инварианты этапов.
type Draft struct {
	Stage        Stage           `json:"stage"`
	Lat          *float64        `json:"lat"`
	Lng          *float64        `json:"lng"`
	HereHappened string          `json:"here_happened"`
	Description  string          `json:"description"`
	FeelingScore int             `json:"feeling_score"`
	ViolenceType []string        `json:"violence_type,omitempty"`
	Scenario     models.Scenario `json:"scenario"`
}

// New возвращает пустой черновик в этапе idle
func New() *Draft {
	return &Draft{Stage: StageIdle}
}

// ViolencePickerRequired - виден ли (и обязателен ли) выбор типа насилия
func ViolencePickerRequired(score int) bool {
	return score <= ViolencePickerThreshold
}

// EmergencyAlertVisible - показывать ли блок экстренных контактов
func EmergencyAlertVisible(score int) bool {
	return score <= EmergencyAlertThreshold
}

// RequiredFields возвращает набор обязательных полей для текущей оценки.
// Чистая функция, никак не связанная с отрисовкой.
func RequiredFields(score int) []string {
	fields := []string{"lat", "lng", "here_happened", "description", "feeling_score"}
	if ViolencePickerRequired(score) {
		fields = append(fields, "violence_type")
	}
	return fields
}

// PlacePin ставит или переносит булавку. Переводит черновик из idle в
// pin_placed; на более поздних этапах просто двигает координаты.
func (d *Draft) PlacePin(lat, lng float64) error {
	if d.Stage == StageSubmitted {
		return ErrWrongStage
	}
	d.Lat = &lat
	d.Lng = &lng
	if d.Stage == StageIdle {
		d.Stage = StagePinPlaced
	}
	return nil
}

// SetStory заполняет заголовок и текст истории
func (d *Draft) SetStory(hereHappened, description string) error {
	if d.Stage == StageIdle || d.Stage == StageSubmitted {
		return ErrWrongStage
	}
	d.HereHappened = hereHappened
	d.Description = description
	d.Stage = StageEditing
	return nil
}

// SetScore меняет оценку. Если оценка поднялась выше порога, выбранные
// типы насилия сбрасываются - скрытое поле не должно уехать в базу.
func (d *Draft) SetScore(score int) error {
	if d.Stage == StageIdle || d.Stage == StageSubmitted {
		return ErrWrongStage
	}
	if score < -100 || score > 100 {
		return ErrScoreRange
	}
	d.FeelingScore = score
	if !ViolencePickerRequired(score) {
		d.ViolenceType = nil
	}
	d.Stage = StageEditing
	return nil
}

// SetViolenceTypes задает типы насилия; допустимо только когда селектор
// обязателен по текущей оценке.
func (d *Draft) SetViolenceTypes(types []string) error {
	if d.Stage == StageIdle || d.Stage == StageSubmitted {
		return ErrWrongStage
	}
	if !ViolencePickerRequired(d.FeelingScore) {
		return errors.New("violence_type is only accepted when feeling_score <= -50")
	}
	d.ViolenceType = types
	return nil
}

// SetScenarioTags задает метки места происшествия
func (d *Draft) SetScenarioTags(tags []string) error {
	if d.Stage == StageIdle || d.Stage == StageSubmitted {
		return ErrWrongStage
	}
	d.Scenario.Tags = tags
	return nil
}

// SetPraise меняет текст похвалы (активен только при включенном флаге)
func (d *Draft) SetPraise(text string) error {
	if !d.Scenario.ShowPraise {
		return errors.New("praise field is not active")
	}
	d.Scenario.Praise = text
	return nil
}

// SetCriticism меняет текст критики (активен только при включенном флаге)
func (d *Draft) SetCriticism(text string) error {
	if !d.Scenario.ShowCriticism {
		return errors.New("criticism field is not active")
	}
	d.Scenario.Criticism = text
	return nil
}

// ToggleShowPraise переключает флаг похвалы. Выключение немедленно
// очищает текст, чтобы скрытые данные не попали в отправку.
func (d *Draft) ToggleShowPraise() {
	d.Scenario.ShowPraise = !d.Scenario.ShowPraise
	if !d.Scenario.ShowPraise {
		d.Scenario.Praise = ""
	}
}

// ToggleShowCriticism - то же для критики
func (d *Draft) ToggleShowCriticism() {
	d.Scenario.ShowCriticism = !d.Scenario.ShowCriticism
	if !d.Scenario.ShowCriticism {
		d.Scenario.Criticism = ""
	}
}

// Cancel сбрасывает весь черновик и возвращает его в idle
func (d *Draft) Cancel() {
	*d = Draft{Stage: StageIdle}
}

// Validate проверяет предусловия отправки. При нарушении никакого
// обращения к хранилищу быть не должно - проверка идет первой.
func (d *Draft) Validate() error {
	if d.Lat == nil || d.Lng == nil {
		return ErrMissingLocation
	}
	if d.FeelingScore < -100 || d.FeelingScore > 100 {
		return ErrScoreRange
	}
	return nil
}

// ToSubmission собирает из черновика запись для вставки
func (d *Draft) ToSubmission() *models.Submission {
	return &models.Submission{
		Lat:          d.Lat,
		Lng:          d.Lng,
		HereHappened: d.HereHappened,
		Description:  d.Description,
		FeelingScore: d.FeelingScore,
		ViolenceType: d.ViolenceType,
		Scenario:     d.Scenario,
	}
}

// MarkSubmitted фиксирует успешную отправку
func (d *Draft) MarkSubmitted() {
	d.Stage = StageSubmitted
}
