package v1

import (
	"github.com/sinodiaspora/story-map-api/internal/draft"
	"github.com/sinodiaspora/story-map-api/internal/models"
	"github.com/sinodiaspora/story-map-api/internal/region"
	"github.com/sinodiaspora/story-map-api/internal/service"
)

// DTOToSubmissionModel преобразует DTO прямой отправки в доменную модель.
// Правила видимости формы действуют и здесь: типы насилия принимаются
// только при оценке не выше порога, тексты praise/criticism - только при
// включенных флагах.
func DTOToSubmissionModel(dto CreateStoryRequest) *models.Submission {
	sub := &models.Submission{
		Lat:          dto.Latitude,
		Lng:          dto.Longitude,
		HereHappened: dto.HereHappened,
		Description:  dto.Description,
		FeelingScore: dto.FeelingScore,
		Scenario: models.Scenario{
			Tags:          dto.Scenario.Tags,
			ShowPraise:    dto.Scenario.ShowPraise,
			ShowCriticism: dto.Scenario.ShowCriticism,
		},
	}
	if draft.ViolencePickerRequired(dto.FeelingScore) {
		sub.ViolenceType = dto.ViolenceType
	}
	if dto.Scenario.ShowPraise {
		sub.Scenario.Praise = dto.Scenario.Praise
	}
	if dto.Scenario.ShowCriticism {
		sub.Scenario.Criticism = dto.Scenario.Criticism
	}
	return sub
}

// DTOToSpaceModel преобразует DTO регистрации в доменную модель
func DTOToSpaceModel(dto CreateSpaceRequest) *models.Space {
	return &models.Space{
		Name:           dto.Name,
		Address:        dto.Address,
		ContactPhone:   dto.ContactPhone,
		Email:          dto.Email,
		AdditionalNote: dto.AdditionalNote,
		Tags:           dto.Tags,
		Lat:            dto.Latitude,
		Lng:            dto.Longitude,
	}
}

// ModelToStoryResponse преобразует доменную модель в DTO для ответа
func ModelToStoryResponse(model *models.Submission) *StoryResponse {
	return &StoryResponse{
		ID:           model.ID,
		Latitude:     model.Lat,
		Longitude:    model.Lng,
		HereHappened: model.HereHappened,
		Description:  model.Description,
		FeelingScore: model.FeelingScore,
		ViolenceType: model.ViolenceType,
		Scenario: ScenarioResponse{
			Tags:          model.Scenario.Tags,
			Praise:        model.Scenario.Praise,
			Criticism:     model.Scenario.Criticism,
			ShowPraise:    model.Scenario.ShowPraise,
			ShowCriticism: model.Scenario.ShowCriticism,
		},
		Region:    model.Region,
		Address:   model.Address,
		CreatedAt: model.CreatedAt,
	}
}

// ModelsToStoryResponses преобразует слайс моделей в слайс DTO
func ModelsToStoryResponses(models []*models.Submission) []*StoryResponse {
	responses := make([]*StoryResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToStoryResponse(model)
	}
	return responses
}

// ModelToSpaceResponse преобразует доменную модель в DTO для ответа
func ModelToSpaceResponse(model *models.Space) *SpaceResponse {
	return &SpaceResponse{
		ID:             model.ID,
		Name:           model.Name,
		Address:        model.Address,
		ContactPhone:   model.ContactPhone,
		Email:          model.Email,
		AdditionalNote: model.AdditionalNote,
		Tags:           model.Tags,
		Latitude:       model.Lat,
		Longitude:      model.Lng,
		Status:         model.Status,
		CreatedAt:      model.CreatedAt,
	}
}

// ModelsToSpaceResponses преобразует слайс моделей в слайс DTO
func ModelsToSpaceResponses(models []*models.Space) []*SpaceResponse {
	responses := make([]*SpaceResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToSpaceResponse(model)
	}
	return responses
}

// ModelToCommentResponse преобразует доменную модель в DTO для ответа
func ModelToCommentResponse(model *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:        model.ID,
		Text:      model.Text,
		CreatedAt: model.CreatedAt,
	}
}

// ModelsToCommentResponses преобразует слайс моделей в слайс DTO
func ModelsToCommentResponses(models []*models.Comment) []*CommentResponse {
	responses := make([]*CommentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToCommentResponse(model)
	}
	return responses
}

// SubmitResultToResponse преобразует итог отправки в DTO для ответа
func SubmitResultToResponse(result *service.SubmitResult) *SubmitResponse {
	return &SubmitResponse{
		Story:            ModelToStoryResponse(result.Story),
		Nearby:           ModelsToStoryResponses(result.Nearby),
		EmergencyNotice:  result.EmergencyNotice,
		NoticeTTLSeconds: result.NoticeTTLSeconds,
	}
}

// ViewportToResponse преобразует вьюпорт в DTO для ответа
func ViewportToResponse(vp region.Viewport) ViewportResponse {
	return ViewportResponse{
		Latitude:  vp.Lat,
		Longitude: vp.Lng,
		Zoom:      vp.Zoom,
	}
}
