package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sinodiaspora/story-map-api/internal/draft"
	"github.com/sinodiaspora/story-map-api/internal/service"
)

// @Summary Start a draft session
// @Description Open a new story draft session and return its token.
// @Tags Drafts
// @Accept json
// @Produce json
// @Success 201 {object} service.DraftView
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /drafts [post]
func (h *Handler) startDraft(c *gin.Context) {
	log := h.logger.WithField("method", "startDraft")

	view, err := h.svc.StartDraft(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to start draft session")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Get a draft session
// @Description Get the current draft state along with derived form flags.
// @Tags Drafts
// @Accept json
// @Produce json
// @Param token path string true "Draft session token"
// @Success 200 {object} service.DraftView
// @Failure 400 {object} map[string]string "Invalid token"
// @Failure 404 {object} map[string]string "Draft not found"
// @Router /drafts/{token} [get]
func (h *Handler) getDraft(c *gin.Context) {
	token, err := uuid.Parse(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid draft token"})
		return
	}
	log := h.logger.WithField("method", "getDraft").WithField("token", token)

	view, err := h.svc.GetDraft(c.Request.Context(), token)
	if err != nil {
		log.WithError(err).Warn("Failed to get draft session")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Place the map pin
// @Description Place or move the draft pin. Moves the draft out of the idle stage.
// @Tags Drafts
// @Accept json
// @Produce json
// @Param token path string true "Draft session token"
// @Param pin body PlacePinRequest true "Pin coordinates"
// @Success 200 {object} service.DraftView
// @Failure 400 {object} map[string]string "Invalid token or request body"
// @Failure 404 {object} map[string]string "Draft not found"
// @Router /drafts/{token}/pin [post]
func (h *Handler) placePin(c *gin.Context) {
	token, err := uuid.Parse(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid draft token"})
		return
	}
	log := h.logger.WithField("method", "placePin").WithField("token", token)

	var input PlacePinRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.svc.UpdateDraft(c.Request.Context(), token, func(d *draft.Draft) error {
		return d.PlacePin(*input.Latitude, *input.Longitude)
	})
	if err != nil {
		log.WithError(err).Warn("Failed to place pin")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// applyDraftUpdate применяет заполненные поля запроса по очереди.
// Первая нарушенная проверка прерывает обновление целиком.
func applyDraftUpdate(input UpdateDraftRequest) func(*draft.Draft) error {
	return func(d *draft.Draft) error {
		if input.HereHappened != nil || input.Description != nil {
			hereHappened := d.HereHappened
			description := d.Description
			if input.HereHappened != nil {
				hereHappened = *input.HereHappened
			}
			if input.Description != nil {
				description = *input.Description
			}
			if err := d.SetStory(hereHappened, description); err != nil {
				return err
			}
		}
		if input.FeelingScore != nil {
			if err := d.SetScore(*input.FeelingScore); err != nil {
				return err
			}
		}
		if input.ViolenceType != nil {
			if err := d.SetViolenceTypes(*input.ViolenceType); err != nil {
				return err
			}
		}
		if input.ScenarioTags != nil {
			if err := d.SetScenarioTags(*input.ScenarioTags); err != nil {
				return err
			}
		}
		if input.TogglePraise {
			d.ToggleShowPraise()
		}
		if input.ToggleCriticism {
			d.ToggleShowCriticism()
		}
		if input.Praise != nil {
			if err := d.SetPraise(*input.Praise); err != nil {
				return err
			}
		}
		if input.Criticism != nil {
			if err := d.SetCriticism(*input.Criticism); err != nil {
				return err
			}
		}
		return nil
	}
}

// @Summary Update a draft
// @Description Apply a partial update to the draft. Only the provided fields change.
// @Tags Drafts
// @Accept json
// @Produce json
// @Param token path string true "Draft session token"
// @Param draft body UpdateDraftRequest true "Draft update request"
// @Success 200 {object} service.DraftView
// @Failure 400 {object} map[string]string "Invalid token, request body or stage violation"
// @Failure 404 {object} map[string]string "Draft not found"
// @Router /drafts/{token} [patch]
func (h *Handler) updateDraft(c *gin.Context) {
	token, err := uuid.Parse(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid draft token"})
		return
	}
	log := h.logger.WithField("method", "updateDraft").WithField("token", token)

	var input UpdateDraftRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.svc.UpdateDraft(c.Request.Context(), token, applyDraftUpdate(input))
	if err != nil {
		log.WithError(err).Warn("Failed to update draft")
		if errors.Is(err, service.ErrNotFound) || strings.HasPrefix(err.Error(), "service:") {
			respondError(c, err)
			return
		}
		// Остальное - отказ редьюсера, то есть ошибка клиента
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Cancel a draft session
// @Description Discard the draft session and all of its contents.
// @Tags Drafts
// @Accept json
// @Produce json
// @Param token path string true "Draft session token"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid token"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /drafts/{token} [delete]
func (h *Handler) cancelDraft(c *gin.Context) {
	token, err := uuid.Parse(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid draft token"})
		return
	}
	log := h.logger.WithField("method", "cancelDraft").WithField("token", token)

	if err := h.svc.CancelDraft(c.Request.Context(), token); err != nil {
		log.WithError(err).Error("Failed to cancel draft session")
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Submit a draft
// @Description Validate the draft and publish it as a story. On success the session is closed.
// @Tags Drafts
// @Accept json
// @Produce json
// @Param token path string true "Draft session token"
// @Success 201 {object} SubmitResponse
// @Failure 400 {object} map[string]string "Invalid token or score out of range"
// @Failure 404 {object} map[string]string "Draft not found"
// @Failure 422 {object} map[string]string "Missing location"
// @Failure 500 {object} map[string]string "Store write failure, session kept for retry"
// @Router /drafts/{token}/submit [post]
func (h *Handler) submitDraft(c *gin.Context) {
	token, err := uuid.Parse(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid draft token"})
		return
	}
	log := h.logger.WithField("method", "submitDraft").WithField("token", token)

	result, err := h.svc.SubmitDraft(c.Request.Context(), token)
	if err != nil {
		log.WithError(err).Warn("Draft submission failed")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, SubmitResultToResponse(result))
}
