package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sinodiaspora/story-map-api/internal/archive"
	"github.com/sinodiaspora/story-map-api/internal/config"
	"github.com/sinodiaspora/story-map-api/internal/draft"
	"github.com/sinodiaspora/story-map-api/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	svc      *service.Service
	library  *archive.Library
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(svc *service.Service, library *archive.Library, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		svc:      svc,
		library:  library,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// respondError переводит доменные ошибки в HTTP-статусы. Нарушения
// предусловий черновика - это ошибки клиента, а не сервера.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, archive.ErrArticleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case errors.Is(err, draft.ErrMissingLocation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, draft.ErrScoreRange), errors.Is(err, draft.ErrWrongStage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Submit a story directly
// @Description Submit a story in one request, without a draft session. Runs the same persist, geocode and nearby sequence.
// @Tags Stories
// @Accept json
// @Produce json
// @Param story body CreateStoryRequest true "Story submission request"
// @Success 201 {object} SubmitResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 422 {object} map[string]string "Missing location"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stories [post]
func (h *Handler) createStory(c *gin.Context) {
	var input CreateStoryRequest
	log := h.logger.WithField("method", "createStory")

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

	result, err := h.svc.SubmitStory(c.Request.Context(), DTOToSubmissionModel(input))
	if err != nil {
		log.WithError(err).Warn("Failed to submit story")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, SubmitResultToResponse(result))
}

// @Summary Get a list of stories
// @Description Get a paginated list of published stories, newest first.
// @Tags Stories
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} StoryResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stories [get]
func (h *Handler) listStories(c *gin.Context) {
	log := h.logger.WithField("method", "listStories")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	stories, err := h.svc.ListStories(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list stories from service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToStoryResponses(stories))
}

// @Summary Get the archive feed
// @Description Get the most recent stories for the archive page.
// @Tags Stories
// @Accept json
// @Produce json
// @Success 200 {array} StoryResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stories/archive [get]
func (h *Handler) archiveStories(c *gin.Context) {
	log := h.logger.WithField("method", "archiveStories")

	stories, err := h.svc.ArchiveStories(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load archive feed from service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToStoryResponses(stories))
}

// @Summary Search stories by ID
// @Description Find a story by exact ID match and return a map viewport focused on it.
// @Tags Stories
// @Accept json
// @Produce json
// @Param q query string true "Story ID to search for"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} map[string]string "Missing query"
// @Failure 404 {object} map[string]string "Story not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stories/search [get]
func (h *Handler) searchStories(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}
	log := h.logger.WithField("method", "searchStories").WithField("q", query)

	result, err := h.svc.SearchByID(c.Request.Context(), query)
	if err != nil {
		log.WithError(err).Warn("Story search failed")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SearchResponse{
		Story:    ModelToStoryResponse(result.Story),
		Viewport: ViewportToResponse(result.Viewport),
	})
}

// @Summary Get story by ID
// @Description Get a single published story by its ID.
// @Tags Stories
// @Accept json
// @Produce json
// @Param id path string true "Story ID"
// @Success 200 {object} StoryResponse
// @Failure 400 {object} map[string]string "Invalid story ID"
// @Failure 404 {object} map[string]string "Story not found"
// @Router /stories/{id} [get]
func (h *Handler) getStory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid story ID"})
		return
	}
	log := h.logger.WithField("method", "getStory").WithField("id", id)

	story, err := h.svc.GetStory(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get story from service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToStoryResponse(story))
}

// @Summary Get nearby stories
// @Description Get stories close to the given story on the map.
// @Tags Stories
// @Accept json
// @Produce json
// @Param id path string true "Story ID"
// @Success 200 {array} StoryResponse
// @Failure 400 {object} map[string]string "Invalid story ID"
// @Failure 404 {object} map[string]string "Story not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stories/{id}/nearby [get]
func (h *Handler) nearbyStories(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid story ID"})
		return
	}
	log := h.logger.WithField("method", "nearbyStories").WithField("id", id)

	stories, err := h.svc.NearbyStories(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to find nearby stories")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToStoryResponses(stories))
}

// @Summary Export a story receipt
// @Description Render the story as a downloadable PNG receipt.
// @Tags Stories
// @Produce png
// @Param id path string true "Story ID"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Invalid story ID"
// @Failure 404 {object} map[string]string "Story not found"
// @Failure 500 {object} map[string]string "Export failed"
// @Router /stories/{id}/receipt [get]
func (h *Handler) storyReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid story ID"})
		return
	}
	log := h.logger.WithField("method", "storyReceipt").WithField("id", id)

	png, err := h.svc.RenderReceipt(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to render receipt")
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=receipt-"+id.String()+".png")
	c.Data(http.StatusOK, "image/png", png)
}

// @Summary Get usage statistics
// @Description Get counts of records created in the configured time window. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.svc.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, StatsResponse{
		Stories:  stats.Stories,
		Spaces:   stats.Spaces,
		Comments: stats.Comments,
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
