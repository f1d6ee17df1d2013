package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Register a support space
// @Description Register a new support space. The address is resolved from coordinates when omitted.
// @Tags Spaces
// @Accept json
// @Produce json
// @Param space body CreateSpaceRequest true "Space registration request"
// @Success 201 {object} SpaceResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /spaces [post]
func (h *Handler) createSpace(c *gin.Context) {
	var input CreateSpaceRequest
	log := h.logger.WithField("method", "createSpace")

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

	model := DTOToSpaceModel(input)
	if err := h.svc.CreateSpace(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create space in service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToSpaceResponse(model))
}

// @Summary List support spaces
// @Description List active support spaces, optionally filtered by region and tags.
// @Tags Spaces
// @Accept json
// @Produce json
// @Param region query string false "Region filter, matched against the space address"
// @Param tags query string false "Comma-separated tags, labels or machine values"
// @Success 200 {array} SpaceResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /spaces [get]
func (h *Handler) listSpaces(c *gin.Context) {
	log := h.logger.WithField("method", "listSpaces")

	var tags []string
	if raw := c.Query("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}

	spaces, err := h.svc.ListSpaces(c.Request.Context(), c.Query("region"), tags)
	if err != nil {
		log.WithError(err).Error("Failed to list spaces from service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToSpaceResponses(spaces))
}

// @Summary Add a comment
// @Description Add a visible comment to an existing story.
// @Tags Comments
// @Accept json
// @Produce json
// @Param id path string true "Story ID"
// @Param comment body CreateCommentRequest true "Comment creation request"
// @Success 201 {object} CommentResponse
// @Failure 400 {object} map[string]string "Invalid request body or story ID"
// @Failure 404 {object} map[string]string "Story not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stories/{id}/comments [post]
func (h *Handler) createComment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid story ID"})
		return
	}
	log := h.logger.WithField("method", "createComment").WithField("id", id)

	var input CreateCommentRequest
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

	comment, err := h.svc.AddComment(c.Request.Context(), id, input.Text)
	if err != nil {
		log.WithError(err).Warn("Failed to add comment")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToCommentResponse(comment))
}

// @Summary List story comments
// @Description List visible comments of a story, newest first.
// @Tags Comments
// @Accept json
// @Produce json
// @Param id path string true "Story ID"
// @Success 200 {array} CommentResponse
// @Failure 400 {object} map[string]string "Invalid story ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stories/{id}/comments [get]
func (h *Handler) listComments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid story ID"})
		return
	}
	log := h.logger.WithField("method", "listComments").WithField("id", id)

	comments, err := h.svc.ListComments(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to list comments from service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToCommentResponses(comments))
}

// @Summary Moderate comment visibility
// @Description Hide or restore a comment. Requires API key.
// @Tags Comments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Comment ID"
// @Param visibility body SetVisibilityRequest true "Visibility update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body or comment ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /comments/{id}/visibility [patch]
func (h *Handler) setCommentVisibility(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment ID"})
		return
	}
	log := h.logger.WithField("method", "setCommentVisibility").WithField("id", id)

	var input SetVisibilityRequest
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

	if err := h.svc.SetCommentVisibility(c.Request.Context(), id, *input.Visible); err != nil {
		log.WithError(err).Error("Failed to update comment visibility")
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get map markers
// @Description Get markers for all located stories and active support spaces.
// @Tags Map
// @Accept json
// @Produce json
// @Success 200 {object} MarkersResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /map/markers [get]
func (h *Handler) mapMarkers(c *gin.Context) {
	log := h.logger.WithField("method", "mapMarkers")

	markers, err := h.svc.MapMarkers(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to collect map markers")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MarkersResponse{
		Stories: ModelsToStoryResponses(markers.Stories),
		Spaces:  ModelsToSpaceResponses(markers.Spaces),
	})
}

// @Summary Get a map focus viewport
// @Description Get the viewport for a region selector token. Empty or "all" focuses the whole map.
// @Tags Map
// @Accept json
// @Produce json
// @Param region query string false "Region selector token"
// @Success 200 {object} ViewportResponse
// @Failure 404 {object} map[string]string "Unknown region token"
// @Router /map/focus [get]
func (h *Handler) mapFocus(c *gin.Context) {
	vp, err := h.svc.FocusRegion(c.Query("region"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown region"})
		return
	}
	c.JSON(http.StatusOK, ViewportToResponse(vp))
}

// @Summary Stash a story for handoff
// @Description Stash a story for one-shot pickup in another window.
// @Tags Handoff
// @Accept json
// @Produce json
// @Param id path string true "Story ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid story ID"
// @Failure 404 {object} map[string]string "Story not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /handoff/{id} [post]
func (h *Handler) stashHandoff(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid story ID"})
		return
	}
	log := h.logger.WithField("method", "stashHandoff").WithField("id", id)

	if err := h.svc.StashHandoff(c.Request.Context(), id); err != nil {
		log.WithError(err).Warn("Failed to stash handoff")
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Claim a stashed story
// @Description Claim the stashed story. The record burns on first read.
// @Tags Handoff
// @Accept json
// @Produce json
// @Param id path string true "Story ID"
// @Success 200 {object} StoryResponse
// @Failure 400 {object} map[string]string "Invalid story ID"
// @Failure 404 {object} map[string]string "Nothing stashed under this ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /handoff/{id} [get]
func (h *Handler) claimHandoff(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid story ID"})
		return
	}
	log := h.logger.WithField("method", "claimHandoff").WithField("id", id)

	story, err := h.svc.ClaimHandoff(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to claim handoff")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToStoryResponse(story))
}

// @Summary Get the actions manifest
// @Description Get the list of published action folders, newest first.
// @Tags Actions
// @Accept json
// @Produce json
// @Success 200 {object} archive.Manifest
// @Router /actions [get]
func (h *Handler) actionsManifest(c *gin.Context) {
	c.JSON(http.StatusOK, h.library.Manifest())
}

// @Summary Get an action article
// @Description Get a single action article by its date folder ID.
// @Tags Actions
// @Accept json
// @Produce json
// @Param id path string true "Action folder ID (yyyymmdd)"
// @Success 200 {object} archive.Article
// @Failure 404 {object} map[string]string "Article not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /actions/{id} [get]
func (h *Handler) actionArticle(c *gin.Context) {
	log := h.logger.WithField("method", "actionArticle").WithField("id", c.Param("id"))

	article, err := h.library.Load(c.Param("id"))
	if err != nil {
		log.WithError(err).Warn("Failed to load action article")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}
