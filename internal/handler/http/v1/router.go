package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Сессии черновиков
	drafts := api.Group("/drafts")
	{
		drafts.POST("", h.startDraft)
		drafts.GET("/:token", h.getDraft)
		drafts.PATCH("/:token", h.updateDraft)
		drafts.DELETE("/:token", h.cancelDraft)
		drafts.POST("/:token/pin", h.placePin)
		drafts.POST("/:token/submit", h.submitDraft)
	}

	// Опубликованные истории
	stories := api.Group("/stories")
	{
		stories.POST("", h.createStory)
		stories.GET("", h.listStories)
		stories.GET("/archive", h.archiveStories)
		stories.GET("/search", h.searchStories)
		stories.GET("/:id", h.getStory)
		stories.GET("/:id/nearby", h.nearbyStories)
		stories.GET("/:id/receipt", h.storyReceipt)
		stories.GET("/:id/comments", h.listComments)
		stories.POST("/:id/comments", h.createComment)
	}

	// Пространства поддержки
	spaces := api.Group("/spaces")
	{
		spaces.POST("", h.createSpace)
		spaces.GET("", h.listSpaces)
	}

	// Карта: маркеры и фокусировка
	api.GET("/map/markers", h.mapMarkers)
	api.GET("/map/focus", h.mapFocus)

	// Одноразовая передача истории между окнами
	api.POST("/handoff/:id", h.stashHandoff)
	api.GET("/handoff/:id", h.claimHandoff)

	// Материалы раздела акций
	api.GET("/actions", h.actionsManifest)
	api.GET("/actions/:id", h.actionArticle)

	// Модерация и статистика под API-ключом
	protected := api.Group("/", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		protected.PATCH("/comments/:id/visibility", h.setCommentVisibility)
		protected.GET("/stats", h.getStats)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
