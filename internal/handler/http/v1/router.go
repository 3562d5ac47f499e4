package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := APIKeyAuthMiddleware(h.cfg, h.logger)

	// Данные для диаграммы и карты
	coverage := api.Group("/coverage")
	{
		coverage.GET("/ranking", h.getRanking)
		coverage.GET("/normalized", h.getNormalized)
		coverage.GET("/chart", h.getChart)
		coverage.GET("/chart.png", h.getChartPNG)
		coverage.GET("/map", h.getMap)
		coverage.GET("/map.geojson", h.getMapGeoJSON)
	}

	// Перезагрузка наборов данных
	api.POST("/datasets/refresh", auth, h.refreshDatasets)

	// Витрина проектов
	projects := api.Group("/projects")
	{
		projects.GET("", h.listProjects)
		projects.GET("/:id", h.getProject)
		projects.POST("", auth, h.createProject)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
