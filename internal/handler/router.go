package handler

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes ルーティングとミドルウェアを設定する
func SetupRoutes(r *gin.Engine, pages *PagesHandler, api *BarsAPIHandler) {
	// Middleware
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger())

	// HTMLページ
	r.GET("/", pages.Index)
	r.GET("/bar/:id", pages.BarDetail)

	// JSON API
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", api.Health)
		apiGroup.GET("/bars", api.GetBars)
	}
}
