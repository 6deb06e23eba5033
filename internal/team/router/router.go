// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"docshelf/internal/team/handler"
	"docshelf/internal/team/repository"
	"docshelf/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/teams", h.List)
	r.GET("/teams/:id", h.Get)
	r.POST("/teams", h.Create)
	r.PUT("/teams/:id", h.Update)
	r.DELETE("/teams/:id", h.Delete)

	r.POST("/teams/:id/players", h.AssignPlayer)
	r.GET("/teams/:id/players", h.ListPlayers)
}
