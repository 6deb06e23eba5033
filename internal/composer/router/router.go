// Package router provides composer module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"docshelf/internal/composer/handler"
	"docshelf/internal/composer/repository"
	"docshelf/internal/composer/service"
)

// RegisterRoutes registers composer module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/composers", h.List)
	r.GET("/composers/:id", h.Get)
	r.POST("/composers", h.Create)
	r.PUT("/composers/:id", h.Update)
	r.DELETE("/composers/:id", h.Delete)
}
