// Package router provides person module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"docshelf/internal/person/handler"
	"docshelf/internal/person/repository"
	"docshelf/internal/person/service"
)

// RegisterRoutes registers person module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/persons", h.List)
	r.GET("/persons/:id", h.Get)
	r.POST("/persons", h.Create)
	r.PUT("/persons/:id", h.Update)
	r.DELETE("/persons/:id", h.Delete)
}
