// Package router provides account module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"docshelf/internal/account/handler"
	"docshelf/internal/account/repository"
	"docshelf/internal/account/service"
)

// RegisterRoutes registers signup/login routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, service.NewBcryptHasher(), logger)
	h := handler.New(svc, logger)

	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.GET("/accounts", h.List)
}
