// Package router provides customer module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"docshelf/internal/customer/handler"
	"docshelf/internal/customer/repository"
	"docshelf/internal/customer/service"
)

// RegisterRoutes registers customer module routes. The nested invoice
// routes address the parent customer by username; gin requires a single
// wildcard name per segment, so the :id parameter carries the username
// on those routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/customers", h.List)
	r.GET("/customers/:id", h.Get)
	r.POST("/customers", h.Create)
	r.PUT("/customers/:id", h.Update)
	r.DELETE("/customers/:id", h.Delete)

	r.POST("/customers/:id/invoices", h.AddInvoice)
	r.GET("/customers/:id/invoices", h.ListInvoices)
}
