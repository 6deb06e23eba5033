package apidoc

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes serves the descriptor document.
func RegisterRoutes(r *gin.Engine) {
	spec := Spec()
	r.GET("/api-docs", func(c *gin.Context) {
		c.JSON(http.StatusOK, spec)
	})
}
