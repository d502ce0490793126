package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func registerOrderRoutes(r *gin.Engine, cfg HandlerConfig) {
	r.GET("/api/orders/:id", func(c *gin.Context) {
		view, err := cfg.Orders.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, cfg, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "order": view})
	})
}
