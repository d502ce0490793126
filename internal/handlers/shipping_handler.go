package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/houseofmira/storefront-api/internal/validation"
)

func registerShippingRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()

	r.POST("/api/shipping/rates", func(c *gin.Context) {
		var req validation.RatesRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		options, err := cfg.Resolver.Resolve(c.Request.Context(), req.Items, req.Address)
		if err != nil {
			writeError(c, cfg, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "options": options})
	})
}
