package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/houseofmira/storefront-api/internal/validation"
)

func registerAccountRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()

	r.PUT("/api/account/phone", func(c *gin.Context) {
		var req validation.UpdatePhoneRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		if err := cfg.Account.UpdateCustomerPhone(c.Request.Context(), req.CustomerAccessToken, req.Phone); err != nil {
			writeError(c, cfg, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	r.PUT("/api/account/address", func(c *gin.Context) {
		var req validation.UpdateAddressRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		if err := cfg.Account.UpdateCustomerAddress(c.Request.Context(), req.CustomerAccessToken, req.AddressID, req.Address); err != nil {
			writeError(c, cfg, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	})
}
