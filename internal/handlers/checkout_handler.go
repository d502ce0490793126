package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/houseofmira/storefront-api/internal/checkout"
	"github.com/houseofmira/storefront-api/internal/validation"
)

func registerCheckoutRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()

	r.POST("/api/checkout/payment-intent", func(c *gin.Context) {
		var req validation.IntentRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			// BindAndValidate already wrote a 400
			return
		}

		res, err := cfg.Intents.Create(c.Request.Context(), checkout.IntentInput{
			Items:          req.Items,
			TotalAmount:    req.TotalAmount,
			Email:          req.Email,
			Address:        req.Address,
			ShippingOption: req.ShippingOption,
			PaymentMethod:  req.PaymentMethod,
		})
		if err != nil {
			writeError(c, cfg, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "intent": res})
	})

	r.POST("/api/checkout/orders", func(c *gin.Context) {
		var req validation.SubmitOrderRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		res, err := cfg.Submitter.Submit(c.Request.Context(), checkout.SubmitInput{
			Items:            req.Items,
			Email:            req.Email,
			Address:          req.Address,
			ShippingOption:   req.ShippingOption,
			TotalAmount:      req.TotalAmount,
			PaymentMethod:    req.PaymentMethod,
			GatewayPaymentID: req.GatewayPaymentID,
			GatewayOrderID:   req.GatewayOrderID,
			GatewaySignature: req.GatewaySignature,
		})
		if err != nil {
			writeError(c, cfg, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "order": res})
	})
}
