// Package handlers exposes the checkout flow over HTTP: thin synchronous
// wrappers that bind and validate a request, call one orchestration
// component, and map its result or error into the JSON envelope.
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/houseofmira/storefront-api/internal/apperr"
	"github.com/houseofmira/storefront-api/internal/cart"
	"github.com/houseofmira/storefront-api/internal/checkout"
)

// RateResolver resolves shipping options for a cart and destination.
type RateResolver interface {
	Resolve(ctx context.Context, items []cart.Item, dest cart.ShippingAddress) ([]cart.ShippingOption, error)
}

// IntentCreator creates gateway payment intents for prepaid checkouts.
type IntentCreator interface {
	Create(ctx context.Context, in checkout.IntentInput) (*checkout.IntentResult, error)
}

// OrderSubmitter submits the final order to the commerce backend.
type OrderSubmitter interface {
	Submit(ctx context.Context, in checkout.SubmitInput) (*checkout.SubmitResult, error)
}

// OrderReader reads a created order for display.
type OrderReader interface {
	Get(ctx context.Context, orderID string) (*checkout.OrderView, error)
}

// AccountAPI updates the customer profile on the commerce backend.
type AccountAPI interface {
	UpdateCustomerPhone(ctx context.Context, customerAccessToken, phone string) error
	UpdateCustomerAddress(ctx context.Context, customerAccessToken, addressID string, addr cart.ShippingAddress) error
}

// HandlerConfig groups dependencies for the storefront handlers.
type HandlerConfig struct {
	Resolver  RateResolver
	Intents   IntentCreator
	Submitter OrderSubmitter
	Orders    OrderReader
	Account   AccountAPI

	// ExposeErrorDetail includes wrapped failure detail in 5xx responses;
	// enabled only outside production.
	ExposeErrorDetail bool
}

// RegisterRoutes mounts every storefront endpoint on the engine.
func RegisterRoutes(r *gin.Engine, cfg HandlerConfig) {
	registerShippingRoutes(r, cfg)
	registerCheckoutRoutes(r, cfg)
	registerOrderRoutes(r, cfg)
	registerAccountRoutes(r, cfg)
}

// writeError maps a failure into the envelope. Validation and not-found
// errors surface their corrective message; everything else shows a generic
// retry message and logs the full detail server-side.
func writeError(c *gin.Context, cfg HandlerConfig, err error) {
	ae := apperr.From(err)

	message := ae.Message
	switch ae.Kind {
	case apperr.KindValidation, apperr.KindNotFound:
	default:
		log.WithError(err).WithFields(log.Fields{
			"path": c.FullPath(),
			"code": ae.Code,
		}).Error("request failed")
		message = "something went wrong, please try again"
	}

	body := gin.H{"success": false, "error": ae.Code, "message": message}
	if cfg.ExposeErrorDetail && ae.Err != nil {
		body["detail"] = ae.Err.Error()
	}
	c.JSON(ae.HTTPStatus(), body)
}
