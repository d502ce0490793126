// Package checkout coordinates the order flow across the payment gateway and
// the commerce backend: intent creation before the hosted widget, order
// submission after it, and read-back for confirmation pages. Every operation
// is a stateless request/response call with no retries and no local state.
package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/houseofmira/storefront-api/internal/apperr"
	"github.com/houseofmira/storefront-api/internal/cart"
	"github.com/houseofmira/storefront-api/internal/gateway"
)

// Payment methods accepted at checkout.
const (
	PaymentMethodPrepaid = "prepaid"
	PaymentMethodCOD     = "cod"
)

// GatewayAPI is the slice of the gateway client the intent creator uses.
type GatewayAPI interface {
	CreateOrder(ctx context.Context, in gateway.OrderRequest) (*gateway.Order, error)
}

// IntentInput is everything assembled at checkout before the buyer pays.
type IntentInput struct {
	Items          []cart.Item
	TotalAmount    float64
	Email          string
	Address        cart.ShippingAddress
	ShippingOption *cart.ShippingOption
	PaymentMethod  string
}

// IntentResult reports the created gateway order, or that none was needed.
// For prepaid, Amount must equal the final order total in minor units.
type IntentResult struct {
	IntentRequired bool   `json:"intent_required"`
	GatewayOrderID string `json:"gateway_order_id,omitempty"`
	Amount         int64  `json:"amount,omitempty"`
	Currency       string `json:"currency,omitempty"`
}

// IntentCreator creates gateway-side payment orders for prepaid checkouts.
type IntentCreator struct {
	gw       GatewayAPI
	currency string
	nowFunc  func() time.Time
}

// NewIntentCreator binds the creator to the gateway and the store currency.
func NewIntentCreator(gw GatewayAPI, currency string) *IntentCreator {
	return &IntentCreator{
		gw:       gw,
		currency: currency,
		nowFunc:  time.Now,
	}
}

// Create validates the checkout data and, for prepaid, registers a gateway
// order for round(total*100) minor units. COD performs no gateway call.
func (ic *IntentCreator) Create(ctx context.Context, in IntentInput) (*IntentResult, error) {
	if len(in.Items) == 0 {
		return nil, apperr.Validation("Invalid cart items")
	}
	if in.TotalAmount <= 0 {
		return nil, apperr.Validation("total amount must be positive")
	}
	switch in.PaymentMethod {
	case PaymentMethodCOD:
		return &IntentResult{IntentRequired: false}, nil
	case PaymentMethodPrepaid:
		// fall through
	default:
		return nil, apperr.Validationf("unknown payment method %q", in.PaymentMethod)
	}

	// Gateway requirements for prepaid.
	if in.Email == "" {
		return nil, apperr.Validation("email is required for prepaid payment")
	}
	if in.Address.Phone == "" {
		return nil, apperr.Validation("phone number is required for prepaid payment")
	}

	order, err := ic.gw.CreateOrder(ctx, gateway.OrderRequest{
		Amount:   MinorUnits(in.TotalAmount),
		Currency: ic.currency,
		Receipt:  ic.receipt(),
		Notes:    intentNotes(in),
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"gateway_order_id": order.ID,
		"amount":           order.Amount,
		"currency":         order.Currency,
	}).Info("created payment intent")

	return &IntentResult{
		IntentRequired: true,
		GatewayOrderID: order.ID,
		Amount:         order.Amount,
		Currency:       order.Currency,
	}, nil
}

// receipt builds a unique receipt identifier for the gateway order.
func (ic *IntentCreator) receipt() string {
	return fmt.Sprintf("rcpt_%d_%s", ic.nowFunc().UnixMilli(), uuid.NewString()[:8])
}

// intentNotes summarizes the cart and shipping choice for support and
// reconciliation. Nothing downstream reads these programmatically.
func intentNotes(in IntentInput) map[string]string {
	lines := make([]string, 0, len(in.Items))
	for _, it := range in.Items {
		lines = append(lines, fmt.Sprintf("%s x%d", it.Title, it.Quantity))
	}
	notes := map[string]string{
		"items":    strings.Join(lines, "; "),
		"subtotal": FormatAmount(cart.Subtotal(in.Items)),
		"contact":  in.Email,
	}
	if in.ShippingOption != nil {
		notes["shipping_method"] = in.ShippingOption.Title
		notes["shipping_price"] = in.ShippingOption.Price
	}
	if in.Address.Zip != "" {
		notes["destination"] = in.Address.City + " " + in.Address.Zip
	}
	return notes
}
