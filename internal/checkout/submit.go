package checkout

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/houseofmira/storefront-api/internal/apperr"
	"github.com/houseofmira/storefront-api/internal/cart"
	"github.com/houseofmira/storefront-api/internal/commerce"
	"github.com/houseofmira/storefront-api/internal/metrics"
)

// OrderAPI is the slice of the commerce client the submitter uses.
type OrderAPI interface {
	CreateOrder(ctx context.Context, order commerce.OrderRequest) (*commerce.Order, error)
	GetOrder(ctx context.Context, orderID string) (*commerce.Order, error)
}

// SubmitInput is the assembled checkout ready for order creation. The three
// Gateway* fields are required together for prepaid and ignored for COD.
type SubmitInput struct {
	Items            []cart.Item
	Email            string
	Address          *cart.ShippingAddress
	ShippingOption   *cart.ShippingOption
	TotalAmount      float64
	PaymentMethod    string
	GatewayPaymentID string
	GatewayOrderID   string
	GatewaySignature string
}

// SubmitResult is returned to the UI on success.
type SubmitResult struct {
	OrderID         string `json:"order_id"`
	OrderNumber     string `json:"order_number"`
	ConfirmationURL string `json:"confirmation_url,omitempty"`
}

// Submitter assembles and submits the permanent order record. The commerce
// call is made exactly once: no retry, no idempotency key, no compensation if
// the response is lost after the backend created the order.
type Submitter struct {
	orders      OrderAPI
	emitter     *metrics.Emitter
	gatewayName string
}

// NewSubmitter wires the submitter. emitter may be nil; the lenient
// price-parse fallback then goes unmetered but still logs.
func NewSubmitter(orders OrderAPI, emitter *metrics.Emitter, gatewayName string) *Submitter {
	return &Submitter{
		orders:      orders,
		emitter:     emitter,
		gatewayName: gatewayName,
	}
}

// Submit validates the input, transforms it into the backend's order payload,
// and creates the order. financial_status is paid only when verified gateway
// evidence accompanies the request; COD is always pending.
func (s *Submitter) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	lineItems := make([]commerce.OrderLineItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.VariantID == "" || it.Quantity < 1 {
			return nil, apperr.Validation("order line needs a variant and a positive quantity")
		}
		lineItems = append(lineItems, commerce.OrderLineItem{
			VariantID:  it.VariantID,
			Quantity:   it.Quantity,
			Properties: cart.LineProperties(it),
		})
	}

	prepaid := in.PaymentMethod == PaymentMethodPrepaid
	payload := commerce.OrderPayload{
		Email:           in.Email,
		LineItems:       lineItems,
		ShippingAddress: toOrderAddress(in.Address),
		ShippingLines:   []commerce.ShippingLine{s.shippingLine(ctx, *in.ShippingOption)},
		FinancialStatus: commerce.FinancialStatusPending,
		Note:            orderNote(in),
		Tags:            orderTags(in.PaymentMethod),
		SendReceipt:     true,
	}
	if prepaid {
		payload.FinancialStatus = commerce.FinancialStatusPaid
		payload.Transactions = []commerce.Transaction{
			{
				Kind:    "sale",
				Status:  "success",
				Amount:  FormatAmount(in.TotalAmount),
				Gateway: s.gatewayName,
			},
		}
	}

	order, err := s.orders.CreateOrder(ctx, commerce.OrderRequest{Order: payload})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"order_id":       order.ID,
		"order_number":   order.OrderNumber,
		"payment_method": in.PaymentMethod,
	}).Info("order created")

	return &SubmitResult{
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		ConfirmationURL: order.OrderStatusURL,
	}, nil
}

// validate fails fast before any network call.
func (s *Submitter) validate(in SubmitInput) error {
	var missing []string
	if len(in.Items) == 0 {
		missing = append(missing, "cart")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.Address == nil {
		missing = append(missing, "shipping address")
	}
	if in.ShippingOption == nil {
		missing = append(missing, "shipping option")
	}
	if in.TotalAmount <= 0 {
		missing = append(missing, "total amount")
	}
	switch in.PaymentMethod {
	case PaymentMethodPrepaid:
		// All three pieces of gateway evidence are required together; a
		// partially verified payment never produces a paid order.
		if in.GatewayPaymentID == "" || in.GatewayOrderID == "" || in.GatewaySignature == "" {
			missing = append(missing, "payment verification")
		}
	case PaymentMethodCOD:
	case "":
		missing = append(missing, "payment method")
	default:
		return apperr.Validationf("unknown payment method %q", in.PaymentMethod)
	}
	if len(missing) > 0 {
		return apperr.Validation("missing required fields: " + strings.Join(missing, ", "))
	}
	return nil
}

// shippingLine parses the option's display price back to a decimal.
// Unparsable prices fall back to zero instead of failing the order; the
// trigger is logged and counted so upstream data issues stay visible.
func (s *Submitter) shippingLine(ctx context.Context, opt cart.ShippingOption) commerce.ShippingLine {
	price, ok := ParsePrice(opt.Price)
	if !ok {
		log.WithFields(log.Fields{
			"option_id": opt.ID,
			"raw_price": opt.Price,
		}).Warn("unparsable shipping price, defaulting to 0")
		s.emitter.Count(ctx, metrics.MetricShippingPriceFallback)
	}
	return commerce.ShippingLine{
		Title: opt.Title,
		Price: FormatAmount(price),
		Code:  opt.Code,
	}
}

func toOrderAddress(a *cart.ShippingAddress) *commerce.OrderAddress {
	if a == nil {
		return nil
	}
	return &commerce.OrderAddress{
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Address1:    a.Address1,
		Address2:    a.Address2,
		City:        a.City,
		Province:    a.Province,
		Country:     a.Country,
		CountryCode: a.CountryCode,
		Zip:         a.Zip,
		Phone:       a.Phone,
	}
}

// orderTags marks the order as API-created plus its payment method, so the
// backend's admin can filter them.
func orderTags(paymentMethod string) string {
	return "api-created, " + paymentMethod
}

// orderNote is the human-readable payment annotation on the order.
func orderNote(in SubmitInput) string {
	if in.PaymentMethod == PaymentMethodPrepaid {
		return fmt.Sprintf("Payment method: prepaid (gateway payment %s)", in.GatewayPaymentID)
	}
	return "Payment method: cash on delivery"
}
