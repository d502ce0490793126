package checkout

import (
	"context"
	"strings"

	"github.com/houseofmira/storefront-api/internal/apperr"
	"github.com/houseofmira/storefront-api/internal/commerce"
)

// OrderView is the display-oriented shape for confirmation and order-detail
// pages.
type OrderView struct {
	ID               string                   `json:"id"`
	OrderNumber      string                   `json:"order_number"`
	Email            string                   `json:"email"`
	LineItems        []commerce.OrderLineRead `json:"line_items"`
	ShippingAddress  *commerce.OrderAddress   `json:"shipping_address,omitempty"`
	ShippingMethod   string                   `json:"shipping_method,omitempty"`
	FinancialStatus  string                   `json:"financial_status"`
	Total            string                   `json:"total"`
	Subtotal         string                   `json:"subtotal"`
	RequiresShipping bool                     `json:"requires_shipping"`
	Tracking         *commerce.Fulfillment    `json:"tracking,omitempty"`
	InvoiceURL       string                   `json:"invoice_url,omitempty"`
	CreatedAt        string                   `json:"created_at"`
}

// OrderQuery reads previously created orders. One backend call per lookup, no
// caching.
type OrderQuery struct {
	orders OrderAPI
}

// NewOrderQuery binds the query to the commerce order API.
func NewOrderQuery(orders OrderAPI) *OrderQuery {
	return &OrderQuery{orders: orders}
}

// Get fetches one order and maps it for display.
func (q *OrderQuery) Get(ctx context.Context, orderID string) (*OrderView, error) {
	if orderID == "" {
		return nil, apperr.Validation("order id is required")
	}

	order, err := q.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	view := &OrderView{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		Email:           order.Email,
		LineItems:       order.LineItems,
		ShippingAddress: order.ShippingAddress,
		FinancialStatus: order.FinancialStatus,
		Total:           order.TotalPrice,
		Subtotal:        order.SubtotalPrice,
		InvoiceURL:      order.OrderStatusURL,
		CreatedAt:       order.CreatedAt,
	}
	if len(order.ShippingLines) > 0 {
		view.ShippingMethod = order.ShippingLines[0].Title
	}
	view.RequiresShipping = requiresShipping(view.ShippingMethod)
	if len(order.Fulfillments) > 0 {
		f := order.Fulfillments[0]
		view.Tracking = &f
	}
	return view, nil
}

// requiresShipping is true when a shipping method is set and it is not the
// literal "no shipping" marker.
func requiresShipping(method string) bool {
	return method != "" && !strings.EqualFold(method, "no shipping")
}
