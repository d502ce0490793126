package checkout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/houseofmira/storefront-api/internal/apperr"
	"github.com/houseofmira/storefront-api/internal/commerce"
)

func sampleOrder() *commerce.Order {
	return &commerce.Order{
		ID:          "1001",
		OrderNumber: "#1001",
		Email:       "buyer@example.com",
		LineItems: []commerce.OrderLineRead{
			{Title: "Silk Kurta", VariantID: "v1", Quantity: 2, Price: "500.00"},
		},
		ShippingLines:   []commerce.ShippingLine{{Title: "Swift Express", Price: "1250.50"}},
		FinancialStatus: commerce.FinancialStatusPending,
		TotalPrice:      "2250.50",
		SubtotalPrice:   "1000.00",
		OrderStatusURL:  "https://shop/orders/1001",
		CreatedAt:       "2026-03-01T10:00:00Z",
	}
}

func TestGetOrderMapsDisplayShape(t *testing.T) {
	api := &fakeOrderAPI{getOrder: sampleOrder()}
	q := NewOrderQuery(api)

	view, err := q.Get(context.Background(), "1001")
	require.NoError(t, err)

	assert.Equal(t, "1001", view.ID)
	assert.Equal(t, "#1001", view.OrderNumber)
	assert.Equal(t, "Swift Express", view.ShippingMethod)
	assert.True(t, view.RequiresShipping)
	assert.Equal(t, "2250.50", view.Total)
	assert.Equal(t, "https://shop/orders/1001", view.InvoiceURL)
}

func TestGetOrderNoShippingMethod(t *testing.T) {
	order := sampleOrder()
	order.ShippingLines = nil
	q := NewOrderQuery(&fakeOrderAPI{getOrder: order})

	view, err := q.Get(context.Background(), "1001")
	require.NoError(t, err)
	assert.False(t, view.RequiresShipping)
}

func TestGetOrderNoShippingLiteral(t *testing.T) {
	order := sampleOrder()
	order.ShippingLines = []commerce.ShippingLine{{Title: "No Shipping", Price: "0.00"}}
	q := NewOrderQuery(&fakeOrderAPI{getOrder: order})

	view, err := q.Get(context.Background(), "1001")
	require.NoError(t, err)
	assert.False(t, view.RequiresShipping, "the no-shipping marker is matched case-insensitively")
}

func TestGetOrderMissingID(t *testing.T) {
	q := NewOrderQuery(&fakeOrderAPI{})
	_, err := q.Get(context.Background(), "")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestGetOrderNotFound(t *testing.T) {
	q := NewOrderQuery(&fakeOrderAPI{getErr: apperr.NotFound("order 9 not found")})
	_, err := q.Get(context.Background(), "9")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestGetOrderReadIsIdempotent(t *testing.T) {
	api := &fakeOrderAPI{getOrder: sampleOrder()}
	q := NewOrderQuery(api)

	first, err := q.Get(context.Background(), "1001")
	require.NoError(t, err)
	second, err := q.Get(context.Background(), "1001")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, api.getCalls, "no caching between reads")
}
