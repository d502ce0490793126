package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/houseofmira/storefront-api/internal/apperr"
	"github.com/houseofmira/storefront-api/internal/cart"
	"github.com/houseofmira/storefront-api/internal/gateway"
)

type fakeGateway struct {
	lastReq gateway.OrderRequest
	order   *gateway.Order
	err     error
	calls   int
}

func (f *fakeGateway) CreateOrder(ctx context.Context, in gateway.OrderRequest) (*gateway.Order, error) {
	f.calls++
	f.lastReq = in
	if f.err != nil {
		return nil, f.err
	}
	if f.order != nil {
		return f.order, nil
	}
	return &gateway.Order{ID: "gw_order_1", Amount: in.Amount, Currency: in.Currency, Receipt: in.Receipt, Status: "created"}, nil
}

func prepaidInput() IntentInput {
	return IntentInput{
		Items: []cart.Item{
			{ProductID: "p1", VariantID: "v1", Title: "Silk Kurta", Price: 5499.95, Quantity: 1},
		},
		TotalAmount:   5499.95,
		Email:         "buyer@example.com",
		Address:       cart.ShippingAddress{Phone: "9000000001", City: "Mumbai", Zip: "400001"},
		PaymentMethod: PaymentMethodPrepaid,
	}
}

func TestCreateIntentEmptyCart(t *testing.T) {
	ic := NewIntentCreator(&fakeGateway{}, "INR")

	in := prepaidInput()
	in.Items = nil
	_, err := ic.Create(context.Background(), in)

	require.Error(t, err)
	ae := apperr.From(err)
	assert.Equal(t, apperr.KindValidation, ae.Kind)
	assert.Equal(t, "Invalid cart items", ae.Message)
}

func TestCreateIntentNonPositiveAmount(t *testing.T) {
	ic := NewIntentCreator(&fakeGateway{}, "INR")

	in := prepaidInput()
	in.TotalAmount = 0
	_, err := ic.Create(context.Background(), in)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestCreateIntentUnknownMethod(t *testing.T) {
	ic := NewIntentCreator(&fakeGateway{}, "INR")

	in := prepaidInput()
	in.PaymentMethod = "wallet"
	_, err := ic.Create(context.Background(), in)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestCreateIntentCODSkipsGateway(t *testing.T) {
	gw := &fakeGateway{}
	ic := NewIntentCreator(gw, "INR")

	in := prepaidInput()
	in.PaymentMethod = PaymentMethodCOD
	in.Email = "" // no payment-specific validation for COD

	res, err := ic.Create(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, res.IntentRequired)
	assert.Zero(t, gw.calls, "COD must not call the gateway")
}

func TestCreateIntentPrepaidRequiresEmailAndPhone(t *testing.T) {
	ic := NewIntentCreator(&fakeGateway{}, "INR")

	noEmail := prepaidInput()
	noEmail.Email = ""
	_, err := ic.Create(context.Background(), noEmail)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	noPhone := prepaidInput()
	noPhone.Address.Phone = ""
	_, err = ic.Create(context.Background(), noPhone)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestCreateIntentPrepaid(t *testing.T) {
	gw := &fakeGateway{}
	ic := NewIntentCreator(gw, "INR")

	res, err := ic.Create(context.Background(), prepaidInput())
	require.NoError(t, err)

	assert.True(t, res.IntentRequired)
	assert.Equal(t, "gw_order_1", res.GatewayOrderID)
	assert.Equal(t, int64(549995), res.Amount, "amount must be exact minor units")
	assert.Equal(t, "INR", res.Currency)

	require.Equal(t, 1, gw.calls)
	assert.Equal(t, int64(549995), gw.lastReq.Amount)
	assert.Equal(t, "INR", gw.lastReq.Currency)
	assert.NotEmpty(t, gw.lastReq.Receipt)
	assert.Contains(t, gw.lastReq.Notes["items"], "Silk Kurta x1")
}

func TestCreateIntentGatewayFailureIsPaymentKind(t *testing.T) {
	gw := &fakeGateway{err: apperr.Payment("gateway order create", errors.New("503"))}
	ic := NewIntentCreator(gw, "INR")

	_, err := ic.Create(context.Background(), prepaidInput())
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindPayment))
	assert.False(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestReceiptsAreUnique(t *testing.T) {
	ic := NewIntentCreator(&fakeGateway{}, "INR")
	a := ic.receipt()
	b := ic.receipt()
	assert.NotEqual(t, a, b)
}
