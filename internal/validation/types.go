package validation

import "github.com/houseofmira/storefront-api/internal/cart"

// RatesRequest is the payload for POST /api/shipping/rates. Address
// completeness beyond the bind is checked by the resolver, which knows which
// fields rate lookup actually needs.
type RatesRequest struct {
	Items   []cart.Item          `json:"items" validate:"required,min=1,dive"`
	Address cart.ShippingAddress `json:"address" validate:"-"`
}

// IntentRequest is the payload for POST /api/checkout/payment-intent.
type IntentRequest struct {
	Items          []cart.Item          `json:"items" validate:"required,min=1,dive"`
	TotalAmount    float64              `json:"total_amount" validate:"required,gt=0"`
	Email          string               `json:"email" validate:"omitempty,email"`
	Address        cart.ShippingAddress `json:"address" validate:"-"`
	ShippingOption *cart.ShippingOption `json:"shipping_option,omitempty"`
	PaymentMethod  string               `json:"payment_method" validate:"required,oneof=prepaid cod"`
}

// SubmitOrderRequest is the payload for POST /api/checkout/orders. The three
// gateway fields are validated together at struct level for prepaid.
type SubmitOrderRequest struct {
	Items            []cart.Item           `json:"items" validate:"required,min=1,dive"`
	Email            string                `json:"email" validate:"required"`
	Address          *cart.ShippingAddress `json:"address" validate:"required"`
	ShippingOption   *cart.ShippingOption  `json:"shipping_option" validate:"required"`
	TotalAmount      float64               `json:"total_amount" validate:"required,gt=0"`
	PaymentMethod    string                `json:"payment_method" validate:"required,oneof=prepaid cod"`
	GatewayPaymentID string                `json:"gateway_payment_id,omitempty"`
	GatewayOrderID   string                `json:"gateway_order_id,omitempty"`
	GatewaySignature string                `json:"gateway_signature,omitempty"`
}

// UpdatePhoneRequest is the payload for PUT /api/account/phone.
type UpdatePhoneRequest struct {
	CustomerAccessToken string `json:"customer_access_token" validate:"required"`
	Phone               string `json:"phone" validate:"required"`
}

// UpdateAddressRequest is the payload for PUT /api/account/address.
type UpdateAddressRequest struct {
	CustomerAccessToken string               `json:"customer_access_token" validate:"required"`
	AddressID           string               `json:"address_id" validate:"required"`
	Address             cart.ShippingAddress `json:"address"`
}
