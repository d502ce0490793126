package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a configured validator with struct-level checkout rules
// registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// prepaid checkouts have gateway-imposed requirements the field tags
	// cannot express: contact details up front, payment evidence at submit.
	v.RegisterStructValidation(intentStructValidation, IntentRequest{})
	v.RegisterStructValidation(submitOrderStructValidation, SubmitOrderRequest{})

	return v
}

// intentStructValidation enforces the gateway's prepaid prerequisites: a
// reachable email and a phone number on the shipping address.
func intentStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(IntentRequest)
	if req.PaymentMethod != "prepaid" {
		return
	}
	if req.Email == "" {
		sl.ReportError(req.Email, "email", "Email", "required_for_prepaid", "")
	}
	if req.Address.Phone == "" {
		sl.ReportError(req.Address.Phone, "address.phone", "Phone", "required_for_prepaid", "")
	}
}

// submitOrderStructValidation requires the complete gateway-evidence triple
// for prepaid orders; two out of three is still a validation failure.
func submitOrderStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(SubmitOrderRequest)
	if req.PaymentMethod != "prepaid" {
		return
	}
	if req.GatewayPaymentID == "" {
		sl.ReportError(req.GatewayPaymentID, "gateway_payment_id", "GatewayPaymentID", "required_for_prepaid", "")
	}
	if req.GatewayOrderID == "" {
		sl.ReportError(req.GatewayOrderID, "gateway_order_id", "GatewayOrderID", "required_for_prepaid", "")
	}
	if req.GatewaySignature == "" {
		sl.ReportError(req.GatewaySignature, "gateway_signature", "GatewaySignature", "required_for_prepaid", "")
	}
}
