package commerce

import "github.com/houseofmira/storefront-api/internal/cart"

// Financial statuses the storefront writes. The backend owns every later
// transition.
const (
	FinancialStatusPaid    = "paid"
	FinancialStatusPending = "pending"
)

// OrderRequest is the envelope the order-create endpoint expects.
type OrderRequest struct {
	Order OrderPayload `json:"order"`
}

// OrderPayload is the order as submitted. Field names follow the backend's
// snake_case wire format.
type OrderPayload struct {
	Email           string          `json:"email"`
	LineItems       []OrderLineItem `json:"line_items"`
	ShippingAddress *OrderAddress   `json:"shipping_address,omitempty"`
	ShippingLines   []ShippingLine  `json:"shipping_lines,omitempty"`
	FinancialStatus string          `json:"financial_status"`
	Transactions    []Transaction   `json:"transactions,omitempty"`
	Note            string          `json:"note,omitempty"`
	Tags            string          `json:"tags,omitempty"`
	SendReceipt     bool            `json:"send_receipt"`
}

// OrderLineItem references a variant with quantity and optional properties.
type OrderLineItem struct {
	VariantID  string          `json:"variant_id"`
	Quantity   int             `json:"quantity"`
	Properties []cart.Property `json:"properties,omitempty"`
}

// OrderAddress is the backend's address shape.
type OrderAddress struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2,omitempty"`
	City        string `json:"city"`
	Province    string `json:"province"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
	Zip         string `json:"zip"`
	Phone       string `json:"phone"`
}

// ShippingLine records the buyer's selected shipping option on the order.
type ShippingLine struct {
	Title string `json:"title"`
	Price string `json:"price"`
	Code  string `json:"code,omitempty"`
}

// Transaction is the payment evidence attached to prepaid orders.
type Transaction struct {
	Kind    string `json:"kind"`
	Status  string `json:"status"`
	Amount  string `json:"amount"`
	Gateway string `json:"gateway,omitempty"`
}

// Order is the backend's order record as read back. Read-only to this layer.
type Order struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"order_number"`
	Email           string          `json:"email"`
	LineItems       []OrderLineRead `json:"line_items"`
	ShippingAddress *OrderAddress   `json:"shipping_address,omitempty"`
	ShippingLines   []ShippingLine  `json:"shipping_lines,omitempty"`
	FinancialStatus string          `json:"financial_status"`
	TotalPrice      string          `json:"total_price"`
	SubtotalPrice   string          `json:"subtotal_price"`
	Fulfillments    []Fulfillment   `json:"fulfillments,omitempty"`
	OrderStatusURL  string          `json:"order_status_url,omitempty"`
	CreatedAt       string          `json:"created_at"`
}

// OrderLineRead is one line item as read back, including the flattened
// properties submitted at creation.
type OrderLineRead struct {
	Title      string          `json:"title"`
	VariantID  string          `json:"variant_id"`
	Quantity   int             `json:"quantity"`
	Price      string          `json:"price"`
	Properties []cart.Property `json:"properties,omitempty"`
}

// Fulfillment carries tracking info once the backend ships the order.
type Fulfillment struct {
	TrackingCompany string `json:"tracking_company,omitempty"`
	TrackingNumber  string `json:"tracking_number,omitempty"`
	TrackingURL     string `json:"tracking_url,omitempty"`
}
