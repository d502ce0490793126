// Package cart holds the client-owned checkout data: line items, the
// destination address, and the shipping options quoted for them.
package cart

// Item is one cart line. The client session owns it; this layer only reads.
type Item struct {
	ProductID          string            `json:"product_id" validate:"required"`
	VariantID          string            `json:"variant_id" validate:"required"`
	Title              string            `json:"title"`
	Price              float64           `json:"price" validate:"gte=0"`
	Quantity           int               `json:"quantity" validate:"required,min=1"`
	Size               string            `json:"size,omitempty"`
	CustomMeasurements map[string]string `json:"custom_measurements,omitempty"`
	Image              string            `json:"image,omitempty"`
}

// ShippingAddress is the checkout destination. Address2 is the only optional
// field.
type ShippingAddress struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Address1    string `json:"address1" validate:"required"`
	Address2    string `json:"address2,omitempty"`
	City        string `json:"city" validate:"required"`
	Province    string `json:"province" validate:"required"`
	Country     string `json:"country" validate:"required"`
	Zip         string `json:"zip" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	CountryCode string `json:"country_code" validate:"required"`
}

// ShippingOption is one priced courier choice returned by the rate resolver.
// Price is a display string with the currency glyph; the order submitter
// parses it back to a decimal.
type ShippingOption struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Price        string `json:"price"`
	DeliveryTime string `json:"delivery_time"`
	Code         string `json:"code"`
	CarrierID    string `json:"carrier_id,omitempty"`
}

// Subtotal sums unit price times quantity over all lines.
func Subtotal(items []Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}
