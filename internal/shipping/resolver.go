// Package shipping resolves priced shipping options for a cart and a
// destination address. Pure read-through: one weight lookup per line item,
// one serviceability call, nothing cached between invocations.
package shipping

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/houseofmira/storefront-api/internal/apperr"
	"github.com/houseofmira/storefront-api/internal/carrier"
	"github.com/houseofmira/storefront-api/internal/cart"
)

// WeightSource provides per-variant unit weight in kilograms.
type WeightSource interface {
	VariantWeight(ctx context.Context, variantID string) (float64, error)
}

// RateAPI is the carrier serviceability query.
type RateAPI interface {
	CheckServiceability(ctx context.Context, q carrier.RateQuery) ([]carrier.CourierRate, error)
}

// Resolver turns a cart and destination into a courier option list.
type Resolver struct {
	weights         WeightSource
	rates           RateAPI
	originPostal    string
	domesticCountry string
	currencySymbol  string
}

// NewResolver wires the resolver to its two external dependencies and the
// store's fixed origin.
func NewResolver(weights WeightSource, rates RateAPI, originPostal, domesticCountry, currencySymbol string) *Resolver {
	return &Resolver{
		weights:         weights,
		rates:           rates,
		originPostal:    originPostal,
		domesticCountry: domesticCountry,
		currencySymbol:  currencySymbol,
	}
}

// Resolve validates its inputs, computes aggregate shipment weight, and
// queries the carrier. Options come back in carrier order, prices formatted
// from the raw numeric rate. Non-domestic destinations are an explicit
// unsupported-region failure, never a silent fallback.
func (r *Resolver) Resolve(ctx context.Context, items []cart.Item, dest cart.ShippingAddress) ([]cart.ShippingOption, error) {
	if len(items) == 0 {
		return nil, apperr.Validation("cart is empty")
	}
	if dest.Zip == "" || dest.CountryCode == "" {
		return nil, apperr.Validation("shipping address needs a postal code and country")
	}

	domestic := strings.EqualFold(dest.CountryCode, r.domesticCountry)
	if !domestic {
		if dest.City == "" || dest.Province == "" {
			return nil, apperr.Validation("international addresses need a city and state")
		}
		return nil, apperr.UnsupportedRegion("shipping outside " + r.domesticCountry + " is not available")
	}

	weight, err := r.shipmentWeight(ctx, items)
	if err != nil {
		return nil, err
	}
	if weight <= 0 {
		return nil, apperr.Validation("shipment weight must be positive")
	}

	couriers, err := r.rates.CheckServiceability(ctx, carrier.RateQuery{
		PickupPostcode:   r.originPostal,
		DeliveryPostcode: dest.Zip,
		WeightKg:         weight,
		CashOnDelivery:   false,
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"destination": dest.Zip,
		"weight_kg":   weight,
		"couriers":    len(couriers),
	}).Info("resolved shipping rates")

	options := make([]cart.ShippingOption, 0, len(couriers))
	for _, c := range couriers {
		id := strconv.Itoa(c.CompanyID)
		options = append(options, cart.ShippingOption{
			ID:           id,
			Title:        c.Name,
			Price:        fmt.Sprintf("%s%.2f", r.currencySymbol, c.Rate),
			DeliveryTime: c.EstimatedDelivery,
			Code:         slug(c.Name),
			CarrierID:    id,
		})
	}
	return options, nil
}

// shipmentWeight sums unit weight times quantity over the cart.
func (r *Resolver) shipmentWeight(ctx context.Context, items []cart.Item) (float64, error) {
	var total float64
	for _, it := range items {
		if it.VariantID == "" {
			return 0, apperr.Validation("cart item is missing a variant")
		}
		w, err := r.weights.VariantWeight(ctx, it.VariantID)
		if err != nil {
			return 0, err
		}
		total += w * float64(it.Quantity)
	}
	return total, nil
}

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
