// Package carrier is the client for the shipping-rate API's serviceability
// query: which couriers will carry a parcel of a given weight between two
// postal codes, and at what price.
package carrier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/houseofmira/storefront-api/internal/apperr"
)

// Config carries the carrier endpoint and token.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client talks to the carrier rate API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New returns a configured Client.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http:    &http.Client{Timeout: timeout},
	}
}

// RateQuery is one serviceability lookup.
type RateQuery struct {
	PickupPostcode   string
	DeliveryPostcode string
	WeightKg         float64
	CashOnDelivery   bool
}

// CourierRate is one courier's quote.
type CourierRate struct {
	CompanyID         int     `json:"courier_company_id"`
	Name              string  `json:"courier_name"`
	Rate              float64 `json:"rate"`
	EstimatedDelivery string  `json:"etd"`
}

type serviceabilityResponse struct {
	Data struct {
		AvailableCourierCompanies []CourierRate `json:"available_courier_companies"`
	} `json:"data"`
}

// CheckServiceability returns the couriers able to serve the query, in the
// order the carrier API returns them.
func (c *Client) CheckServiceability(ctx context.Context, q RateQuery) ([]CourierRate, error) {
	params := url.Values{}
	params.Set("pickup_postcode", q.PickupPostcode)
	params.Set("delivery_postcode", q.DeliveryPostcode)
	params.Set("weight", strconv.FormatFloat(q.WeightKg, 'f', 2, 64))
	cod := "0"
	if q.CashOnDelivery {
		cod = "1"
	}
	params.Set("cod", cod)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/courier/serviceability?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build serviceability request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperr.Upstream("carrier serviceability", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.Upstream("carrier serviceability", fmt.Errorf("status %d", resp.StatusCode))
	}

	var out serviceabilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, apperr.Upstream("carrier serviceability", fmt.Errorf("decode response: %w", err))
	}
	return out.Data.AvailableCourierCompanies, nil
}
