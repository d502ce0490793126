// Package commerce is the client for the commerce backend: GraphQL for
// catalog/customer reads and mutations, REST for order create/read. The
// backend is the system of record; nothing is cached or persisted here.
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/houseofmira/storefront-api/internal/apperr"
	"github.com/houseofmira/storefront-api/internal/cart"
)

// Config groups the client's endpoints and credentials. AdminToken is the
// elevated credential, used only for order create/read.
type Config struct {
	BaseURL         string
	StorefrontToken string
	AdminToken      string
	Timeout         time.Duration
}

// Client talks to the commerce backend.
type Client struct {
	baseURL         string
	storefrontToken string
	adminToken      string
	http            *http.Client
}

// New returns a configured Client.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		storefrontToken: cfg.StorefrontToken,
		adminToken:      cfg.AdminToken,
		http:            &http.Client{Timeout: timeout},
	}
}

// graphQLRequest is the wire shape for GraphQL calls.
type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

// doGraphQL posts a query to the storefront endpoint and decodes the data
// object into out.
func (c *Client) doGraphQL(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("marshal graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/graphql", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build graphql request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Storefront-Access-Token", c.storefrontToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return apperr.Upstream("commerce graphql call", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperr.Upstream("commerce graphql call", fmt.Errorf("status %d", resp.StatusCode))
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphQLError  `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return apperr.Upstream("commerce graphql call", fmt.Errorf("decode response: %w", err))
	}
	if len(envelope.Errors) > 0 {
		return apperr.Upstream("commerce graphql call", fmt.Errorf("%s", envelope.Errors[0].Message))
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return apperr.Upstream("commerce graphql call", fmt.Errorf("decode data: %w", err))
		}
	}
	return nil
}

const variantWeightQuery = `
query variantWeight($id: ID!) {
  productVariant(id: $id) {
    weight
    weightUnit
  }
}`

// VariantWeight fetches one variant's unit weight and normalizes it to
// kilograms.
func (c *Client) VariantWeight(ctx context.Context, variantID string) (float64, error) {
	var data struct {
		ProductVariant *struct {
			Weight     float64 `json:"weight"`
			WeightUnit string  `json:"weightUnit"`
		} `json:"productVariant"`
	}
	if err := c.doGraphQL(ctx, variantWeightQuery, map[string]interface{}{"id": variantID}, &data); err != nil {
		return 0, err
	}
	if data.ProductVariant == nil {
		return 0, apperr.NotFound("variant " + variantID + " not found")
	}
	return toKilograms(data.ProductVariant.Weight, data.ProductVariant.WeightUnit), nil
}

func toKilograms(weight float64, unit string) float64 {
	switch strings.ToUpper(unit) {
	case "GRAMS":
		return weight / 1000
	case "POUNDS":
		return weight * 0.453592
	case "OUNCES":
		return weight * 0.0283495
	default: // KILOGRAMS or unspecified
		return weight
	}
}

const customerPhoneMutation = `
mutation customerUpdate($customerAccessToken: String!, $customer: CustomerUpdateInput!) {
  customerUpdate(customerAccessToken: $customerAccessToken, customer: $customer) {
    customer { id }
    customerUserErrors { message }
  }
}`

const customerAddressMutation = `
mutation customerAddressUpdate($customerAccessToken: String!, $id: ID!, $address: MailingAddressInput!) {
  customerAddressUpdate(customerAccessToken: $customerAccessToken, id: $id, address: $address) {
    customerAddress { id }
    customerUserErrors { message }
  }
}`

type customerUserError struct {
	Message string `json:"message"`
}

// UpdateCustomerPhone sets the phone number on the customer the access token
// belongs to.
func (c *Client) UpdateCustomerPhone(ctx context.Context, customerAccessToken, phone string) error {
	var data struct {
		CustomerUpdate struct {
			CustomerUserErrors []customerUserError `json:"customerUserErrors"`
		} `json:"customerUpdate"`
	}
	vars := map[string]interface{}{
		"customerAccessToken": customerAccessToken,
		"customer":            map[string]interface{}{"phone": phone},
	}
	if err := c.doGraphQL(ctx, customerPhoneMutation, vars, &data); err != nil {
		return err
	}
	if errs := data.CustomerUpdate.CustomerUserErrors; len(errs) > 0 {
		return apperr.Validation(errs[0].Message)
	}
	return nil
}

// UpdateCustomerAddress updates the address identified by addressID.
func (c *Client) UpdateCustomerAddress(ctx context.Context, customerAccessToken, addressID string, addr cart.ShippingAddress) error {
	var data struct {
		CustomerAddressUpdate struct {
			CustomerUserErrors []customerUserError `json:"customerUserErrors"`
		} `json:"customerAddressUpdate"`
	}
	vars := map[string]interface{}{
		"customerAccessToken": customerAccessToken,
		"id":                  addressID,
		"address": map[string]interface{}{
			"firstName": addr.FirstName,
			"lastName":  addr.LastName,
			"address1":  addr.Address1,
			"address2":  addr.Address2,
			"city":      addr.City,
			"province":  addr.Province,
			"country":   addr.Country,
			"zip":       addr.Zip,
			"phone":     addr.Phone,
		},
	}
	if err := c.doGraphQL(ctx, customerAddressMutation, vars, &data); err != nil {
		return err
	}
	if errs := data.CustomerAddressUpdate.CustomerUserErrors; len(errs) > 0 {
		return apperr.Validation(errs[0].Message)
	}
	return nil
}

// CreateOrder submits the assembled order in a single call. The call is not
// retried and carries no idempotency key: a response lost on the wire can
// leave an order the caller never learns about. Known limitation.
func (c *Client) CreateOrder(ctx context.Context, order OrderRequest) (*Order, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("marshal order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/admin/orders.json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build order create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Admin-Access-Token", c.adminToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperr.Upstream("commerce order create", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, apperr.Upstream("commerce order create", fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail))))
	}

	var out struct {
		Order Order `json:"order"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, apperr.Upstream("commerce order create", fmt.Errorf("decode response: %w", err))
	}
	return &out.Order, nil
}

// GetOrder reads one order by id.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/admin/orders/"+orderID+".json", nil)
	if err != nil {
		return nil, fmt.Errorf("build order read request: %w", err)
	}
	req.Header.Set("X-Admin-Access-Token", c.adminToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperr.Upstream("commerce order read", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperr.NotFound("order " + orderID + " not found")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperr.Upstream("commerce order read", fmt.Errorf("status %d", resp.StatusCode))
	}

	var out struct {
		Order Order `json:"order"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, apperr.Upstream("commerce order read", fmt.Errorf("decode response: %w", err))
	}
	return &out.Order, nil
}
