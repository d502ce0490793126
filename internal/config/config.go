// Package config loads service configuration from the environment.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is populated from STOREFRONT_* environment variables.
type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	ListenAddr  string `envconfig:"LISTEN_ADDR" default:":8080"`
	RunLocal    bool   `envconfig:"RUN_LOCAL"`

	// Commerce backend: GraphQL storefront endpoint plus the elevated admin
	// credential used only for order create/read.
	CommerceAPIURL          string `envconfig:"COMMERCE_API_URL" required:"true"`
	CommerceStorefrontToken string `envconfig:"COMMERCE_STOREFRONT_TOKEN" required:"true"`
	CommerceAdminToken      string `envconfig:"COMMERCE_ADMIN_TOKEN" required:"true"`

	// Payment gateway credentials.
	GatewayAPIURL    string `envconfig:"GATEWAY_API_URL" required:"true"`
	GatewayKeyID     string `envconfig:"GATEWAY_KEY_ID" required:"true"`
	GatewayKeySecret string `envconfig:"GATEWAY_KEY_SECRET" required:"true"`

	// Carrier rate API.
	CarrierAPIURL string `envconfig:"CARRIER_API_URL" required:"true"`
	CarrierToken  string `envconfig:"CARRIER_TOKEN" required:"true"`

	// Store constants. The origin postal code is where every shipment leaves
	// from; only the domestic country is serviceable.
	OriginPostalCode    string `envconfig:"ORIGIN_POSTAL_CODE" default:"110001"`
	DomesticCountryCode string `envconfig:"DOMESTIC_COUNTRY_CODE" default:"IN"`
	Currency            string `envconfig:"CURRENCY" default:"INR"`
	CurrencySymbol      string `envconfig:"CURRENCY_SYMBOL" default:"₹"`
	StoreBaseURL        string `envconfig:"STORE_BASE_URL" default:"https://houseofmira.example"`

	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"20s"`

	// MetricsEnabled gates the CloudWatch emitter; off by default for local
	// development.
	MetricsEnabled bool `envconfig:"METRICS_ENABLED"`
}

// Load reads and validates the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("STOREFRONT", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// IsProduction reports whether error detail must be withheld from responses.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}
