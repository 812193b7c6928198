package config

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/fredonbytes/backend/internal/domain/shared"
	"github.com/fredonbytes/backend/internal/domain/storefront"
)

// Environment keys read by the provider configuration loader
const (
	EnvMode                   = "FREDONBYTES_MODE"
	EnvSupabaseURL            = "SUPABASE_URL"
	EnvSupabaseAnonKey        = "SUPABASE_ANON_KEY"
	EnvSupabaseServiceRoleKey = "SUPABASE_SERVICE_ROLE_KEY"
	EnvDatabaseURL            = "DATABASE_URL"
	EnvVendureShopAPIURL      = "VENDURE_SHOP_API_URL"
	EnvVendureChannelToken    = "VENDURE_CHANNEL_TOKEN"
)

// DefaultVendureChannelToken is used when VENDURE_CHANNEL_TOKEN is unset
const DefaultVendureChannelToken = "__default_channel__"

// ErrCodeConfigInvalid is the code of every configuration validation error
const ErrCodeConfigInvalid = "CONFIG_INVALID"

// ProviderKeys lists every environment key the provider loader reads
var ProviderKeys = []string{
	EnvMode,
	EnvSupabaseURL,
	EnvSupabaseAnonKey,
	EnvSupabaseServiceRoleKey,
	EnvDatabaseURL,
	EnvVendureShopAPIURL,
	EnvVendureChannelToken,
}

// ProviderConfig is the server-side configuration of the selected provider.
// It is either *SupabaseConfig or *VendureConfig.
type ProviderConfig interface {
	Mode() storefront.Mode
	providerConfig()
}

// ClientConfig is the subset of provider configuration that is safe to expose
// outside the server. It is either *SupabaseClientConfig or *VendureClientConfig.
type ClientConfig interface {
	Mode() storefront.Mode
	clientConfig()
}

// SupabaseConfig configures the profile-store provider. Contains secrets.
type SupabaseConfig struct {
	URL            string `env:"SUPABASE_URL" validate:"required,http_url"`
	AnonKey        string `env:"SUPABASE_ANON_KEY" validate:"required"`
	ServiceRoleKey string `env:"SUPABASE_SERVICE_ROLE_KEY" validate:"required"`
	DatabaseURL    string `env:"DATABASE_URL" validate:"required,postgres_url"`
}

// Mode implements ProviderConfig
func (c *SupabaseConfig) Mode() storefront.Mode { return storefront.ModeSupabase }
func (c *SupabaseConfig) providerConfig()       {}

// VendureConfig configures the commerce-engine provider
type VendureConfig struct {
	ShopAPIURL   string `env:"VENDURE_SHOP_API_URL" validate:"required,http_url"`
	ChannelToken string `env:"VENDURE_CHANNEL_TOKEN" validate:"required"`
}

// Mode implements ProviderConfig
func (c *VendureConfig) Mode() storefront.Mode { return storefront.ModeVendure }
func (c *VendureConfig) providerConfig()       {}

// SupabaseClientConfig is the browser-safe projection of SupabaseConfig.
// It has no service-role key or database URL fields.
type SupabaseClientConfig struct {
	URL     string `json:"supabaseUrl"`
	AnonKey string `json:"supabaseAnonKey"`
}

// Mode implements ClientConfig
func (c *SupabaseClientConfig) Mode() storefront.Mode { return storefront.ModeSupabase }
func (c *SupabaseClientConfig) clientConfig()         {}

// VendureClientConfig is the browser-safe projection of VendureConfig
type VendureClientConfig struct {
	ShopAPIURL   string `json:"vendureShopApiUrl"`
	ChannelToken string `json:"vendureChannelToken"`
}

// Mode implements ClientConfig
func (c *VendureClientConfig) Mode() storefront.Mode { return storefront.ModeVendure }
func (c *VendureClientConfig) clientConfig()         {}

type modeInput struct {
	Mode string `env:"FREDONBYTES_MODE" validate:"required,oneof=supabase vendure"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func providerValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := fld.Tag.Get("env"); name != "" {
				return name
			}
			return fld.Name
		})
		_ = validate.RegisterValidation("postgres_url", isPostgresURL)
	})
	return validate
}

// isPostgresURL accepts postgres:// or postgresql:// connection URLs with a host
func isPostgresURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil || u.Host == "" {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "postgres", "postgresql":
		return true
	default:
		return false
	}
}

// LoadConfig validates env-style input against the schema of the mode it names
// and returns the server configuration for that mode.
// The mode is never defaulted here: a missing mode is a validation error.
func LoadConfig(input map[string]string) (ProviderConfig, error) {
	mode := modeInput{Mode: input[EnvMode]}
	if err := validateStruct(mode); err != nil {
		return nil, err
	}

	switch storefront.Mode(mode.Mode) {
	case storefront.ModeSupabase:
		cfg := &SupabaseConfig{
			URL:            input[EnvSupabaseURL],
			AnonKey:        input[EnvSupabaseAnonKey],
			ServiceRoleKey: input[EnvSupabaseServiceRoleKey],
			DatabaseURL:    input[EnvDatabaseURL],
		}
		if err := validateStruct(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	default:
		cfg := &VendureConfig{
			ShopAPIURL:   input[EnvVendureShopAPIURL],
			ChannelToken: input[EnvVendureChannelToken],
		}
		if cfg.ChannelToken == "" {
			cfg.ChannelToken = DefaultVendureChannelToken
		}
		if err := validateStruct(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
}

// LoadClientConfig validates input exactly like LoadConfig but returns only the
// fields that are safe to hand to a browser.
func LoadClientConfig(input map[string]string) (ClientConfig, error) {
	cfg, err := LoadConfig(input)
	if err != nil {
		return nil, err
	}
	return ClientConfigOf(cfg), nil
}

// ClientConfigOf projects a validated server configuration onto its client-safe variant
func ClientConfigOf(cfg ProviderConfig) ClientConfig {
	switch c := cfg.(type) {
	case *SupabaseConfig:
		return &SupabaseClientConfig{URL: c.URL, AnonKey: c.AnonKey}
	case *VendureConfig:
		return &VendureClientConfig{ShopAPIURL: c.ShopAPIURL, ChannelToken: c.ChannelToken}
	default:
		return nil
	}
}

// validateStruct runs the validator and converts the first failure into a
// validation DomainError naming the offending key.
func validateStruct(s any) error {
	err := providerValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return shared.NewValidationError(ErrCodeConfigInvalid, err.Error())
	}

	fe := fieldErrs[0]
	return shared.NewValidationError(ErrCodeConfigInvalid, describeFieldError(fe))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "url", "http_url", "postgres_url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), strings.Join(strings.Fields(fe.Param()), " "))
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
