// Package container wires exactly one storefront provider adapter behind the
// service contracts, chosen by the validated provider configuration.
package container

import (
	"errors"
	"fmt"

	"github.com/fredonbytes/backend/internal/domain/storefront"
)

var (
	// ErrFactoryRequired is returned when the selected mode has no factory.
	// This is a wiring mistake, not a runtime condition.
	ErrFactoryRequired = errors.New("factory is required")
	// ErrUnknownMode is returned when the selector names an unsupported mode
	ErrUnknownMode = errors.New("unknown provider mode")
	// ErrNilServices is returned when a factory succeeds without building services
	ErrNilServices = errors.New("factory returned no services")
)

// Factory builds the services of one provider. It is only called when its
// mode is selected, so it may open connections eagerly.
type Factory func() (*storefront.Services, error)

// Factories holds one factory per supported mode
type Factories struct {
	Supabase Factory
	Vendure  Factory
}

func (f Factories) forMode(mode storefront.Mode) (Factory, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	if mode == storefront.ModeSupabase {
		return f.Supabase, nil
	}
	return f.Vendure, nil
}

// ModeSelector resolves the active mode. Both provider configuration variants satisfy it.
type ModeSelector interface {
	Mode() storefront.Mode
}

// ServiceContainer exposes the services of the selected provider.
// It is immutable after New returns.
type ServiceContainer struct {
	mode     storefront.Mode
	services *storefront.Services
}

// New resolves the mode from selector and invokes only the matching factory
func New(selector ModeSelector, factories Factories) (*ServiceContainer, error) {
	if selector == nil {
		return nil, fmt.Errorf("%w: no mode selector", ErrUnknownMode)
	}
	mode := selector.Mode()

	factory, err := factories.forMode(mode)
	if err != nil {
		return nil, err
	}
	if factory == nil {
		return nil, fmt.Errorf("%s %w", mode, ErrFactoryRequired)
	}

	services, err := factory()
	if err != nil {
		return nil, fmt.Errorf("build %s services: %w", mode, err)
	}
	if services == nil {
		return nil, fmt.Errorf("%s: %w", mode, ErrNilServices)
	}

	return &ServiceContainer{mode: mode, services: services}, nil
}

// Mode returns the mode the container was built for
func (c *ServiceContainer) Mode() storefront.Mode { return c.mode }

func (c *ServiceContainer) Auth() storefront.AuthService         { return c.services.Auth }
func (c *ServiceContainer) Catalog() storefront.CatalogService   { return c.services.Catalog }
func (c *ServiceContainer) Cart() storefront.CartService         { return c.services.Cart }
func (c *ServiceContainer) Checkout() storefront.CheckoutService { return c.services.Checkout }
func (c *ServiceContainer) Orders() storefront.OrderService      { return c.services.Orders }
func (c *ServiceContainer) Accounts() storefront.AccountService  { return c.services.Accounts }
