// Package storefront contains the Storefront bounded context.
// It defines the service contracts a storefront UI calls, independent of the
// provider that backs them.
//
// Key concepts:
//   - Mode: selects the backing provider (Supabase or Vendure)
//   - Services: the bundle of six contracts (auth, catalog, cart, checkout, orders, accounts)
//   - Cart, Order, Profile: request-scoped DTOs read from or derived from the provider
//
// Design Pattern: Ports & Adapters
//   - Ports (interfaces) are defined here in the domain layer
//   - Adapters (implementations) are in the infrastructure layer
package storefront
