// Package supabase implements the storefront contracts on top of a managed
// Postgres/auth platform: GoTrue for sign in, PostgREST for table access and an
// optional direct Postgres connection for readiness checks.
package supabase

import (
	"context"
	"strings"

	"github.com/fredonbytes/backend/internal/infrastructure/config"
)

// ProviderName labels logs and spans emitted by this adapter
const ProviderName = "supabase"

// Filter is an equality predicate on one column
type Filter struct {
	Column string
	Value  string
}

// Eq builds an equality filter
func Eq(column, value string) Filter {
	return Filter{Column: column, Value: value}
}

// Query selects columns from one table. A zero Limit means no limit.
type Query struct {
	Table   string
	Columns []string
	Filters []Filter
	Limit   int
}

func (q Query) selectList() string {
	if len(q.Columns) == 0 {
		return "*"
	}
	return strings.Join(q.Columns, ",")
}

// AuthUser is the identity returned by a successful password sign in
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Authenticator verifies email/password credentials.
// A nil user with a nil error means the platform accepted the call but returned no user.
type Authenticator interface {
	SignInWithPassword(ctx context.Context, email, password string) (*AuthUser, error)
}

// RecordReader reads rows. dst is decoded like a JSON response body:
// SelectOne fills a struct pointer, SelectMany fills a slice pointer.
type RecordReader interface {
	SelectOne(ctx context.Context, q Query, dst any) (found bool, err error)
	SelectMany(ctx context.Context, q Query, dst any) error
}

// RecordWriter inserts rows
type RecordWriter interface {
	Insert(ctx context.Context, table string, values map[string]any) error
}

// Connection is the narrow capability the services need.
// Write access is optional and discovered with a type assertion on RecordWriter.
type Connection interface {
	Authenticator
	RecordReader
}

// Clients holds one connection per privilege level.
// Public uses the anon key and is the only one the storefront services touch.
// Admin uses the service-role key and is reserved for server-side tooling.
type Clients struct {
	Public Connection
	Admin  Connection
}

// NewClients builds public and admin REST connections from cfg
func NewClients(cfg *config.SupabaseConfig, opts ...Option) *Clients {
	return &Clients{
		Public: NewRESTClient(cfg.URL, cfg.AnonKey, opts...),
		Admin:  NewRESTClient(cfg.URL, cfg.ServiceRoleKey, opts...),
	}
}
