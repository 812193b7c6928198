package supabase

import (
	"context"

	"go.uber.org/zap"

	"github.com/fredonbytes/backend/internal/domain/shared"
	"github.com/fredonbytes/backend/internal/domain/storefront"
	"github.com/fredonbytes/backend/internal/infrastructure/logger"
)

// AccountService implements storefront.AccountService over the profiles table
type AccountService struct {
	db RecordReader
}

// NewAccountService creates an AccountService
func NewAccountService(db RecordReader) *AccountService {
	return &AccountService{db: db}
}

// GetProfile returns the profile of userID. Lookup failures are reported as
// PROFILE_NOT_FOUND so callers cannot enumerate existing accounts.
func (s *AccountService) GetProfile(ctx context.Context, userID string) (*storefront.Profile, error) {
	var row profileRow
	found, err := s.db.SelectOne(ctx, Query{
		Table:   tableProfiles,
		Columns: []string{"id", "email", "first_name", "last_name"},
		Filters: []Filter{Eq("id", userID)},
	}, &row)
	if err != nil {
		logger.L(ctx).Warn("supabase profile lookup failed", zap.String("user_id", userID), zap.Error(err))
		return nil, shared.NewNotFoundError("PROFILE_NOT_FOUND", "Profile not found").WithCause(err)
	}
	if !found {
		return nil, shared.NewNotFoundError("PROFILE_NOT_FOUND", "Profile not found")
	}

	return &storefront.Profile{
		UserID:    row.ID,
		Email:     row.Email,
		FirstName: row.FirstName,
		LastName:  row.LastName,
	}, nil
}
