package vendure

import (
	"context"

	"go.uber.org/zap"

	"github.com/fredonbytes/backend/internal/domain/shared"
	"github.com/fredonbytes/backend/internal/domain/storefront"
	"github.com/fredonbytes/backend/internal/infrastructure/logger"
)

// AccountService implements storefront.AccountService with the active customer
type AccountService struct {
	client *Client
}

// NewAccountService creates an AccountService
func NewAccountService(client *Client) *AccountService {
	return &AccountService{client: client}
}

// GetProfile returns the active customer. UserID falls back to userID when the
// engine reports no customer id.
func (s *AccountService) GetProfile(ctx context.Context, userID string) (*storefront.Profile, error) {
	var data activeCustomerData
	err := s.client.query(ctx, ActiveCustomerDocument, map[string]any{"userId": userID}, &data)
	if err != nil {
		logger.L(ctx).Warn("vendure active customer query failed", zap.String("user_id", userID), zap.Error(err))
		return nil, shared.WrapProviderError("VENDURE_ACCOUNT_FETCH_FAILED", err)
	}

	profile := &storefront.Profile{UserID: userID}
	if c := data.ActiveCustomer; c != nil {
		if c.ID != "" {
			profile.UserID = c.ID
		}
		profile.Email = c.EmailAddress
		profile.FirstName = c.FirstName
		profile.LastName = c.LastName
	}
	return profile, nil
}
