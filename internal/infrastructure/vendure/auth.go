package vendure

import (
	"context"

	"go.uber.org/zap"

	"github.com/fredonbytes/backend/internal/domain/shared"
	"github.com/fredonbytes/backend/internal/domain/storefront"
	"github.com/fredonbytes/backend/internal/infrastructure/logger"
)

// AuthService implements storefront.AuthService with the Shop API login mutation
type AuthService struct {
	client *Client
}

// NewAuthService creates an AuthService
func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// SignIn logs the shopper in. A rejected login is INVALID_CREDENTIALS, a
// transport failure is VENDURE_SIGNIN_FAILED.
func (s *AuthService) SignIn(ctx context.Context, input storefront.SignInInput) (*storefront.SignInResult, error) {
	var data signInData
	err := s.client.mutate(ctx, SignInDocument, map[string]any{
		"email":    input.Email,
		"password": input.Password,
	}, &data)
	if err != nil {
		logger.L(ctx).Warn("vendure sign in failed", zap.Error(err))
		return nil, shared.WrapProviderError("VENDURE_SIGNIN_FAILED", err)
	}

	if data.Login == nil {
		return &storefront.SignInResult{UserID: DefaultUserID}, nil
	}
	if rejected := data.Login.err(); rejected != nil {
		return nil, shared.NewAuthError("INVALID_CREDENTIALS", data.Login.Message).WithCause(rejected)
	}

	userID := data.Login.ID
	if userID == "" {
		userID = DefaultUserID
	}
	return &storefront.SignInResult{UserID: userID}, nil
}

// SignOut is a no-op: sessions live in the transport layer
func (s *AuthService) SignOut(ctx context.Context) error {
	return nil
}
