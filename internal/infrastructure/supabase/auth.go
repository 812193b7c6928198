package supabase

import (
	"context"

	"go.uber.org/zap"

	"github.com/fredonbytes/backend/internal/domain/shared"
	"github.com/fredonbytes/backend/internal/domain/storefront"
	"github.com/fredonbytes/backend/internal/infrastructure/logger"
)

// AuthService implements storefront.AuthService with password sign in
type AuthService struct {
	auth Authenticator
}

const invalidCredentialsMessage = "Invalid credentials"

// NewAuthService creates an AuthService
func NewAuthService(auth Authenticator) *AuthService {
	return &AuthService{auth: auth}
}

// SignIn verifies the credentials. Any remote error or missing user is an
// INVALID_CREDENTIALS auth error with a fixed message; the remote cause is
// logged and kept on the error, never shown to the caller.
func (s *AuthService) SignIn(ctx context.Context, input storefront.SignInInput) (*storefront.SignInResult, error) {
	user, err := s.auth.SignInWithPassword(ctx, input.Email, input.Password)
	if err != nil {
		logger.L(ctx).Warn("supabase sign in rejected", zap.Error(err))
		return nil, shared.NewAuthError("INVALID_CREDENTIALS", invalidCredentialsMessage).WithCause(err)
	}
	if user == nil {
		return nil, shared.NewAuthError("INVALID_CREDENTIALS", invalidCredentialsMessage)
	}
	return &storefront.SignInResult{UserID: user.ID}, nil
}

// SignOut is a no-op: sessions live in the transport layer
func (s *AuthService) SignOut(ctx context.Context) error {
	return nil
}
