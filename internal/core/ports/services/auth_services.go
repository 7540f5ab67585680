package services

import (
	"context"

	"github.com/finwyse/fin_tracker_app/internal/core/domain"
)

// AuthSvcFacade implements the mock OTP login flow. There is a single local
// user; no real identity verification takes place. The OTP is "delivered" by
// logging it, and a configured static code is accepted outside production.
type AuthSvcFacade interface {
	// RequestOTP issues a fresh one-time code and returns its expiry window in
	// seconds. The code itself is never returned to the caller.
	RequestOTP(ctx context.Context) (expiresInSeconds int, err error)

	// VerifyOTP checks the submitted code and, on success, issues a session
	// token pair. Failed attempts return apperrors.ErrValidation.
	VerifyOTP(ctx context.Context, code string) (*domain.AuthTokens, error)

	// Refresh rotates the refresh token and issues a new access token.
	Refresh(ctx context.Context, refreshToken string) (*domain.AuthTokens, error)

	// Logout invalidates the current session.
	Logout(ctx context.Context) error
}
