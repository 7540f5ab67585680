package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/finwyse/fin_tracker_app/internal/apperrors"
	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/finwyse/fin_tracker_app/internal/platform/config"
	"github.com/finwyse/fin_tracker_app/internal/utils"
)

// LocalUserID identifies the single local user. The OTP flow is a mock:
// "delivery" is a log line, and no real identity is verified.
const LocalUserID = "local-user"

const otpDigits = 6

// pendingOTP is an issued, not-yet-verified code. Only the bcrypt hash is
// kept.
type pendingOTP struct {
	hash      string
	expiresAt time.Time
}

// session is the single active login. The refresh token is stored hashed and
// rotated on every refresh.
type session struct {
	refreshHash      string
	refreshExpiresAt time.Time
}

// authService implements the mock OTP login flow with in-memory state. A
// restart logs the user out, which is acceptable for a single-user app.
type authService struct {
	BaseService
	cfg   *config.Config
	audit portssvc.AuditSvcFacade
	clock func() time.Time

	mu      sync.Mutex
	pending *pendingOTP
	current *session
}

// NewAuthService creates the mock OTP auth service.
func NewAuthService(cfg *config.Config, audit portssvc.AuditSvcFacade) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, audit: audit, clock: time.Now}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// RequestOTP issues a fresh code, replacing any pending one. The code is
// logged in lieu of SMS or email delivery.
func (s *authService) RequestOTP(ctx context.Context) (int, error) {
	code, err := utils.GenerateOTPCode(otpDigits)
	if err != nil {
		return 0, fmt.Errorf("failed to generate OTP: %w", err)
	}
	hash, err := utils.HashOTPCode(code)
	if err != nil {
		return 0, fmt.Errorf("failed to hash OTP: %w", err)
	}

	s.mu.Lock()
	s.pending = &pendingOTP{hash: hash, expiresAt: s.clock().Add(s.cfg.OTPExpiryDuration)}
	s.mu.Unlock()

	// Mock delivery channel. Never do this with a real OTP provider.
	s.LogInfo(ctx, "OTP issued (mock delivery)", "code", code, "expires_in", s.cfg.OTPExpiryDuration.String())

	if err := s.audit.Record(ctx, domain.AuditLoginOTPSent, "One-time code issued"); err != nil {
		s.LogWarn(ctx, "Failed to record audit entry", "error", err.Error())
	}
	return int(s.cfg.OTPExpiryDuration.Seconds()), nil
}

// VerifyOTP checks the submitted code against the pending hash, or against
// the static dev bypass outside production. Success consumes the pending code
// and starts a session.
func (s *authService) VerifyOTP(ctx context.Context, code string) (*domain.AuthTokens, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.otpMatchesLocked(code) {
		if err := s.audit.Record(ctx, domain.AuditLoginFailed, "Incorrect or expired one-time code"); err != nil {
			s.LogWarn(ctx, "Failed to record audit entry", "error", err.Error())
		}
		return nil, fmt.Errorf("incorrect or expired one-time code: %w", apperrors.ErrValidation)
	}
	s.pending = nil

	tokens, err := s.issueTokensLocked()
	if err != nil {
		return nil, err
	}
	if err := s.audit.Record(ctx, domain.AuditLoginSuccess, "Signed in"); err != nil {
		s.LogWarn(ctx, "Failed to record audit entry", "error", err.Error())
	}
	return tokens, nil
}

// otpMatchesLocked reports whether code is the live pending code or the
// configured dev bypass. Callers hold mu.
func (s *authService) otpMatchesLocked(code string) bool {
	if !s.cfg.IsProduction && s.cfg.MockOTPCode != "" && code == s.cfg.MockOTPCode {
		return true
	}
	if s.pending == nil || s.clock().After(s.pending.expiresAt) {
		return false
	}
	return utils.CheckOTPCode(code, s.pending.hash)
}

// Refresh rotates the refresh token and issues a new access token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*domain.AuthTokens, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.clock().After(s.current.refreshExpiresAt) ||
		!utils.CompareRefreshTokenHash(refreshToken, s.current.refreshHash) {
		s.current = nil
		return nil, fmt.Errorf("invalid refresh token: %w", apperrors.ErrValidation)
	}
	return s.issueTokensLocked()
}

// Logout invalidates the current session and any pending code.
func (s *authService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.pending = nil
	s.mu.Unlock()
	s.LogInfo(ctx, "session ended")
	return nil
}

// issueTokensLocked creates a fresh access/refresh pair and records the new
// refresh hash as the only valid session. Callers hold mu.
func (s *authService) issueTokensLocked() (*domain.AuthTokens, error) {
	access, err := utils.GenerateJWT(LocalUserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := s.clock()
	s.current = &session{
		refreshHash:      utils.HashRefreshToken(refresh),
		refreshExpiresAt: now.Add(s.cfg.RefreshTokenExpiryDuration),
	}
	return &domain.AuthTokens{
		AccessToken:      access,
		AccessExpiresAt:  now.Add(s.cfg.JWTExpiryDuration),
		RefreshToken:     refresh,
		RefreshExpiresAt: s.current.refreshExpiresAt,
	}, nil
}
