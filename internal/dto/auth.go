package dto

import "time"

// VerifyOTPRequest carries the submitted one-time code.
type VerifyOTPRequest struct {
	Code string `json:"code" binding:"required,numeric,len=6"`
}

// OTPRequestedResponse reports how long the issued code stays valid.
type OTPRequestedResponse struct {
	ExpiresInSeconds int `json:"expiresInSeconds"`
}

// LoginResponse represents the response for a successful login. The refresh
// token travels in an HTTP-only cookie, never in the body.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// RefreshTokenResponse represents the response for a successful token refresh.
type RefreshTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
