package dto

import "time"

// LoginRequest carries credential login data.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleExchangeRequest carries the authorization code from the Google
// sign-in redirect.
type GoogleExchangeRequest struct {
	Code string `json:"code" binding:"required"`
}

// LoginResponse returns the bearer token for subsequent API calls.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
