// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT access token with convenience accessors.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims]
// for access to the standard claim set.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent as the bearer token.
	SignedString string `json:"-"`

	// UserID is the parsed "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// RefreshToken is an opaque refresh credential issued by the backend.
type RefreshToken struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
}

// Expired reports whether the refresh token is no longer valid at now.
func (r RefreshToken) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

// SessionStatus describes the locally stored session as reported by the
// client "status" command. Claims are read without signature verification.
type SessionStatus struct {
	LoggedIn        bool       `json:"logged_in"`
	HasRefreshToken bool       `json:"has_refresh_token"`
	Subject         string     `json:"subject,omitempty"`
	Issuer          string     `json:"issuer,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	Expired         bool       `json:"expired"`
}
