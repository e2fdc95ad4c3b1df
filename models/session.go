// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session is the pair of tokens identifying one authenticated client.
// At most one Session exists per client at a time.
type Session struct {
	// AccessToken is the short-lived credential presented as
	// "Authorization: Bearer <token>" on each authenticated request.
	AccessToken string `json:"accessToken"`

	// RefreshToken is the longer-lived credential exchanged at the refresh
	// endpoint for a new AccessToken. Empty when the backend did not issue one.
	RefreshToken string `json:"refreshToken,omitempty"`
}

// IsEmpty reports whether the session carries no access token.
func (s Session) IsEmpty() bool {
	return s.AccessToken == ""
}

// TokenPair is the body returned by the login, registration and refresh
// endpoints of the backend.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// RefreshRequest is the body sent to the refresh endpoint.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}
