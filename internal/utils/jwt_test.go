// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "test-issuer"
	testSignKey = "secret-key"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 123, time.Hour, testSignKey)

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(123), token.UserID)
	assert.Equal(t, "123", token.Subject)
	assert.Equal(t, testIssuer, token.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, testSignKey},
		{"zero duration", testIssuer, 0, testSignKey},
		{"negative duration", testIssuer, -time.Minute, testSignKey},
		{"empty key", testIssuer, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			assert.ErrorIs(t, err, ErrInvalidJWTParams)
		})
	}
}

func TestValidateAndParseJWTToken(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 7, time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.UserID)
	assert.Equal(t, token.SignedString, parsed.String())
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken(testIssuer, 7, time.Hour, testSignKey)
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	expiredString, err := expired.SignedString([]byte(testSignKey))
	require.NoError(t, err)

	badSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	badSubjectString, err := badSubject.SignedString([]byte(testSignKey))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other-key", testIssuer},
		{"wrong issuer", valid.SignedString, testSignKey, "other-issuer"},
		{"expired", expiredString, testSignKey, testIssuer},
		{"non numeric subject", badSubjectString, testSignKey, testIssuer},
		{"garbage", "not.a.jwt", testSignKey, testIssuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			assert.Error(t, err)
		})
	}
}

func TestParseUnverifiedJWTToken(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 9, time.Minute, testSignKey)
	require.NoError(t, err)

	parsed, err := ParseUnverifiedJWTToken(token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(9), parsed.UserID)
	assert.Equal(t, testIssuer, parsed.Issuer)
	require.NotNil(t, parsed.ExpiresAt)

	_, err = ParseUnverifiedJWTToken("opaque-token")
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc", "abc", false},
		{"bearer abc", "abc", false},
		{"  Bearer   abc  ", "abc", false},
		{"Bearer", "", true},
		{"Basic abc", "", true},
		{"", "", true},
		{"Bearer a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
