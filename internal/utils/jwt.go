// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-admin-dashboard/models"
)

var (
	// ErrInvalidAuthorizationHeader is returned for a missing or malformed
	// "Bearer <token>" header.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrInvalidJWTParams is returned when GenerateJWTToken gets an empty
	// issuer, sign key or a zero duration.
	ErrInvalidJWTParams = errors.New("invalid params for generating JWT Token")
)

// GenerateJWTToken creates an HS256 access token for userID with the iss,
// sub, iat and exp claims set.
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken verifies the HS256 signature, the issuer and the
// expiry of tokenString and parses its subject as the user id.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	claims.Token = token
	claims.SignedString = tokenString

	userID, err := claims.GetUserID()
	if err != nil {
		return models.Token{}, err
	}
	claims.UserID = userID

	return *claims, nil
}

// ParseUnverifiedJWTToken reads the registered claims of tokenString without
// verifying its signature. Used by the client to describe its own session.
func ParseUnverifiedJWTToken(tokenString string) (models.Token, error) {
	claims := &models.Token{}
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return models.Token{}, fmt.Errorf("error parsing token: %w", err)
	}

	claims.Token = token
	claims.SignedString = tokenString
	if userID, err := claims.GetUserID(); err == nil {
		claims.UserID = userID
	}

	return *claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
