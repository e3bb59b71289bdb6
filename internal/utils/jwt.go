package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-car-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySignKey is returned when a token is generated or validated
// without a sign key.
var ErrEmptySignKey = errors.New("empty JWT sign key")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token carrying claims.
//
// Besides the identity claims the token holds:
//   - Issuer    (iss): issuer, omitted when empty
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration, omitted when
//     tokenDuration is zero
//
// Parameters:
//
//	issuer        - identifier of the token issuer (e.g. service name)
//	claims        - identity claims of the user the token is issued for
//	tokenDuration - how long the token remains valid, zero for no expiry
//	signKey       - secret key used to sign the token with HMAC-SHA256
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("car-keeper", user.Claims(), time.Hour, "secret")
func GenerateJWTToken(issuer string, claims models.Claims, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if signKey == "" {
		return models.Token{}, ErrEmptySignKey
	}

	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:   issuer,
		Subject:  strconv.FormatInt(claims.UserID, 10),
		IssuedAt: jwt.NewNumericDate(now),
	}
	if tokenDuration != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(tokenDuration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - signing method must be HS256
//   - signature verification using tokenSignKey
//   - issuer (iss) check when tokenIssuer is not empty
//   - expiration (exp) check when the token carries one
//
// The jwt/v5 sentinel errors are kept in the chain, so callers can tell an
// expired token (jwt.ErrTokenExpired) from a forged or malformed one
// (jwt.ErrTokenSignatureInvalid, jwt.ErrTokenMalformed, ...) with errors.Is.
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "car-keeper")
//	if errors.Is(err, jwt.ErrTokenExpired) {
//	    // ask the user to log in again
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	if tokenSignKey == "" {
		return models.Token{}, ErrEmptySignKey
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if tokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(tokenIssuer))
	}

	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return models.Token{Token: token, Claims: *claims, SignedString: tokenString}, nil
}
