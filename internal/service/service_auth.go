package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-car-keeper/internal/config"
	"github.com/MKhiriev/go-car-keeper/internal/crypto"
	"github.com/MKhiriev/go-car-keeper/internal/logger"
	"github.com/MKhiriev/go-car-keeper/internal/store"
	"github.com/MKhiriev/go-car-keeper/internal/utils"
	"github.com/MKhiriev/go-car-keeper/internal/validators"
	"github.com/MKhiriev/go-car-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, passcode verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// passcode hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher turns plain-text passcodes into salted digests and checks them.
	hasher crypto.PasswordHasher

	// validator rejects registrations with missing credentials.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	// Zero issues tokens without expiry.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewUserValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenLifetime(),
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that both UserName and Passcode are non-empty, replaces the
// passcode with its bcrypt digest and delegates persistence to the
// UserRepository.
//
// Returns the persisted user (with a server-assigned UserID and the digest
// in Passcode) or:
//   - ErrInvalidDataProvided if UserName or Passcode is empty or the
//     passcode is longer than bcrypt accepts.
//   - ErrPasscodeHashingFailed if the digest cannot be computed.
//   - A wrapped storage error if the repository call fails (e.g. user name
//     already taken: see store.ErrUserNameAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user, validators.FieldUserName, validators.FieldPasscode); err != nil {
		log.Err(err).Str("user_name", user.UserName).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	digest, err := a.hasher.Hash(user.Passcode)
	if err != nil {
		log.Err(err).Str("user_name", user.UserName).Msg("passcode hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasscodeHashingFailed, err)
	}
	user.Passcode = digest

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("user_name", user.UserName).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by UserName and compares the supplied passcode
// against the stored digest.
//
// Returns the authenticated user record or:
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found: see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the passcode does not match.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByUserName(ctx, user.UserName)
	if err != nil {
		log.Err(err).Str("user_name", user.UserName).Msg("user search by user name failed")
		return models.User{}, fmt.Errorf("user search by user name failed: %w", err)
	}

	if !a.hasher.Verify(user.Passcode, foundUser.Passcode) {
		log.Warn().
			Int64("id", foundUser.UserID).
			Str("user_name", foundUser.UserName).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token carries the user's identity claims (never the passcode), the
// configured issuer and, when tokenDuration is non-zero, an expiry.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Claims(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", user.UserID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Expired tokens yield ErrTokenIsExpired; every other failure (bad
// signature, wrong algorithm, wrong issuer, malformed input) yields
// ErrTokenIsInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}
