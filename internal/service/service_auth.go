package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/veepo/internal/config"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/store"
	"github.com/MKhiriev/veepo/internal/utils"
	"github.com/MKhiriev/veepo/models"
)

// authService is the concrete implementation of AuthService.
// It handles sign-up, credential verification, profile metadata and the JWT
// token lifecycle. Passwords are stored as bcrypt hashes.
type authService struct {
	userRepository store.UserRepository
	ids            *utils.UUIDGenerator

	// bcryptCost is the work factor of new password hashes.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		ids:            utils.NewUUIDGenerator(),
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// SignUp creates a new account. The email is lowercased and the display name
// is kept in the user metadata.
//
// Returns the persisted user or:
//   - store.ErrEmailAlreadyExists if the email is taken.
//   - a wrapped hashing or storage error.
func (a *authService) SignUp(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := utils.HashPassword(credentials.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "authService.SignUp").Msg("password hashing failed")
		return models.User{}, err
	}

	user := models.User{
		ID:           a.ids.Generate(),
		Email:        normalizeEmail(credentials.Email),
		PasswordHash: hash,
		Metadata:     models.UserMetadata{DisplayName: strings.TrimSpace(credentials.DisplayName)},
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "authService.SignUp").Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// Login authenticates an existing user by email and password. Unknown emails
// and wrong passwords both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(credentials.Email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.ComparePassword(user.PasswordHash, credentials.Password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			log.Info().Str("user_id", user.ID).Msg("wrong password")
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) CurrentUser(ctx context.Context, userID string) (models.User, error) {
	return a.userRepository.FindUserByID(ctx, userID)
}

func (a *authService) UpdateUser(ctx context.Context, userID string, update models.UserMetadataUpdate) (models.User, error) {
	if update.DisplayName != nil {
		name := strings.TrimSpace(*update.DisplayName)
		update.DisplayName = &name
	}
	return a.userRepository.UpdateUserMetadata(ctx, userID, update)
}

func (a *authService) ChangePassword(ctx context.Context, userID string, change models.PasswordChange) error {
	hash, err := utils.HashPassword(change.Password, a.bcryptCost)
	if err != nil {
		return err
	}

	if err = a.userRepository.UpdatePassword(ctx, userID, hash); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.ChangePassword").Str("user_id", userID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
