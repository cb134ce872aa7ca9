package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-provenance-keeper/internal/config"
	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/internal/store"
	"github.com/MKhiriev/go-provenance-keeper/internal/utils"
	"github.com/MKhiriev/go-provenance-keeper/internal/validators"
	"github.com/MKhiriev/go-provenance-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles sign-up, credential verification with bcrypt, and the JWT
// session lifecycle including server-side revocation on logout.
type authService struct {
	principals store.PrincipalRepository
	sessions   store.SessionRepository

	hasher    *utils.PasswordHasher
	validator validators.Validator
	ids       *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(principals store.PrincipalRepository, sessions store.SessionRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		principals:    principals,
		sessions:      sessions,
		hasher:        utils.NewPasswordHasher(cfg.BcryptCost),
		validator:     validators.NewPrincipalValidator(),
		ids:           utils.NewUUIDGenerator(),
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Authenticate implements [AuthService].
//
// An unknown username still pays for one bcrypt comparison so response time
// does not tell registered usernames apart. The active flag is only looked
// at after the password matched; a suspended principal with a wrong password
// gets [ErrAuthFailed] like everyone else.
func (a *authService) Authenticate(ctx context.Context, username, password string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, models.LoginRequest{Username: username, Password: password}); err != nil {
		return models.Principal{}, ErrAuthFailed
	}

	principal, err := a.principals.FindPrincipalByUsername(ctx, username)
	if errors.Is(err, store.ErrPrincipalNotFound) {
		_ = a.hasher.CompareDummy(password)
		log.Info().Str("username", username).Msg("login for unknown username")
		return models.Principal{}, ErrAuthFailed
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("principal search by username failed")
		return models.Principal{}, fmt.Errorf("principal search by username failed: %w", err)
	}

	if err = a.hasher.Compare(principal.PasswordHash, password); err != nil {
		log.Info().Int64("principal_id", principal.ID).Msg("wrong password")
		return models.Principal{}, ErrAuthFailed
	}

	if !principal.Active {
		log.Info().Int64("principal_id", principal.ID).Msg("login of suspended principal")
		return models.Principal{}, ErrAccountDisabled
	}

	return principal, nil
}

// SignUp implements [AuthService]. Admin cannot be chosen; admins come from
// [AuthService.EnsureAdmin] only. A taken username surfaces as
// [store.ErrUsernameTaken].
func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) (models.Principal, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Info().Err(err).Str("username", req.Username).Msg("invalid sign-up request")
		return models.Principal{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	principal, err := a.principals.CreatePrincipal(ctx, models.Principal{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         req.Role,
		Active:       true,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("principal creation ended with error")
		return models.Principal{}, fmt.Errorf("principal creation ended with error: %w", err)
	}

	log.Info().Int64("principal_id", principal.ID).Str("role", principal.Role.String()).Msg("principal signed up")
	return principal, nil
}

// IssueSession implements [AuthService].
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, a fresh "jti", and expires after
// tokenDuration.
func (a *authService) IssueSession(ctx context.Context, principal models.Principal) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, a.ids.Generate(), principal, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("principal_id", principal.ID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseSession implements [AuthService].
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// [ErrTokenIsExpiredOrInvalid] so that callers do not need to inspect
// low-level JWT errors. A token revoked by logout yields [ErrSessionRevoked].
func (a *authService) ParseSession(ctx context.Context, tokenString string) (models.Session, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	revoked, err := a.sessions.IsSessionRevoked(ctx, token.ID)
	if err != nil {
		return models.Session{}, fmt.Errorf("check session revocation: %w", err)
	}
	if revoked {
		return models.Session{}, ErrSessionRevoked
	}

	return token.Session(), nil
}

// Logout implements [AuthService]. The revocation row is kept until the
// token expires; see workers.SessionPurgeWorker.
func (a *authService) Logout(ctx context.Context, session models.Session) error {
	if session.Anonymous() || session.ID == "" {
		return ErrInvalidDataProvided
	}

	expiresAt := session.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(a.tokenDuration)
	}

	if err := a.sessions.RevokeSession(ctx, session.ID, expiresAt); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("principal_id", session.PrincipalID).Msg("session revoked")
	return nil
}

// EnsureAdmin implements [AuthService]. An empty username disables the
// bootstrap. An existing admin keeps its password.
func (a *authService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" {
		return nil
	}

	existing, err := a.principals.FindPrincipalByUsername(ctx, username)
	if err == nil {
		if existing.Role != models.RoleAdmin {
			return fmt.Errorf("bootstrap admin %q exists with role %s", username, existing.Role)
		}
		return nil
	}
	if !errors.Is(err, store.ErrPrincipalNotFound) {
		return fmt.Errorf("look up bootstrap admin: %w", err)
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash bootstrap admin password: %w", err)
	}

	admin, err := a.principals.CreatePrincipal(ctx, models.Principal{
		Username:     username,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Active:       true,
	})
	if errors.Is(err, store.ErrUsernameTaken) {
		// another instance seeded it first
		return nil
	}
	if err != nil {
		return fmt.Errorf("create bootstrap admin: %w", err)
	}

	a.logger.Info().Int64("principal_id", admin.ID).Str("username", username).Msg("bootstrap admin created")
	return nil
}
