package authgate

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/soilhealth-et/portal/domain"
	"github.com/soilhealth-et/portal/usecase/content"
)

// AdminRole is the role claim carried by admin tokens.
const AdminRole = "admin"

// UseCase guards the administrative capability. Credentials live inside the
// aggregate itself; authentication is a comparison against them, and a
// successful login mints a signed token for the rest of the session.
type UseCase struct {
	store    *content.Store
	verifier CredentialVerifier
	secret   []byte
	tokenTTL time.Duration
	logger   *zap.Logger
}

// New builds the gate. An empty secret is replaced with random bytes
// generated at boot, so issued tokens do not survive a process restart.
func New(store *content.Store, verifier CredentialVerifier, secret string, tokenTTL time.Duration, logger *zap.Logger) *UseCase {
	if verifier == nil {
		verifier = PlainVerifier{}
	}
	if tokenTTL <= 0 {
		tokenTTL = 12 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			// rand.Read failing means the platform entropy source is broken;
			// fall back to a time-derived key rather than refuse to boot.
			key = []byte(domain.NewID("key"))
		}
	}
	return &UseCase{
		store:    store,
		verifier: verifier,
		secret:   key,
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

// Authenticate reports whether both values match the stored credentials
// exactly. No rate limiting, no lockout.
func (uc *UseCase) Authenticate(ctx context.Context, email, password string) bool {
	current := uc.store.Current()
	return email == current.AdminEmail && uc.verifier.Verify(current.AdminPassword, password)
}

// Login authenticates and mints an admin token on success.
func (uc *UseCase) Login(ctx context.Context, email, password string) (string, error) {
	if !uc.Authenticate(ctx, email, password) {
		uc.logger.Warn("admin login rejected", zap.String("email", email))
		return "", domain.ErrUnauthorized
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  email,
		"role": AdminRole,
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(uc.tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.secret)
	if err != nil {
		return "", domain.WrapError(domain.ErrCodeInternal, "token signing failed", err)
	}
	uc.logger.Info("admin login accepted", zap.String("email", email))
	return token, nil
}

// ChangePassword rotates the stored password only when the current one
// matches and the confirmation equals the new value; any other combination
// leaves the password untouched.
func (uc *UseCase) ChangePassword(ctx context.Context, current, newPassword, confirm string) error {
	snapshot := uc.store.Current()
	if !uc.verifier.Verify(snapshot.AdminPassword, current) {
		return domain.ErrUnauthorized
	}
	if newPassword != confirm {
		return domain.ErrPasswordMismatch
	}

	encoded, err := uc.verifier.Encode(newPassword)
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "password encoding failed", err)
	}
	next := snapshot.Clone()
	next.AdminPassword = encoded
	if err := uc.store.Commit(ctx, next); err != nil {
		return err
	}
	uc.logger.Info("admin password rotated")
	return nil
}

// UpdateEmail replaces the admin login identifier.
func (uc *UseCase) UpdateEmail(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrInvalidPayload
	}
	next := uc.store.Current()
	next.AdminEmail = email
	return uc.store.Commit(ctx, next)
}

// Secret exposes the signing key for the token-verifying middleware.
func (uc *UseCase) Secret() []byte {
	return uc.secret
}
