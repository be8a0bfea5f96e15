package authgate

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soilhealth-et/portal/domain"
	"github.com/soilhealth-et/portal/usecase/content"
)

type memRepo struct {
	stored *domain.SiteContent
	saves  int
}

func (m *memRepo) Load(ctx context.Context) (*domain.SiteContent, error) {
	if m.stored == nil {
		return nil, domain.ErrContentNotFound
	}
	return m.stored.Clone(), nil
}

func (m *memRepo) Save(ctx context.Context, c *domain.SiteContent) error {
	m.stored = c.Clone()
	m.saves++
	return nil
}

func newGate(secret string) (*UseCase, *memRepo) {
	repo := &memRepo{stored: domain.DefaultContent()}
	store := content.New(repo, nil)
	return New(store, PlainVerifier{}, secret, time.Hour, nil), repo
}

func TestAuthenticate(t *testing.T) {
	gate, _ := newGate("secret")
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		want     bool
	}{
		{"correct credentials", "ayumam100@gmail.com", "1234", true},
		{"wrong password", "ayumam100@gmail.com", "4321", false},
		{"wrong email", "other@example.org", "1234", false},
		{"case sensitive password", "ayumam100@gmail.com", "1234 ", false},
		{"empty credentials", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, gate.Authenticate(ctx, tc.email, tc.password))
		})
	}
}

func TestLoginMintsAdminToken(t *testing.T) {
	gate, _ := newGate("secret")

	tokenString, err := gate.Login(context.Background(), "ayumam100@gmail.com", "1234")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return gate.Secret(), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, AdminRole, claims["role"])
	assert.Equal(t, "ayumam100@gmail.com", claims["sub"])
	assert.NotEmpty(t, claims["jti"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	gate, _ := newGate("secret")

	_, err := gate.Login(context.Background(), "ayumam100@gmail.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestEmptySecretGetsRandomKey(t *testing.T) {
	first, _ := newGate("")
	second, _ := newGate("")

	assert.NotEmpty(t, first.Secret())
	assert.NotEqual(t, first.Secret(), second.Secret())
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		current string
		next    string
		confirm string
		wantErr error
		saved   string
	}{
		{"successful rotation", "1234", "5678", "5678", nil, "5678"},
		{"wrong current password", "0000", "5678", "5678", domain.ErrUnauthorized, "1234"},
		{"confirmation mismatch", "1234", "5678", "8765", domain.ErrPasswordMismatch, "1234"},
		{"wrong current and mismatch", "0000", "5678", "8765", domain.ErrUnauthorized, "1234"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gate, repo := newGate("secret")
			err := gate.ChangePassword(ctx, tc.current, tc.next, tc.confirm)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Zero(t, repo.saves)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 1, repo.saves)
			}
			assert.Equal(t, tc.saved, repo.stored.AdminPassword)
		})
	}
}

func TestChangePasswordThenLogin(t *testing.T) {
	gate, _ := newGate("secret")
	ctx := context.Background()

	require.NoError(t, gate.ChangePassword(ctx, "1234", "new-pass", "new-pass"))
	assert.False(t, gate.Authenticate(ctx, "ayumam100@gmail.com", "1234"))
	assert.True(t, gate.Authenticate(ctx, "ayumam100@gmail.com", "new-pass"))
}

func TestUpdateEmail(t *testing.T) {
	gate, repo := newGate("secret")
	ctx := context.Background()

	require.NoError(t, gate.UpdateEmail(ctx, "admin@example.org"))
	assert.Equal(t, "admin@example.org", repo.stored.AdminEmail)

	err := gate.UpdateEmail(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}

func TestBcryptVerifier(t *testing.T) {
	v := BcryptVerifier{}

	hash, err := v.Encode("1234")
	require.NoError(t, err)
	assert.NotEqual(t, "1234", hash)
	assert.True(t, v.Verify(hash, "1234"))
	assert.False(t, v.Verify(hash, "4321"))
}
