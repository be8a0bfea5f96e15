package authgate

import "golang.org/x/crypto/bcrypt"

// CredentialVerifier abstracts how the stored admin password is checked and
// encoded, so the plain-equality contract can later be swapped for a hashing
// scheme without touching any caller.
type CredentialVerifier interface {
	Verify(stored, presented string) bool
	Encode(raw string) (string, error)
}

// PlainVerifier implements the original exact-equality contract: the stored
// password is the secret itself, compared case-sensitively.
type PlainVerifier struct{}

func (PlainVerifier) Verify(stored, presented string) bool {
	return stored == presented
}

func (PlainVerifier) Encode(raw string) (string, error) {
	return raw, nil
}

// BcryptVerifier stores and checks bcrypt hashes instead of raw passwords.
type BcryptVerifier struct {
	Cost int
}

func (v BcryptVerifier) Verify(stored, presented string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented)) == nil
}

func (v BcryptVerifier) Encode(raw string) (string, error) {
	cost := v.Cost
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
