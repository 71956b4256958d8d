package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/hmdissanayake/tank-watch/models"
)

// emailDomain is a reserved domain: the accounts exist only as device
// identities and must never receive mail.
const emailDomain = "device.tankwatch.invalid"

// credentialFactory is the private implementation of [CredentialFactory].
type credentialFactory struct {
	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

// NewCredentialFactory constructs a [CredentialFactory] backed by the OS
// CSPRNG.
func NewCredentialFactory() CredentialFactory {
	return &credentialFactory{now: time.Now}
}

// NewPair implements [CredentialFactory]. The email is
// "device-<unix-ts>-<8 random hex>@<reserved domain>" and the password is
// 32 CSPRNG bytes in URL-safe base64 (43 characters). Returns an error
// only if the random read fails.
func (f *credentialFactory) NewPair() (models.CredentialPair, error) {
	suffix := make([]byte, 4)
	if _, err := io.ReadFull(rand.Reader, suffix); err != nil {
		return models.CredentialPair{}, fmt.Errorf("error generating email suffix: %w", err)
	}

	secret := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, secret); err != nil {
		return models.CredentialPair{}, fmt.Errorf("error generating password: %w", err)
	}

	return models.CredentialPair{
		Email: fmt.Sprintf("device-%d-%s@%s",
			f.now().Unix(), hex.EncodeToString(suffix), emailDomain),
		Password: base64.RawURLEncoding.EncodeToString(secret),
	}, nil
}
