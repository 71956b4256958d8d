package crypto

import "github.com/hmdissanayake/tank-watch/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_factory_mock.go -package=mock

// CredentialFactory generates the synthetic credential pair registered for
// a device at enrollment. It knows nothing about the network, the vault,
// or the operator — its single job is producing credentials with enough
// entropy that two devices can never collide.
type CredentialFactory interface {
	// NewPair returns a fresh credential pair. The email embeds the
	// enrollment timestamp plus a random suffix; the password is read
	// from the OS CSPRNG. Neither value is derived from the operator's
	// face or name.
	NewPair() (models.CredentialPair, error)
}
