// Package validators checks reservoir entries before they leave the
// device. Validation runs client-side so a field operator gets an
// immediate, specific error instead of a remote constraint violation
// after a slow round-trip.
package validators

import (
	"github.com/hmdissanayake/tank-watch/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock

// EntryValidator validates reservoir records prior to submission.
type EntryValidator interface {
	// ValidateRecord returns the first violated rule as a sentinel error
	// from errors.go, or nil when the record is acceptable.
	ValidateRecord(record models.ReservoirRecord) error
}
