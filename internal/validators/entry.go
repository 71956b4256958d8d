package validators

import (
	"strings"

	"github.com/hmdissanayake/tank-watch/models"
)

type entryValidator struct {
}

func NewEntryValidator() EntryValidator {
	return &entryValidator{}
}

func (v *entryValidator) ValidateRecord(record models.ReservoirRecord) error {
	if strings.TrimSpace(record.ID) == "" {
		return ErrInvalidID
	}
	if strings.TrimSpace(record.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(record.LocationName) == "" {
		return ErrEmptyLocationName
	}
	if record.Coordinates.Lat < -90 || record.Coordinates.Lat > 90 ||
		record.Coordinates.Lon < -180 || record.Coordinates.Lon > 180 {
		return ErrInvalidCoordinates
	}
	if record.WaterLevel < 0 {
		return ErrInvalidWaterLevel
	}
	if record.CapacityPercentage < 0 || record.CapacityPercentage > 100 {
		return ErrInvalidCapacity
	}
	if !models.KnownStatus(record.Status) {
		return ErrInvalidStatus
	}
	if record.Timestamp.IsZero() {
		return ErrEmptyTimestamp
	}
	if strings.TrimSpace(record.SubmittedBy) == "" {
		return ErrEmptySubmitter
	}

	return nil
}
