package validators

import "errors"

var (
	ErrInvalidID          = errors.New("invalid record id")
	ErrEmptyName          = errors.New("reservoir name is required")
	ErrEmptyLocationName  = errors.New("location name is required")
	ErrInvalidCoordinates = errors.New("coordinates out of range")
	ErrInvalidWaterLevel  = errors.New("water level must be non-negative")
	ErrInvalidCapacity    = errors.New("capacity percentage must be between 0 and 100")
	ErrInvalidStatus      = errors.New("unknown reservoir status")
	ErrEmptyTimestamp     = errors.New("timestamp is required")
	ErrEmptySubmitter     = errors.New("submitted_by is required")
)
