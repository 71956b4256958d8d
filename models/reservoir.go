package models

import "time"

// ReservoirStatus classifies the operational state of a reservoir at the
// time of a field reading.
type ReservoirStatus string

const (
	// StatusNormal means the water level is within the expected band.
	StatusNormal ReservoirStatus = "NORMAL"

	// StatusWarning means the level approaches the spill threshold.
	StatusWarning ReservoirStatus = "WARNING"

	// StatusCritical means the level is at or above the spill threshold.
	StatusCritical ReservoirStatus = "CRITICAL"

	// StatusSpilling means the reservoir is actively discharging over
	// its spillway.
	StatusSpilling ReservoirStatus = "SPILLING"
)

// KnownStatus reports whether raw is one of the defined status values.
func KnownStatus(raw ReservoirStatus) bool {
	switch raw {
	case StatusNormal, StatusWarning, StatusCritical, StatusSpilling:
		return true
	}
	return false
}

// Coordinates is a WGS84 position of a reservoir site or of the reporting
// device at submission time.
type Coordinates struct {
	// Lat is the latitude in decimal degrees, positive north.
	Lat float64 `json:"lat"`

	// Lon is the longitude in decimal degrees, positive east.
	Lon float64 `json:"lon"`
}

// ReservoirRecord is a single water-level field report. Records are
// append-only: created by data-entry workers, never mutated, deleted only
// by privileged roles.
type ReservoirRecord struct {
	// ID is the client-generated UUID of the record. Generated before the
	// remote insert so the local cache mirror shares the same key.
	ID string `json:"id"`

	// Name is the reservoir ("tank") name, e.g. "Parakrama Samudraya".
	Name string `json:"name"`

	// LocationName is the human-readable site location.
	LocationName string `json:"location_name"`

	// Coordinates is the reservoir site position.
	Coordinates Coordinates `json:"coordinates"`

	// WaterLevel is the measured level in feet above the sill.
	WaterLevel float64 `json:"water_level"`

	// CapacityPercentage is the fill level relative to full supply, 0-100.
	CapacityPercentage float64 `json:"capacity_percentage"`

	// Status is the operator's classification of the reading.
	Status ReservoirStatus `json:"status"`

	// Notes is free-form operator commentary, may be empty.
	Notes string `json:"notes,omitempty"`

	// Timestamp is when the reading was taken, set client-side.
	Timestamp time.Time `json:"timestamp"`

	// SubmittedBy is the display name of the submitting operator.
	SubmittedBy string `json:"submitted_by"`

	// IsVerified marks records confirmed by an admin review.
	IsVerified bool `json:"is_verified"`

	// GeminiAnalysis is an optional model-generated assessment of the
	// reading, populated by the insight service.
	GeminiAnalysis string `json:"gemini_analysis,omitempty"`

	// GroundingURL is the source link backing GeminiAnalysis when the
	// model answered with search grounding.
	GroundingURL string `json:"grounding_url,omitempty"`
}

// TableName returns the name of the remote table
// associated with the ReservoirRecord model.
func (r ReservoirRecord) TableName() string {
	return "reservoir_entries"
}

// RecordSource tags where a listing was served from, so the dashboard can
// distinguish live remote data from the local fallback cache.
type RecordSource string

const (
	// SourceRemote means the records came from the remote database.
	SourceRemote RecordSource = "remote"

	// SourceCache means the remote was unreachable and the records came
	// from the device-local cache.
	SourceCache RecordSource = "cache"
)

// ListResult is a record listing together with its provenance.
type ListResult struct {
	// Records is the listing, newest first.
	Records []ReservoirRecord `json:"records"`

	// Source says whether Records came from the remote database or the
	// local cache.
	Source RecordSource `json:"source"`

	// TableMissing is set when the remote failed specifically because
	// the reservoir_entries relation does not exist — a setup problem,
	// not an outage.
	TableMissing bool `json:"table_missing"`
}
