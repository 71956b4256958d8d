package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/hmdissanayake/tank-watch/internal/config"
	"github.com/hmdissanayake/tank-watch/internal/logger"
	"github.com/hmdissanayake/tank-watch/models"
)

type restRemoteStore struct {
	client *resty.Client
	tokens TokenSource
	logger *logger.Logger
}

// NewRESTRemoteStore constructs the REST implementation of [RemoteStore]
// against the hosted data endpoint under cfg.BaseURL. Rows travel as flat
// JSON objects in the hosted service's column layout; this adapter owns
// the mapping to and from [models.ReservoirRecord].
//
// tokens supplies the bearer token of the active session; requests made
// while signed out carry only the project API key and are subject to the
// remote's anonymous row policies.
func NewRESTRemoteStore(cfg config.Remote, tokens TokenSource, log *logger.Logger) (RemoteStore, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("empty remote base url")
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/") + "/rest/v1").
		SetTimeout(cfg.RequestTimeout).
		SetHeader("apikey", cfg.APIKey)

	return &restRemoteStore{client: cli, tokens: tokens, logger: log}, nil
}

// recordRow is the wire shape of a reservoir_entries row.
type recordRow struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	LocationName       string    `json:"location_name"`
	Lat                float64   `json:"lat"`
	Lon                float64   `json:"lon"`
	WaterLevel         float64   `json:"water_level"`
	CapacityPercentage float64   `json:"capacity_percentage"`
	Status             string    `json:"status"`
	Notes              string    `json:"notes,omitempty"`
	Timestamp          time.Time `json:"timestamp"`
	SubmittedBy        string    `json:"submitted_by"`
	IsVerified         bool      `json:"is_verified"`
	GeminiAnalysis     string    `json:"gemini_analysis,omitempty"`
	GroundingURL       string    `json:"grounding_url,omitempty"`
}

// profileRow is the wire shape of a profiles row.
type profileRow struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url"`
}

func (s *restRemoteStore) ListRecords(ctx context.Context) ([]models.ReservoirRecord, error) {
	resp, err := s.authedRequest(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("order", "timestamp.desc").
		Get("/reservoir_entries")
	if err != nil {
		return nil, fmt.Errorf("list records request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var rows []recordRow
	if err = json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("decode records response: %w", err)
	}

	records := make([]models.ReservoirRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toModel())
	}

	return records, nil
}

func (s *restRemoteStore) InsertRecord(ctx context.Context, record models.ReservoirRecord) error {
	resp, err := s.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=minimal").
		SetBody(rowFromModel(record)).
		Post("/reservoir_entries")
	if err != nil {
		return fmt.Errorf("insert record request: %w", err)
	}

	return mapHTTPError(resp)
}

func (s *restRemoteStore) DeleteRecord(ctx context.Context, id string) error {
	resp, err := s.authedRequest(ctx).
		SetQueryParam("id", "eq."+id).
		Delete("/reservoir_entries")
	if err != nil {
		return fmt.Errorf("delete record request: %w", err)
	}

	return mapHTTPError(resp)
}

func (s *restRemoteStore) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	resp, err := s.authedRequest(ctx).
		SetQueryParam("id", "eq."+userID).
		SetQueryParam("select", "*").
		Get("/profiles")
	if err != nil {
		return models.Profile{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	var rows []profileRow
	if err = json.Unmarshal(resp.Body(), &rows); err != nil {
		return models.Profile{}, fmt.Errorf("decode profile response: %w", err)
	}
	if len(rows) == 0 {
		return models.Profile{}, fmt.Errorf("%w: user %s", ErrProfileNotFound, userID)
	}

	row := rows[0]
	return models.Profile{
		ID:        row.ID,
		Name:      row.Name,
		Role:      models.ParseRole(row.Role),
		AvatarURL: row.AvatarURL,
	}, nil
}

func (s *restRemoteStore) authedRequest(ctx context.Context) *resty.Request {
	req := s.client.R().SetContext(ctx)
	if token := s.tokens.AccessToken(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (r recordRow) toModel() models.ReservoirRecord {
	return models.ReservoirRecord{
		ID:                 r.ID,
		Name:               r.Name,
		LocationName:       r.LocationName,
		Coordinates:        models.Coordinates{Lat: r.Lat, Lon: r.Lon},
		WaterLevel:         r.WaterLevel,
		CapacityPercentage: r.CapacityPercentage,
		Status:             models.ReservoirStatus(r.Status),
		Notes:              r.Notes,
		Timestamp:          r.Timestamp,
		SubmittedBy:        r.SubmittedBy,
		IsVerified:         r.IsVerified,
		GeminiAnalysis:     r.GeminiAnalysis,
		GroundingURL:       r.GroundingURL,
	}
}

func rowFromModel(record models.ReservoirRecord) recordRow {
	return recordRow{
		ID:                 record.ID,
		Name:               record.Name,
		LocationName:       record.LocationName,
		Lat:                record.Coordinates.Lat,
		Lon:                record.Coordinates.Lon,
		WaterLevel:         record.WaterLevel,
		CapacityPercentage: record.CapacityPercentage,
		Status:             string(record.Status),
		Notes:              record.Notes,
		Timestamp:          record.Timestamp,
		SubmittedBy:        record.SubmittedBy,
		IsVerified:         record.IsVerified,
		GeminiAnalysis:     record.GeminiAnalysis,
		GroundingURL:       record.GroundingURL,
	}
}
