package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/hmdissanayake/tank-watch/internal/config"
	"github.com/hmdissanayake/tank-watch/internal/logger"
	"github.com/hmdissanayake/tank-watch/models"
)

const authorizePrompt = `You are the access gate of a field-reporting ` +
	`application used by reservoir operators in Sri Lanka. Decide whether ` +
	`the attached camera frame shows a single, clearly visible human face ` +
	`suitable for operator verification. Reject frames with no face, more ` +
	`than one face, or a face that is obscured, cropped, or too dark. ` +
	`Answer with the JSON object only.`

const locationPromptFmt = `A field operator reports standing at latitude %f, ` +
	`longitude %f and claims to be at the reservoir site %q in Sri Lanka. ` +
	`Judge whether the coordinates plausibly match that site (within a few ` +
	`kilometres). Answer with the JSON object only.`

type geminiAdapter struct {
	client *genai.Client
	model  string
	logger *logger.Logger
}

// NewGeminiAdapter constructs the [AIAdapter] implementation backed by the
// Gemini API. All four capabilities share a single model identifier from
// the configuration.
func NewGeminiAdapter(ctx context.Context, cfg config.AI, log *logger.Logger) (AIAdapter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &geminiAdapter{client: client, model: cfg.Model, logger: log}, nil
}

// verdictSchema constrains the gate and geofence answers to the exact JSON
// shape the caller decodes. The model cannot answer in free prose.
func verdictSchema(decisionField string) *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			decisionField: {Type: genai.TypeBoolean},
			"reason":      {Type: genai.TypeString},
		},
		Required: []string{decisionField, "reason"},
	}
}

func (g *geminiAdapter) AuthorizeFace(ctx context.Context, image []byte) (models.GateVerdict, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, detectImageMIME(image)),
			genai.NewPartFromText(authorizePrompt),
		}, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   verdictSchema("authorized"),
	})
	if err != nil {
		return models.GateVerdict{}, fmt.Errorf("authorize face: %w", err)
	}

	var verdict models.GateVerdict
	if err = json.Unmarshal([]byte(resp.Text()), &verdict); err != nil {
		return models.GateVerdict{}, fmt.Errorf("decode gate verdict: %w", err)
	}

	return verdict, nil
}

func (g *geminiAdapter) VerifyLocation(ctx context.Context, position models.Coordinates, siteName string) (models.LocationVerdict, error) {
	prompt := fmt.Sprintf(locationPromptFmt, position.Lat, position.Lon, siteName)
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   verdictSchema("within"),
	})
	if err != nil {
		return models.LocationVerdict{}, fmt.Errorf("verify location: %w", err)
	}

	var verdict models.LocationVerdict
	if err = json.Unmarshal([]byte(resp.Text()), &verdict); err != nil {
		return models.LocationVerdict{}, fmt.Errorf("decode location verdict: %w", err)
	}

	return verdict, nil
}

func (g *geminiAdapter) SummarizeMetrics(ctx context.Context, records []models.ReservoirRecord) (string, error) {
	var sb strings.Builder
	sb.WriteString("Summarize the current state of these Sri Lankan reservoirs ")
	sb.WriteString("in two or three sentences for a dashboard header. Mention ")
	sb.WriteString("any reservoir in WARNING, CRITICAL, or SPILLING state by name.\n\n")
	for _, r := range records {
		fmt.Fprintf(&sb, "- %s (%s): level %.1f ft, %.0f%% capacity, status %s\n",
			r.Name, r.LocationName, r.WaterLevel, r.CapacityPercentage, r.Status)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(sb.String(), genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("summarize metrics: %w", err)
	}

	return strings.TrimSpace(resp.Text()), nil
}

func (g *geminiAdapter) AnalyzeEntry(ctx context.Context, record models.ReservoirRecord) (string, string, error) {
	prompt := fmt.Sprintf(
		"Assess this water-level reading from %s reservoir (%s, Sri Lanka): "+
			"level %.1f ft, %.0f%% capacity, reported status %s. Using recent "+
			"public information where available, say in two sentences whether "+
			"the reading is plausible and whether downstream precautions are "+
			"warranted.",
		record.Name, record.LocationName,
		record.WaterLevel, record.CapacityPercentage, record.Status,
	)

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	// Search grounding and JSON response schemas are mutually exclusive,
	// so this call accepts free text and extracts the source link from the
	// grounding metadata.
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	})
	if err != nil {
		return "", "", fmt.Errorf("analyze entry: %w", err)
	}

	return strings.TrimSpace(resp.Text()), firstGroundingURL(resp), nil
}

func firstGroundingURL(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	meta := resp.Candidates[0].GroundingMetadata
	if meta == nil {
		return ""
	}

	for _, chunk := range meta.GroundingChunks {
		if chunk != nil && chunk.Web != nil && chunk.Web.URI != "" {
			return chunk.Web.URI
		}
	}

	return ""
}

// detectImageMIME sniffs the capture format; the camera pipeline produces
// JPEG frames but file-based captures may be PNG.
func detectImageMIME(image []byte) string {
	mime := http.DetectContentType(image)
	if !strings.HasPrefix(mime, "image/") {
		return "image/jpeg"
	}
	return mime
}
