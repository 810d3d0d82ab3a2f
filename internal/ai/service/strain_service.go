package service

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/growcircle/growcircle-backend/internal/ai"
	"github.com/growcircle/growcircle-backend/internal/ai/domain"
	"github.com/growcircle/growcircle-backend/internal/ai/gemini"
)

// StrainService identifies the probable cultivar on a submitted photo.
type StrainService struct {
	gen   Generator
	model string
}

func NewStrainService(gen Generator, model string) *StrainService {
	return &StrainService{gen: gen, model: model}
}

// strainPayload mirrors the expected model output with pointer fields so a
// missing key is distinguishable from a zero value.
type strainPayload struct {
	StrainName *string `json:"strainName"`
	Potency    *struct {
		THC    *float64 `json:"thc"`
		CBD    *float64 `json:"cbd"`
		Energy *float64 `json:"energy"`
	} `json:"potency"`
	Problems *[]string `json:"problems"`
}

// Identify validates the photo, makes exactly one model call and parses the
// response strictly. A malformed response is never partially salvaged.
func (s *StrainService) Identify(ctx context.Context, photoDataURI string) (*domain.StrainIdentification, error) {
	img, err := ai.ParseDataURI(photoDataURI)
	if err != nil {
		return nil, domain.ErrInvalidPhoto
	}

	resp, err := s.gen.GenerateContent(ctx, s.model, gemini.GenerateContentRequest{
		Contents: []gemini.Content{{
			Role: domain.RoleUser,
			Parts: []gemini.Part{
				{Text: strainPrompt},
				{InlineData: &gemini.InlineData{MimeType: img.MIMEType, Data: img.Base64()}},
			},
		}},
		GenerationConfig: &gemini.GenerationConfig{ResponseMIMEType: "application/json"},
	})
	if err != nil {
		log.Printf("[ai] strain identification call failed: %v", err)
		return nil, domain.ErrModelUnavailable
	}

	result, ok := parseStrainPayload(resp.Text())
	if !ok {
		log.Printf("[ai] strain identification response did not match schema")
		return nil, domain.ErrModelUnavailable
	}
	return result, nil
}

func parseStrainPayload(text string) (*domain.StrainIdentification, bool) {
	var payload strainPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, false
	}

	if payload.StrainName == nil || strings.TrimSpace(*payload.StrainName) == "" {
		return nil, false
	}
	if payload.Potency == nil || payload.Potency.THC == nil || payload.Potency.CBD == nil || payload.Potency.Energy == nil {
		return nil, false
	}
	if payload.Problems == nil {
		return nil, false
	}

	potency := domain.Potency{
		THC:    *payload.Potency.THC,
		CBD:    *payload.Potency.CBD,
		Energy: *payload.Potency.Energy,
	}
	// Out-of-range estimates fail the whole result; they are never clamped.
	if !potency.InRange() {
		return nil, false
	}

	return &domain.StrainIdentification{
		StrainName: strings.TrimSpace(*payload.StrainName),
		Potency:    potency,
		Problems:   *payload.Problems,
	}, true
}
