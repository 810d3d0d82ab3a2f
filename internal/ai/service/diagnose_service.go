package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/growcircle/growcircle-backend/internal/ai"
	"github.com/growcircle/growcircle-backend/internal/ai/domain"
	"github.com/growcircle/growcircle-backend/internal/ai/gemini"
)

// DiagnoseService detects nutrient deficiencies, pests and diseases on a
// submitted photo.
type DiagnoseService struct {
	gen   Generator
	model string
}

func NewDiagnoseService(gen Generator, model string) *DiagnoseService {
	return &DiagnoseService{gen: gen, model: model}
}

type diagnosisPayload struct {
	Problems    *[]string `json:"problems"`
	Suggestions *[]string `json:"suggestions"`
}

// Diagnose validates the photo, makes exactly one model call and parses the
// response strictly. Suggestion formatting ("title: detail") is a
// convention the consumer splits on, not something enforced here.
func (s *DiagnoseService) Diagnose(ctx context.Context, photoDataURI string) (*domain.PlantDiagnosis, error) {
	img, err := ai.ParseDataURI(photoDataURI)
	if err != nil {
		return nil, domain.ErrInvalidPhoto
	}

	resp, err := s.gen.GenerateContent(ctx, s.model, gemini.GenerateContentRequest{
		Contents: []gemini.Content{{
			Role: domain.RoleUser,
			Parts: []gemini.Part{
				{Text: diagnosePrompt},
				{InlineData: &gemini.InlineData{MimeType: img.MIMEType, Data: img.Base64()}},
			},
		}},
		GenerationConfig: &gemini.GenerationConfig{ResponseMIMEType: "application/json"},
	})
	if err != nil {
		log.Printf("[ai] plant diagnosis call failed: %v", err)
		return nil, domain.ErrModelUnavailable
	}

	var payload diagnosisPayload
	if err := json.Unmarshal([]byte(resp.Text()), &payload); err != nil {
		log.Printf("[ai] plant diagnosis response did not match schema")
		return nil, domain.ErrModelUnavailable
	}
	if payload.Problems == nil || payload.Suggestions == nil {
		log.Printf("[ai] plant diagnosis response missing fields")
		return nil, domain.ErrModelUnavailable
	}

	return &domain.PlantDiagnosis{
		Problems:    *payload.Problems,
		Suggestions: *payload.Suggestions,
	}, nil
}
