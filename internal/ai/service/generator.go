package service

import (
	"context"

	"github.com/growcircle/growcircle-backend/internal/ai/gemini"
)

// Generator is the single outbound dependency of the AI services. The
// Gemini client satisfies it; tests substitute a fake to assert that
// invalid input never reaches the model.
type Generator interface {
	GenerateContent(ctx context.Context, model string, req gemini.GenerateContentRequest) (*gemini.GenerateContentResponse, error)
}
