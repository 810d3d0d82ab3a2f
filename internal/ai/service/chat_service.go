package service

import (
	"context"
	"log"

	"github.com/growcircle/growcircle-backend/internal/ai/domain"
	"github.com/growcircle/growcircle-backend/internal/ai/gemini"
)

// Fixed chat replies. The chat flow never surfaces a hard error: every
// failure becomes one of these conversational strings.
const (
	MsgHistoryFormat = "Hubo un problema con el formato del historial de chat."
	MsgLostWords     = "Uy... me quedé sin palabras por un momento. ¿Puedes repetírmelo?"
	MsgCrossedWires  = "¡Vaya! Parece que se me cruzaron los cables. Inténtalo de nuevo en un momento."
)

// ChatService produces the next assistant turn for a chat session. It is
// stateless: the caller passes the full history on every call and owns the
// append ordering (user message before the call, reply after).
type ChatService struct {
	gen   Generator
	model string
}

func NewChatService(gen Generator, model string) *ChatService {
	return &ChatService{gen: gen, model: model}
}

// Reply returns the next assistant message as plain text. It never returns
// an error; malformed history, empty model output and call failures each
// map to a fixed filler string.
func (s *ChatService) Reply(ctx context.Context, history []domain.ChatMessage) string {
	for _, msg := range history {
		if !msg.Valid() {
			return MsgHistoryFormat
		}
	}

	contents := make([]gemini.Content, 0, len(history))
	for _, msg := range history {
		contents = append(contents, gemini.Content{
			Role:  msg.Role,
			Parts: []gemini.Part{{Text: msg.Content}},
		})
	}

	resp, err := s.gen.GenerateContent(ctx, s.model, gemini.GenerateContentRequest{
		SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: chatPersona}}},
		Contents:          contents,
	})
	if err != nil {
		log.Printf("[ai] chat call failed: %v", err)
		return MsgCrossedWires
	}

	text := resp.Text()
	if text == "" {
		return MsgLostWords
	}
	return text
}
