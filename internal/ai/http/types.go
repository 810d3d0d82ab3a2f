package http

import "strings"

// Fixed user-facing messages for the analysis flows. Transport failures and
// schema mismatches share one generic message on purpose.
const (
	MsgInvalidPhoto  = "La foto proporcionada no es válida."
	MsgModelFailure  = "No se pudo completar el análisis. Es posible que el modelo no esté disponible. Inténtalo de nuevo más tarde."
	defaultSugDetail = "Consulta la guía de cultivo para más información."
)

type analyzeReq struct {
	PhotoDataURI string `json:"photoDataUri"`
}

// envelope is the uniform AI response shape: exactly one of data/error set.
type envelope struct {
	Data  interface{} `json:"data"`
	Error *string     `json:"error"`
}

func okEnvelope(data interface{}) envelope {
	return envelope{Data: data}
}

func errEnvelope(msg string) envelope {
	return envelope{Error: &msg}
}

// Suggestion is a diagnosis suggestion split for presentation.
type Suggestion struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// SplitSuggestion splits a conventional "title: detail" suggestion string.
// The colon format is not guaranteed by the data contract, so a missing
// colon falls back to the whole string as title with a default detail.
func SplitSuggestion(s string) Suggestion {
	title, detail, found := strings.Cut(s, ":")
	if !found {
		return Suggestion{Title: strings.TrimSpace(s), Detail: defaultSugDetail}
	}
	if strings.TrimSpace(detail) == "" {
		return Suggestion{Title: strings.TrimSpace(title), Detail: defaultSugDetail}
	}
	return Suggestion{Title: strings.TrimSpace(title), Detail: strings.TrimSpace(detail)}
}
