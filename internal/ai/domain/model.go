package domain

import "errors"

// Sentinel errors for the analysis flows. Handlers translate these into the
// fixed user-facing messages; nothing else leaks to the presentation layer.
var (
	// ErrInvalidPhoto means the submitted payload failed the data-URI check.
	// No model call was made.
	ErrInvalidPhoto = errors.New("invalid photo payload")

	// ErrModelUnavailable covers transport failures and schema mismatches
	// alike; the two are deliberately not distinguished to the end user.
	ErrModelUnavailable = errors.New("model unavailable or returned an invalid response")
)

// Potency holds the three model-estimated indices, each a bounded
// percentage in [0, 100]. Estimates, not measurements.
type Potency struct {
	THC    float64 `json:"thc"`
	CBD    float64 `json:"cbd"`
	Energy float64 `json:"energy"`
}

// InRange reports whether all three indices are within [0, 100].
func (p Potency) InRange() bool {
	for _, v := range []float64{p.THC, p.CBD, p.Energy} {
		if v < 0 || v > 100 {
			return false
		}
	}
	return true
}

// StrainIdentification is the validated result of a strain analysis.
// It is never partially populated: a response that does not conform in
// full is discarded.
type StrainIdentification struct {
	StrainName string   `json:"strainName"`
	Potency    Potency  `json:"potency"`
	Problems   []string `json:"problems"`
}

// PlantDiagnosis is the validated result of a plant-problem analysis.
// Suggestions conventionally follow a "title: detail" format, but that is
// not enforced here; the presentation layer splits defensively.
type PlantDiagnosis struct {
	Problems    []string `json:"problems"`
	Suggestions []string `json:"suggestions"`
}

// Chat roles. A conversation is an append-only sequence of role-tagged
// messages; the caller owns the ordering.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatMessage is one turn of a chat session. Held in memory by the client
// for the duration of the session only.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Valid reports whether the message carries one of the two permitted roles.
func (m ChatMessage) Valid() bool {
	return m.Role == RoleUser || m.Role == RoleModel
}
