package ai

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrInvalidDataURI is returned for any payload that does not follow the
// data:<mime>;base64,<payload> convention with an image MIME type.
var ErrInvalidDataURI = errors.New("invalid image data uri")

// ImagePayload is a decoded inline image ready to be forwarded to the model.
type ImagePayload struct {
	MIMEType string
	Data     []byte
}

// Base64 returns the payload re-encoded as standard base64, the form the
// model API expects for inline data.
func (p ImagePayload) Base64() string {
	return base64.StdEncoding.EncodeToString(p.Data)
}

// ParseDataURI validates and decodes an embedded-data-URI image string.
// It is a pure parse step: no I/O, no outbound calls. Anything that is not
// a well-formed base64 image data URI is rejected before the model is ever
// involved.
func ParseDataURI(s string) (*ImagePayload, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "data:") {
		return nil, ErrInvalidDataURI
	}

	rest := strings.TrimPrefix(s, "data:")
	meta, payload, found := strings.Cut(rest, ",")
	if !found || payload == "" {
		return nil, ErrInvalidDataURI
	}

	mimeType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return nil, ErrInvalidDataURI
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, ErrInvalidDataURI
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalidDataURI
	}
	if len(data) == 0 {
		return nil, ErrInvalidDataURI
	}

	return &ImagePayload{MIMEType: mimeType, Data: data}, nil
}
