package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataURI_Valid(t *testing.T) {
	// "AAAA" decodes to three zero bytes
	payload, err := ParseDataURI("data:image/png;base64,AAAA")
	require.NoError(t, err)
	assert.Equal(t, "image/png", payload.MIMEType)
	assert.Len(t, payload.Data, 3)
	assert.Equal(t, "AAAA", payload.Base64())
}

func TestParseDataURI_ValidJPEG(t *testing.T) {
	payload, err := ParseDataURI("data:image/jpeg;base64,/9j/4AA=")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", payload.MIMEType)
	assert.NotEmpty(t, payload.Data)
}

func TestParseDataURI_Rejects(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"plain text", "not-a-uri"},
		{"missing data prefix", "image/png;base64,AAAA"},
		{"missing base64 marker", "data:image/png,AAAA"},
		{"missing payload", "data:image/png;base64,"},
		{"non image mime", "data:text/plain;base64,AAAA"},
		{"bad base64", "data:image/png;base64,%%%%"},
		{"no comma", "data:image/png;base64"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDataURI(tc.input)
			assert.ErrorIs(t, err, ErrInvalidDataURI)
		})
	}
}
