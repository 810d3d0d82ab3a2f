package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient("", "")
	assert.Error(t, err)

	_, err = NewClient("   ", "")
	assert.Error(t, err)
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	c, err := NewClient("key", "")
	require.NoError(t, err)
	assert.Equal(t, defaultBaseURL, c.baseURL)

	c, err = NewClient("key", "http://localhost:9999/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", c.baseURL)
}

func TestGenerateContent(t *testing.T) {
	var gotPath, gotKey string
	var gotReq GenerateContentRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"hola "},{"text":"cultivador"}]}}]}`))
	}))
	defer srv.Close()

	c, err := NewClient("test-key", srv.URL)
	require.NoError(t, err)

	resp, err := c.GenerateContent(context.Background(), "gemini-2.0-flash", GenerateContentRequest{
		Contents: []Content{{Role: "user", Parts: []Part{{Text: "hola"}}}},
	})
	require.NoError(t, err)

	assert.Equal(t, "/models/gemini-2.0-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, gotReq.Contents, 1)
	assert.Equal(t, "hola", gotReq.Contents[0].Parts[0].Text)
	assert.Equal(t, "hola cultivador", resp.Text())
}

func TestGenerateContent_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c, err := NewClient("test-key", srv.URL)
	require.NoError(t, err)

	_, err = c.GenerateContent(context.Background(), "gemini-2.0-flash", GenerateContentRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=429")
}

func TestResponseText_Empty(t *testing.T) {
	var r *GenerateContentResponse
	assert.Equal(t, "", r.Text())

	assert.Equal(t, "", (&GenerateContentResponse{}).Text())
}
