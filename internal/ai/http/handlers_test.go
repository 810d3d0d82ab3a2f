package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growcircle/growcircle-backend/internal/ai/gemini"
	"github.com/growcircle/growcircle-backend/internal/ai/service"
)

type fakeGenerator struct {
	calls int
	text  string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, _ string, _ gemini.GenerateContentRequest) (*gemini.GenerateContentResponse, error) {
	f.calls++
	resp := &gemini.GenerateContentResponse{}
	resp.Candidates = append(resp.Candidates, struct {
		Content      gemini.Content `json:"content"`
		FinishReason string         `json:"finishReason,omitempty"`
	}{Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: f.text}}}})
	return resp, nil
}

func newTestRouter(gen *fakeGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(
		service.NewStrainService(gen, "test-model"),
		service.NewDiagnoseService(gen, "test-model"),
		service.NewChatService(gen, "test-model"),
	)
	group := router.Group("/api/v1")
	handler.RegisterRoutes(group)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestIdentifyStrain_InvalidPhotoEnvelope(t *testing.T) {
	gen := &fakeGenerator{}
	router := newTestRouter(gen)

	rr := doJSON(t, router, "/api/v1/ai/identify-strain", `{"photoDataUri":"not-a-uri"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp struct {
		Data  interface{} `json:"data"`
		Error *string     `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Nil(t, resp.Data)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "La foto proporcionada no es válida.", *resp.Error)
	assert.Zero(t, gen.calls)
}

func TestIdentifyStrain_Success(t *testing.T) {
	gen := &fakeGenerator{text: `{"strainName":"OG Kush","potency":{"thc":20,"cbd":0.5,"energy":70},"problems":[]}`}
	router := newTestRouter(gen)

	rr := doJSON(t, router, "/api/v1/ai/identify-strain", `{"photoDataUri":"data:image/png;base64,AAAA"}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data struct {
			StrainName string `json:"strainName"`
			Potency    struct {
				THC float64 `json:"thc"`
			} `json:"potency"`
		} `json:"data"`
		Error *string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Nil(t, resp.Error)
	assert.Equal(t, "OG Kush", resp.Data.StrainName)
	assert.Equal(t, float64(20), resp.Data.Potency.THC)
	assert.Equal(t, 1, gen.calls)
}

func TestIdentifyStrain_ModelFailureEnvelope(t *testing.T) {
	gen := &fakeGenerator{text: `not json at all`}
	router := newTestRouter(gen)

	rr := doJSON(t, router, "/api/v1/ai/identify-strain", `{"photoDataUri":"data:image/png;base64,AAAA"}`)
	assert.Equal(t, http.StatusBadGateway, rr.Code)

	var resp struct {
		Data  interface{} `json:"data"`
		Error *string     `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Nil(t, resp.Data)
	require.NotNil(t, resp.Error)
	assert.Equal(t, MsgModelFailure, *resp.Error)
}

func TestDiagnose_HappyPathSplitsSuggestions(t *testing.T) {
	gen := &fakeGenerator{text: `{"problems":["Ácaros"],"suggestions":["Riego: Reduce la frecuencia de riego"]}`}
	router := newTestRouter(gen)

	rr := doJSON(t, router, "/api/v1/ai/diagnose", `{"photoDataUri":"data:image/png;base64,AAAA"}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data struct {
			Problems    []string     `json:"problems"`
			Suggestions []string     `json:"suggestions"`
			Split       []Suggestion `json:"splitSuggestions"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Problems, 1)
	require.Len(t, resp.Data.Split, 1)
	assert.Equal(t, "Riego", resp.Data.Split[0].Title)
	assert.Equal(t, "Reduce la frecuencia de riego", resp.Data.Split[0].Detail)
}

func TestChat_FormatFailure(t *testing.T) {
	gen := &fakeGenerator{text: "should never be used"}
	router := newTestRouter(gen)

	rr := doJSON(t, router, "/api/v1/ai/chat", `{"history":[{"role":"admin","content":"hi"}]}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data struct {
			Reply string `json:"reply"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Hubo un problema con el formato del historial de chat.", resp.Data.Reply)
	assert.Zero(t, gen.calls)
}

func TestChat_NonStringContentFormatFailure(t *testing.T) {
	gen := &fakeGenerator{text: "should never be used"}
	router := newTestRouter(gen)

	rr := doJSON(t, router, "/api/v1/ai/chat", `{"history":[{"role":"user","content":42}]}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data struct {
			Reply string `json:"reply"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, service.MsgHistoryFormat, resp.Data.Reply)
	assert.Zero(t, gen.calls)
}

func TestChat_Success(t *testing.T) {
	gen := &fakeGenerator{text: "¡Riega cada tres días!"}
	router := newTestRouter(gen)

	rr := doJSON(t, router, "/api/v1/ai/chat", `{"history":[{"role":"user","content":"¿cada cuánto riego?"}]}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data struct {
			Reply string `json:"reply"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "¡Riega cada tres días!", resp.Data.Reply)
	assert.Equal(t, 1, gen.calls)
}

func TestSplitSuggestion(t *testing.T) {
	s := SplitSuggestion("Riego: Reduce la frecuencia de riego")
	assert.Equal(t, "Riego", s.Title)
	assert.Equal(t, "Reduce la frecuencia de riego", s.Detail)

	s = SplitSuggestion("Revisa el drenaje de la maceta")
	assert.Equal(t, "Revisa el drenaje de la maceta", s.Title)
	assert.NotEmpty(t, s.Detail)

	s = SplitSuggestion("Poda:")
	assert.Equal(t, "Poda", s.Title)
	assert.NotEmpty(t, s.Detail)
}
