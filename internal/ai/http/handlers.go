package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/growcircle/growcircle-backend/internal/ai/domain"
	"github.com/growcircle/growcircle-backend/internal/ai/service"
)

// Handler exposes the three AI flows over HTTP.
type Handler struct {
	strain   *service.StrainService
	diagnose *service.DiagnoseService
	chat     *service.ChatService
}

func NewHandler(strain *service.StrainService, diagnose *service.DiagnoseService, chat *service.ChatService) *Handler {
	return &Handler{strain: strain, diagnose: diagnose, chat: chat}
}

func (h *Handler) identifyStrain(c *gin.Context) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errEnvelope(MsgInvalidPhoto))
		return
	}

	result, err := h.strain.Identify(c.Request.Context(), req.PhotoDataURI)
	if err != nil {
		writeAnalysisError(c, err)
		return
	}
	c.JSON(http.StatusOK, okEnvelope(result))
}

// diagnosisView decorates the raw diagnosis with presentation-split
// suggestions; the raw strings are kept alongside.
type diagnosisView struct {
	Problems    []string     `json:"problems"`
	Suggestions []string     `json:"suggestions"`
	Split       []Suggestion `json:"splitSuggestions"`
}

func (h *Handler) diagnosePlant(c *gin.Context) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errEnvelope(MsgInvalidPhoto))
		return
	}

	result, err := h.diagnose.Diagnose(c.Request.Context(), req.PhotoDataURI)
	if err != nil {
		writeAnalysisError(c, err)
		return
	}

	view := diagnosisView{
		Problems:    result.Problems,
		Suggestions: result.Suggestions,
		Split:       make([]Suggestion, 0, len(result.Suggestions)),
	}
	for _, s := range result.Suggestions {
		view.Split = append(view.Split, SplitSuggestion(s))
	}
	c.JSON(http.StatusOK, okEnvelope(view))
}

type chatReq struct {
	History []domain.ChatMessage `json:"history"`
}

type chatResp struct {
	Reply string `json:"reply"`
}

// sendChat always answers 200 with a conversational reply; format problems
// included. The client appends the reply after its own user message, so the
// transcript stays in chronological order.
func (h *Handler) sendChat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		// Non-string content or other shape problems surface here.
		c.JSON(http.StatusOK, okEnvelope(chatResp{Reply: service.MsgHistoryFormat}))
		return
	}

	reply := h.chat.Reply(c.Request.Context(), req.History)
	c.JSON(http.StatusOK, okEnvelope(chatResp{Reply: reply}))
}

func writeAnalysisError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrInvalidPhoto) {
		c.JSON(http.StatusBadRequest, errEnvelope(MsgInvalidPhoto))
		return
	}
	c.JSON(http.StatusBadGateway, errEnvelope(MsgModelFailure))
}

// RegisterRoutes mounts the AI endpoints on the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	ai := rg.Group("/ai")
	ai.POST("/identify-strain", h.identifyStrain)
	ai.POST("/diagnose", h.diagnosePlant)
	ai.POST("/chat", h.sendChat)
}
