package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/growcircle/growcircle-backend/internal/auth"
	"github.com/growcircle/growcircle-backend/internal/messages/domain"
	"github.com/growcircle/growcircle-backend/internal/messages/repository"
)

type Handler struct {
	repo *repository.ConversationRepository
}

func NewHandler(repo *repository.ConversationRepository) *Handler {
	return &Handler{repo: repo}
}

type openReq struct {
	UID string `json:"uid"`
}

func (h *Handler) open(c *gin.Context) {
	var req openReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.UID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	conv, err := h.repo.Open(c.Request.Context(), auth.UserFirebaseUID(c), strings.TrimSpace(req.UID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "conversation": conv})
}

func (h *Handler) list(c *gin.Context) {
	convs, err := h.repo.ListForUser(c.Request.Context(), auth.UserFirebaseUID(c), 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "conversations": convs})
}

type sendReq struct {
	Text string `json:"text"`
}

func (h *Handler) send(c *gin.Context) {
	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	msg, err := h.repo.Send(c.Request.Context(), auth.UserFirebaseUID(c), c.Param("id"), strings.TrimSpace(req.Text))
	if err != nil {
		writeConvError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "message": msg})
}

func (h *Handler) listMessages(c *gin.Context) {
	msgs, err := h.repo.ListMessages(c.Request.Context(), auth.UserFirebaseUID(c), c.Param("id"), 0)
	if err != nil {
		writeConvError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "messages": msgs})
}

func writeConvError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "conversation not found"})
	case errors.Is(err, domain.ErrNotParticipant):
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "not a participant"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}

// RegisterRoutes mounts the direct-message endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	convs := rg.Group("/conversations")
	convs.POST("", h.open)
	convs.GET("", h.list)
	convs.POST("/:id/messages", h.send)
	convs.GET("/:id/messages", h.listMessages)
}
