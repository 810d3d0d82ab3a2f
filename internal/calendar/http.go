package calendar

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/growcircle/growcircle-backend/internal/auth"
)

type Handler struct {
	repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{repo: repo}
}

type createEventReq struct {
	Title string    `json:"title"`
	Kind  string    `json:"kind"`
	Date  time.Time `json:"date"`
	Notes string    `json:"notes"`
}

func (h *Handler) create(c *gin.Context) {
	var req createEventReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if !ValidKind(req.Kind) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unknown event kind"})
		return
	}

	ev, err := h.repo.Create(c.Request.Context(), auth.UserFirebaseUID(c), &Event{
		Title: strings.TrimSpace(req.Title),
		Kind:  req.Kind,
		Date:  req.Date,
		Notes: req.Notes,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "event": ev})
}

func (h *Handler) list(c *gin.Context) {
	from, err := time.Parse(time.RFC3339, c.DefaultQuery("from", time.Now().UTC().AddDate(0, -1, 0).Format(time.RFC3339)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid from"})
		return
	}
	to, err := time.Parse(time.RFC3339, c.DefaultQuery("to", time.Now().UTC().AddDate(0, 1, 0).Format(time.RFC3339)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid to"})
		return
	}

	events, err := h.repo.ListRange(c.Request.Context(), auth.UserFirebaseUID(c), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "events": events})
}

type doneReq struct {
	Done bool `json:"done"`
}

func (h *Handler) setDone(c *gin.Context) {
	var req doneReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	err := h.repo.SetDone(c.Request.Context(), auth.UserFirebaseUID(c), c.Param("id"), req.Done)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), auth.UserFirebaseUID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// RegisterRoutes mounts the cultivation-calendar endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	events := rg.Group("/calendar/events")
	events.POST("", h.create)
	events.GET("", h.list)
	events.PATCH("/:id/done", h.setDone)
	events.DELETE("/:id", h.delete)
}
