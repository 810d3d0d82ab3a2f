package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/growcircle/growcircle-backend/internal/library/domain"
	"github.com/growcircle/growcircle-backend/internal/library/service"
)

type Handler struct {
	library *service.LibraryService
}

func NewHandler(library *service.LibraryService) *Handler {
	return &Handler{library: library}
}

func (h *Handler) getArticle(c *gin.Context) {
	a, err := h.library.GetArticle(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "article": a})
}

func (h *Handler) listCategory(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "category is required"})
		return
	}

	list, err := h.library.ListCategory(c.Request.Context(), category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "articles": list})
}

type upsertReq struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Summary     string    `json:"summary"`
	Body        string    `json:"body"`
	Tags        []string  `json:"tags"`
	PublishedAt time.Time `json:"published_at"`
}

func (h *Handler) upsert(c *gin.Context) {
	var req upsertReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Slug) == "" || strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	err := h.library.UpsertArticle(c.Request.Context(), &domain.Article{
		Slug:        strings.TrimSpace(req.Slug),
		Title:       strings.TrimSpace(req.Title),
		Category:    strings.TrimSpace(req.Category),
		Summary:     req.Summary,
		Body:        req.Body,
		Tags:        req.Tags,
		PublishedAt: req.PublishedAt,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// RegisterRoutes mounts the reader endpoints; RegisterAdminRoutes mounts
// the write path, which the caller guards with the admin claim.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	library := rg.Group("/library")
	library.GET("/articles", h.listCategory)
	library.GET("/articles/:slug", h.getArticle)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PUT("/library/articles", h.upsert)
}
