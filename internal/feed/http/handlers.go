package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/growcircle/growcircle-backend/internal/auth"
	"github.com/growcircle/growcircle-backend/internal/feed/domain"
	"github.com/growcircle/growcircle-backend/internal/feed/repository"
	"github.com/growcircle/growcircle-backend/internal/feed/service"
)

type Handler struct {
	repo *repository.PostRepository
	feed *service.FeedService
}

func NewHandler(repo *repository.PostRepository, feed *service.FeedService) *Handler {
	return &Handler{repo: repo, feed: feed}
}

type createPostReq struct {
	ImageURL  string `json:"image_url"`
	Caption   string `json:"caption"`
	StrainTag string `json:"strain_tag"`
}

func (h *Handler) create(c *gin.Context) {
	var req createPostReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ImageURL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	post, err := h.repo.Create(
		c.Request.Context(),
		auth.UserFirebaseUID(c),
		strings.TrimSpace(req.ImageURL),
		strings.TrimSpace(req.Caption),
		strings.TrimSpace(req.StrainTag),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "post": post})
}

func (h *Handler) get(c *gin.Context) {
	post, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "post": post})
}

func (h *Handler) delete(c *gin.Context) {
	err := h.repo.Delete(c.Request.Context(), auth.UserFirebaseUID(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "post not found"})
		case errors.Is(err, domain.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "not your post"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) globalFeed(c *gin.Context) {
	var before *time.Time
	if raw := c.Query("before"); raw != "" {
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid cursor"})
			return
		}
		before = &t
	}

	page, err := h.feed.GlobalFeed(c.Request.Context(), before, queryLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "feed": page})
}

func (h *Handler) followingFeed(c *gin.Context) {
	page, err := h.feed.FollowingFeed(c.Request.Context(), auth.UserFirebaseUID(c), queryLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "feed": page})
}

func (h *Handler) like(c *gin.Context) {
	if err := h.repo.Like(c.Request.Context(), auth.UserFirebaseUID(c), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) unlike(c *gin.Context) {
	if err := h.repo.Unlike(c.Request.Context(), auth.UserFirebaseUID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type commentReq struct {
	Text string `json:"text"`
}

func (h *Handler) comment(c *gin.Context) {
	var req commentReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	comment, err := h.repo.AddComment(c.Request.Context(), auth.UserFirebaseUID(c), c.Param("id"), strings.TrimSpace(req.Text))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "comment": comment})
}

func (h *Handler) listComments(c *gin.Context) {
	comments, err := h.repo.ListComments(c.Request.Context(), c.Param("id"), queryLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "comments": comments})
}

func queryLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		return 0
	}
	return limit
}

// RegisterRoutes mounts the feed endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	posts.POST("", h.create)
	posts.GET("/:id", h.get)
	posts.DELETE("/:id", h.delete)
	posts.POST("/:id/like", h.like)
	posts.DELETE("/:id/like", h.unlike)
	posts.POST("/:id/comments", h.comment)
	posts.GET("/:id/comments", h.listComments)

	feed := rg.Group("/feed")
	feed.GET("", h.globalFeed)
	feed.GET("/following", h.followingFeed)
}
