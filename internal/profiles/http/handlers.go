package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/growcircle/growcircle-backend/internal/auth"
	"github.com/growcircle/growcircle-backend/internal/profiles/domain"
	"github.com/growcircle/growcircle-backend/internal/profiles/repository"
)

type Handler struct {
	repo *repository.ProfileRepository
}

func NewHandler(repo *repository.ProfileRepository) *Handler {
	return &Handler{repo: repo}
}

type createReq struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	GrowSince   int    `json:"grow_since"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Username) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.repo.Create(c.Request.Context(), &domain.Profile{
		UID:         auth.UserFirebaseUID(c),
		Username:    strings.ToLower(strings.TrimSpace(req.Username)),
		DisplayName: strings.TrimSpace(req.DisplayName),
		Bio:         req.Bio,
		GrowSince:   req.GrowSince,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"ok": false, "error": "username already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "profile": p})
}

func (h *Handler) me(c *gin.Context) {
	p, err := h.repo.GetByUID(c.Request.Context(), auth.UserFirebaseUID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "profile": p})
}

type updateReq struct {
	DisplayName *string `json:"display_name"`
	Bio         *string `json:"bio"`
	AvatarURL   *string `json:"avatar_url"`
	GrowSince   *int    `json:"grow_since"`
}

func (h *Handler) update(c *gin.Context) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.repo.Update(c.Request.Context(), auth.UserFirebaseUID(c), domain.ProfileUpdate{
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		AvatarURL:   req.AvatarURL,
		GrowSince:   req.GrowSince,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "profile": p})
}

func (h *Handler) getByUsername(c *gin.Context) {
	p, err := h.repo.GetByUsername(c.Request.Context(), strings.ToLower(c.Param("username")))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "profile": p})
}

func (h *Handler) follow(c *gin.Context) {
	target := c.Param("uid")
	if err := h.repo.Follow(c.Request.Context(), auth.UserFirebaseUID(c), target); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) unfollow(c *gin.Context) {
	if err := h.repo.Unfollow(c.Request.Context(), auth.UserFirebaseUID(c), c.Param("uid")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) listFollowing(c *gin.Context) {
	uids, err := h.repo.ListFollowing(c.Request.Context(), c.Param("uid"), 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "following": uids})
}

func (h *Handler) listFollowers(c *gin.Context) {
	uids, err := h.repo.ListFollowers(c.Request.Context(), c.Param("uid"), 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "followers": uids})
}

// RegisterRoutes mounts the profile and follow-graph endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	profiles := rg.Group("/profiles")
	profiles.POST("", h.create)
	profiles.GET("/me", h.me)
	profiles.PATCH("/me", h.update)
	profiles.GET("/by-username/:username", h.getByUsername)
	profiles.POST("/:uid/follow", h.follow)
	profiles.DELETE("/:uid/follow", h.unfollow)
	profiles.GET("/:uid/following", h.listFollowing)
	profiles.GET("/:uid/followers", h.listFollowers)
}
