package media

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/growcircle/growcircle-backend/internal/ai"
	"github.com/growcircle/growcircle-backend/internal/auth"
)

type Handler struct {
	uploader *Uploader
}

func NewHandler(uploader *Uploader) *Handler {
	return &Handler{uploader: uploader}
}

type uploadReq struct {
	PhotoDataURI string `json:"photoDataUri"`
}

func (h *Handler) upload(c *gin.Context) {
	var req uploadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	result, err := h.uploader.UploadDataURI(c.Request.Context(), auth.UserFirebaseUID(c), req.PhotoDataURI)
	if err != nil {
		if errors.Is(err, ai.ErrInvalidDataURI) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid image payload"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "upload": result})
}

// RegisterRoutes mounts the media upload endpoint.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/media", h.upload)
}
