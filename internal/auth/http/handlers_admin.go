package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/growcircle/growcircle-backend/internal/api/http/middleware"
	"github.com/growcircle/growcircle-backend/internal/auth"
)

type AdminHandler struct {
	impersonation *auth.ImpersonationService
}

func NewAdminHandler(impersonation *auth.ImpersonationService) *AdminHandler {
	return &AdminHandler{impersonation: impersonation}
}

type impersonateReq struct {
	TargetUID string `json:"target_uid"`
	Reason    string `json:"reason"`
}

func (h *AdminHandler) impersonate(c *gin.Context) {
	var req impersonateReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.TargetUID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if strings.TrimSpace(req.Reason) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "reason is required"})
		return
	}

	actorUID := auth.UserFirebaseUID(c)
	token, err := h.impersonation.Impersonate(
		c.Request.Context(),
		actorUID,
		strings.TrimSpace(req.TargetUID),
		strings.TrimSpace(req.Reason),
		c.GetString(middleware.CtxRequestID),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token})
}

// RegisterAdminRoutes mounts admin-only endpoints. Callers must have already
// attached the auth middleware; the admin claim is checked per-group.
func (h *AdminHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/impersonate", h.impersonate)
}
