package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxFirebaseUID = "firebase_uid"
	CtxEmail       = "email"
	CtxIsAdmin     = "is_admin"
)

// UserFirebaseUID extracts the Firebase UID from the Gin context.
// This is set by FirebaseAuthMiddleware.
func UserFirebaseUID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxFirebaseUID))
}

// IsAdmin reports whether the caller carries the admin custom claim.
func IsAdmin(c *gin.Context) bool {
	return c.GetBool(CtxIsAdmin)
}
