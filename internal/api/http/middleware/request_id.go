package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// CtxRequestID is the Gin context key under which the request ID is
// stored. Handlers read it with c.GetString; services should prefer
// GetRequestID on the request's context.Context.
const CtxRequestID = "request_id"

type requestIDKey struct{}

// RequestIDMiddleware tags every request with an ID, honoring an
// incoming X-Request-Id header so a client-supplied ID survives the
// round trip. The ID lands in the Gin context, the request's standard
// context, the response header, and the access log line.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := strings.TrimSpace(c.GetHeader("X-Request-Id"))
		if rid == "" {
			rid = newRequestID()
		}

		c.Set(CtxRequestID, rid)
		c.Request = c.Request.WithContext(
			context.WithValue(c.Request.Context(), requestIDKey{}, rid),
		)
		c.Writer.Header().Set("X-Request-Id", rid)

		start := time.Now()
		c.Next()

		log.Printf("[http] id=%s method=%s path=%s status=%d latency=%s",
			rid, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// GetRequestID returns the request ID carried by ctx, or "" outside a
// request.
func GetRequestID(ctx context.Context) string {
	rid, _ := ctx.Value(requestIDKey{}).(string)
	return rid
}

func newRequestID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// rand failing is effectively fatal elsewhere; a timestamp ID
		// keeps the log line usable.
		return time.Now().UTC().Format("20060102T150405.000000000")
	}
	return hex.EncodeToString(b)
}
