package runtime

import (
	"bytes"
	"crypto/subtle"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Request limits enforced by the validation middleware.
const (
	maxBodyBytes   = 10 << 20 // 10 MiB
	maxURLLength   = 2048
	maxHeaderBytes = 8 << 10 // 8 KiB
)

// attackSignatures is the lowercased blocklist applied to request URLs
// and bodies. Matches are rejected before reaching any handler.
var attackSignatures = []string{
	"<script",
	"javascript:",
	"onerror=",
	"onload=",
	"union select",
	"insert into",
	"drop table",
	"delete from",
	"' or 1=1",
	"\" or 1=1",
	"../../",
}

// auditLog logs every request with its outcome.
func (s *Server) auditLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("Request handled",
			"agent_type", s.agent.Type(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"client_ip", c.ClientIP(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}

// inputValidation enforces size limits and the attack-signature
// blocklist on the URL and body.
func (s *Server) inputValidation() gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(c.Request.RequestURI) > maxURLLength {
			c.AbortWithStatusJSON(http.StatusRequestURITooLong, gin.H{"error": "request URL too long"})
			return
		}

		headerSize := 0
		for key, values := range c.Request.Header {
			for _, value := range values {
				headerSize += len(key) + len(value) + 4
			}
		}
		if headerSize > maxHeaderBytes {
			c.AbortWithStatusJSON(http.StatusRequestHeaderFieldsTooLarge, gin.H{"error": "request headers too large"})
			return
		}

		if c.Request.ContentLength > maxBodyBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return
		}

		// Scan both the raw and the unescaped query so encoded payloads
		// cannot slip through.
		unescaped, err := url.QueryUnescape(c.Request.URL.RawQuery)
		if err != nil {
			unescaped = ""
		}
		if containsAttackSignature(c.Request.URL.Path, c.Request.URL.RawQuery, unescaped) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "request rejected by input validation"})
			return
		}

		if c.Request.Body != nil && c.Request.ContentLength != 0 {
			payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
			if err != nil {
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
				return
			}
			if containsAttackSignature(string(payload)) {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "request rejected by input validation"})
				return
			}
			c.Request.Body = io.NopCloser(bytes.NewReader(payload))
		}

		c.Next()
	}
}

func containsAttackSignature(values ...string) bool {
	for _, value := range values {
		lower := strings.ToLower(value)
		for _, sig := range attackSignatures {
			if strings.Contains(lower, sig) {
				return true
			}
		}
	}
	return false
}

// rateLimit applies the per-IP sliding windows and exposes the
// X-RateLimit-* headers on every response.
func (s *Server) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := s.limiter.Allow(c.ClientIP())

		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

		if !decision.Allowed {
			retryAfter := int(decision.RetryAfter.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.Header("X-RateLimit-Window", decision.Window)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":  "rate limit exceeded",
				"window": decision.Window,
			})
			return
		}

		c.Next()
	}
}

// securityHeaders sets the standard security response headers.
func (s *Server) securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		c.Next()
	}
}

// requireAuth accepts the shared API key or a valid HS256 JWT as a
// bearer token. Missing credentials are 401, wrong credentials 403.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		if s.cfg.A2A.APIKey != "" &&
			subtle.ConstantTimeCompare([]byte(token), []byte(s.cfg.A2A.APIKey)) == 1 {
			c.Next()
			return
		}
		if s.cfg.A2A.JWTSecret != "" && s.validJWT(token) {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid credentials"})
	}
}

func (s *Server) validJWT(raw string) bool {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return []byte(s.cfg.A2A.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	return err == nil && token.Valid
}
