package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

const wildcard = "*"

// CORSConfig represents CORS configuration
type CORSConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposeHeaders    []string
	AllowCredentials bool
	MaxAge           int
}

// DefaultCORSConfig allows any origin, method and header with credentials
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigins: []string{wildcard},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders: []string{wildcard},
		ExposeHeaders: []string{
			"X-Request-ID",
		},
		AllowCredentials: true,
		MaxAge:           600,
	}
}

// CORS returns a CORS middleware with the given configuration.
// A wildcard origin combined with credentials echoes the request Origin,
// since browsers reject "*" in that case.
func CORS(config CORSConfig) gin.HandlerFunc {
	allowAnyOrigin := lo.Contains(config.AllowOrigins, wildcard)
	allowAnyHeader := lo.Contains(config.AllowHeaders, wildcard)
	methods := strings.Join(config.AllowMethods, ", ")
	exposed := strings.Join(config.ExposeHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		// Set origin
		switch {
		case origin != "" && (lo.Contains(config.AllowOrigins, origin) || (allowAnyOrigin && config.AllowCredentials)):
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		case allowAnyOrigin:
			c.Header("Access-Control-Allow-Origin", wildcard)
		}

		if methods != "" {
			c.Header("Access-Control-Allow-Methods", methods)
		}

		if allowAnyHeader {
			if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
				c.Header("Access-Control-Allow-Headers", requested)
			} else {
				c.Header("Access-Control-Allow-Headers", wildcard)
			}
		} else if len(config.AllowHeaders) > 0 {
			c.Header("Access-Control-Allow-Headers", strings.Join(config.AllowHeaders, ", "))
		}

		if exposed != "" {
			c.Header("Access-Control-Expose-Headers", exposed)
		}

		if config.AllowCredentials {
			c.Header("Access-Control-Allow-Credentials", "true")
		}

		if config.MaxAge > 0 {
			c.Header("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
		}

		// Handle preflight requests
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
