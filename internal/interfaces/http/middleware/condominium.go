package middleware

import (
	"net/http"
	"strings"

	"github.com/condo/backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CondominiumContextKey is the key used to store condominium information in gin.Context
const (
	CondominiumIDKey     = "condominium_id"
	CondominiumCodeKey   = "condominium_code"
	CondominiumHeaderKey = "X-Condominium-ID"
)

// CondominiumInfo holds the extracted condominium information
type CondominiumInfo struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"`
}

// CondominiumExtractor defines the interface for extracting condominium information
type CondominiumExtractor interface {
	ExtractCondominiumID(c *gin.Context) (string, error)
}

// CondominiumValidator defines the interface for validating condominium
type CondominiumValidator interface {
	ValidateCondominium(condominiumID string) (*CondominiumInfo, error)
}

// CondominiumMiddlewareConfig holds configuration for condominium middleware
type CondominiumMiddlewareConfig struct {
	// HeaderEnabled enables X-Condominium-ID header extraction
	HeaderEnabled bool
	// JWTEnabled enables JWT claim extraction (requires JWT middleware to run first)
	JWTEnabled bool
	// SubdomainEnabled enables subdomain extraction
	SubdomainEnabled bool
	// BaseDomain is the base domain for subdomain extraction (e.g., "condoapp.com")
	BaseDomain string
	// SkipPaths are paths that don't require condominium context (e.g., health check)
	SkipPaths []string
	// Required determines if condominium context is mandatory
	Required bool
	// Validator is an optional validator to check if condominium exists and is active
	Validator CondominiumValidator
	// Logger for middleware logging
	Logger *zap.Logger
}

// DefaultCondominiumConfig returns default condominium middleware configuration
func DefaultCondominiumConfig() CondominiumMiddlewareConfig {
	return CondominiumMiddlewareConfig{
		HeaderEnabled:    true,
		JWTEnabled:       true,
		SubdomainEnabled: false,
		BaseDomain:       "",
		SkipPaths:        []string{"/health", "/healthz", "/ready", "/metrics", "/api/v1/health"},
		Required:         true,
		Validator:        nil,
		Logger:           nil,
	}
}

// CondominiumMiddleware extracts condominium information from the request
// Extraction order: JWT claims > X-Condominium-ID header > subdomain
func CondominiumMiddleware() gin.HandlerFunc {
	return CondominiumMiddlewareWithConfig(DefaultCondominiumConfig())
}

// CondominiumMiddlewareWithConfig returns condominium middleware with custom configuration
func CondominiumMiddlewareWithConfig(cfg CondominiumMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Check if path should be skipped
		path := c.Request.URL.Path
		for _, skipPath := range cfg.SkipPaths {
			if path == skipPath || strings.HasPrefix(path, skipPath+"/") {
				c.Next()
				return
			}
		}

		var condominiumID string
		var extractionMethod string

		// Priority 1: JWT claims (if JWT middleware has already run)
		if cfg.JWTEnabled {
			if jwtCondominiumID, exists := c.Get("jwt_condominium_id"); exists {
				if tid, ok := jwtCondominiumID.(string); ok && tid != "" {
					condominiumID = tid
					extractionMethod = "jwt"
				}
			}
		}

		// Priority 2: X-Condominium-ID header
		if condominiumID == "" && cfg.HeaderEnabled {
			if headerCondominiumID := c.GetHeader(CondominiumHeaderKey); headerCondominiumID != "" {
				condominiumID = headerCondominiumID
				extractionMethod = "header"
			}
		}

		// Priority 3: Subdomain extraction
		if condominiumID == "" && cfg.SubdomainEnabled && cfg.BaseDomain != "" {
			if subdomainCondominiumID := extractCondominiumFromSubdomain(c.Request.Host, cfg.BaseDomain); subdomainCondominiumID != "" {
				condominiumID = subdomainCondominiumID
				extractionMethod = "subdomain"
			}
		}

		// Validate condominium ID format if present
		if condominiumID != "" {
			if err := validateCondominiumIDFormat(condominiumID); err != nil {
				respondUnauthorized(c, "Invalid condominium ID format")
				return
			}
		}

		// Check if condominium is required
		if condominiumID == "" && cfg.Required {
			respondUnauthorized(c, "Condominium identification required")
			return
		}

		// Optional: Validate condominium exists and is active
		var condominiumInfo *CondominiumInfo
		if condominiumID != "" && cfg.Validator != nil {
			var err error
			condominiumInfo, err = cfg.Validator.ValidateCondominium(condominiumID)
			if err != nil {
				log := cfg.Logger
				if log == nil {
					log = logger.FromContext(c.Request.Context())
				}
				log.Warn("Condominium validation failed",
					zap.String("condominium_id", condominiumID),
					zap.Error(err),
				)
				respondUnauthorized(c, "Invalid or inactive condominium")
				return
			}
		}

		// Set condominium information in context
		if condominiumID != "" {
			// Set in gin context for easy access in handlers
			c.Set(CondominiumIDKey, condominiumID)
			if condominiumInfo != nil {
				c.Set(CondominiumCodeKey, condominiumInfo.Code)
			}

			// Set in request context for service layer access
			ctx := c.Request.Context()
			log := logger.FromContext(ctx)
			ctx, _ = logger.WithCondominiumID(ctx, log, condominiumID)
			c.Request = c.Request.WithContext(ctx)

			// Log extraction method for debugging
			if cfg.Logger != nil {
				cfg.Logger.Debug("Condominium identified",
					zap.String("condominium_id", condominiumID),
					zap.String("method", extractionMethod),
				)
			}
		}

		c.Next()
	}
}

// extractCondominiumFromSubdomain extracts condominium code from subdomain
// e.g., "vila.condoapp.com" with baseDomain "condoapp.com" returns "vila"
func extractCondominiumFromSubdomain(host, baseDomain string) string {
	// Remove port if present
	if idx := strings.Index(host, ":"); idx != -1 {
		host = host[:idx]
	}

	// Check if host ends with base domain
	if !strings.HasSuffix(host, baseDomain) {
		return ""
	}

	// Extract subdomain
	subdomain := strings.TrimSuffix(host, "."+baseDomain)
	if subdomain == host || subdomain == "" || subdomain == "www" {
		return ""
	}

	// Return the first part of subdomain (in case of multi-level subdomains)
	parts := strings.Split(subdomain, ".")
	return parts[0]
}

// validateCondominiumIDFormat validates that the condominium ID is a valid UUID
func validateCondominiumIDFormat(condominiumID string) error {
	_, err := uuid.Parse(condominiumID)
	return err
}

// respondUnauthorized sends an unauthorized response
func respondUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}

// GetCondominiumID retrieves the condominium ID from gin.Context
func GetCondominiumID(c *gin.Context) string {
	if condominiumID, exists := c.Get(CondominiumIDKey); exists {
		if tid, ok := condominiumID.(string); ok {
			return tid
		}
	}
	return ""
}

// GetCondominiumUUID retrieves the condominium ID as UUID from gin.Context
func GetCondominiumUUID(c *gin.Context) (uuid.UUID, error) {
	condominiumID := GetCondominiumID(c)
	if condominiumID == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(condominiumID)
}

// GetCondominiumCode retrieves the condominium code from gin.Context
func GetCondominiumCode(c *gin.Context) string {
	if condominiumCode, exists := c.Get(CondominiumCodeKey); exists {
		if code, ok := condominiumCode.(string); ok {
			return code
		}
	}
	return ""
}

// MustGetCondominiumID retrieves the condominium ID from gin.Context or panics if not found
// Use this only in handlers where condominium is guaranteed to exist
func MustGetCondominiumID(c *gin.Context) string {
	condominiumID := GetCondominiumID(c)
	if condominiumID == "" {
		panic("condominium_id not found in context")
	}
	return condominiumID
}

// MustGetCondominiumUUID retrieves the condominium ID as UUID or panics if not found
func MustGetCondominiumUUID(c *gin.Context) uuid.UUID {
	condominiumUUID, err := GetCondominiumUUID(c)
	if err != nil || condominiumUUID == uuid.Nil {
		panic("valid condominium_id not found in context")
	}
	return condominiumUUID
}

// OptionalCondominiumMiddleware creates middleware that doesn't require condominium
func OptionalCondominiumMiddleware() gin.HandlerFunc {
	cfg := DefaultCondominiumConfig()
	cfg.Required = false
	return CondominiumMiddlewareWithConfig(cfg)
}
