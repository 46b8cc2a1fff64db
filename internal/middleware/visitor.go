package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"career-counsel/internal/config"
	"career-counsel/internal/domain"
	"career-counsel/internal/logger"
	"career-counsel/internal/visitor"
)

const VisitorIDKey = "visitorID" // Key for storing the visitor id in fiber.Ctx locals

// Visitor resolves the anonymous visitor from the signed cookie. A missing,
// expired or tampered cookie is replaced by a freshly minted visitor.
func Visitor(issuer *visitor.Issuer, cfg config.VisitorConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := c.Cookies(cfg.CookieName); token != "" {
			visitorID, err := issuer.Parse(token)
			if err == nil {
				c.Locals(VisitorIDKey, visitorID)
				return c.Next()
			}
			logger.Get().Debug("Visitor cookie rejected, issuing a new one", zap.Error(err))
		}

		visitorID, token, err := issuer.Issue()
		if err != nil {
			return domain.NewInternalError("Failed to issue visitor cookie", err)
		}

		c.Cookie(&fiber.Cookie{
			Name:     cfg.CookieName,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(issuer.TTL()),
			HTTPOnly: true,
			Secure:   cfg.SecureCookie,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		c.Locals(VisitorIDKey, visitorID)
		logger.Get().Debug("New visitor issued", zap.String("visitor_id", visitorID))

		return c.Next()
	}
}

// VisitorID returns the id stored by Visitor, or "" outside that middleware.
func VisitorID(c *fiber.Ctx) string {
	if id, ok := c.Locals(VisitorIDKey).(string); ok {
		return id
	}
	return ""
}
