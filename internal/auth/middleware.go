package auth

import (
	"strings"
	"time"

	"menu-backend/internal/config"
	"menu-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

const (
	CtxUserIDKey    = "user_id"
	CtxUsernameKey  = "username"
	CtxSuperuserKey = "is_superuser"
	CtxSessionIDKey = "session_id"

	SessionCookie = "menu_session"
)

// RequireSession gates a route behind a live session. The token is taken from
// the session cookie or an Authorization bearer header. Each pass extends the
// session window by the full TTL (sliding expiration).
func RequireSession(cfg *config.Config, sessions *storage.SessionRepository, users *storage.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := tokenFromRequest(c)
		if tokenStr == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
		}

		sessionID, err := ParseSessionToken(cfg.SessionSecret, tokenStr)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired session")
		}

		session, err := sessions.Find(sessionID)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired session")
		}

		now := time.Now()
		if session.Expired(now) {
			_ = sessions.Delete(session.ID)
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired session")
		}

		user, err := users.FindByID(session.UserID)
		if err != nil {
			// Account is gone; the session is worthless.
			_ = sessions.Delete(session.ID)
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired session")
		}

		expiresAt := now.Add(cfg.SessionTTL)
		if err := sessions.Extend(session.ID, expiresAt); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not refresh session")
		}
		if c.Cookies(SessionCookie) != "" {
			setSessionCookie(c, tokenStr, expiresAt)
		}

		c.Locals(CtxUserIDKey, user.ID)
		c.Locals(CtxUsernameKey, user.Username)
		c.Locals(CtxSuperuserKey, user.IsSuperuser)
		c.Locals(CtxSessionIDKey, session.ID)

		return c.Next()
	}
}

// RequireSuperuser must run after RequireSession.
func RequireSuperuser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isSuper, ok := c.Locals(CtxSuperuserKey).(bool)
		if !ok || !isSuper {
			return fiber.NewError(fiber.StatusForbidden, "superuser access required")
		}
		return c.Next()
	}
}

func tokenFromRequest(c *fiber.Ctx) string {
	if cookie := c.Cookies(SessionCookie); cookie != "" {
		return cookie
	}
	header := c.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}

func setSessionCookie(c *fiber.Ctx, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
