package auth

import (
	"errors"
	"strings"
	"time"

	"menu-backend/internal/config"
	"menu-backend/internal/models"
	"menu-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	RestaurantID *uint  `json:"restaurant_id"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserRecord struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	IsSuperuser  bool   `json:"is_superuser"`
	RestaurantID *uint  `json:"restaurant_id"`
}

func userRecord(u *models.User) UserRecord {
	return UserRecord{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Name:         u.Name,
		Phone:        u.Phone,
		Address:      u.Address,
		IsSuperuser:  u.IsSuperuser,
		RestaurantID: u.RestaurantID,
	}
}

// POST /register
// Registration never grants superuser; that flag is flipped out of band.
func RegisterHandler(users *storage.UserRepository, restaurants *storage.RestaurantRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		body.Username = strings.TrimSpace(body.Username)
		if body.Username == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "username and password are required")
		}

		if body.RestaurantID != nil {
			if _, err := restaurants.FindByID(*body.RestaurantID); err != nil {
				return fiber.NewError(fiber.StatusUnprocessableEntity, "restaurant does not exist")
			}
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not hash password")
		}

		user := models.User{
			Username:     body.Username,
			PasswordHash: string(hash),
			Email:        body.Email,
			Name:         body.Name,
			Phone:        body.Phone,
			Address:      body.Address,
			RestaurantID: body.RestaurantID,
		}

		if err := users.Create(&user); err != nil {
			if errors.Is(err, storage.ErrConflict) {
				return fiber.NewError(fiber.StatusUnprocessableEntity, "username is already taken")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "could not create user")
		}

		return c.JSON(fiber.Map{
			"success":      true,
			"created user": userRecord(&user),
		})
	}
}

// POST /login
// The error message never says which of username/password was wrong.
func LoginHandler(cfg *config.Config, users *storage.UserRepository, sessions *storage.SessionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		body.Username = strings.TrimSpace(body.Username)

		user, err := users.FindByUsername(body.Username)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid username or password")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid username or password")
		}

		now := time.Now()
		// No background sweeper; lapsed sessions get cleared here.
		_ = sessions.DeleteExpired(now)

		session := models.Session{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			ExpiresAt: now.Add(cfg.SessionTTL),
		}
		if err := sessions.Create(&session); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not create session")
		}

		token, err := SignSessionToken(cfg.SessionSecret, session.ID, now)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not sign session token")
		}

		setSessionCookie(c, token, session.ExpiresAt)

		return c.JSON(fiber.Map{
			"success": true,
			"token":   token,
			"user":    userRecord(user),
		})
	}
}

// GET /logout
func LogoutHandler(sessions *storage.SessionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sessionID, ok := c.Locals(CtxSessionIDKey).(string); ok && sessionID != "" {
			if err := sessions.Delete(sessionID); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "could not destroy session")
			}
		}
		clearSessionCookie(c)

		return c.JSON(fiber.Map{
			"success": true,
			"message": "logged out",
		})
	}
}
