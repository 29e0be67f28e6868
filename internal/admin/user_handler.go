package admin

import (
	"errors"

	"menu-backend/internal/models"
	"menu-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

type UserRecord struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	IsSuperuser  bool   `json:"is_superuser"`
	RestaurantID *uint  `json:"restaurant_id"`
	CreatedAt    string `json:"created_at"`
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
		CreatedAt:    u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// GET /admin/users
func ListUsersHandler(users *storage.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 0)
		offset := c.QueryInt("offset", 0)

		all, err := users.List(limit, offset)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list users")
		}

		res := make([]UserRecord, 0, len(all))
		for i := range all {
			res = append(res, userRecord(&all[i]))
		}
		return c.JSON(fiber.Map{"Users": res})
	}
}

// GET /admin/users/:id
func GetUserHandler(users *storage.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
		}

		user, err := users.FindByID(uint(id))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "user not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "could not load user")
		}

		return c.JSON(fiber.Map{"User": userRecord(user)})
	}
}

// DELETE /admin/users/:id
func DeleteUserHandler(users *storage.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
		}

		user, err := users.FindByID(uint(id))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "user not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "could not load user")
		}

		if err := users.Delete(user); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not delete user")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"deleted": userRecord(user),
		})
	}
}
