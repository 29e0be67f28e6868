package menu

import (
	"errors"
	"strings"

	"menu-backend/internal/models"
	"menu-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

type RestaurantRecord struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	City         string `json:"city"`
	State        string `json:"state"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	ImageURL     string `json:"imageUrl"`
	WebsiteURL   string `json:"websiteUrl"`
	InstagramURL string `json:"instagramUrl"`
	FacebookURL  string `json:"facebookUrl"`
}

type CreateRestaurantRequest struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	City         string `json:"city"`
	State        string `json:"state"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	ImageURL     string `json:"imageUrl"`
	WebsiteURL   string `json:"websiteUrl"`
	InstagramURL string `json:"instagramUrl"`
	FacebookURL  string `json:"facebookUrl"`
}

// Pointer fields: a key that is omitted (or JSON null) leaves the stored
// value untouched; clearing a field means sending an empty string.
type UpdateRestaurantRequest struct {
	Name         *string `json:"name"`
	Slug         *string `json:"slug"`
	Description  *string `json:"description"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Address      *string `json:"address"`
	Phone        *string `json:"phone"`
	ImageURL     *string `json:"imageUrl"`
	WebsiteURL   *string `json:"websiteUrl"`
	InstagramURL *string `json:"instagramUrl"`
	FacebookURL  *string `json:"facebookUrl"`
}

func restaurantRecord(r *models.Restaurant) RestaurantRecord {
	return RestaurantRecord{
		ID:           r.ID,
		Name:         r.Name,
		Slug:         r.Slug,
		Description:  r.Description,
		City:         r.City,
		State:        r.State,
		Address:      r.Address,
		Phone:        r.Phone,
		ImageURL:     r.ImageURL,
		WebsiteURL:   r.WebsiteURL,
		InstagramURL: r.InstagramURL,
		FacebookURL:  r.FacebookURL,
	}
}

// GET /restaurants
func ListRestaurantsHandler(restaurants *storage.RestaurantRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 0)
		offset := c.QueryInt("offset", 0)

		all, err := restaurants.List(limit, offset)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list restaurants")
		}

		res := make([]RestaurantRecord, 0, len(all))
		for i := range all {
			res = append(res, restaurantRecord(&all[i]))
		}
		return c.JSON(fiber.Map{"Restaurants": res})
	}
}

// GET /restaurants/:slug
// The record comes back wrapped in a one-element collection, which is what
// existing clients consume.
func GetRestaurantBySlugHandler(restaurants *storage.RestaurantRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := c.Params("slug")

		restaurant, err := restaurants.FindBySlug(slug)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "restaurant not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "could not load restaurant")
		}

		return c.JSON(fiber.Map{
			"Restaurant": []RestaurantRecord{restaurantRecord(restaurant)},
		})
	}
}

// POST /restaurants
func CreateRestaurantHandler(restaurants *storage.RestaurantRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateRestaurantRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Slug = strings.TrimSpace(body.Slug)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name is required")
		}
		if body.Slug == "" {
			return fiber.NewError(fiber.StatusBadRequest, "slug is required")
		}

		restaurant := models.Restaurant{
			Name:         body.Name,
			Slug:         body.Slug,
			Description:  body.Description,
			City:         body.City,
			State:        body.State,
			Address:      body.Address,
			Phone:        body.Phone,
			ImageURL:     body.ImageURL,
			WebsiteURL:   body.WebsiteURL,
			InstagramURL: body.InstagramURL,
			FacebookURL:  body.FacebookURL,
		}

		if err := restaurants.Create(&restaurant); err != nil {
			if errors.Is(err, storage.ErrConflict) {
				return fiber.NewError(fiber.StatusUnprocessableEntity, "slug is already taken")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "could not create restaurant")
		}

		return c.JSON(fiber.Map{
			"success":            true,
			"created restaurant": restaurantRecord(&restaurant),
		})
	}
}

// PATCH /restaurants/:id
func UpdateRestaurantHandler(restaurants *storage.RestaurantRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid restaurant id")
		}

		restaurant, err := restaurants.FindByID(uint(id))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "restaurant not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "could not load restaurant")
		}

		var body UpdateRestaurantRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "name cannot be empty")
			}
			restaurant.Name = name
		}
		if body.Slug != nil {
			slug := strings.TrimSpace(*body.Slug)
			if slug == "" {
				return fiber.NewError(fiber.StatusBadRequest, "slug cannot be empty")
			}
			restaurant.Slug = slug
		}
		if body.Description != nil {
			restaurant.Description = *body.Description
		}
		if body.City != nil {
			restaurant.City = *body.City
		}
		if body.State != nil {
			restaurant.State = *body.State
		}
		if body.Address != nil {
			restaurant.Address = *body.Address
		}
		if body.Phone != nil {
			restaurant.Phone = *body.Phone
		}
		if body.ImageURL != nil {
			restaurant.ImageURL = *body.ImageURL
		}
		if body.WebsiteURL != nil {
			restaurant.WebsiteURL = *body.WebsiteURL
		}
		if body.InstagramURL != nil {
			restaurant.InstagramURL = *body.InstagramURL
		}
		if body.FacebookURL != nil {
			restaurant.FacebookURL = *body.FacebookURL
		}

		if err := restaurants.Update(restaurant); err != nil {
			if errors.Is(err, storage.ErrConflict) {
				return fiber.NewError(fiber.StatusUnprocessableEntity, "slug is already taken")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "could not update restaurant")
		}

		return c.JSON(fiber.Map{
			"success":            true,
			"updated restaurant": restaurantRecord(restaurant),
		})
	}
}

// DELETE /restaurants/:id
// Deletion is blocked while the restaurant still owns items or users.
func DeleteRestaurantHandler(restaurants *storage.RestaurantRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid restaurant id")
		}

		restaurant, err := restaurants.FindByID(uint(id))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "restaurant not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "could not load restaurant")
		}

		if err := restaurants.Delete(restaurant); err != nil {
			if errors.Is(err, storage.ErrConflict) {
				return fiber.NewError(fiber.StatusUnprocessableEntity, "restaurant still has items or users")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "could not delete restaurant")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"deleted": restaurantRecord(restaurant),
		})
	}
}
