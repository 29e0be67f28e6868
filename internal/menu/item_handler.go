package menu

import (
	"errors"

	"menu-backend/internal/models"
	"menu-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

type ItemRecord struct {
	ID           uint     `json:"id"`
	RestaurantID uint     `json:"restaurantId"`
	Section      string   `json:"section"`
	Name         string   `json:"name"`
	ShortDesc    string   `json:"shortDescription"`
	Price        string   `json:"price"`
	ImageURL     string   `json:"imageUrl"`
	Categories   []string `json:"categories"`
}

type CreateItemRequest struct {
	Section    string   `json:"section"`
	Name       string   `json:"name"`
	ShortDesc  string   `json:"shortDescription"`
	Price      string   `json:"price"`
	ImageURL   string   `json:"imageUrl"`
	Categories []string `json:"categories"`
}

type UpdateItemRequest struct {
	Section    *string   `json:"section"`
	Name       *string   `json:"name"`
	ShortDesc  *string   `json:"shortDescription"`
	Price      *string   `json:"price"`
	ImageURL   *string   `json:"imageUrl"`
	Categories *[]string `json:"categories"`
}

func itemRecord(i *models.Item) ItemRecord {
	categories := i.Categories
	if categories == nil {
		categories = []string{}
	}
	return ItemRecord{
		ID:           i.ID,
		RestaurantID: i.RestaurantID,
		Section:      i.Section,
		Name:         i.Name,
		ShortDesc:    i.ShortDesc,
		Price:        i.Price,
		ImageURL:     i.ImageURL,
		Categories:   categories,
	}
}

// GET /items
func ListItemsHandler(items *storage.ItemRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 0)
		offset := c.QueryInt("offset", 0)

		all, err := items.List(limit, offset)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list items")
		}

		res := make([]ItemRecord, 0, len(all))
		for i := range all {
			res = append(res, itemRecord(&all[i]))
		}
		return c.JSON(fiber.Map{"Items": res})
	}
}

// POST /restaurants/:id/items
func CreateItemHandler(items *storage.ItemRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		restaurantID, err := c.ParamsInt("id")
		if err != nil || restaurantID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid restaurant id")
		}

		var body CreateItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		item := models.Item{
			RestaurantID: uint(restaurantID),
			Section:      body.Section,
			Name:         body.Name,
			ShortDesc:    body.ShortDesc,
			Price:        body.Price,
			ImageURL:     body.ImageURL,
			Categories:   body.Categories,
		}

		if err := items.Create(&item); err != nil {
			if errors.Is(err, storage.ErrConflict) {
				return fiber.NewError(fiber.StatusUnprocessableEntity, "restaurant does not exist")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "could not create item")
		}

		return c.JSON(fiber.Map{
			"success":      true,
			"created item": itemRecord(&item),
		})
	}
}

// PATCH /items/:id
func UpdateItemHandler(items *storage.ItemRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid item id")
		}

		item, err := items.FindByID(uint(id))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "item not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "could not load item")
		}

		var body UpdateItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		if body.Section != nil {
			item.Section = *body.Section
		}
		if body.Name != nil {
			item.Name = *body.Name
		}
		if body.ShortDesc != nil {
			item.ShortDesc = *body.ShortDesc
		}
		if body.Price != nil {
			item.Price = *body.Price
		}
		if body.ImageURL != nil {
			item.ImageURL = *body.ImageURL
		}
		if body.Categories != nil {
			item.Categories = *body.Categories
		}

		if err := items.Update(item); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not update item")
		}

		return c.JSON(fiber.Map{
			"success":      true,
			"updated item": itemRecord(item),
		})
	}
}

// DELETE /items/:id
func DeleteItemHandler(items *storage.ItemRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid item id")
		}

		item, err := items.FindByID(uint(id))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "item not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "could not load item")
		}

		if err := items.Delete(item); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not delete item")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"deleted": itemRecord(item),
		})
	}
}
