package menu

import (
	"menu-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// GET /
func IndexHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendString("Server is up.")
	}
}

// GET /api - combined snapshot of every restaurant and item
func APIHandler(restaurants *storage.RestaurantRepository, items *storage.ItemRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		allRestaurants, err := restaurants.List(0, 0)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list restaurants")
		}
		allItems, err := items.List(0, 0)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list items")
		}

		restaurantRecords := make([]RestaurantRecord, 0, len(allRestaurants))
		for i := range allRestaurants {
			restaurantRecords = append(restaurantRecords, restaurantRecord(&allRestaurants[i]))
		}
		itemRecords := make([]ItemRecord, 0, len(allItems))
		for i := range allItems {
			itemRecords = append(itemRecords, itemRecord(&allItems[i]))
		}

		return c.JSON(fiber.Map{
			"Restaurants": restaurantRecords,
			"Items":       itemRecords,
		})
	}
}
