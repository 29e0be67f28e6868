package server

import (
	"log"
	"strings"

	"menu-backend/internal/admin"
	"menu-backend/internal/auth"
	"menu-backend/internal/config"
	"menu-backend/internal/menu"
	"menu-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"
)

// New builds the fiber app with the full route table. The database handle and
// config are threaded through explicitly; nothing here touches package state.
func New(cfg *config.Config, db *gorm.DB) *fiber.App {
	restaurants := storage.NewRestaurantRepository(db)
	items := storage.NewItemRepository(db)
	users := storage.NewUserRepository(db)
	sessions := storage.NewSessionRepository(db)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "internal server error"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			} else {
				log.Println("unexpected error:", err)
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"error":   code,
				"message": message,
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
	}))

	requireSession := auth.RequireSession(cfg, sessions, users)

	// Public reads
	app.Get("/", menu.IndexHandler())
	app.Get("/api", menu.APIHandler(restaurants, items))
	app.Get("/restaurants", menu.ListRestaurantsHandler(restaurants))
	app.Get("/restaurants/:slug", menu.GetRestaurantBySlugHandler(restaurants))
	app.Get("/items", menu.ListItemsHandler(items))

	// Session lifecycle
	app.Post("/register", auth.RegisterHandler(users, restaurants))
	app.Post("/login", auth.LoginHandler(cfg, users, sessions))
	app.Get("/logout", requireSession, auth.LogoutHandler(sessions))

	// Mutations need a live session
	app.Post("/restaurants", requireSession, menu.CreateRestaurantHandler(restaurants))
	app.Patch("/restaurants/:id", requireSession, menu.UpdateRestaurantHandler(restaurants))
	app.Delete("/restaurants/:id", requireSession, menu.DeleteRestaurantHandler(restaurants))
	app.Post("/restaurants/:id/items", requireSession, menu.CreateItemHandler(items))
	app.Patch("/items/:id", requireSession, menu.UpdateItemHandler(items))
	app.Delete("/items/:id", requireSession, menu.DeleteItemHandler(items))

	// Administrative record access, superuser only
	adminRoutes := app.Group("/admin", requireSession, auth.RequireSuperuser())
	adminRoutes.Get("/users", admin.ListUsersHandler(users))
	adminRoutes.Get("/users/:id", admin.GetUserHandler(users))
	adminRoutes.Delete("/users/:id", admin.DeleteUserHandler(users))

	return app
}
