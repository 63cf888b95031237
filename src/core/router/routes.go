package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"campushub/src/core/middleware"
	"campushub/src/modules/authentication"
	"campushub/src/modules/events"
	"campushub/src/modules/notes"
	"campushub/src/modules/payments"
	"campushub/src/modules/registrations"
	"campushub/src/modules/users"
)

func InitialiseAndSetupRoutes(app *fiber.App) {
	root := app.Group("/", logger.New())

	root.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	apiV1 := root.Group("/api/v1")
	setupAPIV1Routes(apiV1)
}

func setupAPIV1Routes(router fiber.Router) {
	// Grouped API endpoints
	authGroup := router.Group("/auth")
	userGroup := router.Group("/users")
	adminGroup := router.Group("/admin", middleware.Protected(), middleware.AdminOnly())
	eventGroup := router.Group("/events")
	noteGroup := router.Group("/notes")
	paymentGroup := router.Group("/payments")

	// Authentication routes
	authGroup.Post("/signup", authentication.SignUp)
	authGroup.Post("/signin", authentication.SignIn)

	// User routes
	userGroup.Get("/profile", middleware.Protected(), users.GetProfile)
	userGroup.Put("/profile", middleware.Protected(), users.UpdateProfile)
	userGroup.Post("/upload-profile-photo", middleware.Protected(), users.UploadProfilePhoto)

	// Admin routes
	adminGroup.Get("/users", users.ListUsers)
	adminGroup.Put("/users/:id/role", users.UpdateUserRole)
	adminGroup.Delete("/users/:id", users.DeleteUser)

	// Event routes
	eventGroup.Post("/", middleware.Protected(), events.CreateEvent)
	eventGroup.Get("/feed", events.GetEventsFeed)
	eventGroup.Get("/hosted", middleware.Protected(), events.GetHostedEvents)
	eventGroup.Get("/:id", events.GetEventByID)
	eventGroup.Put("/:id", middleware.Protected(), events.UpdateEvent)
	eventGroup.Delete("/:id", middleware.Protected(), events.DeleteEvent)
	eventGroup.Patch("/:id/cancel", middleware.Protected(), events.CancelEvent)
	eventGroup.Post("/:id/banner", middleware.Protected(), events.UploadEventBanner)

	// Registration and participant routes
	eventGroup.Post("/:id/register", middleware.Protected(), registrations.Register)
	eventGroup.Delete("/:id/register", middleware.Protected(), registrations.Unregister)
	eventGroup.Get("/:id/participants", middleware.Protected(), registrations.GetParticipants)
	eventGroup.Patch("/:id/participants/:registration_id/status", middleware.Protected(), registrations.UpdateParticipantStatus)
	eventGroup.Get("/:id/participants/export", middleware.Protected(), registrations.ExportParticipantsCSV)

	// Notes marketplace routes
	noteGroup.Post("/", middleware.Protected(), notes.UploadNote)
	noteGroup.Get("/feed", notes.GetNotesFeed)
	noteGroup.Get("/:id/download", middleware.Protected(), notes.DownloadNote)
	noteGroup.Delete("/:id", middleware.Protected(), notes.DeleteNote)

	// Payment routes
	paymentGroup.Post("/order", middleware.Protected(), payments.CreateOrder)
	paymentGroup.Post("/verify", middleware.Protected(), payments.VerifyPayment)
}
