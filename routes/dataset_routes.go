package routes

import (
	"github.com/eduforge/coursegen/handlers"
	"github.com/eduforge/coursegen/middleware"
	"github.com/eduforge/coursegen/websocket"
	"github.com/gofiber/fiber/v2"
)

func DatasetRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/students", handlers.GetStudents)
	api.Get("/instructors", handlers.GetInstructors)
	api.Get("/courses", handlers.GetCourses)
	api.Get("/enrollments", handlers.GetEnrollments)
	api.Get("/payments", handlers.GetPayments)
	api.Get("/reviews", handlers.GetReviews)
	api.Get("/certificates", handlers.GetCertificates)
	api.Get("/certificates/:id/pdf", handlers.GetCertificatePDF)
	api.Get("/datasets/stats", handlers.GetDatasetStats)

	admin := api.Group("/datasets", middleware.Protected(), middleware.AdminRequired())
	admin.Post("/regenerate", handlers.RegenerateDataset)

	app.Get("/ws/datasets", websocket.Handler())
}
