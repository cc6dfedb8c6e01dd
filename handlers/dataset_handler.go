package handlers

import (
	"errors"
	"log"

	"github.com/eduforge/coursegen/generator"
	"github.com/eduforge/coursegen/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetStudents(c *fiber.Ctx) error {
	dataset, err := services.CurrentDataset()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(dataset.Students)
}

func GetInstructors(c *fiber.Ctx) error {
	dataset, err := services.CurrentDataset()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(dataset.Instructors)
}

func GetCourses(c *fiber.Ctx) error {
	dataset, err := services.CurrentDataset()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(dataset.Courses)
}

func GetEnrollments(c *fiber.Ctx) error {
	dataset, err := services.CurrentDataset()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(dataset.Enrollments)
}

func GetPayments(c *fiber.Ctx) error {
	dataset, err := services.CurrentDataset()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(dataset.Payments)
}

func GetReviews(c *fiber.Ctx) error {
	dataset, err := services.CurrentDataset()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(dataset.Reviews)
}

func GetCertificates(c *fiber.Ctx) error {
	dataset, err := services.CurrentDataset()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(dataset.Certificates)
}

func GetDatasetStats(c *fiber.Ctx) error {
	dataset, err := services.CurrentDataset()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(dataset.Stats())
}

// RegenerateDataset replaces the served dataset. The request body is
// optional; without one the current config is reused.
func RegenerateDataset(c *fiber.Ctx) error {
	cfg := services.CurrentConfig()
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&cfg); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
		}
	}
	if err := validate.Struct(cfg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := services.RegenerateDataset(cfg); err != nil {
		if errors.Is(err, generator.ErrEmptyParents) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("🔥 Failed to regenerate dataset: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to regenerate dataset"})
	}

	dataset, err := services.CurrentDataset()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dataset.Stats())
}
