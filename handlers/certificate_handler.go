package handlers

import (
	"fmt"
	"log"

	config "github.com/eduforge/coursegen/configs"
	"github.com/eduforge/coursegen/services"
	"github.com/gofiber/fiber/v2"
)

// GetCertificatePDF renders one generated certificate as a PDF. With
// ?upload=true and Cloudinary configured, the PDF is uploaded and its public
// URL returned instead.
func GetCertificatePDF(c *fiber.Ctx) error {
	dataset, err := services.CurrentDataset()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}

	certificate := dataset.FindCertificate(c.Params("id"))
	if certificate == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certificate not found"})
	}

	pdfBytes, err := services.RenderCertificatePDF(certificate)
	if err != nil {
		log.Printf("🔥 Failed to render certificate PDF: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to render PDF"})
	}

	if c.Query("upload") == "true" && config.Config("CLOUDINARY_URL") != "" {
		uploadURL, err := services.UploadCertificatePDF(pdfBytes, certificate.ID)
		if err != nil {
			log.Printf("🔥 Failed to upload certificate PDF: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload PDF"})
		}
		return c.JSON(fiber.Map{"certificate_id": certificate.ID, "url": uploadURL})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%s.pdf", certificate.CertificateNumber))
	return c.Send(pdfBytes)
}
