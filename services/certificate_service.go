package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	config "github.com/eduforge/coursegen/configs"
	"github.com/eduforge/coursegen/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// RenderCertificatePDF renders a sample certificate to PDF via a headless
// browser, for previewing what a seeded environment would hand to students.
func RenderCertificatePDF(certificate *models.Certificate) ([]byte, error) {
	htmlData, err := renderCertificateHTML(certificate)
	if err != nil {
		return nil, fmt.Errorf("failed to render certificate HTML: %w", err)
	}
	return printPDFFromHTML(htmlData)
}

func renderCertificateHTML(certificate *models.Certificate) (string, error) {
	tmpl, err := template.ParseFiles("templates/certificate.html")
	if err != nil {
		return "", err
	}

	data := struct {
		StudentName       string
		InstructorName    string
		CourseTitle       string
		CertificateNumber string
		FinalScore        float64
		IssuedDate        string
	}{
		StudentName:       certificate.StudentName,
		InstructorName:    certificate.InstructorName,
		CourseTitle:       certificate.CourseTitle,
		CertificateNumber: certificate.CertificateNumber,
		FinalScore:        certificate.FinalScore,
		IssuedDate:        certificate.IssuedAt.Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func printPDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

// UploadCertificatePDF pushes a rendered certificate to Cloudinary and
// returns the public URL. Requires CLOUDINARY_URL to be configured.
func UploadCertificatePDF(fileBytes []byte, certificateID string) (string, error) {
	cloudinaryURL := config.Config("CLOUDINARY_URL")
	if cloudinaryURL == "" {
		return "", fmt.Errorf("CLOUDINARY_URL is not configured")
	}

	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("certificates/%s_%s", certificateID, uuid.New().String()),
		Folder:       "coursegen_certificates",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
