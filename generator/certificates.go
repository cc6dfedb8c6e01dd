package generator

import (
	"fmt"
	"time"

	"github.com/eduforge/coursegen/models"
)

// GenerateCertificates derives certificates from the given enrollments. It
// is a pure filter/map: exactly one certificate is emitted per enrollment
// that is completed with a recorded score of at least models.PassingScore,
// and none otherwise. A random subset of certificates expires two years
// after issuance.
func (g *Generator) GenerateCertificates(enrollments []*models.Enrollment) []*models.Certificate {
	g.mu.Lock()
	defer g.mu.Unlock()

	certificates := make([]*models.Certificate, 0)
	for _, enrollment := range enrollments {
		if !enrollment.QualifiesForCertificate() {
			continue
		}

		id := g.nextID(&g.certificateSeq, "CRT")
		issuedAt := time.Now()

		certificate := &models.Certificate{
			ID:                id,
			StudentID:         enrollment.StudentID,
			CourseID:          enrollment.CourseID,
			StudentName:       g.studentNameFor(enrollment.StudentID),
			CertificateNumber: certificateNumber(issuedAt, g.certificateSeq),
			FinalScore:        *enrollment.Score,
			IssuedAt:          issuedAt,
		}

		if enrollment.Course != nil {
			certificate.CourseTitle = enrollment.Course.Title
			if enrollment.Course.Instructor != nil {
				certificate.InstructorName = enrollment.Course.Instructor.FullName()
			}
		}

		url := fmt.Sprintf("https://verify.coursegen.dev/certificates/%s", certificate.CertificateNumber)
		certificate.VerificationURL = &url

		if g.chance(CertificateExpiryProbability) {
			expiresAt := issuedAt.AddDate(2, 0, 0)
			certificate.ExpiresAt = &expiresAt
		}

		certificates = append(certificates, certificate)
	}
	return certificates
}

// studentNameFor resolves the denormalized student name from the names this
// generator has handed out; enrollments built outside the generator fall
// back to the raw id.
func (g *Generator) studentNameFor(studentID string) string {
	if name, ok := g.studentNames[studentID]; ok {
		return name
	}
	return studentID
}

// certificateNumber derives a human-checkable number from the issuance
// instant plus the issuing sequence, so two certificates issued in the same
// instant still differ.
func certificateNumber(issuedAt time.Time, seq int) string {
	return fmt.Sprintf("CERT-%s-%d", issuedAt.UTC().Format("20060102150405"), seq)
}
