package database

import (
	"fmt"
	"log"

	config "github.com/eduforge/coursegen/configs"
	"github.com/eduforge/coursegen/generator"
	"github.com/eduforge/coursegen/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.Student{},
		&models.Instructor{},
		&models.Course{},
		&models.Lesson{},
		&models.Enrollment{},
		&models.Payment{},
		&models.Review{},
		&models.Certificate{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

const seedBatchSize = 200

// SeedDataset inserts a generated dataset in dependency order. Generated
// students get a shared bcrypt-hashed demo password so seeded environments
// have working logins. Associations are omitted on insert; the generator has
// already produced every referenced row.
func SeedDataset(dataset *generator.Dataset) error {
	demoPassword := config.ConfigOr("DEMO_STUDENT_PASSWORD", "coursegen123")
	hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}
	for _, student := range dataset.Students {
		student.PasswordHash = string(hashed)
	}

	lessons := make([]*models.Lesson, 0)
	for _, course := range dataset.Courses {
		lessons = append(lessons, course.Lessons...)
	}

	steps := []struct {
		name  string
		count int
		value interface{}
	}{
		{"students", len(dataset.Students), dataset.Students},
		{"instructors", len(dataset.Instructors), dataset.Instructors},
		{"courses", len(dataset.Courses), dataset.Courses},
		{"lessons", len(lessons), lessons},
		{"enrollments", len(dataset.Enrollments), dataset.Enrollments},
		{"payments", len(dataset.Payments), dataset.Payments},
		{"reviews", len(dataset.Reviews), dataset.Reviews},
		{"certificates", len(dataset.Certificates), dataset.Certificates},
	}

	for _, step := range steps {
		if step.count == 0 {
			continue
		}
		if err := DB.Omit(clause.Associations).CreateInBatches(step.value, seedBatchSize).Error; err != nil {
			return fmt.Errorf("failed to seed %s: %w", step.name, err)
		}
		log.Printf("✅ Seeded %d %s", step.count, step.name)
	}
	return nil
}
