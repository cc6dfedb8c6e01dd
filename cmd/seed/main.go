package main

import (
	"flag"
	"log"

	"github.com/eduforge/coursegen/database"
	"github.com/eduforge/coursegen/generator"
)

func main() {
	var (
		seed        = flag.Int64("seed", 0, "random seed; 0 uses a time-based seed")
		students    = flag.Int("students", 50, "number of students to generate")
		instructors = flag.Int("instructors", 10, "number of instructors to generate")
		courses     = flag.Int("courses", 20, "number of courses to generate")
		enrollments = flag.Int("enrollments", 120, "number of enrollments to generate")
		payments    = flag.Int("payments", 80, "number of payments to generate")
		reviews     = flag.Int("reviews", 60, "number of reviews to generate")
	)
	flag.Parse()

	gen := generator.New(*seed)
	dataset, err := gen.GenerateDataset(generator.DatasetConfig{
		Students:    *students,
		Instructors: *instructors,
		Courses:     *courses,
		Enrollments: *enrollments,
		Payments:    *payments,
		Reviews:     *reviews,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to generate dataset: %v", err)
	}

	database.ConnectDB()
	database.Migrate()

	if err := database.SeedDataset(dataset); err != nil {
		log.Fatalf("🔥 Failed to seed database: %v", err)
	}

	stats := dataset.Stats()
	log.Printf("✅ Seeded sample data: %d students, %d instructors, %d courses, %d lessons, %d enrollments, %d payments, %d reviews, %d certificates",
		stats.Students, stats.Instructors, stats.Courses, stats.Lessons,
		stats.Enrollments, stats.Payments, stats.Reviews, stats.Certificates)
}
