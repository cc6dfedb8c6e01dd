// Package generator produces internally consistent, randomized collections of
// education-platform entities: students, instructors, courses with lessons,
// enrollments, payments, reviews and certificates. Dependent kinds are
// generated from previously generated parent collections and wired back to
// them (a course knows its instructor, the instructor lists the course).
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// Probability thresholds used by the branching logic. Exported so tests can
// assert against the documented values instead of magic numbers.
const (
	StudentScorePresentProbability = 0.5
	InstructorVerifiedProbability  = 0.7
	CourseFreeProbability          = 0.2
	CoursePublishedProbability     = 0.8
	LessonFreePreviewProbability   = 0.5
	PaymentDiscountProbability     = 0.3
	ReviewVerifiedProbability      = 0.7
	CertificateExpiryProbability   = 0.3

	// Student activity is a two-stage draw: a fair coin that is always active
	// on heads, and active with studentActiveFallback probability on tails.
	// Effective rate ~90%.
	studentActiveFallback = 0.8
)

// ErrEmptyParents is returned when a generation call that must pick a random
// parent entity is given an empty parent collection.
var ErrEmptyParents = errors.New("parent collection is empty")

// Per-kind ID sequence offsets. Sequences only ever increment, so IDs within
// a kind are unique and strictly increasing in generation order.
const (
	studentSeqStart     = 1000
	instructorSeqStart  = 2000
	courseSeqStart      = 3000
	lessonSeqStart      = 4000
	enrollmentSeqStart  = 5000
	paymentSeqStart     = 6000
	reviewSeqStart      = 7000
	certificateSeqStart = 8000
)

// Generator is the shared context for all generation calls: one random
// source, one faker seeded alongside it, and the monotonic per-kind ID
// counters. The mutex keeps counters and the random source safe under
// concurrent use.
type Generator struct {
	mu    sync.Mutex
	rng   *rand.Rand
	faker *gofakeit.Faker

	studentSeq     int
	instructorSeq  int
	courseSeq      int
	lessonSeq      int
	enrollmentSeq  int
	paymentSeq     int
	reviewSeq      int
	certificateSeq int

	// Names of students generated by this Generator, so certificates can
	// denormalize the student name from an enrollment's student id.
	studentNames map[string]string
}

// New returns a Generator seeded with the given seed. A zero seed picks a
// time-based one, matching the non-reproducible behavior callers get when
// they do not care; tests pass a fixed seed to pin outcomes.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng:            rand.New(rand.NewSource(seed)),
		faker:          gofakeit.New(seed),
		studentSeq:     studentSeqStart,
		instructorSeq:  instructorSeqStart,
		courseSeq:      courseSeqStart,
		lessonSeq:      lessonSeqStart,
		enrollmentSeq:  enrollmentSeqStart,
		paymentSeq:     paymentSeqStart,
		reviewSeq:      reviewSeqStart,
		certificateSeq: certificateSeqStart,
		studentNames:   make(map[string]string),
	}
}

func (g *Generator) nextID(seq *int, prefix string) string {
	id := fmt.Sprintf("%s-%d", prefix, *seq)
	*seq++
	return id
}

func (g *Generator) chance(p float64) bool {
	return g.rng.Float64() < p
}

func (g *Generator) floatBetween(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}

func (g *Generator) intBetween(min, max int) int {
	return min + g.rng.Intn(max-min)
}

// daysAgo returns a timestamp a random amount in the past, up to maxDays.
func (g *Generator) daysAgo(maxDays int) time.Time {
	hours := g.rng.Intn(maxDays * 24)
	return time.Now().Add(-time.Duration(hours) * time.Hour)
}
