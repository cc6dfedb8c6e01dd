package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDataset(t *testing.T) {
	g := New(42)

	dataset, err := g.GenerateDataset(DefaultConfig())
	require.NoError(t, err)

	cfg := DefaultConfig()
	assert.Len(t, dataset.Students, cfg.Students)
	assert.Len(t, dataset.Instructors, cfg.Instructors)
	assert.Len(t, dataset.Courses, cfg.Courses)
	assert.Len(t, dataset.Enrollments, cfg.Enrollments)
	assert.Len(t, dataset.Payments, cfg.Payments)
	assert.Len(t, dataset.Reviews, cfg.Reviews)
	assert.False(t, dataset.GeneratedAt.IsZero())

	// Every certificate must trace back to a qualifying enrollment.
	qualifying := 0
	for _, enrollment := range dataset.Enrollments {
		if enrollment.QualifiesForCertificate() {
			qualifying++
		}
	}
	assert.Len(t, dataset.Certificates, qualifying)
}

func TestGenerateDatasetRejectsInvalidConfig(t *testing.T) {
	g := New(42)

	cfg := DefaultConfig()
	cfg.Students = -1
	_, err := g.GenerateDataset(cfg)
	require.Error(t, err)

	cfg = DefaultConfig()
	cfg.Instructors = 0
	_, err = g.GenerateDataset(cfg)
	require.Error(t, err)
}

func TestDatasetStats(t *testing.T) {
	g := New(42)

	dataset, err := g.GenerateDataset(DefaultConfig())
	require.NoError(t, err)

	stats := dataset.Stats()
	assert.Equal(t, len(dataset.Students), stats.Students)
	assert.Equal(t, len(dataset.Certificates), stats.Certificates)

	lessons := 0
	for _, course := range dataset.Courses {
		lessons += len(course.Lessons)
	}
	assert.Equal(t, lessons, stats.Lessons)
}

func TestDatasetFindCertificate(t *testing.T) {
	g := New(42)

	dataset, err := g.GenerateDataset(DefaultConfig())
	require.NoError(t, err)
	require.NotEmpty(t, dataset.Certificates)

	want := dataset.Certificates[0]
	assert.Same(t, want, dataset.FindCertificate(want.ID))
	assert.Nil(t, dataset.FindCertificate("CRT-0"))
}
