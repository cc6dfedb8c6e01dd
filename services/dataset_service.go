package services

import (
	"errors"
	"log"
	"sync"

	"github.com/eduforge/coursegen/generator"
	"github.com/eduforge/coursegen/websocket"
)

var (
	datasetMu      sync.RWMutex
	currentDataset *generator.Dataset
	currentConfig  generator.DatasetConfig
	gen            *generator.Generator
)

// InitDataset wires the generator and produces the initial dataset.
func InitDataset(g *generator.Generator, cfg generator.DatasetConfig) error {
	datasetMu.Lock()
	gen = g
	datasetMu.Unlock()
	return RegenerateDataset(cfg)
}

// CurrentDataset returns the dataset currently being served. It is replaced
// wholesale on regeneration, never mutated in place.
func CurrentDataset() (*generator.Dataset, error) {
	datasetMu.RLock()
	defer datasetMu.RUnlock()
	if currentDataset == nil {
		return nil, errors.New("dataset not generated yet")
	}
	return currentDataset, nil
}

// CurrentConfig returns the config the current dataset was generated with.
func CurrentConfig() generator.DatasetConfig {
	datasetMu.RLock()
	defer datasetMu.RUnlock()
	return currentConfig
}

// RegenerateDataset produces a fresh dataset with the given config, swaps it
// in, and notifies connected websocket clients.
func RegenerateDataset(cfg generator.DatasetConfig) error {
	datasetMu.RLock()
	g := gen
	datasetMu.RUnlock()
	if g == nil {
		return errors.New("dataset service not initialized")
	}

	dataset, err := g.GenerateDataset(cfg)
	if err != nil {
		return err
	}

	datasetMu.Lock()
	currentDataset = dataset
	currentConfig = cfg
	datasetMu.Unlock()

	stats := dataset.Stats()
	log.Printf("✅ Dataset regenerated: %d students, %d courses, %d enrollments, %d certificates",
		stats.Students, stats.Courses, stats.Enrollments, stats.Certificates)

	websocket.NotifyRefresh(websocket.RefreshEvent{
		GeneratedAt:  dataset.GeneratedAt,
		Students:     stats.Students,
		Courses:      stats.Courses,
		Enrollments:  stats.Enrollments,
		Certificates: stats.Certificates,
	})
	return nil
}
