package jobs

import (
	"log"

	"github.com/eduforge/coursegen/services"
)

// RefreshDataset regenerates the served sample dataset with the same config
// it was last generated with, so demo environments keep fresh timestamps.
func RefreshDataset() {
	log.Println("Running job: RefreshDataset...")

	if err := services.RegenerateDataset(services.CurrentConfig()); err != nil {
		log.Printf("Error refreshing dataset: %v", err)
		return
	}
}
