package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nikuznetsov/geolingo/internal/model"
)

// ErrDataLoad marks any failure to load or validate the world dataset.
// It is fatal at startup: the service never runs on a partial set.
var ErrDataLoad = errors.New("dataset load failed")

type datasetFile struct {
	Countries []model.Country `json:"countries"`
}

// LoadDataset reads and validates the world dataset file. Either the
// whole set loads or an error wrapping ErrDataLoad is returned.
func LoadDataset(path string) (*model.CountrySet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrDataLoad, path, err)
	}

	var file datasetFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrDataLoad, path, err)
	}
	if len(file.Countries) == 0 {
		return nil, fmt.Errorf("%w: %s contains no countries", ErrDataLoad, path)
	}

	for i, c := range file.Countries {
		if err := validateCountry(c); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrDataLoad, i, err)
		}
	}

	set, err := model.NewCountrySet(file.Countries)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataLoad, err)
	}
	return set, nil
}

func validateCountry(c model.Country) error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("country %q has empty id", c.Name)
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("country %s has empty name", c.ID)
	}
	if c.Population < 0 {
		return fmt.Errorf("country %s has negative population %d", c.ID, c.Population)
	}
	for _, m := range c.Languages {
		if strings.TrimSpace(m.Language) == "" {
			return fmt.Errorf("country %s has a membership with empty language name", c.ID)
		}
		if m.Speakers < 0 {
			return fmt.Errorf("country %s: %s has negative speaker count %d", c.ID, m.Language, m.Speakers)
		}
		if m.Speakers > c.Population {
			return fmt.Errorf("country %s: %s speakers %d exceed population %d", c.ID, m.Language, m.Speakers, c.Population)
		}
	}
	return nil
}
