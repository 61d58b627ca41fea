package model

import (
	"fmt"
	"strings"
)

// LanguageMembership ties a language to a country with a usage magnitude.
type LanguageMembership struct {
	Language string `json:"language"` // e.g., "German"
	Speakers int64  `json:"speakers"` // speakers of the language in this country
	Official bool   `json:"official"`
}

// Country is an immutable dataset record, created once at load time.
type Country struct {
	ID         string               `json:"id"`   // ISO A3 code, e.g., "CHE"
	Name       string               `json:"name"` // e.g., "Switzerland"
	Flag       string               `json:"flag"` // flag image reference
	Population int64                `json:"population"`
	Languages  []LanguageMembership `json:"languages"`
}

// CountrySet holds the loaded dataset: countries in file order plus an
// id lookup. Read-only after construction.
type CountrySet struct {
	countries []Country
	byID      map[string]int
}

// NewCountrySet builds a set from the given records, rejecting duplicate ids.
func NewCountrySet(countries []Country) (*CountrySet, error) {
	byID := make(map[string]int, len(countries))
	for i, c := range countries {
		key := strings.ToUpper(c.ID)
		if _, exists := byID[key]; exists {
			return nil, fmt.Errorf("duplicate country id %q", c.ID)
		}
		byID[key] = i
	}
	return &CountrySet{countries: countries, byID: byID}, nil
}

// Countries returns all records in load order.
func (s *CountrySet) Countries() []Country {
	return s.countries
}

// Get looks a country up by id, case-insensitively.
func (s *CountrySet) Get(id string) (Country, bool) {
	i, ok := s.byID[strings.ToUpper(strings.TrimSpace(id))]
	if !ok {
		return Country{}, false
	}
	return s.countries[i], true
}

// Len reports the number of countries in the set.
func (s *CountrySet) Len() int {
	return len(s.countries)
}
