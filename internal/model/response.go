package model

// Suggestion is a ranked autocomplete entry for a language name.
type Suggestion struct {
	Name      string `json:"name"`      // canonical display form
	Speakers  int64  `json:"speakers"`  // total speakers across all countries
	Countries int    `json:"countries"` // number of countries speaking it
}

// CountryMatch is one country qualified by a selection, carrying only
// the memberships whose language was selected.
type CountryMatch struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Flag       string               `json:"flag"`
	Population int64                `json:"population"`
	Matches    []LanguageMembership `json:"matches"`
}

// CoverageReport aggregates a selection's coverage over the whole dataset.
type CoverageReport struct {
	Input             []string `json:"input_languages"`
	Unknown           []string `json:"unknown_languages"`
	CoveredIDs        []string `json:"covered_ids"`
	CoveredCount      int      `json:"covered_count"`
	CoveredPopulation int64    `json:"covered_population"`
	CoveredSpeakers   int64    `json:"covered_speakers"`
}
