package service

import (
	"sort"
	"strings"

	"github.com/nikuznetsov/geolingo/internal/model"
)

// matchPolicy controls how a multi-language selection maps to countries.
type matchPolicy int

// matchAny: a country qualifies when at least one selected language
// matches (union semantics, mirroring the product's map highlighting).
const matchAny matchPolicy = iota

type CoverageSearch interface {
	Resolve(selection []string) []model.CountryMatch
	Report(selection []string) model.CoverageReport
	CountryInfo(id string) (model.Country, bool)
}

type coverageSearch struct {
	set    *model.CountrySet
	index  *LanguageIndex
	policy matchPolicy
}

func NewCoverageSearch(set *model.CountrySet, index *LanguageIndex) CoverageSearch {
	return &coverageSearch{
		set:    set,
		index:  index,
		policy: matchAny,
	}
}

// cleanSelection trims, drops empties and de-duplicates the raw
// selection, preserving the caller's order. Returns the display forms
// alongside the normalized set used for matching.
func cleanSelection(selection []string) (display []string, normalized map[string]bool) {
	normalized = make(map[string]bool)
	for _, raw := range selection {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		key := normalizeLanguage(trimmed)
		if normalized[key] {
			continue
		}
		normalized[key] = true
		display = append(display, trimmed)
	}
	return display, normalized
}

// Resolve returns the countries qualified by the selection with the
// relevant membership rows, ordered by matched-language count
// descending, population descending, then display name ascending.
func (cs *coverageSearch) Resolve(selection []string) []model.CountryMatch {
	_, selected := cleanSelection(selection)
	if len(selected) == 0 {
		return []model.CountryMatch{}
	}

	type scored struct {
		match model.CountryMatch
		langs int // distinct selected languages matched
	}

	candidates := make([]scored, 0)
	for _, c := range cs.set.Countries() {
		var matches []model.LanguageMembership
		matchedLangs := make(map[string]bool)
		for _, m := range c.Languages {
			key := normalizeLanguage(m.Language)
			if selected[key] {
				matches = append(matches, m)
				matchedLangs[key] = true
			}
		}

		qualifies := false
		switch cs.policy {
		case matchAny:
			qualifies = len(matchedLangs) > 0
		}
		if !qualifies {
			continue
		}

		candidates = append(candidates, scored{
			match: model.CountryMatch{
				ID:         c.ID,
				Name:       c.Name,
				Flag:       c.Flag,
				Population: c.Population,
				Matches:    matches,
			},
			langs: len(matchedLangs),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].langs != candidates[j].langs {
			return candidates[i].langs > candidates[j].langs
		}
		if candidates[i].match.Population != candidates[j].match.Population {
			return candidates[i].match.Population > candidates[j].match.Population
		}
		return candidates[i].match.Name < candidates[j].match.Name
	})

	results := make([]model.CountryMatch, len(candidates))
	for i, c := range candidates {
		results[i] = c.match
	}
	return results
}

// Report aggregates the selection's coverage: covered country ids,
// total population of covered countries and the summed speakers of the
// selected languages within them. Unknown languages are echoed back so
// the caller can surface "no results for X".
func (cs *coverageSearch) Report(selection []string) model.CoverageReport {
	display, selected := cleanSelection(selection)

	report := model.CoverageReport{
		Input:      display,
		Unknown:    []string{},
		CoveredIDs: []string{},
	}
	if report.Input == nil {
		report.Input = []string{}
	}

	for _, name := range display {
		if _, known := cs.index.Canonical(name); !known {
			report.Unknown = append(report.Unknown, name)
		}
	}

	covered := make(map[string]bool)
	for key := range selected {
		for _, id := range cs.index.Lookup(key) {
			covered[id] = true
		}
	}

	for _, c := range cs.set.Countries() {
		if !covered[c.ID] {
			continue
		}
		report.CoveredIDs = append(report.CoveredIDs, c.ID)
		report.CoveredPopulation += c.Population
		for _, m := range c.Languages {
			if selected[normalizeLanguage(m.Language)] {
				report.CoveredSpeakers += m.Speakers
			}
		}
	}

	sort.Strings(report.CoveredIDs)
	report.CoveredCount = len(report.CoveredIDs)
	return report
}

// CountryInfo returns the full record for one country, for the info panel.
func (cs *coverageSearch) CountryInfo(id string) (model.Country, bool) {
	return cs.set.Get(id)
}
