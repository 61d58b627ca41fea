package service

import (
	"sort"
	"strings"

	"github.com/nikuznetsov/geolingo/internal/model"
)

// languageEntry accumulates everything the index knows about one language.
type languageEntry struct {
	name      string   // canonical display form, first-seen spelling
	countries []string // country ids, first-seen order
	speakers  int64    // total speakers across all countries
}

// LanguageIndex is a derived language -> countries mapping, built once
// from a CountrySet and read-only afterwards.
type LanguageIndex struct {
	entries map[string]*languageEntry // keyed by normalized name
	order   []string                  // normalized keys, first-seen order
}

// normalizeLanguage trims, lowercases, strips apostrophes and collapses
// inner whitespace so that "  Haitian  Creole " and "haitian creole"
// hit the same index key.
func normalizeLanguage(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Map(func(r rune) rune {
		switch r {
		case '\'', '’', '`':
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// BuildIndex derives the language index from the loaded dataset.
// Pure and deterministic, O(total memberships).
func BuildIndex(set *model.CountrySet) *LanguageIndex {
	ix := &LanguageIndex{entries: make(map[string]*languageEntry)}
	for _, c := range set.Countries() {
		for _, m := range c.Languages {
			key := normalizeLanguage(m.Language)
			if key == "" {
				continue
			}
			entry, ok := ix.entries[key]
			if !ok {
				entry = &languageEntry{name: m.Language}
				ix.entries[key] = entry
				ix.order = append(ix.order, key)
			}
			entry.countries = append(entry.countries, c.ID)
			entry.speakers += m.Speakers
		}
	}
	return ix
}

// Lookup returns the ids of countries speaking the given language, in
// first-seen order. Unknown names yield an empty slice, not an error.
func (ix *LanguageIndex) Lookup(name string) []string {
	entry, ok := ix.entries[normalizeLanguage(name)]
	if !ok {
		return nil
	}
	return entry.countries
}

// Canonical maps any spelling of a known language to its stored display form.
func (ix *LanguageIndex) Canonical(name string) (string, bool) {
	entry, ok := ix.entries[normalizeLanguage(name)]
	if !ok {
		return "", false
	}
	return entry.name, true
}

// Suggest returns up to limit languages whose name matches the prefix
// case-insensitively, ranked by total speakers descending, then name
// ascending. An empty prefix matches every language.
func (ix *LanguageIndex) Suggest(prefix string, limit int) []model.Suggestion {
	if limit <= 0 {
		return nil
	}

	key := normalizeLanguage(prefix)
	matched := make([]*languageEntry, 0, len(ix.order))
	for _, k := range ix.order {
		if strings.HasPrefix(k, key) {
			matched = append(matched, ix.entries[k])
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].speakers != matched[j].speakers {
			return matched[i].speakers > matched[j].speakers
		}
		return matched[i].name < matched[j].name
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}

	suggestions := make([]model.Suggestion, 0, len(matched))
	for _, entry := range matched {
		suggestions = append(suggestions, model.Suggestion{
			Name:      entry.name,
			Speakers:  entry.speakers,
			Countries: len(entry.countries),
		})
	}
	return suggestions
}
