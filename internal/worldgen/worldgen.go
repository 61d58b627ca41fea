// Package worldgen synthesizes a deterministic world dataset for
// development and testing. Every figure is derived from a sha256 hash
// of a stable seed string, so repeated runs produce identical output.
package worldgen

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nikuznetsov/geolingo/internal/model"
	"github.com/nikuznetsov/geolingo/internal/service"
)

var languagePool = []string{
	"English", "Spanish", "French", "Arabic", "Russian", "Portuguese", "German",
	"Italian", "Dutch", "Polish", "Ukrainian", "Turkish", "Persian",
	"Hindi", "Bengali", "Indonesian", "Japanese", "Korean", "Swahili",
	"Thai", "Vietnamese", "Hebrew", "Greek", "Czech", "Swedish", "Norwegian",
	"Danish", "Finnish", "Hungarian", "Romanian",
}

type seedCountry struct {
	id   string
	name string
}

var seedCountries = []seedCountry{
	{"AFG", "Afghanistan"}, {"ARG", "Argentina"}, {"AUS", "Australia"},
	{"AUT", "Austria"}, {"BEL", "Belgium"}, {"BRA", "Brazil"},
	{"CAN", "Canada"}, {"CHE", "Switzerland"}, {"CHL", "Chile"},
	{"CHN", "China"}, {"COL", "Colombia"}, {"CZE", "Czechia"},
	{"DEU", "Germany"}, {"DNK", "Denmark"}, {"EGY", "Egypt"},
	{"ESP", "Spain"}, {"FIN", "Finland"}, {"FRA", "France"},
	{"GBR", "United Kingdom"}, {"GRC", "Greece"}, {"HUN", "Hungary"},
	{"IDN", "Indonesia"}, {"IND", "India"}, {"IRN", "Iran"},
	{"ITA", "Italy"}, {"JPN", "Japan"}, {"KEN", "Kenya"},
	{"KOR", "South Korea"}, {"MEX", "Mexico"}, {"NLD", "Netherlands"},
	{"NOR", "Norway"}, {"POL", "Poland"}, {"PRT", "Portugal"},
	{"ROU", "Romania"}, {"RUS", "Russia"}, {"SWE", "Sweden"},
	{"THA", "Thailand"}, {"TUR", "Turkey"}, {"UKR", "Ukraine"},
	{"USA", "United States of America"}, {"VNM", "Vietnam"}, {"ZAF", "South Africa"},
}

// stableInt maps a seed string to [0, mod) using the first 48 bits of
// its sha256 digest.
func stableInt(seed string, mod int64) int64 {
	sum := sha256.Sum256([]byte(seed))
	var v int64
	for _, b := range sum[:6] {
		v = v<<8 | int64(b)
	}
	return v % mod
}

func population(name, id string) int64 {
	return 200_000 + stableInt(fmt.Sprintf("pop::%s::%s", name, id), 250_000_000)
}

// pickLanguages deterministically selects 1..3 distinct languages.
func pickLanguages(name, id string) []string {
	k := 1 + stableInt(fmt.Sprintf("k::%s::%s", name, id), 3)
	langs := make([]string, 0, k)
	used := make(map[string]bool)
	for i := 0; i < 10 && int64(len(langs)) < k; i++ {
		idx := stableInt(fmt.Sprintf("lang::%s::%s::%d", name, id, i), int64(len(languagePool)))
		lang := languagePool[idx]
		if !used[lang] {
			used[lang] = true
			langs = append(langs, lang)
		}
	}
	if len(langs) == 0 {
		langs = []string{languagePool[0]}
	}
	return langs
}

// speakersFor splits a 55..98% share of the population across the
// picked languages by stable weights, so the per-language counts can
// never exceed the population.
func speakersFor(name, id string, pop int64, langs []string) []int64 {
	weights := make([]int64, len(langs))
	var totalWeight int64
	for i, lang := range langs {
		weights[i] = 10 + stableInt(fmt.Sprintf("w::%s::%s::%s", name, id, lang), 90)
		totalWeight += weights[i]
	}
	if totalWeight == 0 {
		totalWeight = 1
	}

	pctTotal := 55 + stableInt(fmt.Sprintf("pct_total::%s::%s", name, id), 44)
	budget := pop * pctTotal / 100

	speakers := make([]int64, len(langs))
	var acc int64
	for i := range langs {
		if i == len(langs)-1 {
			speakers[i] = budget - acc
		} else {
			speakers[i] = budget * weights[i] / totalWeight
			acc += speakers[i]
		}
	}
	return speakers
}

// Generate builds the full synthetic country set in seed-table order.
func Generate() []model.Country {
	countries := make([]model.Country, 0, len(seedCountries))
	for _, sc := range seedCountries {
		pop := population(sc.name, sc.id)
		langs := pickLanguages(sc.name, sc.id)
		speakers := speakersFor(sc.name, sc.id, pop, langs)

		memberships := make([]model.LanguageMembership, len(langs))
		for i, lang := range langs {
			memberships[i] = model.LanguageMembership{
				Language: lang,
				Speakers: speakers[i],
				Official: true,
			}
		}

		countries = append(countries, model.Country{
			ID:         sc.id,
			Name:       sc.name,
			Flag:       "/static/flags/" + strings.ToLower(sc.id) + ".svg",
			Population: pop,
			Languages:  memberships,
		})
	}
	return countries
}

// WriteFile generates the dataset, persists it to path and re-validates
// it through the regular loader so generated data passes the same
// schema gate as hand-authored data.
func WriteFile(path string) error {
	payload := struct {
		Countries []model.Country `json:"countries"`
	}{Countries: Generate()}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}

	if _, err := service.LoadDataset(path); err != nil {
		os.Remove(path)
		return fmt.Errorf("generated dataset failed validation: %w", err)
	}
	return nil
}
