package service

import (
	"reflect"
	"testing"
)

func newTestSearch(t *testing.T) CoverageSearch {
	t.Helper()
	set := testSet(t)
	return NewCoverageSearch(set, BuildIndex(set))
}

func TestResolveSingleLanguage(t *testing.T) {
	cs := newTestSearch(t)

	got := cs.Resolve([]string{"German"})
	if len(got) != 3 {
		t.Fatalf("Resolve(German) returned %d countries, want 3: %v", len(got), got)
	}

	// Equal match counts fall back to population descending
	wantOrder := []string{"DEU", "AUT", "CHE"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, id)
		}
	}

	for _, cm := range got {
		if cm.ID != "CHE" {
			continue
		}
		// Only the selected language's row is carried
		if len(cm.Matches) != 1 || cm.Matches[0].Language != "German" {
			t.Errorf("CHE matches = %v, want only the German row", cm.Matches)
		}
		if cm.Matches[0].Speakers != 4_000_000 || !cm.Matches[0].Official {
			t.Errorf("CHE German row = %+v", cm.Matches[0])
		}
	}
}

func TestResolveUnionOrdering(t *testing.T) {
	cs := newTestSearch(t)

	got := cs.Resolve([]string{"German", "French"})
	// CHE matches both selected languages and sorts first despite its
	// small population; the rest order by population descending.
	wantOrder := []string{"CHE", "DEU", "FRA", "AUT"}
	if len(got) != len(wantOrder) {
		t.Fatalf("Resolve(German, French) returned %d countries, want %d", len(got), len(wantOrder))
	}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, id)
		}
	}

	for _, cm := range got {
		if cm.ID == "CHE" && len(cm.Matches) != 2 {
			t.Errorf("CHE should carry German and French rows, got %v", cm.Matches)
		}
	}
}

func TestResolveEmptyAndUnknown(t *testing.T) {
	cs := newTestSearch(t)

	if got := cs.Resolve(nil); len(got) != 0 {
		t.Errorf("empty selection should yield an empty sequence, got %v", got)
	}
	if got := cs.Resolve([]string{"Klingon"}); len(got) != 0 {
		t.Errorf("unknown language should yield an empty sequence, got %v", got)
	}
	// Only-empty and only-unknown selections behave like the empty one
	if got := cs.Resolve([]string{"  ", "", "Klingon"}); len(got) != 0 {
		t.Errorf("blank/unknown selection should yield an empty sequence, got %v", got)
	}
}

func TestResolveOrderIndependent(t *testing.T) {
	cs := newTestSearch(t)

	ab := cs.Resolve([]string{"German", "French"})
	ba := cs.Resolve([]string{"French", "German"})
	if !reflect.DeepEqual(ab, ba) {
		t.Errorf("selection order changed the result:\n%v\nvs\n%v", ab, ba)
	}

	// Duplicate and differently-cased entries collapse
	dup := cs.Resolve([]string{"german", "GERMAN", " German "})
	single := cs.Resolve([]string{"German"})
	if !reflect.DeepEqual(dup, single) {
		t.Errorf("duplicate selection entries changed the result")
	}
}

func TestResolveIdempotent(t *testing.T) {
	cs := newTestSearch(t)

	first := cs.Resolve([]string{"French", "Italian"})
	second := cs.Resolve([]string{"French", "Italian"})
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated resolve produced different output")
	}
}

func TestReport(t *testing.T) {
	cs := newTestSearch(t)

	got := cs.Report([]string{"German", "French", "Klingon"})

	if !reflect.DeepEqual(got.Input, []string{"German", "French", "Klingon"}) {
		t.Errorf("input echo = %v", got.Input)
	}
	if !reflect.DeepEqual(got.Unknown, []string{"Klingon"}) {
		t.Errorf("unknown = %v, want [Klingon]", got.Unknown)
	}
	if !reflect.DeepEqual(got.CoveredIDs, []string{"AUT", "CHE", "DEU", "FRA"}) {
		t.Errorf("covered ids = %v", got.CoveredIDs)
	}
	if got.CoveredCount != 4 {
		t.Errorf("covered count = %d, want 4", got.CoveredCount)
	}
	// Population counted once per country even when two languages match it
	if want := int64(8_700_000 + 83_200_000 + 9_000_000 + 67_800_000); got.CoveredPopulation != want {
		t.Errorf("covered population = %d, want %d", got.CoveredPopulation, want)
	}
	// Speakers summed only over selected languages
	if want := int64(4_000_000 + 1_500_000 + 75_000_000 + 8_000_000 + 63_000_000); got.CoveredSpeakers != want {
		t.Errorf("covered speakers = %d, want %d", got.CoveredSpeakers, want)
	}
}

func TestReportEmptySelection(t *testing.T) {
	cs := newTestSearch(t)

	got := cs.Report(nil)
	if got.CoveredCount != 0 || got.CoveredPopulation != 0 || got.CoveredSpeakers != 0 {
		t.Errorf("empty selection should cover nothing: %+v", got)
	}
	if got.Input == nil || got.Unknown == nil || got.CoveredIDs == nil {
		t.Errorf("report slices must serialize as [] rather than null: %+v", got)
	}
}

func TestCountryInfo(t *testing.T) {
	cs := newTestSearch(t)

	c, ok := cs.CountryInfo("che")
	if !ok || c.Name != "Switzerland" {
		t.Errorf("CountryInfo(che) = %+v, %v", c, ok)
	}
	if _, ok := cs.CountryInfo("ZZZ"); ok {
		t.Error("CountryInfo should miss on unknown ids")
	}
}

func TestScenarioSwitzerland(t *testing.T) {
	set := testSet(t)
	index := BuildIndex(set)
	cs := NewCoverageSearch(set, index)

	german := cs.Resolve([]string{"German"})
	found := false
	for _, cm := range german {
		if cm.ID == "CHE" {
			found = true
		}
	}
	if !found {
		t.Error("Resolve(German) should include CHE")
	}

	if got := cs.Resolve([]string{"Klingon"}); len(got) != 0 {
		t.Errorf("Resolve(Klingon) = %v, want empty", got)
	}

	if got := index.Suggest("germ", 10); len(got) != 1 || got[0].Name != "German" {
		t.Errorf("Suggest(germ, 10) = %v, want [German]", got)
	}
}
