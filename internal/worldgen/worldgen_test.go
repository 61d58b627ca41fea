package worldgen

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/nikuznetsov/geolingo/internal/service"
)

func TestGenerateDeterministic(t *testing.T) {
	first := Generate()
	second := Generate()
	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated generation produced different datasets")
	}
}

func TestGenerateBounds(t *testing.T) {
	for _, c := range Generate() {
		if c.Population < 200_000 || c.Population >= 250_200_000 {
			t.Errorf("%s: population %d out of range", c.ID, c.Population)
		}
		if len(c.Languages) < 1 || len(c.Languages) > 3 {
			t.Errorf("%s: %d languages, want 1..3", c.ID, len(c.Languages))
		}

		var total int64
		seen := make(map[string]bool)
		for _, m := range c.Languages {
			if m.Speakers < 0 {
				t.Errorf("%s: %s has negative speakers %d", c.ID, m.Language, m.Speakers)
			}
			if m.Speakers > c.Population {
				t.Errorf("%s: %s speakers %d exceed population %d", c.ID, m.Language, m.Speakers, c.Population)
			}
			if seen[m.Language] {
				t.Errorf("%s: duplicate language %s", c.ID, m.Language)
			}
			seen[m.Language] = true
			total += m.Speakers
		}
		if total > c.Population {
			t.Errorf("%s: speaker total %d exceeds population %d", c.ID, total, c.Population)
		}
	}
}

func TestWriteFileLoadsCleanly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world_data.json")
	if err := WriteFile(path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	set, err := service.LoadDataset(path)
	if err != nil {
		t.Fatalf("generated dataset did not load: %v", err)
	}
	if set.Len() != len(Generate()) {
		t.Errorf("loaded %d countries, generated %d", set.Len(), len(Generate()))
	}
}
