package app_test

import (
	"testing"

	"aquarium_search/internal/app"
)

func TestMapAnimal_Aliases(t *testing.T) {
	payload := map[string]any{
		"common_name": "Whale Shark",
		"taxonomy":    map[string]any{"scientific_name": "Rhincodon typus"},
		"characteristics": map[string]any{
			"diet":    "Plankton",
			"habitat": "Warm open ocean",
		},
		"iucn_status": "Endangered",
	}
	a, ok := app.MapAnimal(payload)
	if !ok {
		t.Fatalf("expected a mapped animal")
	}
	if a.Name != "Whale Shark" {
		t.Fatalf("name: %q", a.Name)
	}
	if a.ScientificName == nil || *a.ScientificName != "Rhincodon typus" {
		t.Fatalf("scientific name not resolved: %+v", a.ScientificName)
	}
	if a.Diet == nil || *a.Diet != "Plankton" {
		t.Fatalf("diet not resolved: %+v", a.Diet)
	}
	if a.Conservation == nil || *a.Conservation != "Endangered" {
		t.Fatalf("conservation not resolved: %+v", a.Conservation)
	}
	if a.URL != nil {
		t.Fatalf("absent field must stay nil: %+v", a.URL)
	}
}

func TestMapAnimal_NoName(t *testing.T) {
	if _, ok := app.MapAnimal(map[string]any{"diet": "Plankton"}); ok {
		t.Fatalf("payload without name must be rejected")
	}
}
