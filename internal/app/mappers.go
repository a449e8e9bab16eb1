package app

import (
	"strings"

	"aquarium_search/internal/domain"
)

// Alias registry for the upstream animal payloads; the source feed has
// drifted over time so each field is tried under several names.
var animalAliases = map[string][]string{
	"name":            {"name", "common_name", "title"},
	"scientific_name": {"scientific_name", "scientificName", "latin_name", "taxonomy.scientific_name"},
	"diet":            {"diet", "characteristics.diet", "feeding"},
	"habitat":         {"habitat", "characteristics.habitat", "environment"},
	"range":           {"range", "characteristics.location", "distribution", "locations"},
	"physical":        {"physical_characteristics", "characteristics.physical", "appearance", "description"},
	"fun_fact":        {"fun_fact", "funFact", "characteristics.slogan", "trivia"},
	"conservation":    {"conservation_status", "conservationStatus", "status", "iucn_status"},
	"image_url":       {"image_url", "image", "photo", "media.image"},
	"url":             {"url", "link", "permalink", "source_url"},
	"size":            {"size", "characteristics.length", "characteristics.height", "measurements"},
}

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// firstAlias returns the first non-empty string for a named alias set.
func firstAlias(m map[string]any, key string) *string {
	for _, p := range animalAliases[key] {
		if s := lookupStr(m, p); s != "" {
			return &s
		}
	}
	return nil
}

// MapAnimal normalizes one upstream payload into a catalog record.
// A payload without a resolvable name maps to ok=false.
func MapAnimal(p map[string]any) (domain.Animal, bool) {
	name := firstAlias(p, "name")
	if name == nil {
		return domain.Animal{}, false
	}
	return domain.Animal{
		Name:           *name,
		ScientificName: firstAlias(p, "scientific_name"),
		Diet:           firstAlias(p, "diet"),
		Habitat:        firstAlias(p, "habitat"),
		Range:          firstAlias(p, "range"),
		Physical:       firstAlias(p, "physical"),
		FunFact:        firstAlias(p, "fun_fact"),
		Conservation:   firstAlias(p, "conservation"),
		ImageURL:       firstAlias(p, "image_url"),
		URL:            firstAlias(p, "url"),
		Size:           firstAlias(p, "size"),
	}, true
}
