package app

import (
	"fmt"
	"strings"

	"aquarium_search/internal/domain"
)

// AnimalView is the JSON shape of one catalog record. Absent fields are
// omitted rather than rendered empty.
type AnimalView struct {
	Name              string  `json:"name"`
	ScientificName    *string `json:"scientific_name,omitempty"`
	Diet              *string `json:"diet,omitempty"`
	Habitat           *string `json:"habitat,omitempty"`
	Range             *string `json:"range,omitempty"`
	Physical          *string `json:"physical_characteristics,omitempty"`
	FunFact           *string `json:"fun_fact,omitempty"`
	Conservation      *string `json:"conservation_status,omitempty"`
	ConservationClass string  `json:"conservation_class,omitempty"`
	ImageURL          *string `json:"image_url,omitempty"`
	URL               *string `json:"url,omitempty"`
	Size              *string `json:"size,omitempty"`
	Rated             *string `json:"rated,omitempty"` // this session's rating, when present
}

// SearchResult is the /v1/animals payload.
type SearchResult struct {
	Query string       `json:"query"`
	Count int          `json:"count"`
	Label string       `json:"label"`
	Items []AnimalView `json:"items"`
}

func viewOf(a domain.Animal) AnimalView {
	return AnimalView{
		Name:              a.Name,
		ScientificName:    a.ScientificName,
		Diet:              a.Diet,
		Habitat:           a.Habitat,
		Range:             a.Range,
		Physical:          a.Physical,
		FunFact:           a.FunFact,
		Conservation:      a.Conservation,
		ConservationClass: conservationClass(a.Conservation),
		ImageURL:          a.ImageURL,
		URL:               a.URL,
		Size:              a.Size,
	}
}

// conservationClass buckets the free-text status for presentation:
// endangered, vulnerable, or stable.
func conservationClass(status *string) string {
	if status == nil {
		return ""
	}
	s := strings.ToLower(*status)
	switch {
	case strings.Contains(s, "endangered") || strings.Contains(s, "critically"):
		return "endangered"
	case strings.Contains(s, "vulnerable") || strings.Contains(s, "near threatened"):
		return "vulnerable"
	default:
		return "stable"
	}
}

// resultLabel renders the count the way the UI header expects it.
func resultLabel(n int) string {
	switch {
	case n == 0:
		return "No results found"
	case n == 1:
		return "1 result"
	default:
		return fmt.Sprintf("%d results", n)
	}
}
