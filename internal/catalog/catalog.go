package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"aquarium_search/internal/domain"
)

// Columns is the canonical CSV column order, also used by WriteCSV.
var Columns = []string{
	"name", "scientific_name", "diet", "habitat", "range",
	"physical_characteristics", "fun_fact", "conservation_status",
	"image_url", "url", "size",
}

// featuredNames is the fixed landing-page set. When fewer than
// featuredCount of them resolve against the loaded data, the first
// featuredCount catalog rows are shown instead.
var featuredNames = []string{
	"Sea Otter", "Beluga Whale", "Penguin", "Seahorse",
	"Sea Turtle", "Octopus", "Jellyfish", "Shark",
}

const featuredCount = 8

// Catalog is the immutable in-memory animal table, loaded once at boot.
type Catalog struct {
	animals []domain.Animal
	byName  map[string]int
}

// Load reads the catalog CSV. Column order is resolved from the header
// row; rows without a name are skipped.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return read(f)
}

func read(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(strings.ToLower(h))] = i
	}
	if _, ok := col["name"]; !ok {
		return nil, fmt.Errorf("catalog header missing name column")
	}

	cell := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return cleanText(rec[i])
	}

	c := &Catalog{byName: make(map[string]int)}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row: %w", err)
		}
		name := cell(rec, "name")
		if name == "" {
			log.Warn().Msg("catalog row without name skipped")
			continue
		}
		a := domain.Animal{
			Name:           name,
			ScientificName: optStr(cell(rec, "scientific_name")),
			Diet:           optStr(cell(rec, "diet")),
			Habitat:        optStr(cell(rec, "habitat")),
			Range:          optStr(cell(rec, "range")),
			Physical:       optStr(cell(rec, "physical_characteristics")),
			FunFact:        optStr(cell(rec, "fun_fact")),
			Conservation:   optStr(cell(rec, "conservation_status")),
			ImageURL:       optStr(cell(rec, "image_url")),
			URL:            optStr(cell(rec, "url")),
			Size:           optStr(cell(rec, "size")),
		}
		if _, dup := c.byName[name]; !dup {
			c.byName[name] = len(c.animals)
		}
		c.animals = append(c.animals, a)
	}
	return c, nil
}

// New builds a catalog from records already in memory (tests, ingestor).
func New(animals []domain.Animal) *Catalog {
	c := &Catalog{byName: make(map[string]int, len(animals))}
	for _, a := range animals {
		if a.Name == "" {
			continue
		}
		if _, dup := c.byName[a.Name]; !dup {
			c.byName[a.Name] = len(c.animals)
		}
		c.animals = append(c.animals, a)
	}
	return c
}

func (c *Catalog) Len() int { return len(c.animals) }

// Get looks an animal up by its (assumed unique) name.
func (c *Catalog) Get(name string) (domain.Animal, bool) {
	i, ok := c.byName[name]
	if !ok {
		return domain.Animal{}, false
	}
	return c.animals[i], true
}

// All returns the catalog rows in load order. Callers must not mutate.
func (c *Catalog) All() []domain.Animal { return c.animals }

// Filter is the search contract: case-insensitive literal substring
// match, OR across the searched fields, catalog order preserved.
// An empty or whitespace-only query yields no results — the caller
// renders the landing page, not the full catalog.
func (c *Catalog) Filter(query string) []domain.Animal {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []domain.Animal
	for _, a := range c.animals {
		if matches(a, q) {
			out = append(out, a)
		}
	}
	return out
}

func matches(a domain.Animal, q string) bool {
	for _, f := range a.SearchFields() {
		if f == nil {
			continue
		}
		if strings.Contains(strings.ToLower(*f), q) {
			return true
		}
	}
	return false
}

// Featured returns the landing-page set: the fixed names when they all
// resolve, otherwise the first rows of the catalog.
func (c *Catalog) Featured() []domain.Animal {
	out := make([]domain.Animal, 0, featuredCount)
	for _, n := range featuredNames {
		if a, ok := c.Get(n); ok {
			out = append(out, a)
		}
	}
	if len(out) < featuredCount {
		n := featuredCount
		if n > len(c.animals) {
			n = len(c.animals)
		}
		return c.animals[:n]
	}
	return out
}

// cleanText strips wrapping quotes and collapses doubled quotes left
// over from the source spreadsheet.
func cleanText(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		s = s[1 : len(s)-1]
	}
	return strings.ReplaceAll(s, `""`, `"`)
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
