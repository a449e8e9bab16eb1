package catalog

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"aquarium_search/internal/domain"
)

// WriteCSV writes animals to path in the canonical column order.
// The file is written to a temp sibling and renamed so a crashed
// ingest run never leaves a half-written catalog behind.
func WriteCSV(path string, animals []domain.Animal) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".aquarium-*.csv")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(Columns); err != nil {
		tmp.Close()
		return err
	}
	for _, a := range animals {
		rec := []string{
			a.Name,
			deref(a.ScientificName),
			deref(a.Diet),
			deref(a.Habitat),
			deref(a.Range),
			deref(a.Physical),
			deref(a.FunFact),
			deref(a.Conservation),
			deref(a.ImageURL),
			deref(a.URL),
			deref(a.Size),
		}
		if err := w.Write(rec); err != nil {
			tmp.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
