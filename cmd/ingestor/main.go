package main

import (
	"bufio"
	"context"
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"aquarium_search/internal/adapters/aquarium"
	"aquarium_search/internal/adapters/observability"
	"aquarium_search/internal/app"
	"aquarium_search/internal/catalog"
	"aquarium_search/internal/domain"
	"aquarium_search/internal/shared"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	slugs := loadSlugs(cfg.SlugsFile)
	log.Info().
		Str("base", cfg.AquariumBase).
		Int("workers", cfg.Workers).
		Int("slugs", len(slugs)).
		Msg("ingestor starting")

	client := aquarium.New(cfg.AquariumBase, cfg.FetchRPS)
	sem := semaphore.NewWeighted(int64(cfg.Workers))

	// indexed results keep the slug order in the written CSV
	results := make([]*domain.Animal, len(slugs))
	var wg sync.WaitGroup

	for i, slug := range slugs {
		i, slug := i, slug

		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			payload, err := client.GetAnimal(ctx, slug)
			if err != nil {
				if errors.Is(err, aquarium.ErrNotFound) {
					log.Warn().Str("slug", slug).Msg("animal not found upstream")
					return
				}
				log.Warn().Str("slug", slug).Err(err).Msg("fetch failed")
				return
			}
			a, ok := app.MapAnimal(payload)
			if !ok {
				log.Warn().Str("slug", slug).Msg("payload without a name skipped")
				return
			}
			results[i] = &a
			log.Info().Str("slug", slug).Str("name", a.Name).Msg("fetched")
		}()
	}
	wg.Wait()

	animals := make([]domain.Animal, 0, len(results))
	for _, a := range results {
		if a != nil {
			animals = append(animals, *a)
		}
	}
	if len(animals) == 0 {
		log.Fatal().Msg("no animals fetched, catalog left untouched")
	}

	if err := catalog.WriteCSV(cfg.CatalogCSV, animals); err != nil {
		log.Fatal().Err(err).Str("path", cfg.CatalogCSV).Msg("catalog write failed")
	}
	log.Info().Int("animals", len(animals)).Str("path", cfg.CatalogCSV).Msg("catalog refreshed")
}

// loadSlugs reads one slug per line from path, falling back to the
// built-in set when no file is configured.
func loadSlugs(path string) []string {
	if path == "" {
		return shared.AnimalSlugs
	}
	f, err := os.Open(path)
	if err != nil {
		log.Warn().Err(err).Msg("slugs file unreadable, using built-in set")
		return shared.AnimalSlugs
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" && !strings.HasPrefix(s, "#") {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return shared.AnimalSlugs
	}
	return out
}
