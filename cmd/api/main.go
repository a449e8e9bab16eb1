package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "aquarium_search/internal/adapters/http_server"
	"aquarium_search/internal/adapters/memtrack"
	"aquarium_search/internal/adapters/observability"
	redisad "aquarium_search/internal/adapters/redis"
	"aquarium_search/internal/app"
	"aquarium_search/internal/catalog"
	"aquarium_search/internal/domain"
	"aquarium_search/internal/shared"
	"aquarium_search/internal/storage/fallback"
	filestore "aquarium_search/internal/storage/file"
	mysqlstore "aquarium_search/internal/storage/mysql"
	nonestore "aquarium_search/internal/storage/none"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// catalog: the only thing that is fatal when missing
	cat, err := catalog.Load(cfg.CatalogCSV)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.CatalogCSV).Msg("catalog load failed")
	}
	log.Info().Int("animals", cat.Len()).Msg("catalog loaded")

	store, agg := buildRatingStore(cfg)

	var tracker domain.SessionTracker
	if cfg.RedisAddr != "" {
		tracker = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.SessionTTL)
		log.Info().Str("addr", cfg.RedisAddr).Msg("redis session tracker")
	} else {
		tracker = memtrack.New()
		log.Info().Msg("in-memory session tracker")
	}

	q := app.NewDirectoryService(cat, agg, tracker)
	rs := app.NewRatingService(cat, store, tracker)

	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, R: rs})
	if st, err := os.Stat(cfg.StaticDir); err == nil && st.IsDir() {
		srv.MountStatic(cfg.StaticDir)
	}

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

// buildRatingStore selects the configured backend. A mysql store that
// cannot be reached at boot degrades to the file backend; a reachable
// one is still wrapped in the file fallback for per-write failures.
func buildRatingStore(cfg shared.Config) (domain.RatingStore, domain.Aggregator) {
	switch cfg.RatingsBackend {
	case "mysql":
		backup := filestore.New(cfg.RatingsFile)
		db, err := sql.Open("mysql", cfg.MySQLDSN())
		if err == nil {
			err = db.Ping()
		}
		if err != nil {
			log.Warn().Err(err).Msg("mysql unreachable, degrading to file backend")
			return backup, nil
		}
		ms := mysqlstore.New(db)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := ms.InitSchema(ctx); err != nil {
			log.Warn().Err(err).Msg("ratings schema init skipped")
		}
		fb := fallback.New(ms, backup)
		log.Info().Str("db", cfg.DBName).Msg("mysql rating store (file fallback)")
		return fb, fb
	case "file":
		log.Info().Str("path", cfg.RatingsFile).Msg("file rating store")
		return filestore.New(cfg.RatingsFile), nil
	default:
		log.Info().Msg("ratings kept in session memory only")
		return nonestore.New(), nil
	}
}
