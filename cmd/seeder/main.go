package main

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"tepoz_directory/internal/adapters/observability"
	redisad "tepoz_directory/internal/adapters/redis"
	"tepoz_directory/internal/app"
	"tepoz_directory/internal/domain"
	"tepoz_directory/internal/seed"
	"tepoz_directory/internal/shared"
	mysqlrepo "tepoz_directory/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	src, err := seed.Open(cfg.SeedSource, cfg.FeedKey, cfg.FeedRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open seed source")
	}
	log.Info().
		Str("source", src.Name()).
		Int("workers", cfg.Workers).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		cache = rc
	}

	records, err := src.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("load seed records failed")
	}

	start := time.Now()
	svc := app.NewSeedService(mysqlrepo.New(db), cache)
	rep, err := seed.Run(ctx, svc, records, cfg.Workers)
	if err != nil {
		log.Fatal().Err(err).Msg("seeding aborted")
	}
	log.Info().
		Int("seeded", rep.Seeded).
		Int("skipped", rep.Skipped).
		Int("kinds", len(rep.Kinds)).
		Dur("took", time.Since(start)).
		Msg("seeding completed")
}
