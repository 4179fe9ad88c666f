package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bagdasarian/member-search/internal/cache"
	"github.com/bagdasarian/member-search/internal/config"
	"github.com/bagdasarian/member-search/internal/db"
	"github.com/bagdasarian/member-search/internal/handler"
	"github.com/bagdasarian/member-search/internal/handler/server"
	"github.com/bagdasarian/member-search/internal/repository"
	"github.com/bagdasarian/member-search/internal/repository/postgres"
	"github.com/bagdasarian/member-search/internal/service"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg.Log)

	if cfg.Database.MigrationsPath != "" {
		if err := db.Migrate(db.MigrationURL(cfg), cfg.Database.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to apply migrations")
		}
		log.Info().Str("path", cfg.Database.MigrationsPath).Msg("migrations applied")
	}

	database := db.MustLoad(cfg)
	log.Info().Msg("successfully connected to database")
	defer database.Close()

	memberCache, err := cache.NewMemberCache(cfg.Cache.Size)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create member cache")
	}

	teamRepo := postgres.NewTeamRepository(database)
	memberRepo := postgres.NewMemberRepository(database)
	statsRepo := postgres.NewStatsRepository(database)

	txRepos := func(tx *sql.Tx) (repository.TeamRepository, repository.MemberRepository) {
		return postgres.NewTeamRepositoryWithTx(tx), postgres.NewMemberRepositoryWithTx(tx)
	}

	memberService := service.NewMemberService(memberRepo, teamRepo, memberCache)
	teamService := service.NewTeamService(database, teamRepo, memberRepo, txRepos)
	statsService := service.NewStatsService(statsRepo)

	h := handler.NewHandler(memberService, teamService, statsService)
	srv := server.NewServer(h, cfg.HTTP.Addr)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}
}

func setupLogger(cfg config.LogConfig) {
	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}
