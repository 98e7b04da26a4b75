package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/application/handlers"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/seeds"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/services"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/infrastructure/api"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/infrastructure/config"
)

// Deps holds high-level dependencies for commands.
// Only handlers and services are exposed - the HTTP client stays internal.
type Deps struct {
	Config   *config.Config
	BasePath string
	Registry *seeds.Registry
	Log      zerolog.Logger

	Search     *handlers.SearchHandler
	Review     *handlers.ReviewHandler
	Resolution *handlers.ResolutionHandler
	Skills     *handlers.SkillHandler
	Library    *services.LibraryService
}

// internalDeps holds all dependencies including low-level components.
type internalDeps struct {
	Deps
	client    *api.Client
	searchSvc *services.SearchService
}

// withDeps loads config and builds dependencies, then calls the provided
// function.
func withDeps(fn func(*Deps) error) error {
	return withInternalDeps(func(d *internalDeps) error {
		return fn(&d.Deps)
	})
}

// withInternalDeps provides access to all dependencies including low-level
// components. Used by commands that need the search service or raw client.
func withInternalDeps(fn func(*internalDeps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := newLogger(cfg.Log.Level)

	registry := seeds.NewRegistry(cfg.Mock.Enabled)
	seeds.RegisterDefaults(registry)

	client, err := api.NewClient(cfg.API, log)
	if err != nil {
		return fmt.Errorf("creating api client: %w", err)
	}

	searchService := services.NewSearchService(client, log)
	reviewService := services.NewReviewService(client, log)
	resolutionService := services.NewResolutionService(client, log)
	skillService := services.NewSkillService(client, log)
	libraryService := services.NewLibraryService(client, client, registry, log)

	deps := &internalDeps{
		Deps: Deps{
			Config:     cfg,
			BasePath:   cwd,
			Registry:   registry,
			Log:        log,
			Search:     handlers.NewSearchHandler(searchService),
			Review:     handlers.NewReviewHandler(reviewService),
			Resolution: handlers.NewResolutionHandler(resolutionService),
			Skills:     handlers.NewSkillHandler(skillService),
			Library:    libraryService,
		},
		client:    client,
		searchSvc: searchService,
	}

	return fn(deps)
}

// withClient provides direct API client access for commands that call
// endpoints without a service in between.
func withClient(fn func(*api.Client) error) error {
	return withInternalDeps(func(d *internalDeps) error {
		return fn(d.client)
	})
}

// newLogger builds the CLI logger. Output goes to stderr so command
// output on stdout stays pipeable.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
}
