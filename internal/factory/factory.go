package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/golfscore/internal/config"
	"github.com/mcoot/golfscore/internal/dependencies/clock"
	"github.com/mcoot/golfscore/internal/dependencies/random"
	"github.com/mcoot/golfscore/internal/metrics"
	"github.com/mcoot/golfscore/internal/services/course"
	"github.com/mcoot/golfscore/internal/services/formats"
	"github.com/mcoot/golfscore/internal/services/handicap"
	"github.com/mcoot/golfscore/internal/services/round"
	"github.com/mcoot/golfscore/internal/services/scoring"
	"github.com/mcoot/golfscore/internal/services/status"
	"github.com/mcoot/golfscore/internal/storage"
	"github.com/mcoot/golfscore/internal/storage/memory"
	redisstorage "github.com/mcoot/golfscore/internal/storage/redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock   clock.Clock
	Random  random.Random
	Metrics *metrics.Metrics

	// Services
	Converter       *handicap.Converter
	CourseService   *course.Service
	ScoringService  *scoring.Service
	Engine          *formats.Engine
	Summarizer      *status.Summarizer
	RoundController *round.Controller

	Logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// ReferencePar selects the par course handicaps are measured against.
	// If empty, the course's own par is used.
	ReferencePar handicap.ReferencePar
	// NassauRequireComplete withholds Nassau segments until every score is entered
	NassauRequireComplete bool
	// CoursesPath is a course file or directory loaded on top of the built-in catalog (optional)
	CoursesPath string
}

// FromConfig translates the server configuration into factory settings
func FromConfig(cfg config.Config, logger *slog.Logger) Config {
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = cfg.Storage.RedisURL
	if cfg.Storage.RoundTTL > 0 {
		redisCfg.RoundTTL = cfg.Storage.RoundTTL
	}
	if cfg.Storage.SettlementTTL > 0 {
		redisCfg.SettlementTTL = cfg.Storage.SettlementTTL
	}
	return Config{
		Logger:                logger,
		StorageType:           cfg.Storage.Type,
		RedisConfig:           &redisCfg,
		ReferencePar:          handicap.ReferencePar(cfg.Handicap.ReferencePar),
		NassauRequireComplete: cfg.Scoring.NassauRequireComplete,
		CoursesPath:           cfg.Courses.Path,
	}
}

// New creates a new application with all dependencies wired and the course
// catalog loaded
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StorageTypeMemory
	}

	switch storageType {
	case config.StorageTypeMemory:
		store = memory.New()
	case config.StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	app := newWithDependencies(store, clock.New(), random.New(), cfg, logger)

	n, err := app.CourseService.LoadDefaults(ctx)
	if err != nil {
		return nil, fmt.Errorf("load course catalog: %w", err)
	}
	if cfg.CoursesPath != "" {
		extra, err := app.CourseService.Load(ctx, cfg.CoursesPath)
		if err != nil {
			return nil, fmt.Errorf("load courses from %s: %w", cfg.CoursesPath, err)
		}
		n += extra
	}
	logger.Info("course catalog loaded",
		slog.Int("courses", n),
		slog.String("storage", storageType),
	)

	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, cfg Config, logger *slog.Logger) *App {
	refPar := cfg.ReferencePar
	if refPar == "" {
		refPar = handicap.ReferenceParCourse
	}

	m := metrics.New()
	converter := handicap.NewConverter(refPar)
	courseService := course.New(store, converter, logger)
	scoringService := scoring.New(converter)
	engine := formats.NewEngine(formats.Options{
		Nassau:   formats.NassauOptions{RequireComplete: cfg.NassauRequireComplete},
		Observer: round.NewLogObserver(logger),
	})
	summarizer := status.New(engine)
	roundController := round.NewController(store, courseService, scoringService, engine, summarizer, m, clk, rnd, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		Metrics:         m,
		Converter:       converter,
		CourseService:   courseService,
		ScoringService:  scoringService,
		Engine:          engine,
		Summarizer:      summarizer,
		RoundController: roundController,
		Logger:          logger,
	}
}

// Close releases the storage connection, if any
func (a *App) Close() error {
	if c, ok := a.Storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
