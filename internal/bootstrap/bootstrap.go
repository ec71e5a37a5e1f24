package bootstrap

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yigit/allizzwell/internal/app/repositories"
	appServices "github.com/yigit/allizzwell/internal/app/services"
	"github.com/yigit/allizzwell/internal/config"
	pkgAuth "github.com/yigit/allizzwell/internal/pkg/auth"
	"github.com/yigit/allizzwell/internal/pkg/logger"
	"github.com/yigit/allizzwell/internal/seed"
	"github.com/yigit/allizzwell/internal/wellness"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Config   *config.Config
	Repos    *repositories.Repositories
	Services *appServices.Services
	Logger   zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// Logs go to out so they never mix with command output.
func LoadConfigAndSetupLogger(configPath string, out io.Writer) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: cfg.PrettyLogs(),
		Output: out,
	})

	lgr := logger.Get()
	lgr.Debug().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies loads the seed and wires the store, repositories and services
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	snap, err := seed.Load(seed.Options{Path: cfg.Seed.Path, Strict: cfg.Seed.Strict}, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed: %w", err)
	}

	policy, err := wellness.ParseMissingSamplePolicy(cfg.Mood.MissingSamples)
	if err != nil {
		return nil, err
	}

	hasher, err := pkgAuth.NewPasswordHasher(cfg.Security.BcryptCost)
	if err != nil {
		return nil, err
	}

	repos := repositories.NewRepositories(repositories.NewSnapshotStore(snap), repositories.RandomID)
	svc := appServices.NewServices(repos, wellness.NewAggregator(policy), hasher, lgr)

	lgr.Debug().Str("missingSamples", policy.String()).Msg("Dependencies initialized")
	return &Dependencies{
		Config:   cfg,
		Repos:    repos,
		Services: svc,
		Logger:   lgr,
	}, nil
}
