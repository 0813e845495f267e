// Package cli wires the zoomlevels dependencies for the command-line interface.
package cli

import (
	"context"
	"fmt"
	"math"

	"github.com/bnema/zoomlevels/internal/application/port"
	"github.com/bnema/zoomlevels/internal/application/usecase"
	"github.com/bnema/zoomlevels/internal/cli/styles"
	"github.com/bnema/zoomlevels/internal/domain/build"
	"github.com/bnema/zoomlevels/internal/infrastructure/cache"
	"github.com/bnema/zoomlevels/internal/infrastructure/config"
	"github.com/bnema/zoomlevels/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/zoomlevels/internal/infrastructure/viewport"
	"github.com/bnema/zoomlevels/internal/logging"
)

// Options are the process-level overrides taken from persistent flags.
type Options struct {
	// ConfigFile replaces the XDG config location when set.
	ConfigFile string
	// LogLevel overrides logging.level when set.
	LogLevel string
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Use cases
	Profiles     *usecase.ManageZoomProfilesUseCase
	ConfigSchema *usecase.GetConfigSchemaUseCase

	profileCache *cache.CachedZoomProfileRepository
	db           *sqlite.LazyDB

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads configuration and creates the application dependencies.
// The profile database is opened lazily on first use.
func NewApp(opts Options) (*App, error) {
	mgr, err := newConfigManager(opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logLevel := cfg.Logging.Level
	if opts.LogLevel != "" {
		logLevel = opts.LogLevel
	}

	logger, logCleanup, logErr := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(logLevel), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{
			Path:          cfg.Logging.File,
			MaxSizeMB:     cfg.Logging.MaxSizeMB,
			MaxBackups:    cfg.Logging.MaxBackups,
			MaxAgeDays:    cfg.Logging.MaxAgeDays,
			WriteToStderr: true,
		},
	)
	ctx := logging.WithContext(context.Background(), logger)
	if logErr != nil {
		logger.Warn().Err(logErr).Str("file", cfg.Logging.File).Msg("file logging disabled")
	}

	db := sqlite.NewLazyDB(cfg.Database.Path)
	profileCache := cache.NewCachedZoomProfileRepository(sqlite.NewLazyZoomProfileRepository(db), cfg.Profiles.CacheSize)

	logger.Debug().
		Str("config_file", mgr.GetConfigFile()).
		Str("db_path", cfg.Database.Path).
		Msg("cli initialized")

	return &App{
		Config:       cfg,
		Manager:      mgr,
		Theme:        styles.NewTheme(),
		Profiles:     usecase.NewManageZoomProfilesUseCase(profileCache),
		ConfigSchema: usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider()),
		profileCache: profileCache,
		db:           db,
		ctx:          ctx,
		logCleanup:   logCleanup,
	}, nil
}

func newConfigManager(configFile string) (*config.Manager, error) {
	if configFile != "" {
		return config.NewManagerForFile(configFile)
	}
	return config.NewManager()
}

// Close releases all resources.
func (a *App) Close() error {
	log := logging.FromContext(a.ctx)
	stats := a.profileCache.Stats()
	log.Debug().
		Uint64("hits", stats.Hits).
		Uint64("misses", stats.Misses).
		Int("len", stats.Len).
		Msg("profile cache stats")

	if a.logCleanup != nil {
		defer a.logCleanup()
	}
	return a.db.Close()
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// LevelSelection returns the configured level source.
func (a *App) LevelSelection() usecase.LevelSelection {
	return SelectionFromConfig(a.Config)
}

// SelectionFromConfig maps the zoom section to a level selection.
func SelectionFromConfig(cfg *config.Config) usecase.LevelSelection {
	return usecase.LevelSelection{Levels: cfg.Zoom.Levels, Profile: cfg.Zoom.Profile}
}

// ViewportOptions maps the viewport section to simulated viewport options.
func ViewportOptions(cfg *config.Config, id string) viewport.Options {
	opts := viewport.DefaultOptions()
	opts.ID = id
	opts.ContainerWidth = cfg.Viewport.ContainerWidth
	opts.ContainerHeight = cfg.Viewport.ContainerHeight
	opts.ImageWidth = cfg.Viewport.ImageWidth
	opts.ImageHeight = cfg.Viewport.ImageHeight
	opts.AnimationTime = cfg.Viewport.AnimationTime()
	opts.SpringStiffness = cfg.Viewport.SpringStiffness
	opts.MinZoomImageRatio = cfg.Viewport.MinZoomImageRatio
	opts.MaxZoomPixelRatio = cfg.Viewport.MaxZoomPixelRatio
	opts.MinZoomLevel = cfg.Viewport.MinZoomLevel
	opts.MaxZoomLevel = cfg.Viewport.MaxZoomLevel
	return opts
}

// NewViewport creates a simulated viewport from the loaded configuration.
func (a *App) NewViewport(id string) (*viewport.Viewport, error) {
	vp, err := viewport.New(ViewportOptions(a.Config, id))
	if err != nil {
		return nil, fmt.Errorf("create viewport: %w", err)
	}
	return vp, nil
}

// NewSnapper attaches a snapper for the configured levels to vp.
func (a *App) NewSnapper(ctx context.Context, vp port.Viewport) (*usecase.SnapperController, error) {
	ctx = logging.WithComponent(ctx, "snapper")
	controller := usecase.NewSnapperController(vp, a.Profiles)
	if err := controller.Apply(ctx, a.LevelSelection()); err != nil {
		return nil, fmt.Errorf("apply zoom levels: %w", err)
	}
	return controller, nil
}

// WatchLevels reapplies the zoom levels on controller whenever the config file changes.
// A change that cannot be applied keeps the previous snapper.
func (a *App) WatchLevels(ctx context.Context, controller *usecase.SnapperController, onApplied func()) error {
	log := logging.FromContext(ctx)

	a.Manager.OnConfigChange(func(cfg *config.Config) {
		if err := controller.Apply(ctx, SelectionFromConfig(cfg)); err != nil {
			log.Warn().Err(err).Msg("keeping previous zoom levels")
			return
		}
		if onApplied != nil {
			onApplied()
		}
	})
	return a.Manager.Watch(ctx)
}

// LevelRows expresses levels in both zoom spaces of vp.
func LevelRows(vp port.Viewport, levels []float64) []styles.LevelRow {
	const epsilon = 1e-9

	rows := make([]styles.LevelRow, len(levels))
	for i, level := range levels {
		zoom := vp.ImageToViewportZoom(level)
		rows[i] = styles.LevelRow{
			Image:     level,
			Viewport:  Round(zoom),
			Reachable: zoom >= vp.MinZoom()-epsilon && zoom <= vp.MaxZoom()+epsilon,
		}
	}
	return rows
}

// Round trims floating-point noise from displayed zoom factors.
func Round(v float64) float64 {
	const scale = 1e9
	return math.Round(v*scale) / scale
}
