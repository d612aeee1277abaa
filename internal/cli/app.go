// Package cli wires the dockyard dependencies for the command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/build"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	redisstore "github.com/bnema/dockyard/internal/infrastructure/persistence/redis"
	"github.com/bnema/dockyard/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dockyard/internal/infrastructure/snapshot"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/dock"
)

// Options controls how the app is built.
type Options struct {
	// ConfigFile overrides the XDG config location.
	ConfigFile string
	// LogToFile sends logs to the state directory instead of stderr.
	LogToFile bool
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	Dock      *entity.Dock
	Repo      repository.LayoutRowRepository
	DockUC    *usecase.ManageDockUseCase
	LayoutUC  *usecase.ManageLayoutUseCase
	RestoreUC *usecase.RestoreLayoutUseCase

	ctx        context.Context
	closers    []func() error
	logCleanup func()
}

// NewApp loads the configuration and creates all dependencies. Storage is
// opened lazily on first use.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if opts.ConfigFile != "" {
		mgr.SetConfigFile(opts.ConfigFile)
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	logDir := ""
	if opts.LogToFile {
		logDir = mgr.Paths().LogDir()
	}
	logger, logCleanup, err := newLogger(cfg, logDir)
	if err != nil {
		return nil, err
	}
	ctx := logging.WithContext(context.Background(), logger)

	app := &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		Dock:          NewDock(cfg),
		ctx:           ctx,
		logCleanup:    logCleanup,
	}

	repo, closer, err := newLayoutRepository(ctx, cfg)
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	app.Repo = repo
	app.closers = append(app.closers, closer)

	ids := func() string { return uuid.NewString() }
	app.DockUC = usecase.NewManageDockUseCase(ids)
	app.RestoreUC = usecase.NewRestoreLayoutUseCase(ids)
	app.LayoutUC = usecase.NewManageLayoutUseCase(repo, cfg.Storage.Table, cfg.Storage.ActiveSetup)

	logger.Debug().
		Str("config", mgr.GetConfigFile()).
		Str("backend", string(cfg.Storage.Backend)).
		Int("blocks", len(cfg.Blocks)).
		Msg("app initialized")
	return app, nil
}

// newLogger logs to stderr, or to a rotated file in logDir when set.
func newLogger(cfg *config.Config, logDir string) (zerolog.Logger, func(), error) {
	lc := logging.DefaultConfig()
	lc.Level = logging.ParseLevel(cfg.Logging.Level)
	lc.Format = cfg.Logging.Format
	lc.TimeFormat = "15:04:05"
	if logDir == "" {
		return logging.New(lc), func() {}, nil
	}

	logger, cleanup, err := logging.NewWithFile(lc, logDir, "dockyard.log")
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("open log file: %w", err)
	}
	return logger, cleanup, nil
}

func newLayoutRepository(ctx context.Context, cfg *config.Config) (repository.LayoutRowRepository, func() error, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendRedis:
		client, err := redisstore.NewClient(ctx, redisstore.Config{
			Addr:      cfg.Redis.Addr,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			KeyPrefix: cfg.Redis.KeyPrefix,
		})
		if err != nil {
			return nil, nil, err
		}
		return redisstore.NewLayoutRowRepository(client, cfg.Redis.KeyPrefix), client.Close, nil
	default:
		lazy := sqlite.NewLazyDB(cfg.Database.Path)
		return sqlite.NewLazyLayoutRowRepository(lazy), lazy.Close, nil
	}
}

// NewDock creates a dock holding the configured catalog.
func NewDock(cfg *config.Config) *entity.Dock {
	d := entity.NewDock()
	for _, bc := range cfg.Blocks {
		b := entity.NewBlock(entity.BlockID(bc.ID), entity.BlockKind(bc.Kind), bc.Title)
		b.MinWidth = bc.MinWidth
		b.MinHeight = bc.MinHeight
		d.RegisterBlock(b)
	}
	return d
}

// Close releases all resources.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	if a.logCleanup != nil {
		a.logCleanup()
		a.logCleanup = nil
	}
	return errors.Join(errs...)
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// DefaultBlocks returns the blocks shown by the default layout.
func (a *App) DefaultBlocks() []entity.BlockID {
	var ids []entity.BlockID
	for _, b := range a.Config.Blocks {
		if b.Visible {
			ids = append(ids, entity.BlockID(b.ID))
		}
	}
	return ids
}

// CatalogBlocks returns every configured block in order.
func (a *App) CatalogBlocks() []entity.BlockID {
	ids := make([]entity.BlockID, 0, len(a.Config.Blocks))
	for _, b := range a.Config.Blocks {
		ids = append(ids, entity.BlockID(b.ID))
	}
	return ids
}

// RestoreActive applies the active setup, falling back to the default
// layout when none is stored or it cannot be decoded. The returned output
// is nil when the default was used.
func (a *App) RestoreActive(ctx context.Context) (*usecase.ApplyOutput, error) {
	doc, err := a.LayoutUC.Load(ctx)
	if err != nil {
		if !errors.Is(err, usecase.ErrNoSavedLayout) {
			logging.FromContext(ctx).Warn().Err(err).Msg("saved layout unusable, using default")
		}
		return nil, a.RestoreUC.BuildDefault(ctx, a.Dock, a.DefaultBlocks())
	}
	return a.RestoreUC.Apply(ctx, usecase.ApplyInput{
		Dock:             a.Dock,
		Document:         doc,
		DefaultMinWidth:  a.Config.Dock.DefaultMinWidth,
		DefaultMinHeight: a.Config.Dock.DefaultMinHeight,
	})
}

// EngineSettings maps the dock section onto engine settings.
func EngineSettings(cfg *config.Config) dock.Settings {
	return dock.Settings{
		HeaderHeight:        cfg.Dock.HeaderHeight,
		TabMaxWidth:         cfg.Dock.TabMaxWidth,
		ButtonSize:          cfg.Dock.ButtonSize,
		EdgeThickness:       cfg.Dock.EdgeThickness,
		SnapDistance:        cfg.Dock.SnapDistance,
		DragThreshold:       cfg.Dock.DragThreshold,
		QuadrantStrip:       cfg.Dock.QuadrantStrip,
		MaxPropagationDepth: cfg.Dock.MaxPropagationDepth,
	}
}

// NewEngine creates an engine over the app dock.
func (a *App) NewEngine() *dock.Engine {
	return dock.New(a.Dock, a.DockUC, EngineSettings(a.Config))
}

// NewAutosave returns a started autosave service, or nil when disabled.
func (a *App) NewAutosave(ctx context.Context) *snapshot.Service {
	if a.Config.Storage.AutosaveIntervalMs <= 0 {
		return nil
	}
	svc := snapshot.NewService(a.LayoutUC, a.Config.Storage.ActiveSetup, a.Config.Storage.AutosaveIntervalMs)
	svc.Start(ctx)
	logging.FromContext(ctx).Debug().
		Dur("interval", time.Duration(a.Config.Storage.AutosaveIntervalMs)*time.Millisecond).
		Msg("autosave enabled")
	return svc
}
