package exercises

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-barry/exercises/calc"
	"github.com/go-barry/exercises/core"
	"github.com/go-barry/exercises/madlibs"
	"github.com/klauspost/compress/gzhttp"
	"go.uber.org/zap"
)

type App string

const (
	AppMadlibs App = "madlibs"
	AppCalc    App = "calc"
)

type RuntimeConfig struct {
	App    App
	Config core.Config
}

const shutdownTimeout = 5 * time.Second

// Start serves cfg.App until SIGINT or SIGTERM.
var Start = func(cfg RuntimeConfig) error {
	logger, err := core.NewLogger(core.LogConfigFrom(cfg.Config))
	if err != nil {
		return err
	}
	defer logger.Sync()

	handler, closeFn, err := NewHandler(cfg, logger)
	if err != nil {
		return err
	}
	defer closeFn()

	srv := &http.Server{
		Addr:              cfg.Config.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	fmt.Printf("✅ %s running at http://%s (%s mode)\n", cfg.App, cfg.Config.Addr(), cfg.Config.Env)
	logger.Info("Server started",
		zap.String("app", string(cfg.App)),
		zap.String("addr", cfg.Config.Addr()),
		zap.String("env", cfg.Config.Env),
	)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", cfg.Config.Addr(), err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewHandler builds the full handler stack for cfg.App. The returned func
// releases background resources such as the template watcher.
func NewHandler(cfg RuntimeConfig, logger *zap.Logger) (http.Handler, func() error, error) {
	metrics := core.NewMetrics(string(cfg.App))
	router := core.NewRouter()
	mux := http.NewServeMux()
	closeFn := func() error { return nil }

	switch cfg.App {
	case AppMadlibs:
		c, err := mountMadlibs(cfg.Config, router, mux, logger)
		if err != nil {
			return nil, nil, err
		}
		closeFn = c
	case AppCalc:
		calc.NewHandler(logger, metrics.Registerer()).Routes(router)
	default:
		return nil, nil, fmt.Errorf("unknown app %q", cfg.App)
	}

	if cfg.Config.Metrics {
		router.Handle("GET /metrics", metrics.Handler())
	}

	var app http.Handler = router
	if cfg.Config.Gzip {
		app = gzhttp.GzipHandler(app)
	}
	app = core.Chain(app,
		core.RequestID(),
		core.Recover(logger),
		core.AccessLog(logger, metrics),
	)
	mux.Handle("/", app)

	logger.Debug("Routes registered", zap.Stringers("routes", router.Routes()))
	return mux, closeFn, nil
}

func mountMadlibs(cfg core.Config, router *core.Router, mux *http.ServeMux, logger *zap.Logger) (func() error, error) {
	story, err := madlibs.LoadStory(cfg.StoryFile)
	if err != nil {
		return nil, err
	}

	var templates fs.FS = madlibs.Templates()
	if cfg.TemplateDir != "" {
		templates = os.DirFS(cfg.TemplateDir)
	}

	renderer, err := core.NewRenderer(templates, core.RendererOptions{
		Env:          cfg.Env,
		DebugHeaders: cfg.DebugHeaders,
	})
	if err != nil {
		return nil, err
	}

	madlibs.NewHandler(story, renderer, logger).Routes(router)

	closeFn := func() error { return nil }
	if !cfg.IsDev() {
		return closeFn, nil
	}

	reloader := core.NewLiveReloader()
	mux.HandleFunc(core.LiveReloadPath, reloader.Handler)

	if cfg.TemplateDir == "" {
		return closeFn, nil
	}

	watcher, err := core.WatchDir(cfg.TemplateDir, logger, func() {
		if err := renderer.Reload(); err != nil {
			logger.Warn("Template reload failed", zap.Error(err))
			return
		}
		logger.Info("Templates reloaded")
		reloader.BroadcastReload()
	})
	if err != nil {
		return nil, err
	}
	return watcher.Close, nil
}
