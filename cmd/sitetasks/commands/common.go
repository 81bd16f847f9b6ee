package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/sitetasks/internal/config"
	"git.home.luguber.info/inful/sitetasks/internal/execx"
	derrors "git.home.luguber.info/inful/sitetasks/internal/foundation/errors"
	"git.home.luguber.info/inful/sitetasks/internal/logfields"
	"git.home.luguber.info/inful/sitetasks/internal/metrics"
	"git.home.luguber.info/inful/sitetasks/internal/tasks"
	"git.home.luguber.info/inful/sitetasks/internal/workspace"
)

// Global is the state shared by every subcommand once flags and configuration
// have been resolved.
type Global struct {
	Logger *slog.Logger
	Config *config.Config
	// Dir is the site directory the tasks run in.
	Dir  string
	Exec *tasks.ExecContext
	// Stdout receives command output meant for the user (not logs).
	Stdout io.Writer
	// Stderr receives error messages printed when a command fails.
	Stderr io.Writer

	registry    *prom.Registry
	metricsFile string
}

// CLI definition & global flags.
type CLI struct {
	Config       string           `short:"c" help:"Configuration file path (default is looked up in the site directory)" default:"sitetasks.yaml"`
	Verbose      bool             `short:"v" help:"Enable verbose logging"`
	Chdir        string           `short:"C" name:"chdir" help:"Run tasks in this directory instead of the detected site root"`
	NoRootDetect bool             `name:"no-root-detect" help:"Run tasks in the current directory instead of the nearest enclosing hugo site"`
	MetricsFile  string           `name:"metrics-file" help:"Write Prometheus metrics to this textfile when the run ends"`
	Version      kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" help:"Build the site with hugo into its output directory"`
	Serve ServeCmd `cmd:"" help:"Build, then serve the site with live reload and full re-renders"`
	Info  InfoCmd  `cmd:"" help:"Show runner version, hugo version and site directory"`
}

// NewLogger builds the process logger from the configured level and format.
func NewLogger(w io.Writer, cfg config.LogConfig, verbose bool) *slog.Logger {
	level := cfg.Level.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// NewGlobal resolves the site directory, loads configuration from it, sets up
// logging and wires the execution context. An explicit -c path is relative to
// the working directory; the default sitetasks.yaml and .env files are read
// from the site directory.
func NewGlobal(cli *CLI) (*Global, error) {
	configPath := cli.Config
	required := configPath != config.DefaultPath
	if required {
		abs, err := filepath.Abs(configPath)
		if err != nil {
			return nil, derrors.WrapError(err, derrors.CategoryValidation, "invalid configuration path").
				WithContext(logfields.KeyPath, configPath).
				Build()
		}
		configPath = abs
	}

	dir, err := workspace.Resolve(workspace.Options{Chdir: cli.Chdir, DetectRoot: !cli.NoRootDetect})
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(dir, configPath, required)
	if err != nil {
		return nil, err
	}

	logger := NewLogger(os.Stderr, cfg.Log, cli.Verbose)
	slog.SetDefault(logger)

	if cli.Chdir == "" && cfg.Hugo.Dir != "" {
		hugoDir := cfg.Hugo.Dir
		if !filepath.IsAbs(hugoDir) {
			hugoDir = filepath.Join(dir, hugoDir)
		}
		if dir, err = workspace.Resolve(workspace.Options{Chdir: hugoDir}); err != nil {
			return nil, err
		}
	}

	executor := execx.NewShellExecutor(dir)
	executor.Logger = logger

	g := &Global{
		Logger: logger,
		Config: cfg,
		Dir:    dir,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Exec: &tasks.ExecContext{
			Executor: executor,
			Binary:   cfg.Hugo.Binary,
			Logger:   logger,
			Metrics:  metrics.NoopRecorder{},
		},
	}

	g.metricsFile = cli.MetricsFile
	if g.metricsFile == "" {
		g.metricsFile = cfg.Metrics.File
	}
	if g.metricsFile != "" {
		g.registry = prom.NewRegistry()
		g.Exec.Metrics = metrics.NewPrometheusRecorder(g.registry)
	}

	logger.Debug("Site tasks configured",
		logfields.Dir(dir),
		logfields.Binary(cfg.Hugo.Binary),
		logfields.Path(configPath))
	return g, nil
}

// Close flushes run metrics, if enabled.
func (g *Global) Close() error {
	if g == nil || g.registry == nil {
		return nil
	}
	if err := metrics.WriteTextfile(g.metricsFile, g.registry); err != nil {
		return derrors.WrapError(err, derrors.CategoryRuntime, "failed to write metrics textfile").
			Fatal().
			WithContext(logfields.KeyPath, g.metricsFile).
			Build()
	}
	g.Logger.Debug("Metrics written", logfields.Path(g.metricsFile))
	return nil
}

// Execute runs the parsed command and returns the process exit code.
// SIGINT and SIGTERM cancel the context; the runner still waits for hugo to exit.
func Execute(kctx *kong.Context, cli *CLI) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, err := NewGlobal(cli)
	if err != nil {
		return derrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).Handle(err)
	}
	return Run(ctx, kctx, g, cli.Verbose)
}

// Run executes the selected subcommand with g bound and maps the outcome to an
// exit code.
func Run(ctx context.Context, kctx *kong.Context, g *Global, verbose bool) int {
	kctx.BindTo(ctx, (*context.Context)(nil))
	runErr := kctx.Run(g)
	closeErr := g.Close()

	adapter := derrors.NewCLIErrorAdapter(verbose, g.Logger).WithOutput(g.Stderr)
	if runErr != nil {
		if closeErr != nil {
			g.Logger.Warn("Run finished with errors", logfields.Error(closeErr))
		}
		return adapter.Handle(runErr)
	}
	return adapter.Handle(closeErr)
}
