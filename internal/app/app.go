// Package app implements the application layer for breeze.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	prom "github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/breeze/internal/adapters/config"          //nolint:depguard // Defaults live with the loader
	"go.trai.ch/breeze/internal/adapters/css"             //nolint:depguard // Minified output needs its own printer
	"go.trai.ch/breeze/internal/adapters/detector"        //nolint:depguard // Resolves the --progress flag
	"go.trai.ch/breeze/internal/adapters/linear"          //nolint:depguard // Resolves the --progress flag
	"go.trai.ch/breeze/internal/adapters/metrics"         //nolint:depguard // Serves /metrics in watch mode
	"go.trai.ch/breeze/internal/adapters/tui"             //nolint:depguard // Resolves the --progress flag
	fswatch "go.trai.ch/breeze/internal/adapters/watcher" //nolint:depguard // Debounces change batches
	"go.trai.ch/breeze/internal/core/domain"
	"go.trai.ch/breeze/internal/core/ports"
	"go.trai.ch/breeze/internal/engine/stage"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// stdio is the path that selects standard input or output.
const stdio = "-"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	sheets       ports.StylesheetLoader
	parser       ports.StylesheetParser
	stage        *stage.Stage
	writer       ports.OutputWriter
	reporter     ports.Reporter
	watcher      ports.Watcher
	metrics      ports.Metrics
	registry     *prom.Registry
	logger       ports.Logger
	tracer       ports.Tracer
	printer      ports.StylesheetPrinter
	minifier     ports.StylesheetPrinter

	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	teaOptions []tea.ProgramOption

	// buildMu serializes builds: stage invocations for one input must not overlap.
	buildMu  sync.Mutex
	mu       sync.Mutex
	messages map[string][]domain.Message
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	sheets ports.StylesheetLoader,
	parser ports.StylesheetParser,
	st *stage.Stage,
	writer ports.OutputWriter,
	reporter ports.Reporter,
	watcher ports.Watcher,
	recorder ports.Metrics,
	registry *prom.Registry,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		sheets:       sheets,
		parser:       parser,
		stage:        st,
		writer:       writer,
		reporter:     reporter,
		watcher:      watcher,
		metrics:      recorder,
		registry:     registry,
		logger:       log,
		tracer:       tracer,
		printer:      css.NewPrinter(),
		minifier:     css.NewMinifyPrinter(),
		stdin:        os.Stdin,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		messages:     make(map[string][]domain.Message),
	}
}

// WithIO replaces the standard streams. This is primarily used for testing.
func (a *App) WithIO(stdin io.Reader, stdout, stderr io.Writer) *App {
	a.stdin = stdin
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithTeaOptions adds bubbletea program options to the dashboard.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	// Cwd is where breeze.yaml discovery starts. Defaults to the working directory.
	Cwd string
	// Input overrides the configured entries with a single stylesheet. "-" reads stdin.
	Input string
	// Output is the destination of Input. Empty or "-" writes to stdout.
	Output string
	// Base overrides the content detection root.
	Base string
	// Optimize overrides the configured optimization when set.
	Optimize *bool
	// Minify overrides the configured minification when set. Minifying implies optimizing.
	Minify *bool
	// Progress selects the reporter mode: "auto", "pretty", "plain" or "tui".
	Progress string
}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	BuildOptions
	// MetricsAddr serves Prometheus metrics on this address when set.
	MetricsAddr string
}

// Build compiles every entry once.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	cfg, err := a.resolveConfig(opts)
	if err != nil {
		return err
	}
	reporter, stop, err := a.progressReporter(ctx, opts.Progress, func() {})
	if err != nil {
		return err
	}
	defer stop()
	return a.buildAll(ctx, cfg, cfg.Entries, reporter)
}

// Watch builds every entry, then rebuilds the entries affected by file changes
// until ctx is canceled.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	cfg, err := a.resolveConfig(opts.BuildOptions)
	if err != nil {
		return err
	}
	for _, e := range cfg.Entries {
		if e.Input == stdio {
			return zerr.Wrap(domain.ErrWatchFailed, "cannot watch stdin")
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Quitting the dashboard ends the watch.
	reporter, stop, err := a.progressReporter(ctx, opts.Progress, cancel)
	if err != nil {
		return err
	}
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	if opts.MetricsAddr != "" {
		g.Go(func() error {
			a.logger.Info(fmt.Sprintf("serving metrics on %s/metrics", opts.MetricsAddr))
			return metrics.Serve(ctx, opts.MetricsAddr, a.registry)
		})
	}

	if err := a.buildAll(ctx, cfg, cfg.Entries, reporter); err != nil && !errors.Is(err, domain.ErrBuildFailed) {
		cancel()
		_ = g.Wait()
		return err
	}

	if err := a.watcher.Start(ctx, cfg.Root); err != nil {
		cancel()
		_ = g.Wait()
		return err
	}
	a.logger.Info(fmt.Sprintf("watching %s for changes", cfg.Root))

	outputs := make(map[string]struct{}, len(cfg.Entries))
	for _, e := range cfg.Entries {
		outputs[e.Output] = struct{}{}
	}

	debouncer := fswatch.NewDebouncer(fswatch.DefaultDebounceWindow, func(paths []string) {
		affected := a.affected(cfg.Entries, paths)
		if len(affected) == 0 || ctx.Err() != nil {
			return
		}
		a.logger.Debug(fmt.Sprintf("%d changed paths, rebuilding %d entries", len(paths), len(affected)))
		// Failures are reported per entry; watching continues.
		_ = a.buildAll(ctx, cfg, affected, reporter)
	})

	g.Go(func() error {
		for event := range a.watcher.Events() {
			if _, ok := outputs[event.Path]; ok {
				continue
			}
			debouncer.Add(event.Path)
		}
		return nil
	})

	<-ctx.Done()
	stopErr := a.watcher.Stop()
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if stopErr != nil {
		return zerr.Wrap(stopErr, "failed to stop watcher")
	}
	return nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// Cwd is where breeze.yaml discovery starts. Defaults to the working directory.
	Cwd string
}

// Clean removes the build info store of the project.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	root, err := a.projectRoot(opts.Cwd)
	if err != nil {
		return err
	}

	path := filepath.Join(root, domain.DefaultStatePath())
	a.logger.Info(fmt.Sprintf("removing %s...", path))
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove build info store"), "path", path)
	}
	a.logger.Info(fmt.Sprintf("removed %s", path))
	return nil
}

func (a *App) projectRoot(cwd string) (string, error) {
	cwd, err := workingDir(cwd)
	if err != nil {
		return "", err
	}
	cfg, err := a.configLoader.Load(cwd)
	switch {
	case err == nil:
		return cfg.Root, nil
	case errors.Is(err, domain.ErrConfigNotFound):
		return cwd, nil
	default:
		return "", err
	}
}

// resolveConfig loads breeze.yaml and applies the flag overrides. Without a
// config file the flags alone describe the build.
func (a *App) resolveConfig(opts BuildOptions) (*domain.Config, error) {
	cwd, err := workingDir(opts.Cwd)
	if err != nil {
		return nil, err
	}

	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		if !errors.Is(err, domain.ErrConfigNotFound) || opts.Input == "" {
			return nil, zerr.Wrap(err, "failed to load configuration")
		}
		cfg = &domain.Config{Root: cwd, Base: cwd, Optimize: config.DefaultOptimize()}
	}

	if opts.Input != "" {
		cfg.Entries = []domain.Entry{{Input: absPath(cwd, opts.Input), Output: absPath(cwd, opts.Output)}}
	}
	if opts.Base != "" {
		cfg.Base = absPath(cwd, opts.Base)
	}
	if opts.Optimize != nil {
		cfg.Optimize = domain.OptimizeOptions{Enabled: *opts.Optimize, Minify: *opts.Optimize}
	}
	if opts.Minify != nil {
		cfg.Optimize.Minify = *opts.Minify
		if *opts.Minify {
			cfg.Optimize.Enabled = true
		}
	}

	if len(cfg.Entries) == 0 {
		return nil, domain.ErrNoEntries
	}
	return cfg, nil
}

// progressReporter resolves the --progress flag. The returned function stops
// the dashboard; onQuit runs when the user quits it.
func (a *App) progressReporter(
	ctx context.Context,
	progress string,
	onQuit func(),
) (ports.Reporter, func(), error) {
	if progress == "" || progress == "auto" {
		return a.reporter, func() {}, nil
	}

	mode := detector.ResolveMode(detector.DetectEnvironment(), progress)
	if mode != detector.ModeTUI {
		return linear.NewReporter(a.stderr, mode), func() {}, nil
	}

	opts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(a.stderr)}, a.teaOptions...)
	dashboard := tui.NewReporter(tui.NewModel(), opts...)
	if err := dashboard.Start(ctx); err != nil {
		return nil, nil, zerr.Wrap(err, "failed to start dashboard")
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = dashboard.Wait()
		onQuit()
	}()
	return dashboard, func() {
		_ = dashboard.Stop()
		<-done
	}, nil
}

// buildAll builds entries concurrently and returns ErrBuildFailed when any of them failed.
func (a *App) buildAll(ctx context.Context, cfg *domain.Config, entries []domain.Entry, reporter ports.Reporter) error {
	a.buildMu.Lock()
	defer a.buildMu.Unlock()

	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)
	g.SetLimit(runtime.NumCPU())
	for _, entry := range entries {
		g.Go(func() error {
			if err := a.buildEntry(ctx, cfg, entry, reporter); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(errs) == 0 {
		return nil
	}
	for _, err := range errs {
		if !errors.Is(err, context.Canceled) {
			a.logger.Error(err)
		}
	}
	return zerr.With(zerr.Wrap(domain.ErrBuildFailed, "entries failed"), "count", len(errs))
}

func (a *App) buildEntry(ctx context.Context, cfg *domain.Config, entry domain.Entry, reporter ports.Reporter) error {
	ctx, span := a.tracer.Start(ctx, "app.build_entry", ports.WithAttribute("breeze.input", entry.Input))
	defer span.End()

	start := time.Now()
	display := displayPath(cfg.Root, entry.Input)
	report := ports.BuildReport{Input: display, Output: displayPath(cfg.Root, entry.Output)}
	reporter.OnBuildStart(display)

	finish := func(outcome string, err error) error {
		report.Duration = time.Since(start)
		a.metrics.IncBuildOutcome(outcome)
		if err != nil {
			span.RecordError(err)
		}
		reporter.OnBuildComplete(report, err)
		return err
	}

	in, err := a.read(ctx, entry.Input)
	if err != nil {
		return finish(metrics.OutcomeFailed, err)
	}
	res, err := a.stage.Process(ctx, *in, stage.Options{Base: cfg.Base, Optimize: cfg.Optimize})
	if err != nil {
		return finish(metrics.OutcomeFailed, err)
	}

	a.mu.Lock()
	a.messages[entry.Input] = res.Messages
	a.mu.Unlock()
	report.Decision = res.Decision
	report.Skipped = res.Skipped
	report.Candidates = res.Candidates

	printer := a.printer
	if cfg.Optimize.Enabled && cfg.Optimize.Minify && !res.Skipped {
		printer = a.minifier
	}
	text := printer.Print(res.Root)

	if entry.Output == stdio {
		if _, err := io.WriteString(a.stdout, text); err != nil {
			return finish(metrics.OutcomeFailed, zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()))
		}
		report.Written = true
	} else {
		written, err := a.writer.Write(cfg.Root, entry, text, res.Decision)
		if err != nil {
			return finish(metrics.OutcomeFailed, err)
		}
		report.Written = written
	}

	if res.Skipped {
		return finish(metrics.OutcomeSkipped, nil)
	}
	return finish(metrics.OutcomeSuccess, nil)
}

// read loads the input stylesheet, inlining its imports. Piped input has no
// imports and no path.
func (a *App) read(ctx context.Context, input string) (*domain.StageInput, error) {
	if input == stdio {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to read stdin")
		}
		root, err := a.parser.Parse(string(data), domain.SourceOptions{})
		if err != nil {
			return nil, err
		}
		return &domain.StageInput{Root: root}, nil
	}

	root, messages, err := a.sheets.Load(ctx, input)
	if err != nil {
		return nil, err
	}
	return &domain.StageInput{Root: root, From: input, Messages: messages}, nil
}

// affected returns the entries whose input or recorded dependencies match one of paths.
func (a *App) affected(entries []domain.Entry, paths []string) []domain.Entry {
	a.mu.Lock()
	defer a.mu.Unlock()

	var out []domain.Entry
	for _, e := range entries {
		for _, p := range paths {
			if p == e.Input || Affects(a.messages[e.Input], p) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

func displayPath(root, path string) string {
	if path == stdio {
		return path
	}
	if rel, err := filepath.Rel(root, path); err == nil && !filepath.IsAbs(rel) && !isOutside(rel) {
		return rel
	}
	return path
}

func workingDir(cwd string) (string, error) {
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", zerr.Wrap(err, "failed to get working directory")
		}
		cwd = wd
	}
	return filepath.Abs(cwd)
}

func absPath(cwd, path string) string {
	if path == "" || path == stdio {
		return stdio
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(cwd, path)
}
