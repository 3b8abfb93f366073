// Package stage implements the incremental utility-CSS build stage.
package stage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/breeze/internal/core/domain"
	"go.trai.ch/breeze/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options are the per-invocation settings of the stage.
type Options struct {
	// Base is the root directory for automatic content detection.
	// Defaults to the working directory.
	Base string
	// Optimize controls the optimization pass.
	Optimize domain.OptimizeOptions
}

// Stage runs the build pipeline for one stylesheet per invocation, reusing the
// compiler handle and cached output of earlier invocations for the same input.
type Stage struct {
	registry   *Registry
	strategist *Strategist
	compilers  ports.CompilerFactory
	scanner    ports.Scanner
	optimizer  ports.Optimizer
	parser     ports.StylesheetParser
	printer    ports.StylesheetPrinter
	resolver   ports.ModuleResolver
	tracer     ports.Tracer
	metrics    ports.Metrics
	logger     ports.Logger
}

// New creates a stage with an empty registry.
func New(
	compilers ports.CompilerFactory,
	scanner ports.Scanner,
	optimizer ports.Optimizer,
	parser ports.StylesheetParser,
	printer ports.StylesheetPrinter,
	stater ports.Stater,
	resolver ports.ModuleResolver,
	tracer ports.Tracer,
	metrics ports.Metrics,
	logger ports.Logger,
) *Stage {
	return &Stage{
		registry:   NewRegistry(),
		strategist: NewStrategist(stater),
		compilers:  compilers,
		scanner:    scanner,
		optimizer:  optimizer,
		parser:     parser,
		printer:    printer,
		resolver:   resolver,
		tracer:     tracer,
		metrics:    metrics,
		logger:     logger,
	}
}

// Registry exposes the build contexts of this stage.
func (s *Stage) Registry() *Registry {
	return s.registry
}

// Process runs one invocation. Stylesheets without directives are returned
// unchanged. Invocations for the same input must not run concurrently.
func (s *Stage) Process(ctx context.Context, in domain.StageInput, opts Options) (*domain.StageResult, error) {
	ctx, span := s.tracer.Start(ctx, "stage.process", ports.WithAttribute("breeze.input", in.From))
	defer span.End()

	start := time.Now()
	identity, err := inputIdentity(in.From)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if opts.Base == "" {
		wd, err := os.Getwd()
		if err != nil {
			span.RecordError(err)
			return nil, zerr.Wrap(err, "failed to get working directory")
		}
		opts.Base = wd
	}

	directives := DetectDirectives(in.Root)
	bc := s.registry.Get(identity)
	assessment := s.strategist.Assess(bc.Ledger, identity, domain.DependencyFiles(in.Messages))
	span.SetAttribute("breeze.decision", assessment.Decision.String())

	if !directives.Any() {
		span.SetAttribute("breeze.skipped", true)
		s.logger.Debug(fmt.Sprintf("%s: no directives, skipping", displayName(identity)))
		return &domain.StageResult{
			Root:     in.Root,
			Messages: in.Messages,
			Decision: assessment.Decision,
			Skipped:  true,
		}, nil
	}

	res, err := s.rebuild(ctx, in, opts, identity, directives, assessment, bc)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	elapsed := time.Since(start)
	s.metrics.ObserveRebuild(res.Decision, elapsed)
	s.logger.Debug(fmt.Sprintf("%s: %s rebuild with %d candidates in %s",
		displayName(identity), res.Decision, res.Candidates, elapsed.Round(time.Millisecond)))

	return res, nil
}

func (s *Stage) rebuild(
	ctx context.Context,
	in domain.StageInput,
	opts Options,
	identity string,
	directives Directives,
	assessment Assessment,
	bc *BuildContext,
) (*domain.StageResult, error) {
	inputDir := inputDirectory(identity, opts.Base)

	if bc.Compiler == nil || assessment.Decision == domain.RebuildFull {
		if assessment.InputMissing {
			return nil, zerr.With(
				zerr.Wrap(domain.ErrMissingInput, domain.ErrCompilerConstruction.Error()),
				"input", identity,
			)
		}
		compiler, err := s.newCompiler(ctx, in.Root, inputDir)
		if err != nil {
			return nil, zerr.With(err, "input", displayName(identity))
		}
		bc.Compiler = compiler
	}

	scan, err := s.scan(ctx, bc.Compiler, opts.Base, inputDir)
	if err != nil {
		return nil, zerr.With(err, "input", displayName(identity))
	}

	messages := make([]domain.Message, 0, len(in.Messages)+len(scan.Files)+len(scan.Globs))
	messages = append(messages, in.Messages...)
	for _, file := range scan.Files {
		messages = append(messages, domain.DependencyMessage(domain.PluginName, in.From, file))
	}
	for _, glob := range scan.Globs {
		messages = append(messages, domain.DirDependencyMessage(domain.PluginName, in.From, glob.Base, glob.Pattern))
	}

	css, err := s.compile(ctx, bc.Compiler, assessment.Decision, directives, scan.Candidates)
	if err != nil {
		return nil, zerr.With(err, "input", displayName(identity))
	}

	if err := s.optimize(ctx, bc, css, identity, opts.Optimize); err != nil {
		return nil, zerr.With(err, "input", displayName(identity))
	}

	chosen := bc.RawCSS
	if opts.Optimize.Enabled {
		chosen = bc.OptimizedCSS
	}

	parsed, err := s.parser.Parse(chosen, domain.SourceOptions{From: in.From})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStylesheetParse.Error()), "input", displayName(identity))
	}

	return &domain.StageResult{
		Root:       in.Root.WithNodes(parsed.Nodes),
		Messages:   messages,
		Decision:   assessment.Decision,
		Candidates: len(scan.Candidates),
	}, nil
}

func (s *Stage) newCompiler(ctx context.Context, root *domain.Stylesheet, inputDir string) (ports.Compiler, error) {
	compiler, err := s.compilers.New(ctx, s.printer.Print(root), ports.CompilerOptions{
		Base:          inputDir,
		ResolvePlugin: s.pluginResolver(inputDir),
	})
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCompilerConstruction.Error())
	}
	return compiler, nil
}

// pluginResolver resolves relative specifiers against the stylesheet directory
// and everything else through module resolution.
func (s *Stage) pluginResolver(inputDir string) ports.PluginResolver {
	return func(specifier string) (string, error) {
		if specifier == "." || strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../") {
			return filepath.Join(inputDir, specifier), nil
		}
		return s.resolver.Resolve(specifier, inputDir)
	}
}

func (s *Stage) scan(ctx context.Context, compiler ports.Compiler, base, inputDir string) (*domain.ScanResult, error) {
	ctx, span := s.tracer.Start(ctx, "stage.scan")
	defer span.End()

	globs := compiler.Globs()
	sources := make([]domain.SourceEntry, 0, len(globs))
	for _, g := range globs {
		sources = append(sources, domain.SourceEntry{Base: inputDir, Pattern: g})
	}

	result, err := s.scanner.Scan(ctx, base, sources)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, domain.ErrScannerFailed.Error())
	}
	span.SetAttribute("breeze.candidates", len(result.Candidates))
	return result, nil
}

func (s *Stage) compile(
	ctx context.Context,
	compiler ports.Compiler,
	decision domain.RebuildDecision,
	directives Directives,
	candidates []string,
) (string, error) {
	_, span := s.tracer.Start(ctx, "stage.compile", ports.WithAttribute("breeze.decision", decision.String()))
	defer span.End()

	var (
		css string
		err error
	)
	switch {
	case decision == domain.RebuildFull:
		// Without a generation directive only apply-directives are expanded.
		if directives.Generation {
			css, err = compiler.Build(candidates)
		} else {
			css, err = compiler.Build(nil)
		}
	default:
		if inc, ok := compiler.(ports.IncrementalCompiler); ok {
			css, err = inc.BuildIncremental(candidates)
		} else {
			css, err = compiler.Build(candidates)
		}
	}
	if err != nil {
		span.RecordError(err)
		return "", zerr.Wrap(err, domain.ErrCompilerBuild.Error())
	}
	return css, nil
}

// optimize refreshes the cached output of bc for css. The optimizer only runs when
// the raw output changed or the cached optimized text was produced with other settings.
// A failed optimization leaves bc untouched.
func (s *Stage) optimize(ctx context.Context, bc *BuildContext, css, identity string, opts domain.OptimizeOptions) error {
	changed := css != bc.RawCSS
	fresh := !changed && bc.optimized && bc.optimizeMinify == opts.Minify

	if opts.Enabled && !fresh {
		_, span := s.tracer.Start(ctx, "stage.optimize", ports.WithAttribute("breeze.minify", opts.Minify))
		out, err := s.optimizer.Optimize(css, ports.OptimizeOptions{Filename: identity, Minify: opts.Minify})
		if err != nil {
			span.RecordError(err)
			span.End()
			return zerr.Wrap(err, domain.ErrOptimizerFailed.Error())
		}
		span.End()
		bc.OptimizedCSS = out
		bc.optimized = true
		bc.optimizeMinify = opts.Minify
	} else if changed {
		bc.optimized = false
	}

	bc.RawCSS = css
	return nil
}

func inputIdentity(from string) (string, error) {
	if from == "" {
		return "", nil
	}
	abs, err := filepath.Abs(from)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrMissingInput.Error()), "input", from)
	}
	return abs, nil
}

func inputDirectory(identity, base string) string {
	if identity != "" {
		return filepath.Dir(identity)
	}
	if base != "" {
		return base
	}
	return "."
}

func displayName(identity string) string {
	if identity == "" {
		return "<stdin>"
	}
	return identity
}
