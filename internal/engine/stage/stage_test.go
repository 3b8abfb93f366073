package stage_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/breeze/internal/adapters/css"
	"go.trai.ch/breeze/internal/adapters/telemetry"
	"go.trai.ch/breeze/internal/core/domain"
	"go.trai.ch/breeze/internal/core/ports"
	"go.trai.ch/breeze/internal/core/ports/mocks"
	"go.trai.ch/breeze/internal/engine/stage"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	compilers *mocks.MockCompilerFactory
	scanner   *mocks.MockScanner
	optimizer *mocks.MockOptimizer
	stater    *mocks.MockStater
	resolver  *mocks.MockModuleResolver
	metrics   *mocks.MockMetrics
	stage     *stage.Stage
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		compilers: mocks.NewMockCompilerFactory(ctrl),
		scanner:   mocks.NewMockScanner(ctrl),
		optimizer: mocks.NewMockOptimizer(ctrl),
		stater:    mocks.NewMockStater(ctrl),
		resolver:  mocks.NewMockModuleResolver(ctrl),
		metrics:   mocks.NewMockMetrics(ctrl),
	}

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	f.stage = stage.New(
		f.compilers,
		f.scanner,
		f.optimizer,
		css.NewParser(),
		css.NewPrinter(),
		f.stater,
		f.resolver,
		telemetry.NewNoOpTracer(),
		f.metrics,
		log,
	)
	return f
}

func parse(t *testing.T, text, from string) *domain.Stylesheet {
	t.Helper()
	sheet, err := css.NewParser().Parse(text, domain.SourceOptions{From: from})
	require.NoError(t, err)
	return sheet
}

func abs(t *testing.T, path string) string {
	t.Helper()
	p, err := filepath.Abs(path)
	require.NoError(t, err)
	return p
}

func TestProcess_NoDirectivesSkipsWork(t *testing.T) {
	f := newFixture(t)
	input := abs(t, "plain.css")
	f.stater.EXPECT().ModTime(input).Return(int64(100), nil)

	root := parse(t, ".card { color: red; }", input)
	messages := []domain.Message{domain.DependencyMessage("import", input, "/tmp/other.css")}
	f.stater.EXPECT().ModTime("/tmp/other.css").Return(int64(5), nil)

	res, err := f.stage.Process(context.Background(), domain.StageInput{
		Root:     root,
		From:     input,
		Messages: messages,
	}, stage.Options{})
	require.NoError(t, err)

	assert.True(t, res.Skipped)
	assert.Same(t, root, res.Root)
	assert.Equal(t, messages, res.Messages)
	assert.Equal(t, 1, f.stage.Registry().Len())
}

func TestProcess_FirstInvocationIsFull(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)
	input := abs(t, "app.css")

	f.stater.EXPECT().ModTime(input).Return(int64(100), nil)
	f.compilers.EXPECT().
		New(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, source string, opts ports.CompilerOptions) (ports.Compiler, error) {
			assert.Contains(t, source, "@tailwind utilities")
			assert.Equal(t, filepath.Dir(input), opts.Base)
			return compiler, nil
		})
	compiler.EXPECT().Globs().Return([]string{"./src/**/*.html"})
	f.scanner.EXPECT().
		Scan(gomock.Any(), "/project", []domain.SourceEntry{{Base: filepath.Dir(input), Pattern: "./src/**/*.html"}}).
		Return(&domain.ScanResult{
			Files:      []string{"/project/src/index.html"},
			Globs:      []domain.SourceEntry{{Base: "/project/src", Pattern: "**/*.html"}},
			Candidates: []string{"flex", "p-4"},
		}, nil)
	compiler.EXPECT().Build([]string{"flex", "p-4"}).Return(".flex { display: flex; }\n.p-4 { padding: 1rem; }", nil)
	f.metrics.EXPECT().ObserveRebuild(domain.RebuildFull, gomock.Any())

	res, err := f.stage.Process(context.Background(), domain.StageInput{
		Root: parse(t, "@tailwind utilities;", input),
		From: input,
	}, stage.Options{Base: "/project"})
	require.NoError(t, err)

	assert.Equal(t, domain.RebuildFull, res.Decision)
	assert.Equal(t, 2, res.Candidates)
	require.Len(t, res.Root.Nodes, 2)
	assert.Equal(t, ".flex", res.Root.Nodes[0].Selector)
	assert.Equal(t, ".p-4", res.Root.Nodes[1].Selector)
	assert.Equal(t, input, res.Root.Source.From)

	assert.Equal(t, []domain.Message{
		domain.DependencyMessage(domain.PluginName, input, "/project/src/index.html"),
		domain.DirDependencyMessage(domain.PluginName, input, "/project/src", "**/*.html"),
	}, res.Messages)

	bc := f.stage.Registry().Get(input)
	mtime, ok := bc.Ledger.Get(input)
	require.True(t, ok)
	assert.Equal(t, int64(100), mtime)
}

func TestProcess_SecondInvocationIsIncremental(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockIncrementalCompiler(ctrl)
	input := abs(t, "app.css")
	raw := ".flex { display: flex; }"

	f.stater.EXPECT().ModTime(input).Return(int64(100), nil).Times(2)
	f.compilers.EXPECT().New(gomock.Any(), gomock.Any(), gomock.Any()).Return(compiler, nil).Times(1)
	compiler.EXPECT().Globs().Return(nil).Times(2)
	f.scanner.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.ScanResult{Candidates: []string{"flex"}}, nil).Times(2)
	compiler.EXPECT().Build([]string{"flex"}).Return(raw, nil)
	compiler.EXPECT().BuildIncremental([]string{"flex"}).Return(raw, nil)
	f.metrics.EXPECT().ObserveRebuild(domain.RebuildFull, gomock.Any())
	f.metrics.EXPECT().ObserveRebuild(domain.RebuildIncremental, gomock.Any())

	in := domain.StageInput{Root: parse(t, "@tailwind utilities;", input), From: input}

	first, err := f.stage.Process(context.Background(), in, stage.Options{})
	require.NoError(t, err)
	second, err := f.stage.Process(context.Background(), in, stage.Options{})
	require.NoError(t, err)

	assert.Equal(t, domain.RebuildFull, first.Decision)
	assert.Equal(t, domain.RebuildIncremental, second.Decision)
	printer := css.NewPrinter()
	assert.Equal(t, printer.Print(first.Root), printer.Print(second.Root))
}

func TestProcess_TouchedDependencyForcesFull(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	firstCompiler := mocks.NewMockCompiler(ctrl)
	secondCompiler := mocks.NewMockCompiler(ctrl)
	input := abs(t, "app.css")
	dep := abs(t, "theme.css")

	gomock.InOrder(
		f.stater.EXPECT().ModTime(input).Return(int64(100), nil),
		f.stater.EXPECT().ModTime(dep).Return(int64(10), nil),
		f.stater.EXPECT().ModTime(input).Return(int64(100), nil),
		f.stater.EXPECT().ModTime(dep).Return(int64(20), nil),
	)
	gomock.InOrder(
		f.compilers.EXPECT().New(gomock.Any(), gomock.Any(), gomock.Any()).Return(firstCompiler, nil),
		f.compilers.EXPECT().New(gomock.Any(), gomock.Any(), gomock.Any()).Return(secondCompiler, nil),
	)
	f.scanner.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.ScanResult{Candidates: []string{"flex", "p-4"}}, nil).Times(2)
	firstCompiler.EXPECT().Globs().Return(nil)
	firstCompiler.EXPECT().Build([]string{"flex", "p-4"}).Return(".flex { display: flex; }", nil)
	secondCompiler.EXPECT().Globs().Return(nil)
	secondCompiler.EXPECT().Build([]string{"flex", "p-4"}).Return(".p-4 { padding: 1rem; }", nil)
	f.metrics.EXPECT().ObserveRebuild(domain.RebuildFull, gomock.Any()).Times(2)

	in := domain.StageInput{
		Root:     parse(t, "@tailwind utilities;", input),
		From:     input,
		Messages: []domain.Message{domain.DependencyMessage("import", input, dep)},
	}

	_, err := f.stage.Process(context.Background(), in, stage.Options{})
	require.NoError(t, err)
	res, err := f.stage.Process(context.Background(), in, stage.Options{})
	require.NoError(t, err)

	assert.Equal(t, domain.RebuildFull, res.Decision)
	assert.Same(t, secondCompiler, f.stage.Registry().Get(input).Compiler)
}

func TestProcess_ApplyOnlyBuildsWithoutCandidates(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)
	input := abs(t, "button.css")

	f.stater.EXPECT().ModTime(input).Return(int64(1), nil)
	f.compilers.EXPECT().New(gomock.Any(), gomock.Any(), gomock.Any()).Return(compiler, nil)
	compiler.EXPECT().Globs().Return(nil)
	f.scanner.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.ScanResult{Candidates: []string{"flex", "underline"}}, nil)
	compiler.EXPECT().Build(nil).Return(".btn { font-weight: 700; }", nil)
	f.metrics.EXPECT().ObserveRebuild(domain.RebuildFull, gomock.Any())

	res, err := f.stage.Process(context.Background(), domain.StageInput{
		Root: parse(t, ".btn { @apply font-bold; }", input),
		From: input,
	}, stage.Options{})
	require.NoError(t, err)

	require.Len(t, res.Root.Nodes, 1)
	assert.Equal(t, ".btn", res.Root.Nodes[0].Selector)
}

func TestProcess_OptimizationGating(t *testing.T) {
	raw := ".flex { display: flex; }"

	t.Run("disabled returns raw output", func(t *testing.T) {
		f := newFixture(t)
		ctrl := gomock.NewController(t)
		compiler := mocks.NewMockCompiler(ctrl)
		input := abs(t, "app.css")

		f.stater.EXPECT().ModTime(input).Return(int64(1), nil)
		f.compilers.EXPECT().New(gomock.Any(), gomock.Any(), gomock.Any()).Return(compiler, nil)
		compiler.EXPECT().Globs().Return(nil)
		f.scanner.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&domain.ScanResult{Candidates: []string{"flex"}}, nil)
		compiler.EXPECT().Build(gomock.Any()).Return(raw, nil)
		f.metrics.EXPECT().ObserveRebuild(gomock.Any(), gomock.Any())

		res, err := f.stage.Process(context.Background(), domain.StageInput{
			Root: parse(t, "@tailwind utilities;", input),
			From: input,
		}, stage.Options{})
		require.NoError(t, err)

		assert.Equal(t, raw, f.stage.Registry().Get(input).RawCSS)
		assert.Equal(t, css.NewPrinter().Print(parse(t, raw, input)), css.NewPrinter().Print(res.Root))
	})

	t.Run("enabled runs the optimizer once per raw output", func(t *testing.T) {
		f := newFixture(t)
		ctrl := gomock.NewController(t)
		compiler := mocks.NewMockIncrementalCompiler(ctrl)
		input := abs(t, "app.css")

		f.stater.EXPECT().ModTime(input).Return(int64(1), nil).Times(2)
		f.compilers.EXPECT().New(gomock.Any(), gomock.Any(), gomock.Any()).Return(compiler, nil)
		compiler.EXPECT().Globs().Return(nil).Times(2)
		f.scanner.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&domain.ScanResult{Candidates: []string{"flex"}}, nil).Times(2)
		compiler.EXPECT().Build(gomock.Any()).Return(raw, nil)
		compiler.EXPECT().BuildIncremental(gomock.Any()).Return(raw, nil)
		f.optimizer.EXPECT().
			Optimize(raw, ports.OptimizeOptions{Filename: input, Minify: true}).
			Return(".flex{display:flex}", nil).
			Times(1)
		f.metrics.EXPECT().ObserveRebuild(gomock.Any(), gomock.Any()).Times(2)

		in := domain.StageInput{Root: parse(t, "@tailwind utilities;", input), From: input}
		opts := stage.Options{Optimize: domain.OptimizeOptions{Enabled: true, Minify: true}}

		_, err := f.stage.Process(context.Background(), in, opts)
		require.NoError(t, err)
		res, err := f.stage.Process(context.Background(), in, opts)
		require.NoError(t, err)

		bc := f.stage.Registry().Get(input)
		assert.Equal(t, ".flex{display:flex}", bc.OptimizedCSS)
		require.Len(t, res.Root.Nodes, 1)
		assert.Equal(t, ".flex", res.Root.Nodes[0].Selector)
	})
}

func TestProcess_MissingInputFailsCompilerConstruction(t *testing.T) {
	f := newFixture(t)
	input := abs(t, "gone.css")
	f.stater.EXPECT().ModTime(input).Return(int64(0), domain.ErrFileNotFound)

	_, err := f.stage.Process(context.Background(), domain.StageInput{
		Root: parse(t, "@tailwind utilities;", input),
		From: input,
	}, stage.Options{})
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrMissingInput)
	assert.Contains(t, err.Error(), domain.ErrCompilerConstruction.Error())
}

func TestProcess_CompilerErrorsPropagate(t *testing.T) {
	f := newFixture(t)
	input := abs(t, "app.css")
	boom := errors.New("unknown plugin")

	f.stater.EXPECT().ModTime(input).Return(int64(1), nil)
	f.compilers.EXPECT().New(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := f.stage.Process(context.Background(), domain.StageInput{
		Root: parse(t, "@tailwind utilities;", input),
		From: input,
	}, stage.Options{})

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), domain.ErrCompilerConstruction.Error())
	assert.Nil(t, f.stage.Registry().Get(input).Compiler)
}

func TestProcess_ScannerErrorsPropagate(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)
	input := abs(t, "app.css")
	boom := errors.New("permission denied")

	f.stater.EXPECT().ModTime(input).Return(int64(1), nil)
	f.compilers.EXPECT().New(gomock.Any(), gomock.Any(), gomock.Any()).Return(compiler, nil)
	compiler.EXPECT().Globs().Return(nil)
	f.scanner.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)

	res, err := f.stage.Process(context.Background(), domain.StageInput{
		Root: parse(t, "@tailwind utilities;", input),
		From: input,
	}, stage.Options{Base: "/project"})

	require.ErrorIs(t, err, boom)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), domain.ErrScannerFailed.Error())
	assert.Empty(t, f.stage.Registry().Get(input).RawCSS)
}

func TestProcess_OptimizerErrorsPropagate(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)
	input := abs(t, "app.css")
	boom := errors.New("unexpected token")

	f.stater.EXPECT().ModTime(input).Return(int64(1), nil)
	f.compilers.EXPECT().New(gomock.Any(), gomock.Any(), gomock.Any()).Return(compiler, nil)
	compiler.EXPECT().Globs().Return(nil)
	f.scanner.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.ScanResult{Candidates: []string{"flex"}}, nil)
	compiler.EXPECT().Build([]string{"flex"}).Return(".flex { display: flex; }", nil)
	f.optimizer.EXPECT().Optimize(gomock.Any(), gomock.Any()).Return("", boom)

	res, err := f.stage.Process(context.Background(), domain.StageInput{
		Root: parse(t, "@tailwind utilities;", input),
		From: input,
	}, stage.Options{Base: "/project", Optimize: domain.OptimizeOptions{Enabled: true}})

	require.ErrorIs(t, err, boom)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), domain.ErrOptimizerFailed.Error())

	bc := f.stage.Registry().Get(input)
	assert.Empty(t, bc.RawCSS)
	assert.Empty(t, bc.OptimizedCSS)
}

func TestProcess_EmptyBaseScansWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	f := newFixture(t)
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)
	input := abs(t, "app.css")

	f.stater.EXPECT().ModTime(input).Return(int64(1), nil)
	f.compilers.EXPECT().New(gomock.Any(), gomock.Any(), gomock.Any()).Return(compiler, nil)
	compiler.EXPECT().Globs().Return(nil)
	f.scanner.EXPECT().Scan(gomock.Any(), dir, gomock.Any()).
		Return(&domain.ScanResult{
			Globs:      []domain.SourceEntry{{Base: dir, Pattern: "**/*"}},
			Candidates: []string{"flex"},
		}, nil)
	compiler.EXPECT().Build([]string{"flex"}).Return(".flex { display: flex; }", nil)
	f.metrics.EXPECT().ObserveRebuild(domain.RebuildFull, gomock.Any())

	res, err := f.stage.Process(context.Background(), domain.StageInput{
		Root: parse(t, "@tailwind utilities;", input),
		From: input,
	}, stage.Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Candidates)
	assert.Contains(t, res.Messages, domain.DirDependencyMessage(domain.PluginName, input, dir, "**/*"))
}

func TestProcess_PluginResolution(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)
	input := abs(t, "styles/app.css")
	dir := filepath.Dir(input)

	f.stater.EXPECT().ModTime(input).Return(int64(1), nil)
	f.resolver.EXPECT().Resolve("typography", dir).Return("/node_modules/typography/index.yaml", nil)
	f.compilers.EXPECT().
		New(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, opts ports.CompilerOptions) (ports.Compiler, error) {
			local, err := opts.ResolvePlugin("./plugins/brand.yaml")
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, "plugins/brand.yaml"), local)

			pkg, err := opts.ResolvePlugin("typography")
			require.NoError(t, err)
			assert.Equal(t, "/node_modules/typography/index.yaml", pkg)
			return compiler, nil
		})
	compiler.EXPECT().Globs().Return(nil)
	f.scanner.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.ScanResult{}, nil)
	compiler.EXPECT().Build(gomock.Any()).Return("", nil)
	f.metrics.EXPECT().ObserveRebuild(gomock.Any(), gomock.Any())

	_, err := f.stage.Process(context.Background(), domain.StageInput{
		Root: parse(t, "@tailwind utilities;", input),
		From: input,
	}, stage.Options{})
	require.NoError(t, err)
}

func TestProcess_PipedInputUsesSentinelContext(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)

	f.compilers.EXPECT().
		New(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, opts ports.CompilerOptions) (ports.Compiler, error) {
			assert.Equal(t, "/project", opts.Base)
			return compiler, nil
		})
	compiler.EXPECT().Globs().Return(nil)
	f.scanner.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.ScanResult{}, nil)
	compiler.EXPECT().Build(gomock.Any()).Return("", nil)
	f.metrics.EXPECT().ObserveRebuild(domain.RebuildFull, gomock.Any())

	res, err := f.stage.Process(context.Background(), domain.StageInput{
		Root: parse(t, "@tailwind utilities;", ""),
	}, stage.Options{Base: "/project"})
	require.NoError(t, err)

	assert.Equal(t, domain.RebuildFull, res.Decision)
	assert.NotNil(t, f.stage.Registry().Get("").Compiler)
}

func TestProcess_PipedInputRebuildsFromCurrentText(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	red := mocks.NewMockIncrementalCompiler(ctrl)
	blue := mocks.NewMockIncrementalCompiler(ctrl)

	gomock.InOrder(
		f.compilers.EXPECT().
			New(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, source string, _ ports.CompilerOptions) (ports.Compiler, error) {
				assert.Contains(t, source, "red")
				return red, nil
			}),
		f.compilers.EXPECT().
			New(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, source string, _ ports.CompilerOptions) (ports.Compiler, error) {
				assert.Contains(t, source, "blue")
				return blue, nil
			}),
	)
	f.scanner.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.ScanResult{Candidates: []string{"brand"}}, nil).Times(2)
	red.EXPECT().Globs().Return(nil)
	red.EXPECT().Build([]string{"brand"}).Return(".brand { color: red; }", nil)
	blue.EXPECT().Globs().Return(nil)
	blue.EXPECT().Build([]string{"brand"}).Return(".brand { color: blue; }", nil)
	f.metrics.EXPECT().ObserveRebuild(domain.RebuildFull, gomock.Any()).Times(2)

	opts := stage.Options{Base: "/project"}
	first, err := f.stage.Process(context.Background(), domain.StageInput{
		Root: parse(t, "@utility brand { color: red; }\n@tailwind utilities;", ""),
	}, opts)
	require.NoError(t, err)
	second, err := f.stage.Process(context.Background(), domain.StageInput{
		Root: parse(t, "@utility brand { color: blue; }\n@tailwind utilities;", ""),
	}, opts)
	require.NoError(t, err)

	assert.Equal(t, domain.RebuildFull, first.Decision)
	assert.Equal(t, domain.RebuildFull, second.Decision)
	assert.Contains(t, css.NewPrinter().Print(second.Root), "color: blue")
	assert.Same(t, blue, f.stage.Registry().Get("").Compiler)
}
