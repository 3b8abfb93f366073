package compiler_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/breeze/internal/adapters/compiler"
	"go.trai.ch/breeze/internal/adapters/css"
	"go.trai.ch/breeze/internal/core/domain"
	"go.trai.ch/breeze/internal/core/ports"
)

func newFactory() *compiler.Factory {
	return compiler.NewFactory(css.NewParser(), css.NewPrinter())
}

func mustCompile(t *testing.T, source string, opts ports.CompilerOptions) ports.IncrementalCompiler {
	t.Helper()
	c, err := newFactory().New(context.Background(), source, opts)
	require.NoError(t, err)
	incremental, ok := c.(ports.IncrementalCompiler)
	require.True(t, ok)
	return incremental
}

func TestCompiler_Golden(t *testing.T) {
	c := mustCompile(t, "@tailwind utilities;", ports.CompilerOptions{})

	out, err := c.Build([]string{"hover:bg-blue-500", "p-4", "md:p-2", "flex", "not-a-utility", "flex"})
	require.NoError(t, err)

	goldie.New(t).Assert(t, "utilities", []byte(out))
}

func TestCompiler_FullBuild(t *testing.T) {
	c := mustCompile(t, "@tailwind utilities;", ports.CompilerOptions{})

	out, err := c.Build([]string{"flex", "p-4"})
	require.NoError(t, err)
	assert.Equal(t, ".flex {\n  display: flex;\n}\n\n.p-4 {\n  padding: 1rem;\n}\n", out)
}

func TestCompiler_IncrementalWithoutNewCandidates(t *testing.T) {
	c := mustCompile(t, "@tailwind utilities;", ports.CompilerOptions{})

	first, err := c.Build([]string{"flex", "p-4"})
	require.NoError(t, err)

	second, err := c.BuildIncremental([]string{"p-4", "flex", "unknown"})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCompiler_IncrementalAppends(t *testing.T) {
	c := mustCompile(t, "@tailwind utilities;", ports.CompilerOptions{})

	_, err := c.Build([]string{"p-4"})
	require.NoError(t, err)

	out, err := c.BuildIncremental([]string{"flex", "p-4"})
	require.NoError(t, err)
	assert.Equal(t, ".p-4 {\n  padding: 1rem;\n}\n\n.flex {\n  display: flex;\n}\n", out)
}

func TestCompiler_ApplyOnly(t *testing.T) {
	c := mustCompile(t, ".btn { @apply p-4 font-bold hover:underline md:flex; }", ports.CompilerOptions{})

	out, err := c.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, `.btn {
  padding: 1rem;
  font-weight: 700;
  &:hover {
    text-decoration-line: underline;
  }
  @media (min-width: 48rem) {
    display: flex;
  }
}
`, out)
}

func TestCompiler_ApplyUnknownUtility(t *testing.T) {
	_, err := newFactory().New(context.Background(), ".btn { @apply nope; }", ports.CompilerOptions{})
	require.ErrorIs(t, err, domain.ErrUnknownUtility)
}

func TestCompiler_CustomUtility(t *testing.T) {
	c := mustCompile(t, `@utility content-auto { content-visibility: auto; }
.card { @apply content-auto; }
@tailwind utilities;`, ports.CompilerOptions{})

	out, err := c.Build([]string{"content-auto!"})
	require.NoError(t, err)
	assert.Equal(t, `.card {
  content-visibility: auto;
}

.content-auto\! {
  content-visibility: auto !important;
}
`, out)
}

func TestCompiler_SourceGlobs(t *testing.T) {
	c := mustCompile(t, `@source "../templates/**/*.html";
@source './app';
@tailwind base;
@tailwind utilities;`, ports.CompilerOptions{})

	assert.Equal(t, []string{"../templates/**/*.html", "./app"}, c.Globs())

	out, err := c.Build(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCompiler_Plugin(t *testing.T) {
	dir := t.TempDir()
	plugin := filepath.Join(dir, "buttons.yaml")
	require.NoError(t, os.WriteFile(plugin, []byte(`utilities:
  btn-primary:
    background-color: "#1d4ed8"
    color: white
`), domain.FilePerm))

	var requested string
	c := mustCompile(t, `@plugin "./buttons.yaml";
@tailwind utilities;`, ports.CompilerOptions{
		ResolvePlugin: func(specifier string) (string, error) {
			requested = specifier
			return plugin, nil
		},
	})
	assert.Equal(t, "./buttons.yaml", requested)

	out, err := c.Build([]string{"btn-primary"})
	require.NoError(t, err)
	assert.Equal(t, ".btn-primary {\n  background-color: #1d4ed8;\n  color: white;\n}\n", out)
}

func TestCompiler_PluginErrors(t *testing.T) {
	source := `@plugin "missing";`

	_, err := newFactory().New(context.Background(), source, ports.CompilerOptions{})
	require.ErrorIs(t, err, domain.ErrPluginNotFound)

	_, err = newFactory().New(context.Background(), source, ports.CompilerOptions{
		ResolvePlugin: func(string) (string, error) {
			return "", domain.ErrPluginNotFound
		},
	})
	require.ErrorIs(t, err, domain.ErrPluginNotFound)

	broken := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("utilities: [1, 2]\n"), domain.FilePerm))
	_, err = newFactory().New(context.Background(), source, ports.CompilerOptions{
		ResolvePlugin: func(string) (string, error) {
			return broken, nil
		},
	})
	require.ErrorIs(t, err, domain.ErrPluginLoadFailed)
}

func TestCompiler_ParseError(t *testing.T) {
	_, err := newFactory().New(context.Background(), ".a { color: red;", ports.CompilerOptions{})
	require.ErrorIs(t, err, domain.ErrStylesheetParse)
}

func TestCompiler_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newFactory().New(ctx, "@tailwind utilities;", ports.CompilerOptions{})
	require.ErrorIs(t, err, context.Canceled)
}
