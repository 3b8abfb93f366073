package css_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/breeze/internal/adapters/css"
	"go.trai.ch/breeze/internal/core/domain"
)

const printerFixture = `/* components */
@tailwind utilities;
.btn{color:red;@apply p-4;&:hover{color:blue}}
@media (min-width: 40rem){.card{padding:1rem;margin:0}}
.empty{}`

func TestPrinter_Golden(t *testing.T) {
	sheet, err := css.NewParser().Parse(printerFixture, domain.SourceOptions{})
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "pretty", []byte(css.NewPrinter().Print(sheet)))
	g.Assert(t, "minified", []byte(css.NewMinifyPrinter().Print(sheet)))
}

func TestPrinter_RoundTrip(t *testing.T) {
	parser := css.NewParser()
	printer := css.NewPrinter()

	sheet, err := parser.Parse(printerFixture, domain.SourceOptions{})
	require.NoError(t, err)

	printed := printer.Print(sheet)
	reparsed, err := parser.Parse(printed, domain.SourceOptions{})
	require.NoError(t, err)
	assert.Equal(t, printed, printer.Print(reparsed))

	minified := css.NewMinifyPrinter().Print(sheet)
	fromMinified, err := parser.Parse(minified, domain.SourceOptions{})
	require.NoError(t, err)
	assert.Equal(t, minified, css.NewMinifyPrinter().Print(fromMinified))
}

func TestPrinter_Nil(t *testing.T) {
	assert.Empty(t, css.NewPrinter().Print(nil))
}
