package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/breeze/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	a := domain.NewInternedString("/project/src/app.css")
	b := domain.NewInternedString("/project/src/app.css")
	c := domain.NewInternedString("/project/src/theme.css")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, "/project/src/app.css", a.String())
}

func TestInternedString_MapKey(t *testing.T) {
	seen := map[domain.InternedString]int{}
	for _, p := range []string{"/a.css", "/b.css", "/a.css"} {
		seen[domain.NewInternedString(p)]++
	}

	assert.Len(t, seen, 2)
	assert.Equal(t, 2, seen[domain.NewInternedString("/a.css")])
}
