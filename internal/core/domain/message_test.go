package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/breeze/internal/core/domain"
)

func TestDependencyFiles(t *testing.T) {
	messages := []domain.Message{
		domain.DependencyMessage("postcss-import", "/p/app.css", "/p/base.css"),
		domain.DirDependencyMessage("breeze", "/p/app.css", "/p/src", "**/*.html"),
		domain.DependencyMessage("postcss-import", "/p/app.css", "/p/theme.css"),
		domain.DependencyMessage("breeze", "/p/app.css", "/p/base.css"),
	}

	assert.Equal(t, []string{"/p/base.css", "/p/theme.css"}, domain.DependencyFiles(messages))
}

func TestDependencyFiles_Empty(t *testing.T) {
	assert.Empty(t, domain.DependencyFiles(nil))
}
