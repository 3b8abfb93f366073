package app

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/breeze/internal/core/domain"
)

// Affects reports whether a change to path invalidates a build that emitted messages.
func Affects(messages []domain.Message, path string) bool {
	for _, m := range messages {
		switch m.Type {
		case domain.MessageDependency:
			if m.File == path {
				return true
			}
		case domain.MessageDirDependency:
			rel, err := filepath.Rel(m.Dir, path)
			if err != nil || isOutside(rel) {
				continue
			}
			if ok, _ := doublestar.Match(m.Glob, filepath.ToSlash(rel)); ok {
				return true
			}
		}
	}
	return false
}

func isOutside(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
