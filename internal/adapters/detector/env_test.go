package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/breeze/internal/adapters/detector"
)

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name     string
		detected detector.OutputMode
		flag     string
		want     detector.OutputMode
	}{
		{"auto keeps pretty", detector.ModePretty, "auto", detector.ModePretty},
		{"empty keeps plain", detector.ModePlain, "", detector.ModePlain},
		{"pretty overrides", detector.ModePlain, "pretty", detector.ModePretty},
		{"plain overrides", detector.ModePretty, "plain", detector.ModePlain},
		{"ci alias", detector.ModePretty, "ci", detector.ModePlain},
		{"tui is explicit", detector.ModePretty, "tui", detector.ModeTUI},
		{"unknown falls back", detector.ModePretty, "fancy", detector.ModePretty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.ResolveMode(tt.detected, tt.flag))
		})
	}
}

func TestDetectEnvironment_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, detector.ModePlain, detector.DetectEnvironment())
}
