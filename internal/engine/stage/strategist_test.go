package stage_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/breeze/internal/core/domain"
	"go.trai.ch/breeze/internal/core/ports/mocks"
	"go.trai.ch/breeze/internal/engine/stage"
	"go.uber.org/mock/gomock"
)

func TestStrategist_Assess(t *testing.T) {
	const (
		input = "/project/app.css"
		dep   = "/project/theme.css"
	)

	tests := []struct {
		name     string
		seed     map[string]int64
		mtimes   map[string]int64
		missing  []string
		deps     []string
		want     domain.RebuildDecision
		wantMiss bool
	}{
		{
			name:   "empty ledger is full",
			mtimes: map[string]int64{input: 100},
			want:   domain.RebuildFull,
		},
		{
			name:   "unchanged input is incremental",
			seed:   map[string]int64{input: 100},
			mtimes: map[string]int64{input: 100},
			want:   domain.RebuildIncremental,
		},
		{
			name:   "touched input is full",
			seed:   map[string]int64{input: 100},
			mtimes: map[string]int64{input: 101},
			want:   domain.RebuildFull,
		},
		{
			name:   "new dependency is full",
			seed:   map[string]int64{input: 100},
			mtimes: map[string]int64{input: 100, dep: 5},
			deps:   []string{dep},
			want:   domain.RebuildFull,
		},
		{
			name:   "touched dependency is full",
			seed:   map[string]int64{input: 100, dep: 5},
			mtimes: map[string]int64{input: 100, dep: 6},
			deps:   []string{dep},
			want:   domain.RebuildFull,
		},
		{
			name:    "missing dependency is skipped",
			seed:    map[string]int64{input: 100},
			mtimes:  map[string]int64{input: 100},
			missing: []string{dep},
			deps:    []string{dep},
			want:    domain.RebuildIncremental,
		},
		{
			name:     "missing input is full",
			seed:     map[string]int64{input: 100},
			missing:  []string{input},
			want:     domain.RebuildFull,
			wantMiss: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			stater := mocks.NewMockStater(ctrl)
			for path, mtime := range tt.mtimes {
				stater.EXPECT().ModTime(path).Return(mtime, nil)
			}
			for _, path := range tt.missing {
				stater.EXPECT().ModTime(path).Return(int64(0), domain.ErrFileNotFound)
			}

			ledger := domain.NewLedger()
			for path, mtime := range tt.seed {
				ledger.Observe(path, mtime)
			}

			got := stage.NewStrategist(stater).Assess(ledger, input, tt.deps)
			assert.Equal(t, tt.want, got.Decision)
			assert.Equal(t, tt.wantMiss, got.InputMissing)

			for path, mtime := range tt.mtimes {
				recorded, ok := ledger.Get(path)
				assert.True(t, ok, path)
				assert.Equal(t, mtime, recorded, path)
			}
		})
	}
}

func TestStrategist_RecordsEveryChangeInOnePass(t *testing.T) {
	ctrl := gomock.NewController(t)
	stater := mocks.NewMockStater(ctrl)
	stater.EXPECT().ModTime("/a.css").Return(int64(1), nil).Times(2)
	stater.EXPECT().ModTime("/b.css").Return(int64(2), nil).Times(2)

	ledger := domain.NewLedger()
	s := stage.NewStrategist(stater)

	first := s.Assess(ledger, "/a.css", []string{"/b.css", "/b.css", "/a.css"})
	assert.Equal(t, domain.RebuildFull, first.Decision)
	assert.Equal(t, 2, ledger.Len())

	second := s.Assess(ledger, "/a.css", []string{"/b.css"})
	assert.Equal(t, domain.RebuildIncremental, second.Decision)
}

func TestStrategist_UnreadableInputIsNotReportedMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	stater := mocks.NewMockStater(ctrl)
	stater.EXPECT().ModTime("/a.css").Return(int64(0), errors.New("permission denied"))

	got := stage.NewStrategist(stater).Assess(domain.NewLedger(), "/a.css", nil)
	assert.Equal(t, domain.RebuildFull, got.Decision)
	assert.False(t, got.InputMissing)
}

func TestStrategist_PipedInputIsAlwaysFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	stater := mocks.NewMockStater(ctrl)
	stater.EXPECT().ModTime("/theme.css").Return(int64(3), nil).Times(2)

	ledger := domain.NewLedger()
	s := stage.NewStrategist(stater)

	for range 2 {
		got := s.Assess(ledger, "", []string{"/theme.css"})
		assert.Equal(t, domain.RebuildFull, got.Decision)
		assert.False(t, got.InputMissing)
	}
	_, ok := ledger.Get("")
	assert.False(t, ok)
}
