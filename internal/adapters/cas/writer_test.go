package cas_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/breeze/internal/adapters/cas"
	"go.trai.ch/breeze/internal/adapters/fs"
	"go.trai.ch/breeze/internal/core/domain"
	"go.trai.ch/breeze/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestWriter_SkipsUnchangedOutput(t *testing.T) {
	root := t.TempDir()
	entry := domain.Entry{
		Input:  filepath.Join(root, "src", "app.css"),
		Output: filepath.Join(root, "dist", "app.css"),
	}
	w := cas.NewWriter(cas.NewStore(), fs.NewHasher())

	written, err := w.Write(root, entry, ".flex { display: flex; }\n", domain.RebuildFull)
	require.NoError(t, err)
	assert.True(t, written)

	data, err := os.ReadFile(entry.Output)
	require.NoError(t, err)
	assert.Equal(t, ".flex { display: flex; }\n", string(data))

	written, err = w.Write(root, entry, ".flex { display: flex; }\n", domain.RebuildIncremental)
	require.NoError(t, err)
	assert.False(t, written)

	written, err = w.Write(root, entry, ".p-4 { padding: 1rem; }\n", domain.RebuildIncremental)
	require.NoError(t, err)
	assert.True(t, written)
}

func TestWriter_RewritesWhenFileChangedOnDisk(t *testing.T) {
	root := t.TempDir()
	entry := domain.Entry{Input: "app.css", Output: filepath.Join(root, "out.css")}
	w := cas.NewWriter(cas.NewStore(), fs.NewHasher())

	_, err := w.Write(root, entry, "a {}\n", domain.RebuildFull)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(entry.Output, []byte("edited"), domain.FilePerm))

	written, err := w.Write(root, entry, "a {}\n", domain.RebuildIncremental)
	require.NoError(t, err)
	assert.True(t, written)
}

func TestWriter_StoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockBuildInfoStore(ctrl)
	hasher := mocks.NewMockHasher(ctrl)

	boom := errors.New("boom")
	hasher.EXPECT().HashString("css").Return("h")
	store.EXPECT().Get("/root", "app.css").Return(nil, boom)

	_, err := cas.NewWriter(store, hasher).Write("/root", domain.Entry{Input: "app.css", Output: "/x.css"}, "css", domain.RebuildFull)
	require.ErrorIs(t, err, boom)
}
