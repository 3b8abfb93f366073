package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/breeze/internal/adapters/watcher"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var batches [][]string
		d := watcher.NewDebouncer(50*time.Millisecond, func(paths []string) {
			batches = append(batches, paths)
		})

		d.Add("/project/src/b.html")
		d.Add("/project/src/a.html")
		time.Sleep(30 * time.Millisecond)
		d.Add("/project/src/b.html")

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		require.Len(t, batches, 1)
		assert.Equal(t, []string{"/project/src/a.html", "/project/src/b.html"}, batches[0])
	})
}

func TestDebouncer_SeparateWindows(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls int
		d := watcher.NewDebouncer(50*time.Millisecond, func([]string) {
			calls++
		})

		d.Add("one")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		d.Add("two")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, 2, calls)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	var (
		mu  sync.Mutex
		got []string
	)
	d := watcher.NewDebouncer(time.Hour, func(paths []string) {
		mu.Lock()
		defer mu.Unlock()
		got = paths
	})

	d.Add("app.css")
	d.Flush()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"app.css"}, got)
}

func TestDebouncer_FlushEmpty(t *testing.T) {
	called := false
	d := watcher.NewDebouncer(time.Millisecond, func([]string) { called = true })
	d.Flush()
	assert.False(t, called)
}
