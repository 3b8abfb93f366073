package stage_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/breeze/internal/engine/stage"
)

func TestRegistry_GetOrInsert(t *testing.T) {
	r := stage.NewRegistry()

	a := r.Get("/project/app.css")
	assert.NotNil(t, a.Ledger)
	assert.Nil(t, a.Compiler)
	assert.Empty(t, a.RawCSS)

	assert.Same(t, a, r.Get("/project/app.css"))
	assert.NotSame(t, a, r.Get("/project/admin.css"))
	assert.NotSame(t, a, r.Get(""))
	assert.Equal(t, 3, r.Len())
}

func TestRegistry_ConcurrentGet(t *testing.T) {
	r := stage.NewRegistry()

	var wg sync.WaitGroup
	got := make(chan *stage.BuildContext, 16)
	for range 16 {
		wg.Go(func() {
			got <- r.Get("/project/app.css")
		})
	}
	wg.Wait()
	close(got)

	first := <-got
	for bc := range got {
		assert.Same(t, first, bc)
	}
	assert.Equal(t, 1, r.Len())
}
