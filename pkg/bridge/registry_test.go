package bridge

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestRegistryAttachesOncePerSession(t *testing.T) {
	reg := NewRegistry[*session](DefaultOptions(), nil)
	a, b := &session{"a"}, &session{"b"}

	var installs, detaches atomic.Int32
	install := func(d *Dispatcher) func() {
		installs.Add(1)
		return func() { detaches.Add(1) }
	}

	da := reg.Attach(a, install)
	assert.Same(t, da, reg.Attach(a, install))
	db := reg.Attach(b, install)
	assert.NotSame(t, da, db)
	assert.NotEqual(t, da.ID(), db.ID())
	assert.Equal(t, int32(2), installs.Load())
	assert.Equal(t, 2, reg.Len())

	got, ok := reg.Lookup(a)
	require.True(t, ok)
	assert.Same(t, da, got)

	assert.True(t, reg.Release(a))
	assert.False(t, reg.Release(a))
	assert.True(t, da.Released())
	assert.Equal(t, int32(1), detaches.Load())

	_, ok = reg.Lookup(a)
	assert.False(t, ok)

	fresh := reg.Attach(a, install)
	assert.NotSame(t, da, fresh)
	assert.Equal(t, int32(3), installs.Load())

	reg.ReleaseAll()
	assert.Equal(t, 0, reg.Len())
	assert.Equal(t, int32(3), detaches.Load())
}

func TestRegistryConcurrentAttach(t *testing.T) {
	reg := NewRegistry[*session](DefaultOptions(), nil)
	s := &session{"shared"}

	var installs atomic.Int32
	install := func(d *Dispatcher) func() {
		installs.Add(1)
		return nil
	}

	const n = 32
	got := make([]*Dispatcher, n)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			got[i] = reg.Attach(s, install)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(1), installs.Load())
	for _, d := range got {
		assert.Same(t, got[0], d)
	}
}

func TestRegistryNilInstaller(t *testing.T) {
	reg := NewRegistry[string](Options{}, nil)
	d := reg.Attach("sid", nil)
	require.NotNil(t, d)
	assert.True(t, reg.Release("sid"))
}
