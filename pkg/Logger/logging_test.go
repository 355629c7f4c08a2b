package Logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLogger(t *testing.T) {
	for _, debug := range []bool{true, false} {
		l := New(debug)
		require.NotNil(t, l)
		require.NotNil(t, l.SugaredLogger)
		l.Debugw("level check", "debug", debug)
	}
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil).SugaredLogger)
	assert.NotNil(t, OrNop(&Logger{}).SugaredLogger)

	l := NewNop()
	assert.Same(t, l, OrNop(l))
}

func TestNamedAndWithKeepWrapper(t *testing.T) {
	l := NewNop().Named("bridge").With("session", "s1")
	require.NotNil(t, l.SugaredLogger)
	l.Infow("attached")
}
