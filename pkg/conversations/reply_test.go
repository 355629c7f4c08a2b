package conversations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubToken struct{ cancels int }

func (s *stubToken) Cancel() { s.cancels++ }

func TestNotNil(t *testing.T) {
	var conv Conversation
	assert.False(t, notNil(conv))
	assert.False(t, notNil[CancellationToken]((*stubToken)(nil)))
	assert.False(t, notNil[[]Message](nil))
	assert.False(t, notNil[map[string]string](nil))
	assert.False(t, notNil[func()](nil))
	assert.True(t, notNil[CancellationToken](&stubToken{}))
	assert.True(t, notNil(0), "non-nillable kinds are always present")
	assert.True(t, notNil(""))
}

func TestCancellerDropsNilTokens(t *testing.T) {
	assert.Nil(t, canceller(nil))
	assert.Nil(t, canceller((*stubToken)(nil)))

	tok := &stubToken{}
	c := canceller(tok)
	if assert.NotNil(t, c) {
		c.Cancel()
	}
	assert.Equal(t, 1, tok.cancels)
}
