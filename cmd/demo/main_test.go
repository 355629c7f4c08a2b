package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xpanvictor/rxconversations/pkg/Logger"
	"github.com/xpanvictor/rxconversations/pkg/bridge"
	"github.com/xpanvictor/rxconversations/pkg/conversations"
	"gopkg.in/yaml.v3"
)

func TestRunWalkthrough(t *testing.T) {
	adapter := conversations.New(bridge.DefaultOptions(), Logger.NewNop())
	defer adapter.Close()
	require.NoError(t, run(context.Background(), adapter, Logger.NewNop()))
}

func TestDumpTrace(t *testing.T) {
	d := bridge.NewDispatcher(bridge.DefaultOptions(), Logger.NewNop())
	d.Invoke("client.tokenExpired", "client")
	d.Invoke("client.conversationAdded", "client", "CH1")

	var buf bytes.Buffer
	require.NoError(t, dumpTrace(&buf, map[string]*bridge.Dispatcher{"client": d}))

	var got map[string][]traceLine
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got["client"], 2)
	assert.Equal(t, "client.tokenExpired", got["client"][0].Event)
	assert.Equal(t, int16(2), got["client"][1].Args)
	assert.Equal(t, uint64(2), got["client"][1].Seq)
	assert.Equal(t, d.ID().String(), got["client"][0].Dispatcher)
}
