package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.DebugLevel, ParseLevel(" DEBUG "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("nonsense"))
}

func TestContextFieldsAreEmitted(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "storefront", Output: &buf})

	ctx := logg.WithOwnerID(context.Background(), "owner-1")
	logg.Warn(ctx, "cart save failed", errors.New("boom"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "storefront", entry["service"])
	assert.Equal(t, "owner-1", entry["owner_id"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "cart save failed", entry["message"])
}

func TestLevelFiltersOutput(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{Level: zerolog.WarnLevel, Output: &buf})

	logg.Info(context.Background(), "hidden")
	assert.Zero(t, buf.Len())

	Nop().Error(context.Background(), "discarded", nil)
}

func TestContextFieldsFollowReceiverSink(t *testing.T) {
	var callerBuf, storeBuf bytes.Buffer
	caller := New(Options{ServiceName: "cli", Output: &callerBuf})
	store := New(Options{ServiceName: "cart", Output: &storeBuf})

	ctx := caller.WithField(context.Background(), "request", "r-1")
	ctx = store.WithOwnerID(ctx, "owner-1")
	store.Warn(ctx, "cart slot save failed", errors.New("down"))

	assert.Zero(t, callerBuf.Len())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(storeBuf.Bytes(), &entry))
	assert.Equal(t, "cart", entry["service"])
	assert.Equal(t, "r-1", entry["request"])
	assert.Equal(t, "owner-1", entry["owner_id"])
}

func TestWithFieldsDoesNotLeakToParent(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{Output: &buf})

	parent := logg.WithField(context.Background(), "a", 1)
	_ = logg.WithField(parent, "b", 2)
	logg.Info(parent, "parent only")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Contains(t, entry, "a")
	assert.NotContains(t, entry, "b")
}
