package logger_test

import (
	"context"
	"testing"

	"siteguard/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetFallsBackToDefault(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	got := logger.Get(context.Background())
	require.NotNil(t, got)
}

func TestWithLoggerRoundTrip(t *testing.T) {
	core, _ := observer.New(zap.DebugLevel)
	l := zap.New(core)

	ctx := logger.WithLogger(context.Background(), l)
	require.Same(t, l, logger.Get(ctx))
}

func TestWithFieldsStampsEveryEntry(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("requestId", "r-1"))
	logger.Info(ctx, "first")
	logger.Warn(ctx, "second", zap.String("extra", "x"))

	entries := logs.All()
	require.Len(t, entries, 2)
	for _, e := range entries {
		fields := e.ContextMap()
		require.Equal(t, "r-1", fields["requestId"])
	}
	require.Equal(t, "x", entries[1].ContextMap()["extra"])
}

func TestLevelHelpers(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "d")
	logger.Info(ctx, "i")
	logger.Warn(ctx, "w")
	logger.Error(ctx, "e")

	require.Len(t, logs.All(), 4)
	require.Equal(t, zap.DebugLevel, logs.All()[0].Level)
	require.Equal(t, zap.ErrorLevel, logs.All()[3].Level)
}
