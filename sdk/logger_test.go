package sdk

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerFrom(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	ctx := WithLogger(context.Background(), zap.New(core).Sugar())

	LoggerFrom(ctx).Infof("fee %s", "0.01")

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "fee 0.01", entries[0].Message)
}

func TestLoggerFrom_Fallback(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, LoggerFrom(context.Background()))
}
