package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTracingDisabled(t *testing.T) {
	shutdown, err := InitTracing(TracingConfig{ServiceName: "wayfarer-test", Enabled: false})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestRepositorySpan(t *testing.T) {
	span, ctx := StartRepositorySpan(context.Background(), "posts", "Mutate")
	require.NotNil(t, ctx)

	span.SetError(errors.New("boom"))
	span.SetError(nil)
	span.End()
}

func TestRecordMutation(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordMutation("likes", "add", nil)
		RecordMutation("likes", "add", errors.New("already liked"))
	})
}
