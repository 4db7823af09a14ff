package reports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webstore_reports/pkg/logger"
)

// nopLogger satisfies logger.Logger without output.
type nopLogger struct{}

func (nopLogger) Debug(string, ...logger.Field) {}
func (nopLogger) Info(string, ...logger.Field)  {}
func (nopLogger) Warn(string, ...logger.Field)  {}
func (nopLogger) Error(string, ...logger.Field) {}
func (nopLogger) Fatal(string, ...logger.Field) {}

func (n nopLogger) WithContext(context.Context) logger.Logger { return n }
func (n nopLogger) WithFields(...logger.Field) logger.Logger  { return n }

func (nopLogger) Sync() error { return nil }

func TestRunner_RunAll(t *testing.T) {
	svc := newTestService(t)
	runner := NewRunner(svc, nopLogger{}, 4)

	results := runner.RunAll(context.Background(), testNow)

	require.Len(t, results, 10)

	names := make([]string, 0, len(results))
	for _, res := range results {
		assert.NoError(t, res.Err, "report %s", res.Name)
		assert.NotEmpty(t, res.RunID)
		names = append(names, res.Name)
	}
	// Results come back in presentation order, not completion order.
	assert.Equal(t, AllReportNames(), names)

	// All results of one run share the run id.
	for _, res := range results[1:] {
		assert.Equal(t, results[0].RunID, res.RunID)
	}
}

func TestRunner_RunAll_SingleWorkerMatchesParallel(t *testing.T) {
	svc := newTestService(t)

	serial := NewRunner(svc, nopLogger{}, 1).RunAll(context.Background(), testNow)
	parallel := NewRunner(svc, nopLogger{}, 8).RunAll(context.Background(), testNow)

	require.Len(t, serial, len(parallel))
	for i := range serial {
		assert.Equal(t, serial[i].Name, parallel[i].Name)
		assert.Equal(t, serial[i].Rows, parallel[i].Rows)
	}
}

func TestRunner_RunAll_CancelledContext(t *testing.T) {
	svc := newTestService(t)
	runner := NewRunner(svc, nopLogger{}, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := runner.RunAll(ctx, testNow)

	require.Len(t, results, 10)
	for _, res := range results {
		assert.ErrorIs(t, res.Err, context.Canceled)
		assert.Nil(t, res.Rows)
	}
}
