package batch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tstranslate/internal/batch"
)

const scenarioA = `
[[types]]
id = 1
kind = ["string"]

[[roots]]
name = "root"
type = 1
`

const scenarioBroken = `not valid toml [[[`

func writeScenario(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestRunTranslatesEveryFile(t *testing.T) {
	dir := t.TempDir()
	a := writeScenario(t, dir, "a.toml", scenarioA)

	events := make(chan batch.Event, 64)
	go func() {
		results, err := batch.Run(context.Background(), []string{a}, batch.Options{
			Progress: batch.ChannelSink{Ch: events},
		})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "string", results[0].Roots[0].Text)
		close(events)
	}()

	var sawDone bool
	for ev := range events {
		if ev.Stage == batch.StageTranslate && ev.Status == batch.StatusDone {
			sawDone = true
		}
	}
	assert.True(t, sawDone)
}

func TestRunReportsLoadErrorsPerFile(t *testing.T) {
	dir := t.TempDir()
	broken := writeScenario(t, dir, "broken.toml", scenarioBroken)

	results, err := batch.Run(context.Background(), []string{broken}, batch.Options{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
}

func TestChannelSinkIsNilSafe(t *testing.T) {
	var s batch.ChannelSink
	assert.NotPanics(t, func() {
		s.OnEvent(batch.Event{})
	})
}
