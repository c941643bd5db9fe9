package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-textpipe/internal/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]log.Level{
		"fatal":   log.FatalLevel,
		"error":   log.ErrorLevel,
		"warn":    log.WarnLevel,
		"WARNING": log.WarnLevel,
		" info ":  log.InfoLevel,
		"debug":   log.DebugLevel,
		"trace":   log.TraceLevel,
	}

	for name, expected := range tcs {
		got, ok := logging.ParseLevel(name)
		assert.True(t, ok, name)
		assert.Equal(t, expected, got, name)
	}

	got, ok := logging.ParseLevel("not-a-level")
	assert.False(t, ok)
	assert.Equal(t, log.InfoLevel, got)
}

// Setup changes the global logger: these tests do not run in parallel.
func TestSetupText(t *testing.T) {
	buf := &bytes.Buffer{}
	logging.Setup("debug", "text", buf)

	log.Debug("visible")
	log.Trace("hidden")

	assert.Contains(t, buf.String(), "level=debug msg=visible")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestSetupJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	logging.Setup("info", "json", buf)

	log.WithField("operation", "lowercase").Info("done")

	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "done", entry["msg"])
	assert.Equal(t, "lowercase", entry["operation"])
}

func TestSetupInvalidLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logging.Setup("loud", "text", buf)

	assert.Equal(t, log.InfoLevel, log.GetLevel())
	assert.Contains(t, buf.String(), "Unknown log level")
}
