package logs

import (
	"bytes"
	"encoding/json"
	"testing"

	"workhours/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSONCarriesServiceAttrs(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "workhours"
	cfg.Env.Env = "develop"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("clocked in")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "clocked in", line["msg"])
	assert.Equal(t, "workhours", line["service"])
	assert.Equal(t, "develop", line["env"])
}

func TestNewWithWriter_RejectsUnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "verbose"

	_, err := NewWithWriter(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}
