package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	SetupOutput(&buf, "debug", "json")
	t.Cleanup(func() { SetupOutput(&bytes.Buffer{}, "info", "text") })

	log.WithField("gig_id", "g1").Debug("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "g1", line["gig_id"])
	assert.Equal(t, log.DebugLevel, log.GetLevel())
}

func TestSetupOutput_UnknownLevelDefaultsToInfo(t *testing.T) {
	SetupOutput(&bytes.Buffer{}, "loud", "text")
	assert.Equal(t, log.InfoLevel, log.GetLevel())
}
