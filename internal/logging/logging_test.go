package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLevels(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Setup(&buf, false)
	slog.Debug("hidden")
	slog.Warn("shown", "file", "nbo.csv")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "file=nbo.csv")

	buf.Reset()
	Setup(&buf, true)
	slog.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), "source=")
}
