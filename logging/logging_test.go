package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLoggerRouting(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewLogger(&out, &errOut, "viewer v1", false)

	l.Infof("loaded %s", "cubo2.glb")
	l.Warnf("retry %d", 2)
	l.Debugf("hidden")

	assert.Contains(t, out.String(), "[viewer v1] INFO: loaded cubo2.glb")
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, errOut.String(), "[viewer v1] WARN: retry 2")

	l.SetDebug(true)
	l.Debugf("shown")
	assert.Contains(t, out.String(), "DEBUG: shown")
}

func TestWithKeepsWritersAndDebug(t *testing.T) {
	var out, errOut bytes.Buffer
	base := NewLogger(&out, &errOut, "app", true)
	child := base.With("coordinator")

	child.Debugf("tab %s", "panel-v2")
	child.Errorf("boom")

	assert.True(t, child.DebugEnabled())
	assert.Contains(t, out.String(), "[coordinator] DEBUG: tab panel-v2")
	assert.Contains(t, errOut.String(), "[coordinator] ERROR: boom")
}

func TestOrNop(t *testing.T) {
	l := OrNop(nil)
	assert.NotNil(t, l)
	assert.False(t, l.DebugEnabled())
}
