package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableAlignsUnicodeCells(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	table := w.NewTable("Vendor", "Plan")
	table.AddRow("Alpenwatt", "Öko")
	table.AddRow("Nordvind Energi", "Grønn")
	table.AddRow("only-one-cell")
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Vendor          │ Plan", lines[0])
	assert.Equal(t, "Alpenwatt       │ Öko", lines[2])
	assert.Equal(t, "Nordvind Energi │ Grønn", lines[3])
	assert.Equal(t, "only-one-cell   │", lines[4])
}

func TestColorToggle(t *testing.T) {
	var plain, colored bytes.Buffer
	NewWriter(&plain, true).Success("done %d", 3)
	NewWriter(&colored, false).Success("done %d", 3)

	assert.Equal(t, "✓ done 3\n", plain.String())
	assert.Contains(t, colored.String(), Green)
	assert.Contains(t, colored.String(), "done 3")
}

func TestVerbosity(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	w.Debug("hidden")
	w.SetVerbosity(0)
	w.Info("hidden")
	w.SetVerbosity(2)
	w.Debug("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestMessagePrefixes(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)
	w.SetVerbosity(0)

	w.SubHeader("2 plans")
	w.Warning("careful")
	w.Error("failed: %s", "disk")

	// quiet mode still prints warnings and errors
	assert.Equal(t, "▸ 2 plans\n⚠ careful\n✗ failed: disk\n", buf.String())
}
