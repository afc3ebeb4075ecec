package machinedef

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const printerYAML = `
name: printer
states: [ready, printing, finished]
inputs: [operate, take-document]
transitions:
  - {from: ready, on: operate, to: printing}
  - {from: printing, on: operate, to: finished}
  - {from: finished, on: take-document, to: ready}
`

func TestParse(t *testing.T) {
	d, err := Parse([]byte(printerYAML))
	require.NoError(t, err)

	assert.Equal(t, "printer", d.Name)
	assert.Equal(t, []string{"ready", "printing", "finished"}, d.States)
	assert.Equal(t, []string{"operate", "take-document"}, d.Inputs)
	require.Len(t, d.Transitions, 3)
	assert.Equal(t, TransitionDef{From: "ready", On: "operate", To: "printing"}, d.Transitions[0])
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := Parse([]byte("states: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yaml")
}

func TestParseRejectsInvalidDefinition(t *testing.T) {
	_, err := Parse([]byte("name: broken\nstates: [a]\ninputs: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one input")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "printer.yaml")
	original := printerDefinition()
	require.NoError(t, original.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}
