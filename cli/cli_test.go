package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestLookupCommand(t *testing.T) {
	out, err := run(t, "lookup", "Jojoba", "Oil")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Jojoba Oil", got["matched_ingredient"])
	assert.Equal(t, "0", got["comedogenic_grade"])

	_, err = run(t, "lookup", "nonexistent-oil-xyz")
	assert.Error(t, err)
}

func TestVerdictCommand(t *testing.T) {
	out, err := run(t, "verdict", "pumpkin_seeds")
	require.NoError(t, err)
	assert.Contains(t, out, `"rating": 95`)
	assert.Contains(t, out, "Anti-inflammatory")

	out, err = run(t, "verdict", "lawn_mower")
	assert.Error(t, err)
	assert.Contains(t, out, "Unrecognized food")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}
