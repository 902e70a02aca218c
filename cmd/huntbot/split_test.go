package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/susu3304/huntbot/internal/lootsplit"
	"gopkg.in/yaml.v3"
)

const report = `Session data: From 2025-12-10, 18:01:26 to 2025-12-10, 20:12:40
Session: 02:11h
Loot Type: Leader
Loot: 1,000
Supplies: 400
Balance: 600
Grim Reaper (Leader)
Balance: 900
Sir Tank
Balance: -300
`

func runSplit(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"split"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestSplitCmd_Text(t *testing.T) {
	out, err := runSplit(t, report)
	require.NoError(t, err)

	assert.Contains(t, out, "Loot Type: Leader\n")
	assert.Contains(t, out, "Individual balance: 300\n")
	assert.Contains(t, out, "Grim Reaper:\n  transfer 600 to Sir Tank\n")
}

func TestSplitCmd_JSONFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hunt.txt")
	require.NoError(t, os.WriteFile(path, []byte(report), 0o600))

	out, err := runSplit(t, "", "--output", "json", path)
	require.NoError(t, err)

	var res lootsplit.SplitResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, int64(300), res.IndividualBalance)
	require.Len(t, res.Session.Players, 2)
	assert.Equal(t, []lootsplit.Transfer{{From: "Grim Reaper", To: "Sir Tank", Amount: 600}}, res.Transfers)
}

func TestSplitCmd_YAML(t *testing.T) {
	out, err := runSplit(t, report, "-o", "yaml")
	require.NoError(t, err)

	var res lootsplit.SplitResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, "02:11h", res.Session.Duration)
	assert.Len(t, res.Transfers, 1)
}

func TestSplitCmd_Balanced(t *testing.T) {
	out, err := runSplit(t, "Balance: 200\nA\nBalance: 100\nB\nBalance: 100")
	require.NoError(t, err)
	assert.Contains(t, out, "No transfers needed.")
}

func TestSplitCmd_Errors(t *testing.T) {
	_, err := runSplit(t, "XP Gain: 1,000\nLoot: 10")
	assert.ErrorIs(t, err, errNoPlayers)

	_, err = runSplit(t, report, "-o", "xml")
	assert.EqualError(t, err, `unknown output format "xml"`)
}
