package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"closet/internal/closet"
)

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "closet v"+version+"\n", out.String())
}

func TestRootCommand_MissingConfigFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestRootCommand_Flags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "alt-screen", "log-file", "trace-endpoint"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %q", name)
	}
}

func TestLogChange(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	m := closet.NewManager(closet.WithIDGenerator(closet.NewSequenceIDs(3)))
	m.Subscribe(logChange)
	m.Open()
	m.AddItem(m.NewItem())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "closet: open")
	assert.Contains(t, lines[1], "closet: add item=3 open=true items=1")
	assert.Contains(t, lines[1], closet.StatusAdded)
}
