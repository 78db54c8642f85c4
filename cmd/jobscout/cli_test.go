package main_test

import (
	"bytes"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/jobscout/cmd/jobscout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// Use kong.Exit to prevent os.Exit from being called during tests
	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	// Parse --help (Kong writes help to stdout)
	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()

	expectedCommands := []string{"jobs", "mission"}
	for _, cmd := range expectedCommands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_JobsFlagDefaults(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"jobs"})
	require.NoError(t, err)

	assert.Equal(t, "fake_jobs.csv", cli.Jobs.Out)
	assert.Equal(t, "https://realpython.github.io/fake-jobs/", cli.Jobs.URL)
	assert.False(t, cli.Jobs.Dedupe)
	assert.Zero(t, cli.Jobs.Limit)
}

func TestCLI_MissionRejectsUnknownSchool(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"mission", "spelman"})
	require.Error(t, err)
}
