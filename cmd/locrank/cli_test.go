package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/locrank"
	main "github.com/fwojciec/locrank/cmd/locrank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var commands = []string{"scan", "runs", "show", "delete"}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	for _, cmd := range commands {
		assert.Contains(t, stdout.String(), cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_ParsesScanFlags(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{
		"scan", "https://example.com",
		"--tag", "input", "-t", "textarea",
		"--timeout", "3s",
		"--retries", "2",
		"--chrome-tls",
		"--save",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://example.com", cli.Scan.URL)
	assert.Equal(t, []string{"input", "textarea"}, cli.Scan.Tags)
	assert.Equal(t, "3s", cli.Scan.Timeout.String())
	assert.Equal(t, 2, cli.Scan.Retries)
	assert.True(t, cli.Scan.ChromeTLS)
	assert.True(t, cli.Scan.Save)
}

func TestCLI_TagKeepsSelectorGroups(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"scan", "--tag", "a, button", "--tag", "a[title='x,y']"})

	require.NoError(t, err)
	assert.Equal(t, []string{"a, button", "a[title='x,y']"}, cli.Scan.Tags)
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	for _, cmd := range commands {
		assert.Contains(t, stdout.String(), cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run_SubcommandHelpDoesNotRun(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"scan", "--help"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "--chrome-tls")
	assert.NotContains(t, stdout.String(), "--- Locators")
}

func TestMain_Run_NoArgsShowsHelpAndFails(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), nil, stdout, stderr)

	require.Error(t, err)
	assert.Equal(t, locrank.EINVALID, locrank.ErrorCode(err))
	assert.Contains(t, stdout.String(), "scan")
	assert.Contains(t, stderr.String(), "no command specified")
}

func TestMain_Run_UnknownCommand(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"crawl"}, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, stderr.String(), "error:")
}
