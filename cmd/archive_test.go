package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GerardoDiaz22/gmail-drive-pipe/internal/archive"
)

func TestPromptKeywords(t *testing.T) {
	var out bytes.Buffer

	got, err := promptKeywords(strings.NewReader("factura recibo\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "factura recibo", got)
	assert.Contains(t, out.String(), "Enter keywords to search for emails")
}

func TestPromptKeywordsTrimsWhitespace(t *testing.T) {
	got, err := promptKeywords(strings.NewReader("  factura  \n"), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "factura", got)
}

func TestPromptKeywordsEmptyInput(t *testing.T) {
	_, err := promptKeywords(strings.NewReader(""), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestPrintSummary(t *testing.T) {
	var out bytes.Buffer

	printSummary(&out, &archive.Summary{
		Messages:        3,
		Uploaded:        2,
		Skipped:         1,
		SkippedMessages: 1,
		Failures: []archive.Failure{
			{MessageID: "msg-1", Filename: "(Jane Doe) (14:30:00) (invoice.pdf)", Err: assert.AnError},
			{MessageID: "msg-2", Err: assert.AnError},
		},
	})

	s := out.String()
	assert.Contains(t, s, "3 messages, 2 uploaded, 1 already archived")
	assert.Contains(t, s, "Skipped 1 messages without a usable timestamp")
	assert.Contains(t, s, "msg-1")
	assert.Contains(t, s, "(invoice.pdf)")
	assert.Contains(t, s, "msg-2")
}

func TestArchiveCmdRequiresToken(t *testing.T) {
	cmd := newArchiveCmd()
	cmd.SetIn(strings.NewReader("factura\n"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	// A token for this account name cannot exist, so the command fails
	// before touching the network.
	require.NoError(t, cmd.Flags().Set("account", "no-such-account-for-tests"))

	err := cmd.RunE(cmd, []string{"factura"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gmail-drive-pipe auth")
}
