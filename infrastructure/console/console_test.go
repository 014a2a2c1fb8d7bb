package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/pairwise/internal/ports"
)

func TestConsole_Prompt(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("  a \nB\n"), &out)
	ctx := context.Background()

	resp, err := c.Prompt(ctx, "Which is best? ")
	require.NoError(t, err)
	assert.Equal(t, "a", resp, "responses are whitespace-trimmed")
	assert.Contains(t, out.String(), "Which is best? ")

	resp, err = c.Prompt(ctx, "> ")
	require.NoError(t, err)
	assert.Equal(t, "B", resp)
}

func TestConsole_Prompt_Exhaustion(t *testing.T) {
	c := New(strings.NewReader(""), &bytes.Buffer{})

	_, err := c.Prompt(context.Background(), "> ")
	assert.ErrorIs(t, err, ports.ErrInputExhausted)
}

// TestConsole_Prompt_FinalUnterminatedLine checks that a last line
// without a trailing newline still counts as a response; only the read
// after it reports exhaustion.
func TestConsole_Prompt_FinalUnterminatedLine(t *testing.T) {
	c := New(strings.NewReader("a"), &bytes.Buffer{})
	ctx := context.Background()

	resp, err := c.Prompt(ctx, "> ")
	require.NoError(t, err)
	assert.Equal(t, "a", resp)

	_, err = c.Prompt(ctx, "> ")
	assert.ErrorIs(t, err, ports.ErrInputExhausted)
}

func TestConsole_Prompt_Cancelled(t *testing.T) {
	c := New(strings.NewReader("a\n"), &bytes.Buffer{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Prompt(ctx, "> ")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConsole_Say(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	c.Say("Stored: a > b")
	assert.Equal(t, "Stored: a > b\n", out.String())
}
