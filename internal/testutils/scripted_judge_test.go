package testutils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/pairwise/internal/ports"
)

func TestScriptedJudge(t *testing.T) {
	judge := NewScriptedJudge("a", "2")
	ctx := context.Background()

	resp, err := judge.Prompt(ctx, "first? ")
	require.NoError(t, err)
	assert.Equal(t, "a", resp)

	resp, err = judge.Prompt(ctx, "second? ")
	require.NoError(t, err)
	assert.Equal(t, "2", resp)
	assert.Zero(t, judge.Remaining())

	// An exhausted script behaves like end of input.
	_, err = judge.Prompt(ctx, "third? ")
	assert.ErrorIs(t, err, ports.ErrInputExhausted)

	judge.Say("Stored: a > b")
	assert.Equal(t, []string{"first? ", "second? ", "third? "}, judge.Prompts)
	assert.Equal(t, []string{"Stored: a > b"}, judge.Said)
}
