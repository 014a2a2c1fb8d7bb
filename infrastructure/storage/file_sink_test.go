package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/pairwise/internal/ports"
	"github.com/ahrav/pairwise/internal/testutils"
)

var rankLines = []string{" 1: [67%] a", " 2: [33%] b"}

func TestFileSink_WriteNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	judge := testutils.NewScriptedJudge()

	err := NewFileSink(path, "prompt", judge).Write(context.Background(), rankLines)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, " 1: [67%] a\n 2: [33%] b", string(data),
		"lines are newline-joined with no trailing terminator")
	assert.Empty(t, judge.Prompts, "no confirmation needed for a new file")
	assert.Contains(t, judge.Said, "Wrote: "+path)
}

func TestFileSink_ConflictPrompt(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrite confirmed", func(t *testing.T) {
		path := existingFile(t)
		judge := testutils.NewScriptedJudge("y")

		require.NoError(t, NewFileSink(path, "prompt", judge).Write(ctx, rankLines))

		data, _ := os.ReadFile(path)
		assert.Equal(t, " 1: [67%] a\n 2: [33%] b", string(data))
	})

	t.Run("overwrite declined", func(t *testing.T) {
		path := existingFile(t)
		judge := testutils.NewScriptedJudge("n")

		err := NewFileSink(path, "prompt", judge).Write(ctx, rankLines)
		assert.ErrorIs(t, err, ports.ErrOutputExists)

		data, _ := os.ReadFile(path)
		assert.Equal(t, "old", string(data), "declining must leave the file untouched")
	})

	t.Run("anything but y or r declines", func(t *testing.T) {
		path := existingFile(t)
		judge := testutils.NewScriptedJudge("")

		err := NewFileSink(path, "prompt", judge).Write(ctx, rankLines)
		assert.ErrorIs(t, err, ports.ErrOutputExists)
	})

	t.Run("redirect to a new name", func(t *testing.T) {
		path := existingFile(t)
		other := filepath.Join(filepath.Dir(path), "other.txt")
		judge := testutils.NewScriptedJudge("r", other)

		require.NoError(t, NewFileSink(path, "prompt", judge).Write(ctx, rankLines))

		data, err := os.ReadFile(other)
		require.NoError(t, err)
		assert.Equal(t, " 1: [67%] a\n 2: [33%] b", string(data))
		original, _ := os.ReadFile(path)
		assert.Equal(t, "old", string(original))
	})

	t.Run("redirect with empty name declines", func(t *testing.T) {
		path := existingFile(t)
		judge := testutils.NewScriptedJudge("r", "")

		err := NewFileSink(path, "prompt", judge).Write(ctx, rankLines)
		assert.ErrorIs(t, err, ports.ErrOutputExists)
	})

	t.Run("redirect target conflict re-runs the protocol", func(t *testing.T) {
		path := existingFile(t)
		other := existingFile(t)
		judge := testutils.NewScriptedJudge("r", other, "y")

		require.NoError(t, NewFileSink(path, "prompt", judge).Write(ctx, rankLines))

		data, _ := os.ReadFile(other)
		assert.Equal(t, " 1: [67%] a\n 2: [33%] b", string(data))
	})
}

func TestFileSink_Policies(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrite replaces without asking", func(t *testing.T) {
		path := existingFile(t)
		judge := testutils.NewScriptedJudge()

		require.NoError(t, NewFileSink(path, "overwrite", judge).Write(ctx, rankLines))
		assert.Empty(t, judge.Prompts)

		data, _ := os.ReadFile(path)
		assert.Equal(t, " 1: [67%] a\n 2: [33%] b", string(data))
	})

	t.Run("fail refuses without asking", func(t *testing.T) {
		path := existingFile(t)
		judge := testutils.NewScriptedJudge()

		err := NewFileSink(path, "fail", judge).Write(ctx, rankLines)
		assert.ErrorIs(t, err, ports.ErrOutputExists)
		assert.Empty(t, judge.Prompts)
	})
}

func existingFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))
	return path
}
