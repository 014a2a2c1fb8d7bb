package application

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/pairwise/internal/domain"
)

const validSessionYAML = `
version: "1.0.0"
session:
  name: desk-setup
  description: Choosing the next keyboard
  tags:
    - hardware
items:
  - keyboard-a
  - keyboard-b
  - keyboard-c
output:
  path: results.txt
  on_conflict: prompt
`

func newLoader(t *testing.T) *SessionLoader {
	t.Helper()
	loader, err := NewSessionLoader()
	require.NoError(t, err)
	return loader
}

func TestSessionLoader_LoadFromReader(t *testing.T) {
	loader := newLoader(t)

	cfg, err := loader.LoadFromReader(strings.NewReader(validSessionYAML))
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, "desk-setup", cfg.Session.Name)
	assert.Len(t, cfg.Items, 3)
	assert.Equal(t, "results.txt", cfg.Output.Path)
	assert.Equal(t, ConflictPrompt, cfg.Output.OnConflict)
}

func TestSessionLoader_LoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validSessionYAML), 0o644))

	cfg, err := newLoader(t).LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "desk-setup", cfg.Session.Name)
}

func TestSessionLoader_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "missing version",
			yaml: `
session:
  name: x
items: [a, b]
`,
			wantErr: "struct validation failed",
		},
		{
			name: "invalid semver",
			yaml: `
version: "one"
session:
  name: x
items: [a, b]
`,
			wantErr: "struct validation failed",
		},
		{
			name: "unknown field rejected by strict decoding",
			yaml: `
version: "1.0.0"
session:
  name: x
itmes: [a, b]
`,
			wantErr: "YAML decode failed",
		},
		{
			name: "blank item caught semantically",
			yaml: `
version: "1.0.0"
session:
  name: x
items: ["a", "  "]
`,
			wantErr: "semantic validation failed",
		},
		{
			name: "conflict policy without a path",
			yaml: `
version: "1.0.0"
session:
  name: x
items: [a, b]
output:
  on_conflict: overwrite
`,
			wantErr: "semantic validation failed",
		},
		{
			name: "unknown conflict policy",
			yaml: `
version: "1.0.0"
session:
  name: x
items: [a, b]
output:
  path: out.txt
  on_conflict: maybe
`,
			wantErr: "struct validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newLoader(t).LoadFromReader(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// TestSessionLoader_Cache verifies that formatting differences do not
// defeat the normalized-hash cache: two loads of the same logical
// config return the same instance.
func TestSessionLoader_Cache(t *testing.T) {
	loader := newLoader(t)

	first, err := loader.LoadFromReader(strings.NewReader(validSessionYAML))
	require.NoError(t, err)

	// Comments and trailing whitespace change the bytes but not the
	// parsed config, so the normalized hash must match.
	reformatted := validSessionYAML + "\n# reviewed 2024-05\n"
	second, err := loader.LoadFromReader(strings.NewReader(reformatted))
	require.NoError(t, err)

	assert.Same(t, first, second, "identical configs should share a cache entry")
}

func TestSessionConfig_ItemSet(t *testing.T) {
	cfg := &SessionConfig{
		Items: []string{"a", "b", " a ", "b"},
	}

	set, err := cfg.ItemSet()
	require.NoError(t, err)
	assert.Equal(t, []domain.Item{"a", "b"}, set.Items(),
		"labels are trimmed and de-duplicated")
}
