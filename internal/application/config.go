package application

// SessionConfig defines the declarative specification for a ranking
// session and serves as the YAML entry point for non-interactive setup.
// Use SessionConfig when the item list and output destination should be
// versioned alongside the decision being made instead of typed into the
// shell each time.
type SessionConfig struct {
	// Version specifies the configuration schema version using semantic
	// versioning to ensure compatibility across updates.
	Version string `yaml:"version" validate:"required,semver"`
	// Session contains descriptive information about the ranking
	// session for logs and saved reports.
	Session SessionMeta `yaml:"session" validate:"required"`
	// Items lists the labels to rank. Duplicates are tolerated and
	// de-duplicated on load, matching the interactive "add" command.
	Items []string `yaml:"items" validate:"dive,min=1,max=255"`
	// Output configures where and how the ranked result is persisted.
	Output OutputConfig `yaml:"output"`
}

// SessionMeta provides descriptive information about a ranking session
// to support identification in logs and span attributes.
type SessionMeta struct {
	// Name is the human-readable identifier for this session.
	Name string `yaml:"name" validate:"required,min=1,max=255"`
	// Description explains what decision the ranking supports.
	Description string `yaml:"description" validate:"max=1000"`
	// Tags are categorical labels for organizing saved sessions.
	Tags []string `yaml:"tags" validate:"max=20,dive,min=1,max=50"`
}

// OutputConfig defines the persistence target for rank lines and the
// policy applied when the target already exists.
type OutputConfig struct {
	// Path is the destination file. Empty means results are only shown
	// interactively unless a path is given at save time.
	Path string `yaml:"path" validate:"max=4096"`
	// OnConflict selects the behavior when Path already exists:
	// "prompt" asks the judge (y/N/r protocol), "overwrite" replaces
	// the file, "fail" refuses to write.
	OnConflict string `yaml:"on_conflict" validate:"omitempty,oneof=prompt overwrite fail"`
}

// Conflict policies accepted by OutputConfig.OnConflict.
const (
	// ConflictPrompt asks the judge before overwriting, with an option
	// to redirect to a new filename.
	ConflictPrompt = "prompt"

	// ConflictOverwrite replaces an existing file without asking.
	ConflictOverwrite = "overwrite"

	// ConflictFail refuses to write when the file exists.
	ConflictFail = "fail"
)
