package application

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// semverPattern matches the major.minor.patch core of a semantic
// version, with optional pre-release and build metadata suffixes.
var semverPattern = regexp.MustCompile(
	`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)

// registerCustomValidators registers session-specific validation
// functions with the validator instance.
// registerCustomValidators returns an error if any registration fails.
func registerCustomValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("semver", validateSemver); err != nil {
		return fmt.Errorf("failed to register semver validator: %w", err)
	}
	return nil
}

// validateSemver reports whether the field holds a semantic version.
func validateSemver(fl validator.FieldLevel) bool {
	return semverPattern.MatchString(fl.Field().String())
}

// validateConfigSemantics performs validation rules that cannot be
// expressed through struct tags: blank labels hiding behind whitespace
// and single-item pairs that could never be elicited.
func validateConfigSemantics(config *SessionConfig) error {
	for i, item := range config.Items {
		if strings.TrimSpace(item) == "" {
			return fmt.Errorf("item %d is blank", i)
		}
	}
	if config.Output.OnConflict != "" && config.Output.Path == "" {
		return fmt.Errorf("output.on_conflict set without output.path")
	}
	return nil
}
