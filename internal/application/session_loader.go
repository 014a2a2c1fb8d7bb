package application

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"

	"github.com/ahrav/pairwise/internal/domain"
)

// SessionLoader provides YAML parsing, validation, and caching for
// session configurations, transforming declarative session files into
// working item sets.
// Use SessionLoader to load sessions from files or readers while
// benefiting from SHA256-based caching and strict schema validation.
type SessionLoader struct {
	// validator performs struct field validation and custom validation
	// rules for session configurations.
	validator *validator.Validate
	// cache stores validated configs indexed by SHA256 hash of the
	// normalized source so repeated loads of the same file are free.
	cache map[string]*SessionConfig
	// cacheMu guards the cache map.
	cacheMu sync.RWMutex
	// sf collapses concurrent loads of the same configuration.
	sf singleflight.Group
}

// NewSessionLoader creates a session loader with custom validators
// registered and an empty cache.
// NewSessionLoader returns an error if validator registration fails.
func NewSessionLoader() (*SessionLoader, error) {
	v := validator.New()
	if err := registerCustomValidators(v); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}
	return &SessionLoader{
		validator: v,
		cache:     make(map[string]*SessionConfig),
	}, nil
}

// load parses, hashes, validates, and caches a session configuration.
// The hash is computed over the normalized re-encoding of the config so
// whitespace and key ordering differences do not defeat the cache.
func (sl *SessionLoader) load(data []byte) (*SessionConfig, error) {
	config, err := sl.parseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	hash, err := sl.calculateConfigHash(config)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate hash: %w", err)
	}

	v, err, _ := sl.sf.Do(hash, func() (any, error) {
		if cached, ok := sl.getCached(hash); ok {
			return cached, nil
		}

		if err := sl.validateConfig(config); err != nil {
			return nil, fmt.Errorf("validation failed: %w", err)
		}

		sl.putCached(hash, config)
		return config, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*SessionConfig), nil
}

// LoadFromFile loads and validates a session configuration from a YAML
// file, utilizing SHA256-based caching to skip revalidation of
// identical files.
func (sl *SessionLoader) LoadFromFile(path string) (*SessionConfig, error) {
	cleanPath := filepath.Clean(path)

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return sl.load(data)
}

// LoadFromReader loads and validates a session configuration from any
// io.Reader, applying the same caching and validation as LoadFromFile.
func (sl *SessionLoader) LoadFromReader(r io.Reader) (*SessionConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read data: %w", err)
	}

	return sl.load(data)
}

// parseYAML unmarshals YAML data into a SessionConfig using strict
// decoding, so configuration typos surface as errors instead of being
// silently ignored.
func (sl *SessionLoader) parseYAML(data []byte) (*SessionConfig, error) {
	var config SessionConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("YAML decode failed: %w", err)
	}
	return &config, nil
}

// validateConfig performs struct-tag validation followed by semantic
// validation of relationships the tags cannot express.
func (sl *SessionLoader) validateConfig(config *SessionConfig) error {
	if err := sl.validator.Struct(config); err != nil {
		return fmt.Errorf("struct validation failed: %w", err)
	}
	if err := validateConfigSemantics(config); err != nil {
		return fmt.Errorf("semantic validation failed: %w", err)
	}
	return nil
}

// calculateConfigHash computes the SHA256 hash of the normalized
// re-encoded configuration, so semantically identical files share a
// cache entry regardless of formatting.
func (sl *SessionLoader) calculateConfigHash(config *SessionConfig) (string, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(config); err != nil {
		return "", fmt.Errorf("failed to encode config for hashing: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize config encoding: %w", err)
	}

	sum := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:]), nil
}

// getCached retrieves a validated config from the cache.
func (sl *SessionLoader) getCached(hash string) (*SessionConfig, bool) {
	sl.cacheMu.RLock()
	defer sl.cacheMu.RUnlock()
	config, ok := sl.cache[hash]
	return config, ok
}

// putCached stores a validated config in the cache.
func (sl *SessionLoader) putCached(hash string, config *SessionConfig) {
	sl.cacheMu.Lock()
	defer sl.cacheMu.Unlock()
	sl.cache[hash] = config
}

// ItemSet materializes the configured labels into a working item set,
// trimming whitespace and dropping duplicates the way the interactive
// "add" command does.
func (c *SessionConfig) ItemSet() (*domain.ItemSet, error) {
	set := domain.NewItemSet()
	for _, label := range c.Items {
		if _, err := set.Add(domain.Item(strings.TrimSpace(label))); err != nil {
			return nil, fmt.Errorf("item %q: %w", label, err)
		}
	}
	return set, nil
}
