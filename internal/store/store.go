package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/scriptsync/scriptsync/internal/notify"
)

// DefaultIndent is the number of spaces used when none is configured.
const DefaultIndent = 4

// Store reads and writes JSON documents on disk.
type Store struct {
	indent   int
	reporter notify.Reporter
	now      func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithIndent sets the number of spaces used to indent written JSON.
func WithIndent(spaces int) Option {
	return func(s *Store) {
		if spaces >= 0 {
			s.indent = spaces
		}
	}
}

// WithReporter sets where recovery messages go.
func WithReporter(r notify.Reporter) Option {
	return func(s *Store) {
		s.reporter = r
	}
}

// WithClock overrides the clock used to name backup files (useful for testing).
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a Store with the given options.
func New(opts ...Option) *Store {
	s := &Store{
		indent:   DefaultIndent,
		reporter: notify.Discard(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BackupPath returns where a corrupt file at path is copied at time t.
func BackupPath(path string, t time.Time) string {
	return fmt.Sprintf("%s-%d.bak", path, t.UnixMilli())
}

// Read loads the document at path, filling in anything missing from
// defaults. The returned document never aliases defaults.
//
// A missing file (and any missing parent directory) is created holding
// defaults. Empty content yields defaults. Content that is not a JSON object
// is reported, copied to BackupPath and replaced with defaults; that case
// never returns an error. Only failures to create or read the file do.
func (s *Store) Read(path string, defaults Document) (Document, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if dir := filepath.Dir(path); dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("creating config directory %s: %w", dir, err)
			}
		}
		if err := s.Write(path, defaults); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat config file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) == 0 {
		return defaults.Clone(), nil
	}

	parsed, err := decodeObject(data)
	if err != nil {
		s.resetCorrupt(path, data, defaults, err)
		return defaults.Clone(), nil
	}

	return Merge(defaults.Clone(), parsed), nil
}

// ErrCorrupt is returned by Peek when the file is not a JSON object.
var ErrCorrupt = errors.New("corrupt config file")

// Peek is the read-only form of Read: a missing or empty file yields
// defaults, and unparsable content is returned as ErrCorrupt without being
// backed up, reported or rewritten.
func Peek(path string, defaults Document) (Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && len(data) == 0) {
		return defaults.Clone(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	parsed, err := decodeObject(data)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrCorrupt, path, err)
	}
	return Merge(defaults.Clone(), parsed), nil
}

func decodeObject(data []byte) (map[string]any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top-level value is %s, not an object", jsonKind(v))
	}
	return m, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "an array"
	case string:
		return "a string"
	case float64:
		return "a number"
	case bool:
		return "a boolean"
	}
	return fmt.Sprintf("%T", v)
}

// resetCorrupt backs up the unparsable bytes and resets path to defaults.
func (s *Store) resetCorrupt(path string, data []byte, defaults Document, cause error) {
	s.reporter.Error(fmt.Sprintf("Failed to parse config file: %v", cause))

	backup := BackupPath(path, s.now())
	s.reporter.Error(fmt.Sprintf("Using default config and backing up the old one to %s", backup))

	if err := os.WriteFile(backup, data, 0644); err != nil {
		s.reporter.Error(fmt.Sprintf("Failed to write config backup: %v", err))
	}
	if err := s.Write(path, defaults); err != nil {
		s.reporter.Error(fmt.Sprintf("Failed to reset config file: %v", err))
	}
}

// Write serializes doc with the store's indentation and replaces the file.
func (s *Store) Write(path string, doc Document) error {
	return Write(path, doc, s.indent)
}

// Write serializes doc as JSON indented by indentSpaces and overwrites path.
func Write(path string, doc Document, indentSpaces int) error {
	data, err := Marshal(doc, indentSpaces)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Marshal encodes doc as indented JSON without HTML escaping.
func Marshal(doc Document, indentSpaces int) ([]byte, error) {
	if doc == nil {
		doc = Document{}
	}
	if indentSpaces < 0 {
		indentSpaces = 0
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", indentSpaces))
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
