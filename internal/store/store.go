// Package store persists the bookmark list as a single JSON document.
//
// The whole file is read once by Load and rewritten in full by Save. There is
// no locking: two processes saving at once race and the last writer wins.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"unicode/utf8"

	"github.com/go-ports/bm/internal/models"
)

// ErrMalformed is returned by Load when the file exists but is not a valid
// store document.
var ErrMalformed = errors.New("malformed bookmark file")

// Store is the ordered, in-memory bookmark list bound to a file path.
type Store struct {
	path      string
	bookmarks []models.Bookmark
}

// New returns an empty Store bound to path. Nothing is read or written.
func New(path string) *Store {
	return &Store{path: path, bookmarks: make([]models.Bookmark, 0)}
}

// Load reads the store at path.
// A file that cannot be read (typically because it does not exist) yields an
// empty Store and no error. A file that is read but is not a well-formed
// document (see decode) returns an error wrapping ErrMalformed.
func Load(path string) (*Store, error) {
	s := New(path)

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Debug("bookmark file not readable, starting empty", "path", path, "err", err)
		return s, nil
	}

	bookmarks, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("store.Load: %s: %w: %w", path, ErrMalformed, err)
	}
	s.bookmarks = bookmarks
	slog.Debug("bookmark file loaded", "path", path, "count", len(s.bookmarks))
	return s, nil
}

// Path returns the file the store is bound to.
func (s *Store) Path() string { return s.path }

// Len returns the number of stored bookmarks.
func (s *Store) Len() int { return len(s.bookmarks) }

// Save creates missing parent directories and overwrites the file with the
// full list as indented JSON. The write is not atomic.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("store.Save: create dir: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(models.Document{Bookmarks: s.bookmarks}); err != nil {
		return fmt.Errorf("store.Save: encode: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("store.Save: write: %w", err)
	}
	slog.Debug("bookmark file saved", "path", s.path, "count", len(s.bookmarks))
	return nil
}

// Add appends b. Names are not required to be unique.
func (s *Store) Add(b models.Bookmark) {
	s.bookmarks = append(s.bookmarks, b)
}

// Find returns the first bookmark named name, in stored order.
func (s *Store) Find(name string) (models.Bookmark, bool) {
	i := s.index(name)
	if i < 0 {
		return models.Bookmark{}, false
	}
	return s.bookmarks[i], true
}

// Remove deletes the first bookmark named name and reports whether one was
// found. Later entries keep their relative order.
func (s *Store) Remove(name string) bool {
	i := s.index(name)
	if i < 0 {
		return false
	}
	s.bookmarks = slices.Delete(s.bookmarks, i, i+1)
	return true
}

// Bookmarks returns a copy of the list in stored order.
func (s *Store) Bookmarks() []models.Bookmark {
	return slices.Clone(s.bookmarks)
}

// Sorted returns a copy of the list ordered by name. Bookmarks sharing a
// name keep their stored order. The stored order is not modified.
func (s *Store) Sorted() []models.Bookmark {
	out := slices.Clone(s.bookmarks)
	slices.SortStableFunc(out, models.Compare)
	return out
}

func (s *Store) index(name string) int {
	return slices.IndexFunc(s.bookmarks, func(b models.Bookmark) bool {
		return b.Name == name
	})
}

// decode parses a store document strictly. Object keys match exactly: the
// top level must be an object with a "bookmarks" array, and every element
// must be an object carrying "name" and "url" strings. Unknown keys are
// ignored. The content must be valid UTF-8.
func decode(data []byte) ([]models.Bookmark, error) {
	if !utf8.Valid(data) {
		return nil, errors.New("invalid UTF-8")
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("document is null")
	}
	raw, ok := doc["bookmarks"]
	if !ok {
		return nil, errors.New(`missing field "bookmarks"`)
	}

	var items []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf(`field "bookmarks": %w`, err)
	}
	if items == nil {
		return nil, errors.New(`field "bookmarks" is null`)
	}

	out := make([]models.Bookmark, 0, len(items))
	for i, item := range items {
		if item == nil {
			return nil, fmt.Errorf("bookmark %d is null", i)
		}
		name, err := stringField(item, "name")
		if err != nil {
			return nil, fmt.Errorf("bookmark %d: %w", i, err)
		}
		url, err := stringField(item, "url")
		if err != nil {
			return nil, fmt.Errorf("bookmark %d: %w", i, err)
		}
		out = append(out, models.Bookmark{Name: name, URL: url})
	}
	return out, nil
}

func stringField(obj map[string]json.RawMessage, key string) (string, error) {
	raw, ok := obj[key]
	if !ok {
		return "", fmt.Errorf("missing field %q", key)
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return "", fmt.Errorf("field %q is null", key)
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", fmt.Errorf("field %q: %w", key, err)
	}
	return v, nil
}
