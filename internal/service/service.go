// Package service implements the bookmark operations on top of the store and
// the URL opener. Both the CLI commands and the MCP server go through it.
package service

import (
	"fmt"
	"sync"

	"github.com/go-ports/bm/internal/config"
	"github.com/go-ports/bm/internal/models"
	"github.com/go-ports/bm/internal/opener"
	"github.com/go-ports/bm/internal/store"
)

// Service owns one loaded store and the opener used by Open.
type Service struct {
	StorePath string

	store  *store.Store
	opener opener.Opener
	mu     sync.Mutex
}

// New loads the store at storePath and returns a Service around it.
// If storePath is empty it is resolved via config.DefaultStorePath.
// A nil opener defaults to the system URL handler.
func New(storePath string, o opener.Opener) (*Service, error) {
	if storePath == "" {
		p, err := config.DefaultStorePath()
		if err != nil {
			return nil, fmt.Errorf("service.New: %w", err)
		}
		storePath = p
	}
	if o == nil {
		o = opener.System{}
	}

	st, err := store.Load(storePath)
	if err != nil {
		return nil, fmt.Errorf("service.New: %w", err)
	}

	return &Service{
		StorePath: storePath,
		store:     st,
		opener:    opener.Detached{Opener: o},
	}, nil
}

// Reload replaces the in-memory list with the current file contents.
// Long-lived callers use it to pick up writes from other processes.
func (s *Service) Reload() error {
	st, err := store.Load(s.StorePath)
	if err != nil {
		return fmt.Errorf("Reload: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store = st
	return nil
}

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Add appends a bookmark and persists the whole list. Neither name nor url
// is validated; duplicates are allowed.
func (s *Service) Add(name, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Add(models.Bookmark{Name: name, URL: url})
	if err := s.store.Save(); err != nil {
		return fmt.Errorf("Add: %w", err)
	}
	return nil
}

// List returns the bookmarks sorted by name. Stored order is unchanged.
func (s *Service) List() []models.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Sorted()
}

// Names returns the bookmark names sorted ascending.
func (s *Service) Names() []string {
	list := s.List()
	names := make([]string, 0, len(list))
	for _, b := range list {
		names = append(names, b.Name)
	}
	return names
}

// Open looks up the first bookmark named name and, when found, hands its URL
// to the opener without waiting. Launch failures are not reported.
func (s *Service) Open(name string) (models.Bookmark, bool) {
	s.mu.Lock()
	b, ok := s.store.Find(name)
	s.mu.Unlock()
	if !ok {
		return models.Bookmark{}, false
	}
	_ = s.opener.Open(b.URL)
	return b, true
}

// NotFoundMessage is what Open callers report for an unknown name. The name
// is quoted verbatim, without escaping.
func NotFoundMessage(name string) string {
	return `could not find "` + name + `"`
}

// Remove deletes the first bookmark named name. The file is only rewritten
// when something was removed.
func (s *Service) Remove(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.Remove(name) {
		return false, nil
	}
	if err := s.store.Save(); err != nil {
		return true, fmt.Errorf("Remove: %w", err)
	}
	return true, nil
}

// Count returns the number of stored bookmarks.
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Len()
}

// Bookmarks returns the list in stored order.
func (s *Service) Bookmarks() []models.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Bookmarks()
}
