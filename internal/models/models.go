// Package models defines the core data types for the bookmark store.
package models

import "strings"

// Bookmark is a named URL.
type Bookmark struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Document is the on-disk shape of the store file.
type Document struct {
	Bookmarks []Bookmark `json:"bookmarks"`
}

// Compare orders bookmarks by name, byte-wise. Suitable for
// slices.SortStableFunc.
func Compare(a, b Bookmark) int {
	return strings.Compare(a.Name, b.Name)
}
