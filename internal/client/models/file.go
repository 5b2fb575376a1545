// Package models holds the client-side view of files and sessions.
package models

import (
	"io"
	"time"
)

// FileRecord is one user-owned uploaded object as listed by the server.
// Path is the storage key; it is never shown to the user.
type FileRecord struct {
	ID        string
	Name      string
	Size      int64
	Type      string
	CreatedAt time.Time
	Path      string
}

// NewFileRecord is the metadata inserted after a successful object upload.
type NewFileRecord struct {
	Name string
	Size int64
	Type string
	Path string
}

// UploadFile is a file picked for upload. Open is called once, when the
// batch reaches this file.
type UploadFile struct {
	Name string
	Size int64
	Type string
	Open func() (io.ReadCloser, error)
}
