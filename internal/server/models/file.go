package models

import "time"

// File is a metadata row describing one stored object. Path is the object
// key in the bucket and always starts with "<UserID>/".
type File struct {
	ID        string
	UserID    string
	Name      string
	Size      int64
	Type      string
	Path      string
	CreatedAt time.Time
}
