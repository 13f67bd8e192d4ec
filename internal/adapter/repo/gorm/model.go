package gormrepo

import "time"

type TaskTemplate struct {
	Name    string `gorm:"primaryKey"`
	Content string
}

// CommandRecord is one audited command decision. Payload holds the canonical
// JSON envelope as sent to the backend.
type CommandRecord struct {
	ID        string `gorm:"primaryKey"`
	Type      string `gorm:"index"`
	Payload   []byte
	Accepted  bool
	CreatedAt time.Time
}
