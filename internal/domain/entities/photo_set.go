package entities

import (
	"strings"
	"time"
)

// PhotoSet is a before/after image pair documenting service work.
//
// Storage model (DynamoDB): PK id. Either image id may be empty while the
// set is waiting for its second upload. The first line of Notes holds the
// uploading engineer's name by convention; the rest is free text.
//
// A set is removed with a destructive save-and-remove flow: the caller
// downloads both objects, then the files and the document are deleted.
type PhotoSet struct {
	ID            string    `json:"id"`
	BeforeImageID string    `json:"beforeImageId,omitempty"`
	AfterImageID  string    `json:"afterImageId,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Date          time.Time `json:"date"`
}

// Complete reports whether both sides of the pair are present.
func (p PhotoSet) Complete() bool {
	return p.BeforeImageID != "" && p.AfterImageID != ""
}

// UploaderName returns the engineer name conventionally stored as the first
// line of the notes field.
func (p PhotoSet) UploaderName() string {
	name, _, _ := strings.Cut(p.Notes, "\n")
	return name
}

// UserNotes returns the free-text part of the notes, after the name line.
func (p PhotoSet) UserNotes() string {
	_, rest, _ := strings.Cut(p.Notes, "\n")
	return rest
}
