// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldDir        = "dir"
	FieldWorkingDir = "working_dir"

	// Topic fields.
	FieldTopic       = "topic"
	FieldTitle       = "title"
	FieldTopicsTotal = "topics_total"

	// Navigation fields.
	FieldPosition = "position"
	FieldOffset   = "offset"
	FieldURL      = "url"

	// Render fields.
	FieldLinks  = "links"
	FieldImages = "images"
	FieldWidth  = "width"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
