// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"

	// Document fields.
	FieldBytes      = "bytes"
	FieldBlocks     = "blocks"
	FieldExtensions = "extensions"
	FieldTruncated  = "truncated"

	// Edit fields.
	FieldOperation = "operation"
	FieldStart     = "start"
	FieldEnd       = "end"
	FieldMode      = "mode"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
