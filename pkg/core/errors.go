package core

import "errors"

// Common errors.
var (
	ErrNoNotes         = errors.New("no markdown files found")
	ErrTemplateMissing = errors.New("report template not found")
)
