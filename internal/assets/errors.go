package assets

import "errors"

// Lookup failures. IsNotFound reports these; the resolver falls back to the
// embedded sets only for them.
var (
	ErrTemplateNotFound    = errors.New("template not found")
	ErrTemplateSetNotFound = errors.New("template set not found")
)

// Failures that stop resolution outright.
var (
	// ErrIncompleteTemplateSet means a set directory exists but lacks page.html or index.html.
	ErrIncompleteTemplateSet = errors.New("template set missing required template")

	// ErrInvalidSetName means a set name is not a plain identifier.
	ErrInvalidSetName = errors.New("invalid template set name")

	// ErrInvalidBasePath means the asset directory is missing or unreadable.
	ErrInvalidBasePath = errors.New("invalid asset directory")

	ErrTemplateRead  = errors.New("failed to read template")
	ErrPathTraversal = errors.New("template set escapes asset directory")
)
