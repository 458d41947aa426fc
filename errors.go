package md2wiki

import "errors"

// Sentinel errors for library operations.
var (
	// ErrFrontMatter indicates the YAML front matter could not be decoded.
	ErrFrontMatter = errors.New("invalid front matter")

	// ErrDocumentTooLarge indicates the source exceeds MaxDocumentSize.
	ErrDocumentTooLarge = errors.New("document too large")
)
