package vo

import "errors"

var (
	// ErrNotFound covers unknown style, invalid scheme and bad token alike.
	ErrNotFound             = errors.New("not found")
	ErrMissingSource        = errors.New("missing source image")
	ErrGenerationInProgress = errors.New("image generation in progress")
	ErrAccessDenied         = errors.New("access denied")
	ErrGenerationFailed     = errors.New("error generating image")

	ErrStyleNotFound    = errors.New("image style not found")
	ErrInvalidSourceURI = errors.New("invalid source uri")
)
