package tui

import "errors"

// ErrMissingSnippetService is returned when the snippet service is not provided.
var ErrMissingSnippetService = errors.New("tui: snippet service is required")

// ErrInvalidPorts is returned when no ports are supplied at all.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
