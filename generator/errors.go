package generator

import "errors"

var (
	// ErrUnknownWave indicates a score part names no known waveform
	ErrUnknownWave = errors.New("unknown waveform")

	// ErrInvalidScore indicates a score failed validation
	ErrInvalidScore = errors.New("invalid score")
)
