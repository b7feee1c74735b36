package model

import (
	"errors"
	"fmt"
)

// Error kinds reported by the ingestion pipeline. Match them with errors.Is.
var (
	ErrUpstreamRequest = errors.New("upstream request failed")
	ErrResponseShape   = errors.New("unexpected response shape")
	ErrStorageWrite    = errors.New("storage write failed")
)

// Stage names the pipeline step an error came from.
type Stage string

const (
	StageSearch  Stage = "search"
	StageDetails Stage = "details"
	StageReshape Stage = "reshape"
	StageArchive Stage = "archive"
)

// StageError wraps a failure with the stage that produced it and its kind.
type StageError struct {
	Stage Stage
	Kind  error
	Err   error
}

func NewStageError(stage Stage, kind error, err error) *StageError {
	return &StageError{Stage: stage, Kind: kind, Err: err}
}

func (e *StageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Stage, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Stage, e.Kind, e.Err)
}

func (e *StageError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// StageOf returns the stage recorded in err, or "" when err carries none.
func StageOf(err error) Stage {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}
