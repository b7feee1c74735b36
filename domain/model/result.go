package model

import (
	"net/http"
	"time"
)

// InvocationResult is what a trigger receives after one run.
type InvocationResult struct {
	StatusCode int        `json:"statusCode"`
	Body       ResultBody `json:"body"`
}

type ResultBody struct {
	Message string `json:"message,omitempty"`
	Bucket  string `json:"bucket,omitempty"`
	Key     string `json:"key,omitempty"`
	Error   string `json:"error,omitempty"`
}

func NewSuccessResult(message, bucket, key string) InvocationResult {
	return InvocationResult{
		StatusCode: http.StatusOK,
		Body:       ResultBody{Message: message, Bucket: bucket, Key: key},
	}
}

func NewFailureResult(err error) InvocationResult {
	return InvocationResult{
		StatusCode: http.StatusInternalServerError,
		Body:       ResultBody{Error: err.Error()},
	}
}

// Succeeded reports whether the run finished without error.
func (r InvocationResult) Succeeded() bool {
	return r.StatusCode == http.StatusOK
}

// ArchiveEvent is published after an archive object has been written.
type ArchiveEvent struct {
	RunID      string    `json:"runId"`
	Bucket     string    `json:"bucket"`
	Key        string    `json:"key"`
	ItemCount  int       `json:"itemCount"`
	ArchivedAt time.Time `json:"archivedAt"`
}
