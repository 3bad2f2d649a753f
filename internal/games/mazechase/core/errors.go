package core

import (
	"errors"
	"fmt"
)

var (
	// ErrSaveRejected is returned when a draft has no collectible outside the
	// sanctuary. The editor stays open.
	ErrSaveRejected = errors.New("add at least one collectible outside the sanctuary before saving")
	// ErrNotEditing is returned by editor commands issued outside edit mode.
	ErrNotEditing = errors.New("editor is not open")
	// ErrInvalidPhase is returned when a transition is not allowed from the
	// current phase.
	ErrInvalidPhase = errors.New("invalid phase for this action")
)

// ValidationError contains details about a malformed maze or layout.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}
