package usecase

import (
	"fmt"
	"net/http"
)

// Error codes surfaced in response payloads. Clients branch on these rather
// than on message text.
const (
	CodeInvalidFileType   = "INVALID_FILE_TYPE"
	CodeMissingFile       = "MISSING_FILE"
	CodeFileTooLarge      = "FILE_TOO_LARGE"
	CodeFileSaveError     = "FILE_SAVE_ERROR"
	CodeImageProcessing   = "IMAGE_PROCESSING_ERROR"
	CodeNoFaceDetected    = "NO_FACE_DETECTED"
	CodeFaceMismatch      = "FACE_MISMATCH"
	CodeVerificationError = "VERIFICATION_ERROR"
)

// PipelineError is a stage-local failure converted to a structured result at
// the stage boundary. Field names the upload that caused the failure, when
// one can be blamed.
type PipelineError struct {
	Code    string
	Field   string
	Message string
	Err     error
}

func (e *PipelineError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (%s): %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error code to the transport status: client-caused
// failures are 400, server faults 500.
func (e *PipelineError) HTTPStatus() int {
	switch e.Code {
	case CodeInvalidFileType, CodeMissingFile, CodeImageProcessing, CodeNoFaceDetected, CodeFaceMismatch:
		return http.StatusBadRequest
	case CodeFileTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

func newPipelineError(code, field, message string, err error) *PipelineError {
	return &PipelineError{Code: code, Field: field, Message: message, Err: err}
}
