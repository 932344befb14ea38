package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Request & upload validation errors
var (
	ErrMalformedPayload     = errors.New("malformed payload")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFileTooLarge         = errors.New("Fișierul este prea mare")
	ErrUploadFailed         = errors.New("upload failed")
)

func Malformed(payloadName string) *ApiErr {
	return NewApiErr(http.StatusBadRequest, payloadName+" malformed")
}

func BadRequest(message string) *ApiErr {
	return NewApiErr(http.StatusBadRequest, message)
}

// NewUnsupportedMediaTypeError rejects a file whose MIME type is outside
// the endpoint's allow-list, before any remote call is made.
func NewUnsupportedMediaTypeError(contentType string, allowed string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrUnsupportedMediaType,
		Details:    fmt.Sprintf("got %s, expected %s", contentType, allowed),
		Field:      "file",
	}
}

// NewFileTooLargeError rejects an oversized upload before any remote call.
// The message is user-facing and surfaced verbatim by the frontend.
func NewFileTooLargeError(size, maxSize int64) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrFileTooLarge,
		Details:    fmt.Sprintf("file is %d bytes, limit is %d bytes", size, maxSize),
		Field:      "file",
	}
}

// NewUploadError wraps a failed or empty-result remote media call.
func NewUploadError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrUploadFailed,
		Cause:      cause,
	}
}
