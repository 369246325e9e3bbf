package httperr

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind classifies a domain error so the HTTP layer can pick a status code
// without inspecting error strings.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

type DomainError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Code
}

func ErrValidation(code, message string) error {
	return &DomainError{Kind: KindValidation, Code: code, Message: message}
}

func ErrUnauthorized(code, message string) error {
	return &DomainError{Kind: KindUnauthorized, Code: code, Message: message}
}

func ErrForbidden(code, message string) error {
	return &DomainError{Kind: KindForbidden, Code: code, Message: message}
}

func ErrNotFound(code, message string) error {
	return &DomainError{Kind: KindNotFound, Code: code, Message: message}
}

func ErrConflict(code, message string) error {
	return &DomainError{Kind: KindConflict, Code: code, Message: message}
}

func IsKind(err error, kind Kind) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}

func IsCode(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// Status maps an error kind to its HTTP status code.
func Status(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteDomain renders a domain error with its mapped status. Unknown errors
// become a 500; their message is only exposed in debug mode.
func WriteDomain(c *gin.Context, err error) {
	var de *DomainError
	if errors.As(err, &de) {
		Write(c, Status(de.Kind), de.Code, de.Message)
		return
	}

	log.Printf("internal error: %v", err)

	msg := "Something went wrong."
	if gin.Mode() == gin.DebugMode {
		msg = err.Error()
	}
	Internal(c, "internal_error", msg)
}
