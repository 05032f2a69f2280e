package apiclient

import (
	"errors"
	"fmt"

	"charity-care-portal/internal/domain/entity"
)

type Kind string

const (
	KindUnauthenticated Kind = "unauthenticated"
	KindForbidden       Kind = "forbidden"
	KindServer          Kind = "server"
	KindClient          Kind = "client"
	KindTransport       Kind = "transport"
)

// Error is returned for every failed backend call. Message is what the
// visitor should see: a catalog key for the fixed notices, or the backend's
// own message for other client errors.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend %s (%d): %s: %v", e.Kind, e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("backend %s (%d): %s", e.Kind, e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Notice converts the failure into the notice shown to the visitor.
func (e *Error) Notice() entity.Notice {
	switch e.Kind {
	case KindUnauthenticated, KindForbidden, KindServer, KindTransport:
		return entity.Notice{Level: entity.NoticeError, Key: e.Message}
	default:
		if e.Message == entity.NoticeGenericError {
			return entity.Notice{Level: entity.NoticeError, Key: e.Message}
		}
		return entity.Notice{Level: entity.NoticeError, Text: e.Message}
	}
}

// KindOf returns the kind of a backend error anywhere in err's chain.
func KindOf(err error) (Kind, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return "", false
}

// IsUnauthenticated reports whether err means the session was force-closed.
func IsUnauthenticated(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindUnauthenticated
}

func classify(status int, serverMessage string) *Error {
	switch {
	case status == 401:
		return &Error{Kind: KindUnauthenticated, Status: status, Message: entity.NoticeSessionExpired}
	case status == 403:
		return &Error{Kind: KindForbidden, Status: status, Message: entity.NoticeInsufficientPermissions}
	case status >= 500:
		return &Error{Kind: KindServer, Status: status, Message: entity.NoticeServerError}
	default:
		message := serverMessage
		if message == "" {
			message = entity.NoticeGenericError
		}
		return &Error{Kind: KindClient, Status: status, Message: message}
	}
}
