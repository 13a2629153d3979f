package services

import (
	"errors"
	"net/http"
)

type ErrorKind int

const (
	KindBadRequest ErrorKind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInternal
)

// Error is the only failure shape services return. Message is safe to show
// to clients; Err carries the underlying cause for logs.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status maps the kind onto an HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindBadRequest:
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

func badRequest(msg string, err error) *Error {
	return &Error{Kind: KindBadRequest, Message: msg, Err: err}
}

func unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func forbidden() *Error {
	return &Error{Kind: KindForbidden, Message: MsgActionForbidden}
}

func notFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func conflict(msg string, err error) *Error {
	return &Error{Kind: KindConflict, Message: msg, Err: err}
}

func internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: MsgInternal, Err: err}
}

// AsError extracts a service error from err. Anything else is reported as internal.
func AsError(err error) *Error {
	var se *Error
	if errors.As(err, &se) {
		return se
	}
	return internal(err)
}

// Client-facing messages.
const (
	MsgInternal           = "Something went wrong, please try again later."
	MsgActionForbidden    = "Action forbidden"
	MsgBlogMissing        = "Blog does not exist"
	MsgBlogNotFound       = "Blog does not exist."
	MsgBlogNotYours       = "Blog does not exist or belong to you"
	MsgTitleTaken         = "Title has been used for a Blog."
	MsgInvalidSearch      = "Invalid search parameter"
	MsgInvalidState       = "Invalid State"
	MsgNoRevertToDraft    = "Published blog can not be reverted to draft"
	MsgEmailTaken         = "Email has been registered by a user"
	MsgInvalidUserID      = "Invalid user Id"
	MsgIncorrectPassword  = "Incorrect password"
	MsgPasswordTooLong    = "Password is too long."
	MsgUserNotRegistered  = "User not registered, Kindly signup."
	MsgInvalidCredentials = "Username or password is incorrect."
	MsgBlogCreated        = "Blog created successfully"
	MsgBlogEdited         = "Blog edited successfully"
	MsgBlogPublished      = "Blog published successfully"
	MsgBlogDeleted        = "Blog deleted successfully"
	MsgUserCreated        = "User created successfully"
	MsgUserUpdated        = "User information updated"
	MsgLoggedIn           = "Logged in Successfully."
)
