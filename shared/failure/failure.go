package failure

import (
	"errors"
	"net/http"
)

// Failure carries a client-facing message and the HTTP status it maps to.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Errors the booking API returns to clients. Compare with errors.Is.
var (
	InvalidIDParam   = BadRequestFromString("invalid id parameter")
	RouteNotFound    = NotFound("route not found")
	RoomNotFound     = NotFound("room not found")
	BookingNotFound  = NotFound("booking not found")
	UserNotFound     = NotFound("user not found")
	UnknownRoom      = BadRequestFromString("room does not exist")
	UsernameTaken    = Conflict("username already taken")
	UsernameRequired = BadRequestFromString("username query parameter is required")
)

func (e *Failure) Error() string {
	return e.Message
}

// Is reports whether target is a Failure with the same code and message, so
// sentinels match failures built by the constructors below.
func (e *Failure) Is(target error) bool {
	var other *Failure
	if !errors.As(target, &other) {
		return false
	}

	return e.Code == other.Code && e.Message == other.Message
}

// BadRequest wraps err as a 400. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	var fail *Failure
	if errors.As(err, &fail) && fail.Code == http.StatusBadRequest {
		return fail
	}

	return &Failure{Code: http.StatusBadRequest, Message: err.Error()}
}

func BadRequestFromString(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

func NotFound(message string) error {
	return &Failure{Code: http.StatusNotFound, Message: message}
}

func Conflict(message string) error {
	return &Failure{Code: http.StatusConflict, Message: message}
}

// GetCode returns the HTTP status for err. Anything that is not a Failure is a 500.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
