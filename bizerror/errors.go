package bizerror

import (
	"errors"
	"net/http"
)

var ErrUnauthenticated = errors.New("unauthenticated")
var ErrForbidden = errors.New("forbidden")
var ErrInvalidPassword = errors.New("invalid password")
var ErrNotFound = errors.New("record not found")
var ErrUnknownState = errors.New("unknown state")
var ErrShiftNotPending = errors.New("shift is not pending")
var ErrTooManyRequests = errors.New("too many requests")

type BizError interface {
	Respond() *BizErrorDetail
}

type BizErrorDetail struct {
	Status  int
	Code    string
	Message string

	Data  interface{}
	Cause error
}

type ErrBadParam struct {
	Cause error
}

func (e *ErrBadParam) Unwrap() error {
	return e.Cause
}
func (e *ErrBadParam) Error() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "common.bad_param"
}
func (e *ErrBadParam) Respond() *BizErrorDetail {
	message := "common.bad_param"
	if e.Cause != nil {
		message = e.Cause.Error()
	}
	return &BizErrorDetail{Status: http.StatusBadRequest, Code: "common.bad_param", Message: message, Data: nil}
}

// ErrInvalidShiftForm is raised by shift construction validation.
// Every failed check carries its own message, there is no silent branch.
type ErrInvalidShiftForm struct {
	Message string
}

func (e *ErrInvalidShiftForm) Error() string {
	return e.Message
}
func (e *ErrInvalidShiftForm) Respond() *BizErrorDetail {
	return &BizErrorDetail{Status: http.StatusBadRequest, Code: "shift.invalid_form", Message: e.Message, Data: nil}
}
