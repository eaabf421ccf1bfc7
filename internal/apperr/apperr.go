package apperr

import "fmt"

// Error 带 HTTP 状态码的业务错误，Err 只进日志不出网
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, msg string) *Error { return &Error{Status: status, Message: msg} }

func BadRequest(msg string) *Error   { return New(400, msg) }
func Unauthorized(msg string) *Error { return New(401, msg) }
func NotFound(msg string) *Error     { return New(404, msg) }
func Conflict(msg string) *Error     { return New(409, msg) }

func Internal(msg string, err error) *Error {
	return &Error{Status: 500, Message: msg, Err: err}
}
