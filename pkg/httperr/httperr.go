package httperr

import "errors"

// BindError reports that the listener could not acquire its address. It is
// fatal to the process.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string { return "bind " + e.Addr + ": " + e.Err.Error() }

func (e *BindError) Unwrap() error { return e.Err }

func NewBindError(addr string, err error) error { return &BindError{Addr: addr, Err: err} }

func IsBindError(err error) bool {
	var be *BindError
	return errors.As(err, &be)
}
