package utils

import (
	"errors"
	"fmt"
)

// Sentinel errors mapped to HTTP status by ErrorResponse.
var (
	ErrNoActiveConnection = errors.New("No active connection")
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrConnectivity       = errors.New("Connectivity/Discovery failed")
)

// detailed keeps the client-facing message separate from the wrapped chain.
type detailed struct {
	msg string
	err error
}

func (d *detailed) Error() string { return d.msg }
func (d *detailed) Unwrap() error { return d.err }

// NotFoundf returns an ErrNotFound carrying a client-facing message.
func NotFoundf(format string, args ...interface{}) error {
	return &detailed{msg: fmt.Sprintf(format, args...), err: ErrNotFound}
}

// Invalidf returns an ErrValidation carrying a client-facing message.
func Invalidf(format string, args ...interface{}) error {
	return &detailed{msg: fmt.Sprintf(format, args...), err: ErrValidation}
}

// Invalid wraps err as a validation failure, keeping its message.
func Invalid(err error) error {
	if err == nil {
		return nil
	}
	return &detailed{msg: err.Error(), err: errors.Join(ErrValidation, err)}
}

// ConnectivityError reports a failed connect or discovery attempt.
func ConnectivityError(err error) error {
	return &detailed{msg: fmt.Sprintf("%s: %v", ErrConnectivity, err), err: errors.Join(ErrConnectivity, err)}
}

// Detail returns the message sent to clients for err.
func Detail(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
