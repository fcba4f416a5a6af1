package hxui

import (
	"errors"

	"github.com/pthm/hxui/lib/encoding"
)

// Sentinel errors for component operations.
var (
	ErrNotFound         = errors.New("hxui: resource not found")
	ErrUnknownAction    = errors.New("hxui: unknown action")
	ErrDecryptFailed    = errors.New("hxui: parameter decryption failed")
	ErrSignatureInvalid = errors.New("hxui: signature verification failed")
	ErrInvalidFormat    = errors.New("hxui: invalid parameter format")
	ErrHydrationFailed  = errors.New("hxui: hydration failed")
)

// IsNotFound reports whether err means the requested component, action or
// resource does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrUnknownAction)
}

// IsDecodingError reports whether err comes from tampered or malformed props.
func IsDecodingError(err error) bool {
	return errors.Is(err, ErrDecryptFailed) ||
		errors.Is(err, ErrSignatureInvalid) ||
		errors.Is(err, ErrInvalidFormat)
}

// wrapEncodingError maps encoding package errors to hxui sentinels.
func wrapEncodingError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, encoding.ErrInvalidFormat):
		return ErrInvalidFormat
	case errors.Is(err, encoding.ErrSignatureInvalid):
		return ErrSignatureInvalid
	case errors.Is(err, encoding.ErrDecryptFailed):
		return ErrDecryptFailed
	}
	return err
}
