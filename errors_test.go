package hxui

import (
	"fmt"
	"testing"

	"github.com/pthm/hxui/lib/encoding"
)

func TestErrorClassification(t *testing.T) {
	if !IsNotFound(fmt.Errorf("wrapped: %w", ErrNotFound)) || !IsNotFound(ErrUnknownAction) {
		t.Error("IsNotFound() missed a not-found error")
	}
	if IsNotFound(ErrDecryptFailed) {
		t.Error("IsNotFound(ErrDecryptFailed) = true")
	}

	for _, err := range []error{ErrDecryptFailed, ErrSignatureInvalid, ErrInvalidFormat} {
		if !IsDecodingError(err) {
			t.Errorf("IsDecodingError(%v) = false", err)
		}
	}
	if IsDecodingError(ErrHydrationFailed) {
		t.Error("IsDecodingError(ErrHydrationFailed) = true")
	}
}

func TestWrapEncodingError(t *testing.T) {
	tests := []struct {
		in   error
		want error
	}{
		{encoding.ErrInvalidFormat, ErrInvalidFormat},
		{fmt.Errorf("ctx: %w", encoding.ErrSignatureInvalid), ErrSignatureInvalid},
		{encoding.ErrDecryptFailed, ErrDecryptFailed},
		{nil, nil},
	}
	for _, tt := range tests {
		if got := wrapEncodingError(tt.in); got != tt.want {
			t.Errorf("wrapEncodingError(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
