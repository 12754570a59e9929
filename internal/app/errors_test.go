package app

import (
	"errors"
	"io/fs"
	"testing"
)

func TestOperationErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *OperationError
		want string
	}{
		{
			"op target and cause",
			NewOperationError("open", "/tmp/x", ErrNotRegularFile),
			"open /tmp/x: not a regular file",
		},
		{
			"op only",
			NewOperationError("init", "", nil),
			"init",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOperationErrorUnwrapping(t *testing.T) {
	err := NewOperationError("open", "/tmp/x", fs.ErrNotExist)

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is must match the wrapped error")
	}
	if errors.Is(err, ErrQuit) {
		t.Error("errors.Is must not match unrelated sentinels")
	}

	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Target != "/tmp/x" {
		t.Errorf("errors.As = %#v", opErr)
	}
}
