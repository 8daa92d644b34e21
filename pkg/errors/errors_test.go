// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/patchup/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "app_not_found_error",
			code:    errors.ErrAppNotFound,
			message: "app vanced not supported yet",
			wantStr: "[APP_NOT_FOUND] app vanced not supported yet",
		},
		{
			name:    "patch_load_error",
			code:    errors.ErrPatchLoad,
			message: "unable to load patches",
			wantStr: "[PATCH_LOAD] unable to load patches",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("no such file or directory")
	err := errors.Wrap(cause, errors.ErrPatchLoad, "failed to load manifest")

	if err.Code != errors.ErrPatchLoad {
		t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrPatchLoad)
	}
	if !stderrors.Is(err, cause) {
		t.Error("Wrap() should preserve the wrapped error chain")
	}
	want := "[PATCH_LOAD] failed to load manifest: no such file or directory"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if errors.Wrap(nil, errors.ErrPatchLoad, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrAppNotFound, "app %s not supported yet", "frontpage")

	if !errors.IsErrorCode(err, errors.ErrAppNotFound) {
		t.Error("IsErrorCode() should match the error's code")
	}
	if errors.IsErrorCode(err, errors.ErrPatchLoad) {
		t.Error("IsErrorCode() should not match a different code")
	}
	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrAppNotFound) {
		t.Error("IsErrorCode() should be false for non-PatchupError")
	}

	wrapped := errors.Wrapf(err, errors.ErrInternal, "resolving app")
	if errors.GetErrorCode(wrapped) != errors.ErrInternal {
		t.Errorf("GetErrorCode() = %v, want %v", errors.GetErrorCode(wrapped), errors.ErrInternal)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrPatchLoad, "failed to load manifest").
		WithDetail("path", "/tmp/patches.json")

	details := errors.GetErrorDetails(err)
	if details == nil {
		t.Fatal("GetErrorDetails() should not be nil")
	}
	if details["path"] != "/tmp/patches.json" {
		t.Errorf("detail path = %v, want /tmp/patches.json", details["path"])
	}
}

func TestErrorIs(t *testing.T) {
	err := errors.New(errors.ErrAppNotFound, "app x not supported yet")
	target := errors.New(errors.ErrAppNotFound, "different message")

	if !stderrors.Is(err, target) {
		t.Error("errors with the same code should satisfy errors.Is")
	}

	other := errors.New(errors.ErrPatchLoad, "app x not supported yet")
	if stderrors.Is(err, other) {
		t.Error("errors with different codes should not satisfy errors.Is")
	}
}
