package convert

import (
	"errors"
	"fmt"
)

// Kind classifies a failed run. Every kind is terminal.
type Kind int

const (
	FileNotFound Kind = iota + 1
	DecodeFailure
	EncodeFailure
	PublishFailure
)

func (k Kind) String() string {
	switch k {
	case FileNotFound:
		return "file_not_found"
	case DecodeFailure:
		return "decode_failure"
	case EncodeFailure:
		return "encode_failure"
	case PublishFailure:
		return "publish_failure"
	default:
		return "unknown"
	}
}

// Error is returned by Run. Its message is the line shown to the user.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case FileNotFound:
		return fmt.Sprintf("Error: File does not exist - %s", e.Path)
	case DecodeFailure:
		return fmt.Sprintf("Error: Could not load image %s", e.Path)
	case EncodeFailure:
		return fmt.Sprintf("Error: Could not save image %s", e.Path)
	case PublishFailure:
		return fmt.Sprintf("Error: Could not publish image %s", e.Path)
	default:
		if e.Err != nil {
			return fmt.Sprintf("Error: %s: %v", e.Path, e.Err)
		}
		return fmt.Sprintf("Error: %s", e.Path)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the Kind from err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
