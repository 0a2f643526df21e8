package discunion

import (
	"errors"
	"fmt"
)

var (
	ErrTagMismatch    = errors.New("discunion: tag mismatch")
	ErrMissingHandler = errors.New("discunion: missing handler")
)

// missingTag renders the actual side of an error when a value has no discriminant.
const missingTag = "<missing>"

// TagMismatchError is returned by Validate when a value carries a different
// tag than the one expected.
type TagMismatchError struct {
	Expected Tag
	Actual   Tag
	// Found is false when the value had no discriminant at all.
	Found bool
}

func (e *TagMismatchError) Error() string {
	actual := missingTag
	if e.Found {
		actual = e.Actual.String()
	}
	return formatError(e.Expected.String(), actual)
}

func (e *TagMismatchError) Is(target error) bool {
	return target == ErrTagMismatch
}

// MissingHandlerError is returned by exhaustive dispatch when no handler
// exists for a value's tag, and by Union.CheckHandlers.
type MissingHandlerError struct {
	Tag          Tag
	Found        bool
	Discriminant string
}

func (e *MissingHandlerError) Error() string {
	if !e.Found {
		return fmt.Sprintf("discunion: value has no %q discriminant", e.Discriminant)
	}
	return fmt.Sprintf("discunion: no handler registered for tag %q", e.Tag.String())
}

func (e *MissingHandlerError) Is(target error) bool {
	return target == ErrMissingHandler
}

func formatError(expected, actual string) string {
	return fmt.Sprintf(`Expected object of type "%s", but got "%s"`, expected, actual)
}
