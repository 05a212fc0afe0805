package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrRecipeNotFound is returned when no recipe file can be located.
	ErrRecipeNotFound = zerr.New("could not find recipe file")

	// ErrRecipeReadFailed is returned when the recipe file cannot be read.
	ErrRecipeReadFailed = zerr.New("failed to read recipe file")

	// ErrRecipeParseFailed is returned when the recipe file cannot be parsed.
	ErrRecipeParseFailed = zerr.New("failed to parse recipe file")

	// ErrMalformedRequirement is returned when a requirement string is not of the form name/version.
	ErrMalformedRequirement = zerr.New("invalid requirement, expected format: name/version")

	// ErrDuplicateRequirement is returned when the same dependency name is declared twice.
	ErrDuplicateRequirement = zerr.New("duplicate requirement")

	// ErrUnknownSetting is returned when a settings axis is not in the recognized set.
	ErrUnknownSetting = zerr.New("unknown settings axis")

	// ErrDuplicateSetting is returned when the same settings axis is declared twice.
	ErrDuplicateSetting = zerr.New("duplicate settings axis")

	// ErrUnknownGenerator is returned when a generator name is not in the recognized set.
	ErrUnknownGenerator = zerr.New("unknown generator")

	// ErrDuplicateGenerator is returned when the same generator is declared twice.
	ErrDuplicateGenerator = zerr.New("duplicate generator")

	// ErrConflictingLayout is returned when a recipe declares both an explicit
	// generators folder and the standard layout convention.
	ErrConflictingLayout = zerr.New("layout declares both an explicit folder and a standard convention")

	// ErrInvalidLayoutFolder is returned when an explicit generators folder is
	// empty, absolute, or escapes the recipe directory.
	ErrInvalidLayoutFolder = zerr.New("layout folder must be a relative path inside the recipe directory")

	// ErrUnknownLayoutConvention is returned when a standard layout convention is not recognized.
	ErrUnknownLayoutConvention = zerr.New("unknown layout convention")

	// ErrLintFailed is returned when linting found at least one problem.
	// It drives the process exit code of the lint command.
	ErrLintFailed = zerr.New("recipe validation failed")

	// ErrBufferFull is returned when pushing to a full ring buffer that rejects writes.
	ErrBufferFull = zerr.New("ring buffer is full")

	// ErrBufferEmpty is returned when popping or peeking an empty ring buffer.
	ErrBufferEmpty = zerr.New("ring buffer is empty")

	// ErrZeroCapacity is returned when pushing to a ring buffer with zero capacity.
	ErrZeroCapacity = zerr.New("ring buffer capacity must be greater than zero")

	// ErrOutOfRange is returned when accessing a ring buffer element outside [0, len).
	ErrOutOfRange = zerr.New("index out of range")

	// ErrNegativeCapacity is returned when constructing or resizing a ring buffer
	// with a negative capacity.
	ErrNegativeCapacity = zerr.New("ring buffer capacity must not be negative")
)

// Tag attaches a key-value pair to a sentinel error while keeping the
// sentinel matchable with errors.Is. zerr.With applied to a sentinel
// directly would return a detached copy outside the unwrap chain.
func Tag(sentinel error, key string, value any) error {
	return zerr.With(errors.Join(sentinel), key, value)
}
