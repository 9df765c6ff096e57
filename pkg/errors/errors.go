package errors

import "fmt"

// Common error types.
var (
	// Platform errors.
	ErrMalformedPlatform = fmt.Errorf("malformed platform string")

	// CLI errors.
	ErrUnknownOutputFormat = fmt.Errorf("unknown output format")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
