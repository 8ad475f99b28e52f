package descriptor

// ErrorKind identifies a kind of descriptor error.
type ErrorKind string

const (
	// ErrInvalidDescriptor indicates a descriptor that does not parse, or
	// that uses an expression outside of its allowed context.
	ErrInvalidDescriptor = ErrorKind("ErrInvalidDescriptor")

	// ErrInvalidChecksum indicates a descriptor whose checksum is malformed
	// or does not match.
	ErrInvalidChecksum = ErrorKind("ErrInvalidChecksum")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a descriptor related error. It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific reason
// for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

func descError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
