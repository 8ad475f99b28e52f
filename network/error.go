package network

// ErrorKind identifies a kind of network configuration error.
type ErrorKind string

const (
	// ErrUnknownNetwork indicates that no preset matches a network name.
	ErrUnknownNetwork = ErrorKind("ErrUnknownNetwork")

	// ErrInvalidProfile indicates that a caller supplied network profile is
	// malformed or internally inconsistent.
	ErrInvalidProfile = ErrorKind("ErrInvalidProfile")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a network related error. It has full support for
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

func networkError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
