package script

// ErrorKind identifies a kind of script error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrInvalidFormat is returned when a serialized script is structurally
	// malformed, for instance when a data push declares more bytes than the
	// script has remaining, or when a builder is misused.
	ErrInvalidFormat = ErrorKind("ErrInvalidFormat")

	// ErrInvalidTemplateParameters is returned when a template is asked to
	// build a script from parameters violating its contract, for instance a
	// multisig script requiring more signatures than public keys.
	ErrInvalidTemplateParameters = ErrorKind("ErrInvalidTemplateParameters")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a script-related error. It has full support for errors.Is
// and errors.As, so the caller can ascertain the specific reason for the
// error by checking the underlying error.
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

// scriptError creates an Error given a set of arguments.
func scriptError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
