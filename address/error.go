package address

// ErrorKind identifies a kind of address error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrInvalidFormat is returned when a string is not a well formed
	// Base58 or Bech32 string, or when an output script is truncated.
	ErrInvalidFormat = ErrorKind("ErrInvalidFormat")

	// ErrInvalidChecksum is returned when the checksum of a Base58Check or
	// Bech32 string does not match its content.
	ErrInvalidChecksum = ErrorKind("ErrInvalidChecksum")

	// ErrUnsupportedWitnessVersion is returned for witness versions above
	// 16, and by ToOutputScript for any version it cannot build a script
	// for.
	ErrUnsupportedWitnessVersion = ErrorKind("ErrUnsupportedWitnessVersion")

	// ErrInvalidWitnessProgramLength is returned when a witness program
	// length is outside the bounds allowed for its version.
	ErrInvalidWitnessProgramLength = ErrorKind("ErrInvalidWitnessProgramLength")

	// ErrNoMatchingScriptTemplate is returned when an output script does
	// not match any standard template.
	ErrNoMatchingScriptTemplate = ErrorKind("ErrNoMatchingScriptTemplate")

	// ErrInvalidAddress is returned when an address does not belong to the
	// given network, or is neither a Base58Check nor a Bech32 address.
	ErrInvalidAddress = ErrorKind("ErrInvalidAddress")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an address-related error. It has full support for
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

// addressError creates an Error given a set of arguments.
func addressError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
