package keypair

// ErrorKind identifies a kind of key pair error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrMalformedPrivateKey is returned when a private key, or the payload
	// of a WIF string, is not a valid secp256k1 private key encoding.
	ErrMalformedPrivateKey = ErrorKind("ErrMalformedPrivateKey")

	// ErrWrongNetwork is returned when a WIF string carries the version of
	// another network.
	ErrWrongNetwork = ErrorKind("ErrWrongNetwork")

	// ErrInvalidPublicKey is returned when a public key is not a valid
	// serialized point on the secp256k1 curve.
	ErrInvalidPublicKey = ErrorKind("ErrInvalidPublicKey")

	// ErrNoPrivateKey is returned when a private key operation is requested
	// from a key pair holding only a public key.
	ErrNoPrivateKey = ErrorKind("ErrNoPrivateKey")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a key pair related error. It has full support for
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

func keyError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
