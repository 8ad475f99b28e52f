package address

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/vulpemventures/go-bitaddress/hashutil"
)

const checksumSize = 4

// Base58 type defines the structure of a legacy address or a wrapped segwit
// one, and of any other Base58Check payload such as a WIF.
type Base58 struct {
	Version byte
	Data    []byte
}

// EncodeBase58Check prepends a version byte to the payload, appends a four
// byte checksum and returns the Base58 encoding of the result.
func EncodeBase58Check(version byte, payload []byte) string {
	b := make([]byte, 0, 1+len(payload)+checksumSize)
	b = append(b, version)
	b = append(b, payload...)
	b = append(b, checksum(b)...)
	return base58.Encode(b)
}

// DecodeBase58Check decodes a Base58Check string and verifies its checksum.
func DecodeBase58Check(s string) (*Base58, error) {
	decoded := base58.Decode(s)
	if len(decoded) == 0 && len(s) > 0 {
		str := fmt.Sprintf("%q contains characters outside the base58 "+
			"alphabet", s)
		return nil, addressError(ErrInvalidFormat, str)
	}
	if len(decoded) < 1+checksumSize {
		str := fmt.Sprintf("%q is too short, decoded to %d bytes", s,
			len(decoded))
		return nil, addressError(ErrInvalidFormat, str)
	}

	split := len(decoded) - checksumSize
	if !bytes.Equal(checksum(decoded[:split]), decoded[split:]) {
		str := fmt.Sprintf("%q has an invalid checksum", s)
		return nil, addressError(ErrInvalidChecksum, str)
	}

	return &Base58{
		Version: decoded[0],
		Data:    decoded[1:split],
	}, nil
}

func checksum(b []byte) []byte {
	return hashutil.DoubleSha256(b)[:checksumSize]
}
