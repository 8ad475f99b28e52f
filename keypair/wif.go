package keypair

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/vulpemventures/go-bitaddress/address"
	"github.com/vulpemventures/go-bitaddress/network"
)

const (
	// PrivKeyBytesLen is the length of a serialized private key.
	PrivKeyBytesLen = 32

	// compressMagic is the byte appended to the private key of a WIF when
	// the public key is meant to be serialized in compressed form.
	compressMagic byte = 0x01
)

// WIF contains the individual components described by the Wallet Import
// Format (WIF). A WIF string is typically used to represent a private key
// and its associated address in a way that may be easily copied and
// imported into or exported from wallet software.
type WIF struct {
	// PrivKey is the 32 bytes private key.
	PrivKey []byte

	// CompressPubKey specifies whether the address controlled by the
	// imported or exported private key was created by hashing a
	// compressed (33-byte) serialized public key, rather than an
	// uncompressed (65-byte) one.
	CompressPubKey bool
}

// EncodeWIF returns the WIF string of privKey for the given network. The
// compression marker is appended when compressed is true.
func EncodeWIF(privKey []byte, compressed bool, net *network.Network) string {
	payload := make([]byte, 0, PrivKeyBytesLen+1)
	payload = append(payload, privKey...)
	if compressed {
		payload = append(payload, compressMagic)
	}
	return address.EncodeBase58Check(net.Wif, payload)
}

// DecodeWIF decodes a WIF string for the given network. Base58Check failures
// are returned with their address error kind.
func DecodeWIF(wif string, net *network.Network) (*WIF, error) {
	decoded, err := address.DecodeBase58Check(wif)
	if err != nil {
		return nil, err
	}

	if decoded.Version != net.Wif {
		str := fmt.Sprintf("wif version %#02x does not match network "+
			"%v (%#02x)", decoded.Version, net.Name, net.Wif)
		return nil, keyError(ErrWrongNetwork, str)
	}

	var compressed bool
	switch len(decoded.Data) {
	case PrivKeyBytesLen:
	case PrivKeyBytesLen + 1:
		if decoded.Data[PrivKeyBytesLen] != compressMagic {
			str := fmt.Sprintf("wif has invalid compression flag %#02x",
				decoded.Data[PrivKeyBytesLen])
			return nil, keyError(ErrMalformedPrivateKey, str)
		}
		compressed = true
	default:
		str := fmt.Sprintf("wif payload must be %d or %d bytes, got %d",
			PrivKeyBytesLen, PrivKeyBytesLen+1, len(decoded.Data))
		return nil, keyError(ErrMalformedPrivateKey, str)
	}

	privKey := decoded.Data[:PrivKeyBytesLen]
	if err := checkPrivKey(privKey); err != nil {
		return nil, err
	}

	return &WIF{
		PrivKey:        privKey,
		CompressPubKey: compressed,
	}, nil
}

// checkPrivKey returns an error unless b is a 32 bytes big endian integer in
// the range [1, N-1], N being the order of the secp256k1 group.
func checkPrivKey(b []byte) error {
	if len(b) != PrivKeyBytesLen {
		str := fmt.Sprintf("private key must be %d bytes, got %d",
			PrivKeyBytesLen, len(b))
		return keyError(ErrMalformedPrivateKey, str)
	}

	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(b); overflow {
		return keyError(ErrMalformedPrivateKey, "private key is not "+
			"below the secp256k1 group order")
	}
	if scalar.IsZero() {
		return keyError(ErrMalformedPrivateKey, "private key is zero")
	}
	return nil
}
