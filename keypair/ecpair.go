package keypair

import (
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/vulpemventures/go-bitaddress/network"
)

// maxRandomAttempts bounds the number of 32 bytes draws MakeRandom makes
// before giving up on a reader that never yields a valid private key.
const maxRandomAttempts = 16

// KeyPair is the key material provider consumed by the address codec.
type KeyPair interface {
	// PublicKey returns the serialized public key, compressed or not.
	PublicKey() []byte

	// ToWIF returns the WIF encoding of the private key for net.
	ToWIF(net *network.Network) (string, error)
}

// ECPair is a secp256k1 KeyPair. It may hold only a public key, in which
// case every private key operation fails with ErrNoPrivateKey.
type ECPair struct {
	privKey    *btcec.PrivateKey
	pubKey     *btcec.PublicKey
	compressed bool
}

var _ KeyPair = (*ECPair)(nil)

// MakeRandom returns a new key pair whose private key is read from rng.
// Draws outside the valid private key range are discarded.
func MakeRandom(rng io.Reader, compressed bool) (*ECPair, error) {
	var buf [PrivKeyBytesLen]byte
	for i := 0; i < maxRandomAttempts; i++ {
		if _, err := io.ReadFull(rng, buf[:]); err != nil {
			return nil, fmt.Errorf("unable to read random bytes: %w",
				err)
		}
		if checkPrivKey(buf[:]) != nil {
			continue
		}
		return FromPrivateKey(buf[:], compressed)
	}

	str := fmt.Sprintf("no valid private key after %d random draws",
		maxRandomAttempts)
	return nil, keyError(ErrMalformedPrivateKey, str)
}

// FromPrivateKey returns the key pair of the 32 bytes private key b.
func FromPrivateKey(b []byte, compressed bool) (*ECPair, error) {
	if err := checkPrivKey(b); err != nil {
		return nil, err
	}

	privKey, pubKey := btcec.PrivKeyFromBytes(b)
	return &ECPair{
		privKey:    privKey,
		pubKey:     pubKey,
		compressed: compressed,
	}, nil
}

// FromWIF returns the key pair of a WIF string for the given network.
func FromWIF(wif string, net *network.Network) (*ECPair, error) {
	decoded, err := DecodeWIF(wif, net)
	if err != nil {
		return nil, err
	}
	return FromPrivateKey(decoded.PrivKey, decoded.CompressPubKey)
}

// FromPublicKey returns a public key only pair. The key must be a valid
// compressed or uncompressed point on the curve, and keeps its format.
// Hybrid encodings are rejected.
func FromPublicKey(b []byte) (*ECPair, error) {
	if len(b) == secp256k1.PubKeyBytesLenUncompressed &&
		b[0] != secp256k1.PubKeyFormatUncompressed {

		str := fmt.Sprintf("unsupported public key format %#02x", b[0])
		return nil, keyError(ErrInvalidPublicKey, str)
	}

	pubKey, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, keyError(ErrInvalidPublicKey, err.Error())
	}
	return &ECPair{
		pubKey:     pubKey,
		compressed: len(b) == btcec.PubKeyBytesLenCompressed,
	}, nil
}

// PublicKey returns the serialized public key.
func (p *ECPair) PublicKey() []byte {
	if p.compressed {
		return p.pubKey.SerializeCompressed()
	}
	return p.pubKey.SerializeUncompressed()
}

// PrivateKey returns the 32 bytes private key, or nil for a public key only
// pair.
func (p *ECPair) PrivateKey() []byte {
	if p.privKey == nil {
		return nil
	}
	return p.privKey.Serialize()
}

// Compressed returns whether the public key serializes in compressed form.
func (p *ECPair) Compressed() bool {
	return p.compressed
}

// ToWIF returns the WIF encoding of the private key for net.
func (p *ECPair) ToWIF(net *network.Network) (string, error) {
	if p.privKey == nil {
		return "", keyError(ErrNoPrivateKey, "key pair has no private key")
	}
	return EncodeWIF(p.privKey.Serialize(), p.compressed, net), nil
}
