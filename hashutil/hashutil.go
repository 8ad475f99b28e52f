// Package hashutil provides the digest primitives used by the address and
// script codecs.
package hashutil

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160"
)

const (
	// Sha256Size is the length in bytes of a SHA-256 digest.
	Sha256Size = chainhash.HashSize

	// Hash160Size is the length in bytes of a RIPEMD160(SHA-256) digest.
	Hash160Size = ripemd160.Size
)

// Sha256 calculates sha256(b).
func Sha256(b []byte) []byte {
	return chainhash.HashB(b)
}

// DoubleSha256 calculates sha256(sha256(b)).
func DoubleSha256(b []byte) []byte {
	return chainhash.DoubleHashB(b)
}

// Hash160 calculates the hash ripemd160(sha256(b)).
func Hash160(b []byte) []byte {
	hasher := ripemd160.New()
	hasher.Write(chainhash.HashB(b))
	return hasher.Sum(nil)
}
