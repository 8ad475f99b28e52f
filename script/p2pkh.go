package script

import (
	"fmt"

	"github.com/btcsuite/btcd/txscript"
)

// HashSize is the size of the hash committed to by P2PKH, P2SH and P2WPKH
// scripts.
const HashSize = 20

// BuildP2PKH returns a pay-to-pubkey-hash script of the form:
//
//	OP_DUP OP_HASH160 <20-byte hash> OP_EQUALVERIFY OP_CHECKSIG
func BuildP2PKH(hash []byte) (Script, error) {
	if err := checkHashSize(hash, HashSize, "p2pkh"); err != nil {
		return nil, err
	}
	return NewBuilder().
		AddOp(txscript.OP_DUP).
		AddOp(txscript.OP_HASH160).
		AddData(hash).
		AddOp(txscript.OP_EQUALVERIFY).
		AddOp(txscript.OP_CHECKSIG).
		Script()
}

// MatchP2PKH returns the pubkey hash of s if s is a pay-to-pubkey-hash
// script.
func MatchP2PKH(s Script) ([]byte, bool) {
	if len(s) != 5 ||
		!isOp(s[0], txscript.OP_DUP) ||
		!isOp(s[1], txscript.OP_HASH160) ||
		!isCanonicalPush(s[2], HashSize) ||
		!isOp(s[3], txscript.OP_EQUALVERIFY) ||
		!isOp(s[4], txscript.OP_CHECKSIG) {

		return nil, false
	}
	return copyBytes(s[2].Data), true
}

func checkHashSize(hash []byte, size int, name string) error {
	if len(hash) != size {
		str := fmt.Sprintf("%s hash must be %d bytes, got %d", name,
			size, len(hash))
		return scriptError(ErrInvalidTemplateParameters, str)
	}
	return nil
}
