package script

import (
	"github.com/btcsuite/btcd/txscript"
)

// BuildP2SH returns a pay-to-script-hash script of the form:
//
//	OP_HASH160 <20-byte script hash> OP_EQUAL
func BuildP2SH(hash []byte) (Script, error) {
	if err := checkHashSize(hash, HashSize, "p2sh"); err != nil {
		return nil, err
	}
	return NewBuilder().
		AddOp(txscript.OP_HASH160).
		AddData(hash).
		AddOp(txscript.OP_EQUAL).
		Script()
}

// MatchP2SH returns the script hash of s if s is a pay-to-script-hash
// script.
func MatchP2SH(s Script) ([]byte, bool) {
	if len(s) != 3 ||
		!isOp(s[0], txscript.OP_HASH160) ||
		!isCanonicalPush(s[1], HashSize) ||
		!isOp(s[2], txscript.OP_EQUAL) {

		return nil, false
	}
	return copyBytes(s[1].Data), true
}
