package script

import (
	"github.com/btcsuite/btcd/txscript"
)

// WitnessScriptHashSize is the size of the sha256 script hash committed to
// by P2WSH scripts.
const WitnessScriptHashSize = 32

// BuildP2WPKH returns a version 0 pay-to-witness-pubkey-hash script of the
// form:
//
//	OP_0 <20-byte pubkey hash>
func BuildP2WPKH(hash []byte) (Script, error) {
	if err := checkHashSize(hash, HashSize, "p2wpkh"); err != nil {
		return nil, err
	}
	return NewBuilder().AddOp(txscript.OP_0).AddData(hash).Script()
}

// MatchP2WPKH returns the pubkey hash of s if s is a version 0
// pay-to-witness-pubkey-hash script.
func MatchP2WPKH(s Script) ([]byte, bool) {
	return matchWitnessV0(s, HashSize)
}

// BuildP2WSH returns a version 0 pay-to-witness-script-hash script of the
// form:
//
//	OP_0 <32-byte script hash>
func BuildP2WSH(hash []byte) (Script, error) {
	err := checkHashSize(hash, WitnessScriptHashSize, "p2wsh")
	if err != nil {
		return nil, err
	}
	return NewBuilder().AddOp(txscript.OP_0).AddData(hash).Script()
}

// MatchP2WSH returns the script hash of s if s is a version 0
// pay-to-witness-script-hash script.
func MatchP2WSH(s Script) ([]byte, bool) {
	return matchWitnessV0(s, WitnessScriptHashSize)
}

func matchWitnessV0(s Script, size int) ([]byte, bool) {
	if len(s) != 2 ||
		!isOp(s[0], txscript.OP_0) ||
		!isCanonicalPush(s[1], size) {

		return nil, false
	}
	return copyBytes(s[1].Data), true
}
