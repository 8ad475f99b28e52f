package script

import (
	"fmt"

	"github.com/btcsuite/btcd/txscript"
)

const (
	compressedPubKeySize   = 33
	uncompressedPubKeySize = 65
)

// BuildMultisig returns a bare m-of-n multisig script of the form:
//
//	OP_m <pubkey 1> ... <pubkey n> OP_n OP_CHECKMULTISIG
//
// Public keys are pushed in the given order. It is an error unless
// 1 <= m <= n <= 16 and every public key is 33 or 65 bytes long.
func BuildMultisig(m int, pubKeys [][]byte) (Script, error) {
	n := len(pubKeys)
	if n > MaxPubKeysPerMultiSig {
		str := fmt.Sprintf("unable to generate multisig script with %d "+
			"public keys, the maximum is %d", n, MaxPubKeysPerMultiSig)
		return nil, scriptError(ErrInvalidTemplateParameters, str)
	}
	if m < 1 || m > n {
		str := fmt.Sprintf("unable to generate multisig script with %d "+
			"required signatures when there are %d public keys "+
			"available", m, n)
		return nil, scriptError(ErrInvalidTemplateParameters, str)
	}

	builder := NewBuilder().AddSmallInt(m)
	for i, pubKey := range pubKeys {
		if !isPubKeySize(len(pubKey)) {
			str := fmt.Sprintf("public key %d has invalid length %d",
				i, len(pubKey))
			return nil, scriptError(ErrInvalidTemplateParameters, str)
		}
		builder.AddData(pubKey)
	}
	builder.AddSmallInt(n)
	builder.AddOp(txscript.OP_CHECKMULTISIG)

	return builder.Script()
}

// MatchMultisig returns the number of required signatures and the public
// keys, in script order, if s is a bare multisig script.
func MatchMultisig(s Script) (int, [][]byte, bool) {
	// The absolute minimum is 1 pubkey:
	// OP_1 <pubkey> OP_1 OP_CHECKMULTISIG
	l := len(s)
	if l < 4 {
		return 0, nil, false
	}
	if !isSmallInt(s[0].Opcode) || !isSmallInt(s[l-2].Opcode) {
		return 0, nil, false
	}
	if !isOp(s[l-1], txscript.OP_CHECKMULTISIG) {
		return 0, nil, false
	}

	m := asSmallInt(s[0].Opcode)
	n := asSmallInt(s[l-2].Opcode)

	// Verify the number of pubkeys specified matches the actual number
	// of pubkeys provided.
	if m < 1 || m > n || l-3 != n {
		return 0, nil, false
	}

	pubKeys := make([][]byte, 0, n)
	for _, c := range s[1 : l-2] {
		if !c.IsData() || !c.IsMinimal() || !isPubKeySize(len(c.Data)) {
			return 0, nil, false
		}
		pubKeys = append(pubKeys, copyBytes(c.Data))
	}

	return m, pubKeys, true
}

func isPubKeySize(size int) bool {
	return size == compressedPubKeySize || size == uncompressedPubKeySize
}
