package script

import (
	"github.com/btcsuite/btcd/txscript"
)

const (
	// MaxDirectPushSize is the largest data push encoded with a single
	// length byte (OP_DATA_75).
	MaxDirectPushSize = txscript.OP_DATA_75

	// MaxPubKeysPerMultiSig is the maximum number of public keys a standard
	// multisig script may commit to.
	MaxPubKeysPerMultiSig = 16
)

// isPushOpcode returns whether op introduces a data push, that is one of
// OP_DATA_1 through OP_DATA_75 or OP_PUSHDATA1/2/4.
func isPushOpcode(op byte) bool {
	return op >= txscript.OP_DATA_1 && op <= txscript.OP_PUSHDATA4
}

// pushOpcode returns the opcode of the canonical push for a data item of the
// given length.
func pushOpcode(size int) byte {
	switch {
	case size == 0:
		return txscript.OP_0
	case size <= MaxDirectPushSize:
		return byte(size)
	case size <= 0xff:
		return txscript.OP_PUSHDATA1
	case size <= 0xffff:
		return txscript.OP_PUSHDATA2
	default:
		return txscript.OP_PUSHDATA4
	}
}

// lengthWidth returns the number of little endian length bytes following a
// push opcode.
func lengthWidth(op byte) int {
	switch op {
	case txscript.OP_PUSHDATA1:
		return 1
	case txscript.OP_PUSHDATA2:
		return 2
	case txscript.OP_PUSHDATA4:
		return 4
	}
	return 0
}

// isSmallInt returns whether or not the opcode is considered a small integer,
// which is an OP_0, or OP_1 through OP_16.
func isSmallInt(op byte) bool {
	return op == txscript.OP_0 ||
		(op >= txscript.OP_1 && op <= txscript.OP_16)
}

// asSmallInt returns the passed opcode, which must be true according to
// isSmallInt(), as an integer.
func asSmallInt(op byte) int {
	if op == txscript.OP_0 {
		return 0
	}
	return int(op - (txscript.OP_1 - 1))
}

// smallIntOpcode returns the opcode pushing the small integer n, 0 <= n <= 16.
func smallIntOpcode(n int) byte {
	if n == 0 {
		return txscript.OP_0
	}
	return byte(txscript.OP_1 - 1 + n)
}
