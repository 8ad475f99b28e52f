package script

import (
	"fmt"
)

// Builder provides a facility for building custom scripts. It allows you to
// push opcodes, ints, and data while respecting canonical encoding. Errors
// are deferred until Script is called, so the calls can be chained:
//
//	s, err := NewBuilder().AddOp(OP_HASH160).AddData(hash).
//		AddOp(OP_EQUAL).Script()
type Builder struct {
	script Script
	err    error
}

// NewBuilder returns a new instance of a script builder.
func NewBuilder() *Builder {
	return &Builder{script: make(Script, 0, 8)}
}

// AddOp pushes the passed opcode to the end of the script. Data push opcodes
// are rejected, use AddData instead.
func (b *Builder) AddOp(op byte) *Builder {
	if b.err != nil {
		return b
	}
	if isPushOpcode(op) {
		str := fmt.Sprintf("opcode %#02x is a data push, use AddData", op)
		b.err = scriptError(ErrInvalidFormat, str)
		return b
	}
	b.script = append(b.script, Op(op))
	return b
}

// AddData pushes the passed data to the end of the script using the smallest
// length prefix able to carry it.
func (b *Builder) AddData(data []byte) *Builder {
	if b.err != nil {
		return b
	}
	b.script = append(b.script, Push(data))
	return b
}

// AddSmallInt pushes OP_0 or OP_1 through OP_16 for 0 <= n <= 16.
func (b *Builder) AddSmallInt(n int) *Builder {
	if b.err != nil {
		return b
	}
	if n < 0 || n > 16 {
		str := fmt.Sprintf("small integer %d out of range [0, 16]", n)
		b.err = scriptError(ErrInvalidFormat, str)
		return b
	}
	b.script = append(b.script, Op(smallIntOpcode(n)))
	return b
}

// Script returns the currently built script. When any errors occurred while
// building the script, the script will be returned up the point of the first
// error along with the error.
func (b *Builder) Script() (Script, error) {
	return b.script, b.err
}
