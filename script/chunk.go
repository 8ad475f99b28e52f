package script

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/btcsuite/btcd/txscript"
)

// Chunk is a single element of a script: either a bare opcode or a data
// push. A data push records the push opcode it was encoded with so that
// non-canonical encodings survive a parse/serialize round trip.
type Chunk struct {
	// Opcode is the opcode of the chunk. For data pushes it is one of
	// OP_DATA_1 through OP_DATA_75 or OP_PUSHDATA1/2/4.
	Opcode byte
	// Data holds the pushed bytes. It is nil for bare opcodes.
	Data []byte
}

// Op returns a chunk for the bare opcode op.
func Op(op byte) Chunk {
	return Chunk{Opcode: op}
}

// Push returns a chunk pushing data with the smallest possible length
// prefix. An empty push is represented by OP_0.
func Push(data []byte) Chunk {
	op := pushOpcode(len(data))
	if op == txscript.OP_0 {
		return Op(op)
	}
	return Chunk{Opcode: op, Data: append([]byte(nil), data...)}
}

// IsData returns whether the chunk is a data push.
func (c Chunk) IsData() bool {
	return isPushOpcode(c.Opcode)
}

// IsMinimal returns whether the chunk is encoded canonically. Bare opcodes
// are always minimal, data pushes are minimal when they use the smallest
// length prefix able to carry their data.
func (c Chunk) IsMinimal() bool {
	if !c.IsData() {
		return true
	}
	return c.Opcode == pushOpcode(len(c.Data))
}

// serializedSize returns the number of bytes of the encoded chunk.
func (c Chunk) serializedSize() int {
	if !c.IsData() {
		return 1
	}
	return 1 + lengthWidth(c.Opcode) + len(c.Data)
}

// check returns an error when the push opcode of c cannot carry its data, or
// when a bare opcode carries data.
func (c Chunk) check() error {
	if !c.IsData() {
		if len(c.Data) > 0 {
			str := fmt.Sprintf("opcode %#02x is not a data push but "+
				"carries %d bytes", c.Opcode, len(c.Data))
			return scriptError(ErrInvalidFormat, str)
		}
		return nil
	}

	size := uint64(len(c.Data))
	var fits bool
	switch c.Opcode {
	case txscript.OP_PUSHDATA1:
		fits = size <= math.MaxUint8
	case txscript.OP_PUSHDATA2:
		fits = size <= math.MaxUint16
	case txscript.OP_PUSHDATA4:
		fits = size <= math.MaxUint32
	default:
		fits = size == uint64(c.Opcode)
	}
	if !fits {
		str := fmt.Sprintf("push opcode %#02x cannot carry %d bytes",
			c.Opcode, size)
		return scriptError(ErrInvalidFormat, str)
	}
	return nil
}

// appendTo appends the serialized chunk to buf.
func (c Chunk) appendTo(buf []byte) []byte {
	buf = append(buf, c.Opcode)
	if !c.IsData() {
		return buf
	}

	switch c.Opcode {
	case txscript.OP_PUSHDATA1:
		buf = append(buf, byte(len(c.Data)))
	case txscript.OP_PUSHDATA2:
		buf = binary.LittleEndian.AppendUint16(buf, uint16(len(c.Data)))
	case txscript.OP_PUSHDATA4:
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(c.Data)))
	}
	return append(buf, c.Data...)
}

// Script is an ordered sequence of chunks.
type Script []Chunk

// Parse decodes a serialized script into its chunks. Non-minimal pushes are
// kept as they are, so serializing the result always gives back b.
func Parse(b []byte) (Script, error) {
	s := make(Script, 0, 8)
	for i := 0; i < len(b); {
		op := b[i]
		if !isPushOpcode(op) {
			s = append(s, Op(op))
			i++
			continue
		}

		off := i + 1
		size := int(op)
		if width := lengthWidth(op); width > 0 {
			if len(b[off:]) < width {
				str := fmt.Sprintf("opcode %#02x at offset %d requires "+
					"%d length bytes, but script only has %d "+
					"remaining", op, i, width, len(b[off:]))
				return nil, scriptError(ErrInvalidFormat, str)
			}

			var l uint64
			switch width {
			case 1:
				l = uint64(b[off])
			case 2:
				l = uint64(binary.LittleEndian.Uint16(b[off:]))
			case 4:
				l = uint64(binary.LittleEndian.Uint32(b[off:]))
			}
			off += width

			if l > uint64(len(b[off:])) {
				str := fmt.Sprintf("opcode %#02x at offset %d pushes "+
					"%d bytes, but script only has %d remaining",
					op, i, l, len(b[off:]))
				return nil, scriptError(ErrInvalidFormat, str)
			}
			size = int(l)
		} else if size > len(b[off:]) {
			str := fmt.Sprintf("opcode %#02x at offset %d pushes %d "+
				"bytes, but script only has %d remaining", op, i,
				size, len(b[off:]))
			return nil, scriptError(ErrInvalidFormat, str)
		}

		data := make([]byte, size)
		copy(data, b[off:off+size])
		s = append(s, Chunk{Opcode: op, Data: data})
		i = off + size
	}

	return s, nil
}

// Bytes returns the serialized script, the concatenation of the encoding of
// every chunk. It fails with ErrInvalidFormat when a chunk's push opcode
// cannot carry its data.
func (s Script) Bytes() ([]byte, error) {
	size := 0
	for i, c := range s {
		if err := c.check(); err != nil {
			return nil, fmt.Errorf("chunk %d: %w", i, err)
		}
		size += c.serializedSize()
	}

	buf := make([]byte, 0, size)
	for _, c := range s {
		buf = c.appendTo(buf)
	}
	return buf, nil
}

// IsMinimal returns whether every data push of the script is canonical.
func (s Script) IsMinimal() bool {
	for _, c := range s {
		if !c.IsMinimal() {
			return false
		}
	}
	return true
}

// String returns the disassembly of the script in the one-line format used
// by btcd, with data pushes rendered as hex.
func (s Script) String() string {
	b, err := s.Bytes()
	if err != nil {
		return fmt.Sprintf("[error: %v]", err)
	}
	disasm, err := txscript.DisasmString(b)
	if err != nil {
		return fmt.Sprintf("[error: %v]", err)
	}
	return disasm
}
