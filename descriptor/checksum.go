package descriptor

import (
	"fmt"
	"strings"
)

const (
	inputCharset = "0123456789()[],'/*abcdefgh@:$%{}" +
		"IJKLMNOPQRSTUVWXYZ&+-.;<=>?!^_|~" +
		"ijklmnopqrstuvwxyzABCDEFGH`#\"\\ "

	checksumCharset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

	// ChecksumLength is the number of characters of a descriptor checksum.
	ChecksumLength = 8
)

var generator = [5]uint64{
	0xf5dee51989, 0xa9fdca3312, 0x1bab10e32d, 0x3706b1677a, 0x644d626ffd,
}

type polymod uint64

func (c *polymod) feed(v uint64) {
	top := uint64(*c) >> 35
	chk := (uint64(*c)&0x7ffffffff)<<5 ^ v
	for i, g := range generator {
		if (top>>uint(i))&1 == 1 {
			chk ^= g
		}
	}
	*c = polymod(chk)
}

// Checksum returns the 8 characters checksum of a descriptor given without
// its '#' suffix.
func Checksum(desc string) (string, error) {
	c := polymod(1)
	groups := make([]uint64, 0, 3)
	for i := 0; i < len(desc); i++ {
		pos := strings.IndexByte(inputCharset, desc[i])
		if pos < 0 {
			str := fmt.Sprintf("invalid character %q at position %d",
				desc[i], i)
			return "", descError(ErrInvalidDescriptor, str)
		}

		// Low 5 bits of every character first, then the high bits of
		// every group of 3 characters packed into a single symbol.
		c.feed(uint64(pos) & 31)
		groups = append(groups, uint64(pos)>>5)
		if len(groups) == 3 {
			c.feed(groups[0]*9 + groups[1]*3 + groups[2])
			groups = groups[:0]
		}
	}
	switch len(groups) {
	case 1:
		c.feed(groups[0])
	case 2:
		c.feed(groups[0]*3 + groups[1])
	}

	for i := 0; i < ChecksumLength; i++ {
		c.feed(0)
	}
	sum := uint64(c) ^ 1

	var b strings.Builder
	b.Grow(ChecksumLength)
	for i := 0; i < ChecksumLength; i++ {
		b.WriteByte(checksumCharset[(sum>>(5*(7-uint(i))))&31])
	}
	return b.String(), nil
}

// trimAndValidateChecksum splits the optional checksum off descriptor and
// verifies it.
func trimAndValidateChecksum(descriptor string) (string, error) {
	str := strings.Split(descriptor, "#")
	switch len(str) {
	case 1:
		if _, err := Checksum(str[0]); err != nil {
			return "", err
		}
		return str[0], nil
	case 2:
		if err := validateChecksum(str[0], str[1]); err != nil {
			return "", err
		}
		return str[0], nil
	default:
		return "", descError(ErrInvalidDescriptor,
			"descriptor should contain at most one # symbol")
	}
}

func validateChecksum(desc, checksum string) error {
	if len(checksum) != ChecksumLength {
		str := fmt.Sprintf("checksum must be %d characters, got %d",
			ChecksumLength, len(checksum))
		return descError(ErrInvalidChecksum, str)
	}

	expected, err := Checksum(desc)
	if err != nil {
		return err
	}
	if checksum != expected {
		str := fmt.Sprintf("checksum %s does not match, expected %s",
			checksum, expected)
		return descError(ErrInvalidChecksum, str)
	}
	return nil
}
