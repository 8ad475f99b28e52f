package address

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	// MaxWitnessVersion is the highest witness version a segwit address
	// can carry.
	MaxWitnessVersion = 16

	minWitnessProgramSize = 2
	maxWitnessProgramSize = 40
)

// Bech32 defines the structure of a native segwit address.
type Bech32 struct {
	Prefix  string
	Version byte
	Data    []byte
}

// EncodeSegwit returns the segwit address with human-readable prefix hrp for
// the given witness version and program. Version 0 addresses use the bech32
// checksum, later versions use bech32m. An empty hrp is rejected.
func EncodeSegwit(hrp string, version byte, program []byte) (string, error) {
	if hrp == "" {
		return "", addressError(ErrInvalidFormat,
			"segwit address requires a human-readable prefix")
	}
	if err := checkWitness(version, program); err != nil {
		return "", err
	}

	converted, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", addressError(ErrInvalidFormat, err.Error())
	}
	data := append([]byte{version}, converted...)

	var encoded string
	if version == 0 {
		encoded, err = bech32.Encode(hrp, data)
	} else {
		encoded, err = bech32.EncodeM(hrp, data)
	}
	if err != nil {
		return "", addressError(ErrInvalidFormat, err.Error())
	}
	return encoded, nil
}

// DecodeSegwit decodes a segwit address. The returned prefix is always lower
// case.
func DecodeSegwit(s string) (*Bech32, error) {
	hrp, data, bechVersion, err := bech32.DecodeGeneric(s)
	if err != nil {
		return nil, fromBech32Error(s, err)
	}
	if len(data) < 1 {
		str := fmt.Sprintf("%q has an empty data part", s)
		return nil, addressError(ErrInvalidFormat, str)
	}

	version := data[0]
	if version > MaxWitnessVersion {
		str := fmt.Sprintf("%q has unsupported witness version %d", s,
			version)
		return nil, addressError(ErrUnsupportedWitnessVersion, str)
	}

	// Version 0 programs are checksummed with bech32, every later version
	// with bech32m.
	if (version == 0 && bechVersion != bech32.Version0) ||
		(version != 0 && bechVersion != bech32.VersionM) {

		str := fmt.Sprintf("%q uses the wrong checksum variant for "+
			"witness version %d", s, version)
		return nil, addressError(ErrInvalidChecksum, str)
	}

	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return nil, fromBech32Error(s, err)
	}
	if err := checkWitness(version, program); err != nil {
		return nil, err
	}

	return &Bech32{
		Prefix:  hrp,
		Version: version,
		Data:    program,
	}, nil
}

func checkWitness(version byte, program []byte) error {
	if version > MaxWitnessVersion {
		str := fmt.Sprintf("unsupported witness version %d", version)
		return addressError(ErrUnsupportedWitnessVersion, str)
	}

	size := len(program)
	if size < minWitnessProgramSize || size > maxWitnessProgramSize {
		str := fmt.Sprintf("witness program must be between %d and %d "+
			"bytes, got %d", minWitnessProgramSize,
			maxWitnessProgramSize, size)
		return addressError(ErrInvalidWitnessProgramLength, str)
	}
	if version == 0 && size != 20 && size != 32 {
		str := fmt.Sprintf("version 0 witness program must be 20 or 32 "+
			"bytes, got %d", size)
		return addressError(ErrInvalidWitnessProgramLength, str)
	}
	return nil
}

// fromBech32Error maps an error of the bech32 package to an address error.
// Checksum mismatches keep their kind, everything else is a format error.
func fromBech32Error(s string, err error) error {
	var errChecksum bech32.ErrInvalidChecksum
	if errors.As(err, &errChecksum) {
		str := fmt.Sprintf("%q has an invalid checksum %s", s,
			errChecksum.Actual)
		return addressError(ErrInvalidChecksum, str)
	}

	str := fmt.Sprintf("%q is not a valid bech32 string: %v", s, err)
	return addressError(ErrInvalidFormat, str)
}
