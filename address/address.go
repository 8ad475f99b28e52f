package address

import (
	"errors"
	"fmt"

	"github.com/vulpemventures/go-bitaddress/hashutil"
	"github.com/vulpemventures/go-bitaddress/network"
	"github.com/vulpemventures/go-bitaddress/script"
)

// FromOutputScript returns the address of the output script b on the given
// network. The standard templates are tried in the order returned by
// script.Templates and the first match decides the encoding:
//
//   - P2PKH: Base58Check with the network pubkey hash version
//   - P2SH: Base58Check with the network script hash version
//   - P2WPKH, P2WSH: version 0 segwit address with the network prefix
//   - Multisig: Base58Check with the network pubkey hash version over the
//     hash160 of the script
//
// The multisig rendering is a legacy one, ToOutputScript maps it back to a
// P2PKH script rather than to the multisig script.
func FromOutputScript(b []byte, net *network.Network) (string, error) {
	s, err := script.Parse(b)
	if err != nil {
		return "", addressError(ErrInvalidFormat, err.Error())
	}

	tmpl, params, ok := script.Match(s)
	if !ok {
		str := fmt.Sprintf("script %v does not match any standard "+
			"template", s)
		return "", addressError(ErrNoMatchingScriptTemplate, str)
	}

	switch tmpl.Class() {
	case script.PubKeyHashTy:
		return EncodeBase58Check(net.PubKeyHash, params.Hash), nil

	case script.ScriptHashTy:
		return EncodeBase58Check(net.ScriptHash, params.Hash), nil

	case script.WitnessV0PubKeyHashTy, script.WitnessV0ScriptHashTy:
		if net.Bech32 == "" {
			str := fmt.Sprintf("network %v has no bech32 prefix for "+
				"%v scripts", net.Name, tmpl.Class())
			return "", addressError(ErrInvalidAddress, str)
		}
		return EncodeSegwit(net.Bech32, 0, params.Hash)

	case script.MultiSigTy:
		return EncodeBase58Check(net.PubKeyHash, hashutil.Hash160(b)), nil
	}

	str := fmt.Sprintf("no address encoding for %v scripts", tmpl.Class())
	return "", addressError(ErrNoMatchingScriptTemplate, str)
}

// ToOutputScript returns the output script paying to addr on the given
// network. The address is decoded as Base58Check first and as a segwit
// address when that fails.
//
// Segwit addresses are accepted in either all upper or all lower case.
// FromOutputScript always renders them lower case, so an upper case address
// does not round trip character for character.
func ToOutputScript(addr string, net *network.Network) ([]byte, error) {
	s, err := toScript(addr, net)
	if err != nil {
		return nil, err
	}
	return s.Bytes()
}

// DecodeType returns the class of the output script paying to addr on the
// given network.
func DecodeType(addr string, net *network.Network) (script.Class, error) {
	s, err := toScript(addr, net)
	if err != nil {
		return script.NonStandardTy, err
	}
	return script.Classify(s), nil
}

func toScript(addr string, net *network.Network) (script.Script, error) {
	base58, errBase58 := DecodeBase58Check(addr)
	if errBase58 == nil {
		return fromBase58(addr, base58, net)
	}

	segwit, errSegwit := DecodeSegwit(addr)
	if errSegwit == nil {
		return fromSegwit(addr, segwit, net)
	}
	log.Debugf("Unable to decode %v: base58: %v, bech32: %v", addr,
		errBase58, errSegwit)

	// A segwit error other than a format one means addr is a well formed
	// bech32 string, so it is more telling than the base58 error.
	if !errors.Is(errSegwit, ErrInvalidFormat) {
		return nil, errSegwit
	}
	if errors.Is(errBase58, ErrInvalidChecksum) {
		return nil, errBase58
	}

	str := fmt.Sprintf("%q is neither a base58check nor a bech32 address",
		addr)
	return nil, addressError(ErrInvalidAddress, str)
}

func fromBase58(addr string, b *Base58, net *network.Network) (
	script.Script, error) {

	if len(b.Data) != script.HashSize {
		str := fmt.Sprintf("%q has a %d bytes payload, expected %d",
			addr, len(b.Data), script.HashSize)
		return nil, addressError(ErrInvalidAddress, str)
	}

	switch b.Version {
	case net.PubKeyHash:
		return script.BuildP2PKH(b.Data)
	case net.ScriptHash:
		return script.BuildP2SH(b.Data)
	}

	str := fmt.Sprintf("%q has version %#02x which is not valid for "+
		"network %v", addr, b.Version, net.Name)
	return nil, addressError(ErrInvalidAddress, str)
}

func fromSegwit(addr string, b *Bech32, net *network.Network) (
	script.Script, error) {

	if net.Bech32 == "" || b.Prefix != net.Bech32 {
		str := fmt.Sprintf("%q has prefix %q which is not valid for "+
			"network %v", addr, b.Prefix, net.Name)
		return nil, addressError(ErrInvalidAddress, str)
	}
	if b.Version != 0 {
		str := fmt.Sprintf("%q: no output script for witness version %d",
			addr, b.Version)
		return nil, addressError(ErrUnsupportedWitnessVersion, str)
	}

	switch len(b.Data) {
	case script.HashSize:
		return script.BuildP2WPKH(b.Data)
	case script.WitnessScriptHashSize:
		return script.BuildP2WSH(b.Data)
	}

	// DecodeSegwit never returns other version 0 program sizes.
	str := fmt.Sprintf("%q has a %d bytes witness program", addr,
		len(b.Data))
	return nil, addressError(ErrInvalidWitnessProgramLength, str)
}
