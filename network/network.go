package network

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
)

// Network type represents prefixes for each network
// https://en.bitcoin.it/wiki/List_of_address_prefixes
type Network struct {
	Name string
	// Prefix prepended to messages before signing them with a key of this
	// network.
	MessagePrefix string
	// BIP32 hierarchical deterministic extended key magics
	HDPublicKey  uint32
	HDPrivateKey uint32
	// Address encoding magic
	PubKeyHash byte
	ScriptHash byte
	// First byte of a WIF private key
	Wif byte
	// Human-readable part for Bech32 encoded segwit addresses, as defined
	// in BIP 173. Empty for chains without segwit.
	Bech32 string
}

// FromChainParams returns the network parameters described by a btcd chain
// configuration. The message prefix is not part of chaincfg.Params and has
// to be provided by the caller.
func FromChainParams(params *chaincfg.Params, messagePrefix string) Network {
	return Network{
		Name:          params.Name,
		MessagePrefix: messagePrefix,
		HDPublicKey:   binary.BigEndian.Uint32(params.HDPublicKeyID[:]),
		HDPrivateKey:  binary.BigEndian.Uint32(params.HDPrivateKeyID[:]),
		PubKeyHash:    params.PubKeyHashAddrID,
		ScriptHash:    params.ScriptHashAddrID,
		Wif:           params.PrivateKeyID,
		Bech32:        params.Bech32HRPSegwit,
	}
}

const bitcoinMessagePrefix = "\x18Bitcoin Signed Message:\n"

// Bitcoin defines the network parameters for the main Bitcoin network.
var Bitcoin = FromChainParams(&chaincfg.MainNetParams, bitcoinMessagePrefix)

// Testnet defines the network parameters for the Bitcoin test network
// (version 3).
var Testnet = FromChainParams(&chaincfg.TestNet3Params, bitcoinMessagePrefix)

// Regtest defines the network parameters for the Bitcoin regression test
// network.
var Regtest = FromChainParams(&chaincfg.RegressionNetParams, bitcoinMessagePrefix)

// Litecoin defines the network parameters for the main Litecoin network.
var Litecoin = Network{
	Name:          "litecoin",
	MessagePrefix: "\x19Litecoin Signed Message:\n",
	HDPublicKey:   0x019da462,
	HDPrivateKey:  0x019d9cfe,
	PubKeyHash:    0x30,
	ScriptHash:    0x32,
	Wif:           0xb0,
	Bech32:        "ltc",
}

// Liquid defines the unconfidential address parameters for the main Liquid
// network.
var Liquid = Network{
	Name:          "liquid",
	MessagePrefix: "\x18Liquid Signed Message:\n",
	HDPublicKey:   0x0488b21e,
	HDPrivateKey:  0x0488ade4,
	PubKeyHash:    57,
	ScriptHash:    39,
	Wif:           0x80,
	Bech32:        "ex",
}

// LiquidRegtest defines the unconfidential address parameters for the
// Elements regression test network.
var LiquidRegtest = Network{
	Name:          "liquidregtest",
	MessagePrefix: "\x18Liquid Signed Message:\n",
	HDPublicKey:   0x043587cf,
	HDPrivateKey:  0x04358394,
	PubKeyHash:    235,
	ScriptHash:    75,
	Wif:           0xef,
	Bech32:        "ert",
}

// Presets lists the built-in networks in lookup order.
var Presets = []*Network{
	&Bitcoin, &Testnet, &Regtest, &Litecoin, &Liquid, &LiquidRegtest,
}

// ByName returns the built-in network with the given name. The lookup is
// case insensitive and also accepts the aliases "mainnet" and "testnet".
func ByName(name string) (*Network, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "mainnet", "bitcoin":
		return &Bitcoin, nil
	case "testnet":
		return &Testnet, nil
	}

	for _, n := range Presets {
		if n.Name == name {
			return n, nil
		}
	}

	return nil, networkError(
		ErrUnknownNetwork, fmt.Sprintf("unknown network %q", name),
	)
}

// Validate checks that a caller supplied profile is usable by the codecs.
func (n *Network) Validate() error {
	if n.Name == "" {
		return networkError(ErrInvalidProfile, "network name is empty")
	}
	if n.PubKeyHash == n.ScriptHash {
		str := fmt.Sprintf("network %s: pubkey hash and script hash "+
			"versions must differ, both are %#02x", n.Name, n.PubKeyHash)
		return networkError(ErrInvalidProfile, str)
	}
	if n.Bech32 != "" {
		if n.Bech32 != strings.ToLower(n.Bech32) {
			str := fmt.Sprintf("network %s: bech32 prefix %q must be "+
				"lower case", n.Name, n.Bech32)
			return networkError(ErrInvalidProfile, str)
		}
		for i := 0; i < len(n.Bech32); i++ {
			if n.Bech32[i] < 33 || n.Bech32[i] > 126 {
				str := fmt.Sprintf("network %s: invalid character "+
					"in bech32 prefix %q", n.Name, n.Bech32)
				return networkError(ErrInvalidProfile, str)
			}
		}
		if len(n.Bech32) > 83 {
			str := fmt.Sprintf("network %s: bech32 prefix is too long",
				n.Name)
			return networkError(ErrInvalidProfile, str)
		}
	}
	return nil
}

// String returns the name of the network.
func (n *Network) String() string {
	return n.Name
}
