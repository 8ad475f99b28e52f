package payment

import (
	"errors"
	"fmt"

	"github.com/vulpemventures/go-bitaddress/address"
	"github.com/vulpemventures/go-bitaddress/hashutil"
	"github.com/vulpemventures/go-bitaddress/keypair"
	"github.com/vulpemventures/go-bitaddress/network"
	"github.com/vulpemventures/go-bitaddress/script"
)

var (
	// ErrInvalidPublicKey is returned when a public key is not a valid
	// serialized secp256k1 point.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrEmptyScript is returned when a payment is built from, or wraps, an
	// empty script.
	ErrEmptyScript = errors.New("payment's script can't be empty or nil")

	// ErrMissingHash is returned when an address is requested from a
	// payment that does not carry the matching hash.
	ErrMissingHash = errors.New("payment's hash can't be empty or nil")

	// ErrSegwitUnsupported is returned when a segwit address is requested
	// on a network without a bech32 prefix.
	ErrSegwitUnsupported = errors.New("network has no bech32 prefix")
)

// Payment defines the structure that holds the information different addresses
type Payment struct {
	Hash          []byte
	WitnessHash   []byte
	Script        []byte
	WitnessScript []byte
	Redeem        *Payment
	PublicKey     []byte
	Network       *network.Network
}

// FromPublicKey creates a Payment struct from a serialized public key, either
// compressed or uncompressed. The key is hashed as given.
func FromPublicKey(pubKey []byte, net *network.Network) (*Payment, error) {
	if _, err := keypair.FromPublicKey(pubKey); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	pkHash := hashutil.Hash160(pubKey)
	p2pkh, err := scriptBytes(script.BuildP2PKH(pkHash))
	if err != nil {
		return nil, err
	}
	p2wpkh, err := scriptBytes(script.BuildP2WPKH(pkHash))
	if err != nil {
		return nil, err
	}

	return &Payment{
		Hash:          pkHash,
		WitnessHash:   pkHash,
		Script:        p2pkh,
		WitnessScript: p2wpkh,
		PublicKey:     append([]byte(nil), pubKey...),
		Network:       networkOrDefault(net),
	}, nil
}

// FromPublicKeys creates a multi-signature Payment struct from list of public
// keys. The keys are committed to in the given order and the returned payment
// wraps the multisig redeem script, see FromPayment.
func FromPublicKeys(pubKeys [][]byte, nRequired int, net *network.Network) (
	*Payment, error) {

	for i, pubKey := range pubKeys {
		if _, err := keypair.FromPublicKey(pubKey); err != nil {
			return nil, fmt.Errorf("%w: key %d: %v",
				ErrInvalidPublicKey, i, err)
		}
	}

	multiSigScript, err := scriptBytes(script.BuildMultisig(nRequired, pubKeys))
	if err != nil {
		return nil, err
	}

	redeem, err := FromScript(multiSigScript, net)
	if err != nil {
		return nil, err
	}

	return FromPayment(redeem)
}

// FromPayment creates a Payment struct wrapping another Payment. The witness
// script of the wrapped payment is hashed if it has one, its script
// otherwise, so wrapping a P2WPKH or P2WSH payment into P2SH gives the
// nested segwit form.
func FromPayment(payment *Payment) (*Payment, error) {
	if len(payment.Script) == 0 && len(payment.WitnessScript) == 0 {
		return nil, ErrEmptyScript
	}

	redeem := payment.copy()
	// the only case where the witnessScript is null is when wrapping multisig
	scriptToHash := redeem.Script
	if len(redeem.WitnessScript) > 0 {
		scriptToHash = redeem.WitnessScript
	}

	scriptHash := hashutil.Hash160(scriptToHash)
	witnessScriptHash := hashutil.Sha256(scriptToHash)

	p2sh, err := scriptBytes(script.BuildP2SH(scriptHash))
	if err != nil {
		return nil, err
	}
	p2wsh, err := scriptBytes(script.BuildP2WSH(witnessScriptHash))
	if err != nil {
		return nil, err
	}

	return &Payment{
		Hash:          scriptHash,
		WitnessHash:   witnessScriptHash,
		Script:        p2sh,
		WitnessScript: p2wsh,
		Redeem:        redeem,
		Network:       redeem.Network,
	}, nil
}

// FromScript parses an output script into a Payment struct. Hashes are
// filled in for the standard single-hash templates. Any other script, bare
// multisig included, is kept as is so that it can be wrapped with
// FromPayment.
func FromScript(outputScript []byte, net *network.Network) (*Payment, error) {
	if len(outputScript) == 0 {
		return nil, ErrEmptyScript
	}

	s, err := script.Parse(outputScript)
	if err != nil {
		return nil, err
	}

	payment := &Payment{
		Network: networkOrDefault(net),
	}

	tmpl, params, ok := script.Match(s)
	if !ok {
		payment.Script = copyBytes(outputScript)
		return payment, nil
	}

	switch tmpl.Class() {
	case script.WitnessV0PubKeyHashTy:
		p2pkh, err := scriptBytes(script.BuildP2PKH(params.Hash))
		if err != nil {
			return nil, err
		}
		payment.Hash = params.Hash
		payment.Script = p2pkh
		payment.WitnessHash = params.Hash
		payment.WitnessScript = copyBytes(outputScript)

	case script.WitnessV0ScriptHashTy:
		payment.WitnessHash = params.Hash
		payment.WitnessScript = copyBytes(outputScript)

	case script.PubKeyHashTy, script.ScriptHashTy:
		payment.Hash = params.Hash
		payment.Script = copyBytes(outputScript)

	default:
		payment.Script = copyBytes(outputScript)
	}

	return payment, nil
}

// PubKeyHash is a method of the Payment struct to derive a base58 p2pkh address
func (p *Payment) PubKeyHash() (string, error) {
	if len(p.Hash) == 0 {
		return "", ErrMissingHash
	}
	return address.EncodeBase58Check(p.Network.PubKeyHash, p.Hash), nil
}

// ScriptHash is a method of the Payment struct to derive a base58 p2sh address
func (p *Payment) ScriptHash() (string, error) {
	if len(p.Hash) == 0 {
		return "", ErrMissingHash
	}
	return address.EncodeBase58Check(p.Network.ScriptHash, p.Hash), nil
}

// WitnessPubKeyHash is a method of the Payment struct to derive a bech32
// p2wpkh address
func (p *Payment) WitnessPubKeyHash() (string, error) {
	if len(p.WitnessHash) != script.HashSize {
		return "", fmt.Errorf("%w: p2wpkh requires a %d bytes witness "+
			"hash", ErrMissingHash, script.HashSize)
	}
	return p.segwitAddress()
}

// WitnessScriptHash is a method of the Payment struct to derive a bech32
// p2wsh address
func (p *Payment) WitnessScriptHash() (string, error) {
	if len(p.WitnessHash) != script.WitnessScriptHashSize {
		return "", fmt.Errorf("%w: p2wsh requires a %d bytes witness "+
			"hash", ErrMissingHash, script.WitnessScriptHashSize)
	}
	return p.segwitAddress()
}

func (p *Payment) segwitAddress() (string, error) {
	if p.Network.Bech32 == "" {
		return "", fmt.Errorf("%w: %s", ErrSegwitUnsupported, p.Network.Name)
	}
	return address.EncodeSegwit(p.Network.Bech32, 0, p.WitnessHash)
}

func (p *Payment) copy() *Payment {
	var redeem *Payment
	if p.Redeem != nil {
		redeem = p.Redeem.copy()
	}
	return &Payment{
		Hash:          copyBytes(p.Hash),
		WitnessHash:   copyBytes(p.WitnessHash),
		Script:        copyBytes(p.Script),
		WitnessScript: copyBytes(p.WitnessScript),
		Redeem:        redeem,
		PublicKey:     copyBytes(p.PublicKey),
		Network:       networkOrDefault(p.Network),
	}
}

func networkOrDefault(net *network.Network) *network.Network {
	if net == nil {
		return &network.Bitcoin
	}
	return net
}

// scriptBytes serializes the result of a template builder.
func scriptBytes(s script.Script, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	return s.Bytes()
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
