package descriptor

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/txscript"
	"github.com/vulpemventures/go-bitaddress/address"
	"github.com/vulpemventures/go-bitaddress/hashutil"
	"github.com/vulpemventures/go-bitaddress/network"
	"github.com/vulpemventures/go-bitaddress/script"
)

// Expression names, as returned by Descriptor.Type.
const (
	TypePkh         = "pkh"
	TypeWpkh        = "wpkh"
	TypeSh          = "sh"
	TypeWsh         = "wsh"
	TypeMulti       = "multi"
	TypeSortedMulti = "sortedmulti"
	TypeAddr        = "addr"
	TypeRaw         = "raw"
)

var exprRegexp = regexp.MustCompile(`^(\w+)\((.*)\)$`)

// scope is the position of an expression inside the descriptor tree.
type scope int

const (
	scopeTop scope = iota
	scopeP2SH
	scopeP2WSH
)

func (s scope) String() string {
	switch s {
	case scopeP2SH:
		return "sh()"
	case scopeP2WSH:
		return "wsh()"
	default:
		return "top level"
	}
}

type node struct {
	typ    string
	script []byte
	keys   []Key
}

// Parse parses a descriptor, verifying its checksum when present, and
// computes its output script for the given network.
func Parse(desc string, net *network.Network) (*Descriptor, error) {
	if net == nil {
		net = &network.Bitcoin
	}

	expr, err := trimAndValidateChecksum(strings.TrimSpace(desc))
	if err != nil {
		return nil, err
	}

	n, err := parseExpr(expr, scopeTop, net)
	if err != nil {
		return nil, err
	}

	return &Descriptor{
		expr:   expr,
		typ:    n.typ,
		net:    net,
		script: n.script,
		keys:   n.keys,
	}, nil
}

func parseExpr(expr string, sc scope, net *network.Network) (*node, error) {
	match := exprRegexp.FindStringSubmatch(expr)
	if match == nil {
		return nil, descError(ErrInvalidDescriptor,
			fmt.Sprintf("invalid expression %q", expr))
	}
	typ, args := match[1], match[2]

	switch typ {
	case TypePkh:
		return parsePkh(args, sc, net)
	case TypeWpkh:
		if sc == scopeP2WSH {
			return nil, notAllowed(typ, sc)
		}
		return parseWpkh(args, net)
	case TypeSh:
		if sc != scopeTop {
			return nil, notAllowed(typ, sc)
		}
		return parseSh(args, net)
	case TypeWsh:
		if sc == scopeP2WSH {
			return nil, notAllowed(typ, sc)
		}
		return parseWsh(args, net)
	case TypeMulti, TypeSortedMulti:
		return parseMulti(typ, args, sc, net)
	case TypeAddr:
		if sc != scopeTop {
			return nil, notAllowed(typ, sc)
		}
		b, err := address.ToOutputScript(args, net)
		if err != nil {
			return nil, descError(ErrInvalidDescriptor,
				fmt.Sprintf("invalid address: %v", err))
		}
		return &node{typ: typ, script: b}, nil
	case TypeRaw:
		if sc != scopeTop {
			return nil, notAllowed(typ, sc)
		}
		b, err := hex.DecodeString(args)
		if err != nil {
			return nil, descError(ErrInvalidDescriptor,
				fmt.Sprintf("invalid raw script: %v", err))
		}
		return &node{typ: typ, script: b}, nil
	default:
		return nil, descError(ErrInvalidDescriptor,
			fmt.Sprintf("unsupported expression %q", typ))
	}
}

func parsePkh(args string, sc scope, net *network.Network) (*node, error) {
	key, err := parseScopedKey(args, sc, net)
	if err != nil {
		return nil, err
	}
	b, err := scriptBytes(script.BuildP2PKH(hashutil.Hash160(key.PubKey)))
	if err != nil {
		return nil, err
	}
	return &node{typ: TypePkh, script: b, keys: []Key{key}}, nil
}

func parseWpkh(args string, net *network.Network) (*node, error) {
	key, err := parseScopedKey(args, scopeP2WSH, net)
	if err != nil {
		return nil, err
	}
	b, err := scriptBytes(script.BuildP2WPKH(hashutil.Hash160(key.PubKey)))
	if err != nil {
		return nil, err
	}
	return &node{typ: TypeWpkh, script: b, keys: []Key{key}}, nil
}

func parseSh(args string, net *network.Network) (*node, error) {
	inner, err := parseExpr(args, scopeP2SH, net)
	if err != nil {
		return nil, err
	}
	if len(inner.script) > txscript.MaxScriptElementSize {
		str := fmt.Sprintf("redeem script is %d bytes, max %d",
			len(inner.script), txscript.MaxScriptElementSize)
		return nil, descError(ErrInvalidDescriptor, str)
	}
	b, err := scriptBytes(script.BuildP2SH(hashutil.Hash160(inner.script)))
	if err != nil {
		return nil, err
	}
	return &node{typ: TypeSh, script: b, keys: inner.keys}, nil
}

func parseWsh(args string, net *network.Network) (*node, error) {
	inner, err := parseExpr(args, scopeP2WSH, net)
	if err != nil {
		return nil, err
	}
	if len(inner.script) > txscript.MaxScriptSize {
		str := fmt.Sprintf("witness script is %d bytes, max %d",
			len(inner.script), txscript.MaxScriptSize)
		return nil, descError(ErrInvalidDescriptor, str)
	}
	b, err := scriptBytes(script.BuildP2WSH(hashutil.Sha256(inner.script)))
	if err != nil {
		return nil, err
	}
	return &node{typ: TypeWsh, script: b, keys: inner.keys}, nil
}

func parseMulti(
	typ, args string, sc scope, net *network.Network,
) (*node, error) {
	parts := strings.Split(args, ",")
	if len(parts) < 2 {
		return nil, descError(ErrInvalidDescriptor,
			fmt.Sprintf("%s() requires a threshold and keys", typ))
	}
	m, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, descError(ErrInvalidDescriptor,
			fmt.Sprintf("invalid threshold %q", parts[0]))
	}

	keys := make([]Key, 0, len(parts)-1)
	for _, p := range parts[1:] {
		key, err := parseScopedKey(p, sc, net)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	pubKeys := make([][]byte, 0, len(keys))
	for _, k := range keys {
		pubKeys = append(pubKeys, k.PubKey)
	}
	if typ == TypeSortedMulti {
		sort.Slice(pubKeys, func(i, j int) bool {
			return bytes.Compare(pubKeys[i], pubKeys[j]) < 0
		})
	}

	b, err := scriptBytes(script.BuildMultisig(m, pubKeys))
	if err != nil {
		return nil, descError(ErrInvalidDescriptor, err.Error())
	}
	return &node{typ: typ, script: b, keys: keys}, nil
}

// parseScopedKey parses a key and enforces that keys under a segwit
// expression are compressed.
func parseScopedKey(s string, sc scope, net *network.Network) (Key, error) {
	key, err := parseKey(s, net)
	if err != nil {
		return key, err
	}
	if sc == scopeP2WSH && !key.compressed() {
		return key, descError(ErrInvalidDescriptor,
			"uncompressed keys are not allowed in segwit scripts")
	}
	return key, nil
}

// scriptBytes serializes the result of a template builder.
func scriptBytes(s script.Script, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	return s.Bytes()
}

func notAllowed(typ string, sc scope) error {
	str := fmt.Sprintf("%s() is not allowed at %s", typ, sc)
	return descError(ErrInvalidDescriptor, str)
}
