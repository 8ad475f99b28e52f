package descriptor

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/vulpemventures/go-bitaddress/keypair"
	"github.com/vulpemventures/go-bitaddress/network"
)

const (
	fingerprintLength = 8
	hardenedSuffixes  = "'h"
)

var extendedKeyPrefixes = []string{"xpub", "xprv", "tpub", "tprv"}

// Key is a public key referenced by a descriptor together with its
// optional key origin.
type Key struct {
	PubKey      []byte
	Fingerprint uint32
	Path        []uint32
}

// HasOrigin returns whether the key was given with a [fingerprint/path]
// origin.
func (k Key) HasOrigin() bool {
	return k.Fingerprint != 0 || len(k.Path) > 0
}

func (k Key) compressed() bool {
	return len(k.PubKey) == 33
}

// parseKey parses KEY expressions: an optional origin followed by either a
// hex encoded public key or a WIF private key.
func parseKey(s string, net *network.Network) (Key, error) {
	var key Key

	if strings.HasPrefix(s, "[") {
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return key, descError(ErrInvalidDescriptor,
				"key origin is missing closing bracket")
		}
		fingerprint, path, err := parseOrigin(s[1:end])
		if err != nil {
			return key, err
		}
		key.Fingerprint = fingerprint
		key.Path = path
		s = s[end+1:]
	}

	for _, prefix := range extendedKeyPrefixes {
		if strings.HasPrefix(s, prefix) {
			return key, descError(ErrInvalidDescriptor,
				"extended keys are not supported")
		}
	}
	if strings.ContainsAny(s, "/*") {
		return key, descError(ErrInvalidDescriptor,
			"key derivation is not supported")
	}

	pair, err := decodeKey(s, net)
	if err != nil {
		return key, descError(ErrInvalidDescriptor,
			fmt.Sprintf("invalid key %q: %v", s, err))
	}
	key.PubKey = pair.PublicKey()
	return key, nil
}

func decodeKey(s string, net *network.Network) (*keypair.ECPair, error) {
	if len(s) == 66 || len(s) == 130 {
		if b, err := hex.DecodeString(s); err == nil {
			return keypair.FromPublicKey(b)
		}
	}
	return keypair.FromWIF(s, net)
}

func parseOrigin(origin string) (uint32, []uint32, error) {
	parts := strings.SplitN(origin, "/", 2)
	if len(parts[0]) != fingerprintLength {
		str := fmt.Sprintf("fingerprint must be %d hex characters",
			fingerprintLength)
		return 0, nil, descError(ErrInvalidDescriptor, str)
	}
	b, err := hex.DecodeString(parts[0])
	if err != nil {
		return 0, nil, descError(ErrInvalidDescriptor,
			fmt.Sprintf("invalid fingerprint: %v", err))
	}
	fingerprint := binary.BigEndian.Uint32(b)

	if len(parts) == 1 {
		return fingerprint, nil, nil
	}
	path, err := parsePath(strings.Split(parts[1], "/"))
	if err != nil {
		return 0, nil, err
	}
	return fingerprint, path, nil
}

func parsePath(elements []string) ([]uint32, error) {
	path := make([]uint32, 0, len(elements))
	for _, v := range elements {
		offset := uint32(0)
		if v != "" && strings.IndexByte(hardenedSuffixes, v[len(v)-1]) >= 0 {
			offset = hdkeychain.HardenedKeyStart
			v = v[:len(v)-1]
		}

		index, err := strconv.ParseUint(v, 10, 32)
		if err != nil || uint32(index) >= hdkeychain.HardenedKeyStart {
			return nil, descError(ErrInvalidDescriptor,
				fmt.Sprintf("invalid path element %q", v))
		}
		path = append(path, uint32(index)+offset)
	}
	return path, nil
}
