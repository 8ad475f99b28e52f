// Package descriptor parses output script descriptors built from pkh, wpkh,
// sh, wsh, multi, sortedmulti, addr and raw expressions.
package descriptor

import (
	"github.com/vulpemventures/go-bitaddress/address"
	"github.com/vulpemventures/go-bitaddress/network"
)

// Descriptor is a parsed output descriptor bound to a network.
type Descriptor struct {
	expr   string
	typ    string
	net    *network.Network
	script []byte
	keys   []Key
}

// Type returns the name of the outermost expression, ie. "sh" for
// sh(wpkh(KEY)).
func (d *Descriptor) Type() string {
	return d.typ
}

// Script returns the output script described.
func (d *Descriptor) Script() []byte {
	return append([]byte(nil), d.script...)
}

// Address returns the address of the output script. Raw scripts matching
// no template return an error.
func (d *Descriptor) Address() (string, error) {
	return address.FromOutputScript(d.script, d.net)
}

// Keys returns the keys referenced by the descriptor, in order of
// appearance.
func (d *Descriptor) Keys() []Key {
	keys := make([]Key, 0, len(d.keys))
	for _, k := range d.keys {
		keys = append(keys, Key{
			PubKey:      append([]byte(nil), k.PubKey...),
			Fingerprint: k.Fingerprint,
			Path:        append([]uint32(nil), k.Path...),
		})
	}
	return keys
}

// String returns the descriptor with its checksum appended.
func (d *Descriptor) String() string {
	sum, _ := Checksum(d.expr)
	return d.expr + "#" + sum
}
