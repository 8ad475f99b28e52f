package network

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// profile is the YAML representation of a Network.
type profile struct {
	Name          string `yaml:"name"`
	MessagePrefix string `yaml:"messageprefix"`
	HDPublicKey   uint32 `yaml:"hdpublickey"`
	HDPrivateKey  uint32 `yaml:"hdprivatekey"`
	PubKeyHash    uint8  `yaml:"pubkeyhash"`
	ScriptHash    uint8  `yaml:"scripthash"`
	Wif           uint8  `yaml:"wif"`
	Bech32        string `yaml:"bech32"`
}

// LoadProfiles reads a YAML sequence of custom network profiles, for
// example:
//
//	- name: dogecoin
//	  messageprefix: "\x19Dogecoin Signed Message:\n"
//	  hdpublickey: 0x02facafd
//	  hdprivatekey: 0x02fac398
//	  pubkeyhash: 0x1e
//	  scripthash: 0x16
//	  wif: 0x9e
//
// Every profile is validated and names must be unique within the document.
func LoadProfiles(r io.Reader) ([]*Network, error) {
	var profiles []profile
	if err := yaml.NewDecoder(r).Decode(&profiles); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, networkError(
			ErrInvalidProfile, fmt.Sprintf("unable to decode profiles: %v", err),
		)
	}

	seen := make(map[string]struct{}, len(profiles))
	nets := make([]*Network, 0, len(profiles))
	for _, p := range profiles {
		n := &Network{
			Name:          p.Name,
			MessagePrefix: p.MessagePrefix,
			HDPublicKey:   p.HDPublicKey,
			HDPrivateKey:  p.HDPrivateKey,
			PubKeyHash:    p.PubKeyHash,
			ScriptHash:    p.ScriptHash,
			Wif:           p.Wif,
			Bech32:        p.Bech32,
		}
		if err := n.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[n.Name]; ok {
			return nil, networkError(
				ErrInvalidProfile,
				fmt.Sprintf("duplicated network profile %q", n.Name),
			)
		}
		seen[n.Name] = struct{}{}
		nets = append(nets, n)
	}

	return nets, nil
}

// Lookup resolves name against the given custom profiles first and the
// built-in presets after.
func Lookup(name string, custom []*Network) (*Network, error) {
	for _, n := range custom {
		if n.Name == name {
			return n, nil
		}
	}
	return ByName(name)
}
