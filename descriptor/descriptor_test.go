package descriptor_test

import (
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vulpemventures/go-bitaddress/descriptor"
	"github.com/vulpemventures/go-bitaddress/network"
)

const (
	uncompressedKey = "04a34b99f22c790c4e36b2b3c2c35a36db06226e41c692fc82b8b56ac1c540c5bd5b8dec5235a0fa8722476c7709c02559e3aa73aa03918ba2d492eea75abea235"
	multiKeys       = "022f8bde4d1a07209355b4a7250a5c5128e88b84bddc619ab7cba8d569b240efe4,025cbdf0646e5db4eaa398f365f2ea7a0e3d419b7e0330e39ce92bddedcac4f9bc"
	sortedKeys      = "025cbdf0646e5db4eaa398f365f2ea7a0e3d419b7e0330e39ce92bddedcac4f9bc,022f8bde4d1a07209355b4a7250a5c5128e88b84bddc619ab7cba8d569b240efe4"
	multiScript     = "5121022f8bde4d1a07209355b4a7250a5c5128e88b84bddc619ab7cba8d569b240efe421025cbdf0646e5db4eaa398f365f2ea7a0e3d419b7e0330e39ce92bddedcac4f9bc52ae"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		descriptor string
		typ        string
		script     string
		address    string
	}{
		{
			name:       "pkh",
			descriptor: "pkh(02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5)#8fhd9pwu",
			typ:        descriptor.TypePkh,
			script:     "76a91406afd46bcdfd22ef94ac122aa11f241244a37ecc88ac",
			address:    "1cMh228HTCiwS8ZsaakH8A8wze1JR5ZsP",
		},
		{
			name:       "pkh uncompressed wif",
			descriptor: "pkh(5KYZdUEo39z3FPrtuX2QbbwGnNP5zTd7yyr2SC1j299sBCnWjss)",
			typ:        descriptor.TypePkh,
			script:     "76a914b5bd079c4d57cc7fc28ecf8213a6b791625b818388ac",
			address:    "1HZwkjkeaoZfTSaJxDw6aKkxp45agDiEzN",
		},
		{
			name:       "wpkh",
			descriptor: "wpkh(02f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9)#8zl0zxma",
			typ:        descriptor.TypeWpkh,
			script:     "00147dd65592d0ab2fe0d0257d571abf032cd9db93dc",
			address:    "bc1q0ht9tyks4vh7p5p904t340cr9nvahy7u3re7zg",
		},
		{
			name:       "wpkh hex key",
			descriptor: "wpkh(03a34b99f22c790c4e36b2b3c2c35a36db06226e41c692fc82b8b56ac1c540c5bd)#ah7klf29",
			typ:        descriptor.TypeWpkh,
			script:     "00149a1c78a507689f6f54b847ad1cef1e614ee23f1e",
		},
		{
			name:       "wpkh wif",
			descriptor: "wpkh(L4rK1yDtCWekvXuE6oXD9jCYfFNV2cWRpVuPLBcCU2z8TrisoyY1)",
			typ:        descriptor.TypeWpkh,
			script:     "00149a1c78a507689f6f54b847ad1cef1e614ee23f1e",
		},
		{
			name:       "wpkh with origin",
			descriptor: "wpkh([d34db33f/84'/0'/0']02f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9)#0mr7s2t7",
			typ:        descriptor.TypeWpkh,
			script:     "00147dd65592d0ab2fe0d0257d571abf032cd9db93dc",
		},
		{
			name:       "sh wpkh",
			descriptor: "sh(wpkh(03fff97bd5755eeea420453a14355235d382f6472f8568a18b2f057a1460297556))#qkrrc7je",
			typ:        descriptor.TypeSh,
			script:     "a914cc6ffbc0bf31af759451068f90ba7a0272b6b33287",
			address:    "3LKyvRN6SmYXGBNn8fcQvYxW9MGKtwcinN",
		},
		{
			name:       "sh pkh wif",
			descriptor: "sh(pkh(L4rK1yDtCWekvXuE6oXD9jCYfFNV2cWRpVuPLBcCU2z8TrisoyY1))#k0wl4kzp",
			typ:        descriptor.TypeSh,
			script:     "a9141a31ad23bf49c247dd531a623c2ef57da3c400c587",
		},
		{
			name:       "wsh pkh",
			descriptor: "wsh(pkh(02e493dbf1c10d80f3581e4904930b1404cc6c13900ee0758474fa94abe8c4cd13))",
			typ:        descriptor.TypeWsh,
			script:     "0020fc5acc302aab97f821f9a61e1cc572e7968a603551e95d4ba12b51df6581482f",
			address:    "bc1ql3dvcvp24wtlsg0e5c0pe3tju7tg5cp428546jap9dga7evpfqhsncqcl0",
		},
		{
			name:       "sh wsh pkh",
			descriptor: "sh(wsh(pkh(02e493dbf1c10d80f3581e4904930b1404cc6c13900ee0758474fa94abe8c4cd13)))",
			typ:        descriptor.TypeSh,
			script:     "a91455e8d5e8ee4f3604aba23c71c2684fa0a56a3a1287",
			address:    "39XGHYpYmJV9sGFoGHZeU2rLkY6r1MJ6C1",
		},
		{
			name:       "bare multi",
			descriptor: "multi(1," + multiKeys + ")#hzhjw406",
			typ:        descriptor.TypeMulti,
			script:     multiScript,
		},
		{
			name:       "sortedmulti",
			descriptor: "sortedmulti(1," + sortedKeys + ")",
			typ:        descriptor.TypeSortedMulti,
			script:     multiScript,
		},
		{
			name:       "sh sortedmulti",
			descriptor: "sh(sortedmulti(1," + sortedKeys + "))",
			typ:        descriptor.TypeSh,
			script:     "a9148c0993712b93fa2dd249fe13399f9ea774a5caac87",
			address:    "3ETTzkMnuA4PguZeWYtdCT6Rva3yTHATyP",
		},
		{
			name:       "addr",
			descriptor: "addr(1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa)#632p52jr",
			typ:        descriptor.TypeAddr,
			script:     "76a91462e907b15cbf27d5425399ebf6f0fb50ebb88f1888ac",
			address:    "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
		},
		{
			name:       "raw",
			descriptor: "raw(deadbeef)#89f8spxm",
			typ:        descriptor.TypeRaw,
			script:     "deadbeef",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := descriptor.Parse(tt.descriptor, &network.Bitcoin)
			require.NoError(t, err)
			require.Equal(t, tt.typ, desc.Type())
			require.Equal(t, tt.script, hex.EncodeToString(desc.Script()))

			if tt.address != "" {
				addr, err := desc.Address()
				require.NoError(t, err)
				require.Equal(t, tt.address, addr)
			}

			if strings.Contains(tt.descriptor, "#") {
				require.Equal(t, tt.descriptor, desc.String())
			}
		})
	}
}

func TestParseNetwork(t *testing.T) {
	desc, err := descriptor.Parse(
		"wpkh(02f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9)",
		&network.Testnet,
	)
	require.NoError(t, err)

	addr, err := desc.Address()
	require.NoError(t, err)
	require.Equal(t, "tb1q0ht9tyks4vh7p5p904t340cr9nvahy7um9zdem", addr)

	// mainnet WIF on testnet
	_, err = descriptor.Parse(
		"wpkh(L4rK1yDtCWekvXuE6oXD9jCYfFNV2cWRpVuPLBcCU2z8TrisoyY1)",
		&network.Testnet,
	)
	require.True(t, errors.Is(err, descriptor.ErrInvalidDescriptor))

	// mainnet address on testnet
	_, err = descriptor.Parse(
		"addr(1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa)", &network.Testnet,
	)
	require.True(t, errors.Is(err, descriptor.ErrInvalidDescriptor))
}

func TestParseKeys(t *testing.T) {
	desc, err := descriptor.Parse(
		"wpkh([d34db33f/84'/0'/0']02f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9)",
		nil,
	)
	require.NoError(t, err)

	keys := desc.Keys()
	require.Len(t, keys, 1)
	require.True(t, keys[0].HasOrigin())
	require.Equal(t, uint32(0xd34db33f), keys[0].Fingerprint)
	require.Equal(t, []uint32{0x80000054, 0x80000000, 0x80000000}, keys[0].Path)

	desc, err = descriptor.Parse("sortedmulti(1,"+sortedKeys+")", nil)
	require.NoError(t, err)
	keys = desc.Keys()
	require.Len(t, keys, 2)
	require.False(t, keys[0].HasOrigin())
	// keys keep the order they were written in
	require.Equal(t, "025cbdf0646e5db4eaa398f365f2ea7a0e3d419b7e0330e39ce92bddedcac4f9bc",
		hex.EncodeToString(keys[0].PubKey))
}

func TestKeysAreCopies(t *testing.T) {
	desc, err := descriptor.Parse(
		"wpkh([d34db33f/84'/0'/0']02f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9)",
		nil,
	)
	require.NoError(t, err)

	keys := desc.Keys()
	keys[0].PubKey[0] = 0xff
	keys[0].Path[0] = 0
	keys[0].Fingerprint = 0

	again := desc.Keys()
	require.Equal(t, byte(0x02), again[0].PubKey[0])
	require.Equal(t, uint32(0x80000054), again[0].Path[0])
	require.Equal(t, uint32(0xd34db33f), again[0].Fingerprint)
}

func TestParseInvalid(t *testing.T) {
	tooBig := "sh(multi(1" + strings.Repeat(","+uncompressedKey, 8) + "))"

	tests := []struct {
		name       string
		descriptor string
		wantErr    descriptor.ErrorKind
	}{
		{"bad checksum", "raw(deadbeef)#89f8spxn", descriptor.ErrInvalidChecksum},
		{"unknown function", "tr(02f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9)", descriptor.ErrInvalidDescriptor},
		{"not an expression", "02f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9", descriptor.ErrInvalidDescriptor},
		{"invalid character", "raw(deadbeef)é", descriptor.ErrInvalidDescriptor},
		{"nested sh", "sh(sh(pkh(02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5)))", descriptor.ErrInvalidDescriptor},
		{"wsh inside wsh", "wsh(wsh(pkh(02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5)))", descriptor.ErrInvalidDescriptor},
		{"wpkh inside wsh", "wsh(wpkh(02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5))", descriptor.ErrInvalidDescriptor},
		{"addr inside sh", "sh(addr(1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa))", descriptor.ErrInvalidDescriptor},
		{"raw inside wsh", "wsh(raw(deadbeef))", descriptor.ErrInvalidDescriptor},
		{"uncompressed wpkh", "wpkh(" + uncompressedKey + ")", descriptor.ErrInvalidDescriptor},
		{"uncompressed in wsh", "wsh(pkh(" + uncompressedKey + "))", descriptor.ErrInvalidDescriptor},
		{"uncompressed wif in wpkh", "wpkh(5KYZdUEo39z3FPrtuX2QbbwGnNP5zTd7yyr2SC1j299sBCnWjss)", descriptor.ErrInvalidDescriptor},
		{"invalid key prefix", "pkh(05c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5)", descriptor.ErrInvalidDescriptor},
		{"xpub", "pkh(xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8)", descriptor.ErrInvalidDescriptor},
		{"derivation", "pkh(02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5/0)", descriptor.ErrInvalidDescriptor},
		{"unclosed origin", "pkh([d34db33f/84'02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5)", descriptor.ErrInvalidDescriptor},
		{"threshold too high", "multi(3," + multiKeys + ")", descriptor.ErrInvalidDescriptor},
		{"threshold not a number", "multi(x," + multiKeys + ")", descriptor.ErrInvalidDescriptor},
		{"multi without keys", "multi(1)", descriptor.ErrInvalidDescriptor},
		{"redeem script too big", tooBig, descriptor.ErrInvalidDescriptor},
		{"raw not hex", "raw(xyz)", descriptor.ErrInvalidDescriptor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := descriptor.Parse(tt.descriptor, &network.Bitcoin)
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.wantErr), err.Error())
		})
	}
}

func TestChecksum(t *testing.T) {
	sum, err := descriptor.Checksum("raw(deadbeef)")
	require.NoError(t, err)
	require.Equal(t, "89f8spxm", sum)

	sum, err = descriptor.Checksum(
		"multi(1," + multiKeys + ")",
	)
	require.NoError(t, err)
	require.Equal(t, "hzhjw406", sum)

	_, err = descriptor.Checksum("raw(é)")
	require.True(t, errors.Is(err, descriptor.ErrInvalidDescriptor))
}

func TestAddressNoTemplate(t *testing.T) {
	desc, err := descriptor.Parse("raw(deadbeef)", nil)
	require.NoError(t, err)
	_, err = desc.Address()
	require.Error(t, err)
}
