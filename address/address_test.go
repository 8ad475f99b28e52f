package address_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/stretchr/testify/require"
	"github.com/vulpemventures/go-bitaddress/address"
	"github.com/vulpemventures/go-bitaddress/network"
	"github.com/vulpemventures/go-bitaddress/script"
)

const (
	// hash160 of the compressed public key of the private key 'z' * 32.
	zKeyHash = "9a6b60f74a6bae176df05c3b0a118f85bab5c585"

	multisig2of3 = "5221026477115981fe981a6918a6297d9803c4dc04f328f22041be" +
		"dff886bbc2962e012102c96db2302d19b43d4c69368babace7854cc84eb9e0" +
		"61cde51cfa77ca4a22b8b92103c6103b3b83e4a24a0e33a4df246ef11772f9" +
		"992663db0c35759a5e2ebf68d8e953ae"
)

func h2b(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestFromOutputScript(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		net     *network.Network
		address string
	}{
		{
			name:    "p2pkh",
			script:  "76a914" + zKeyHash + "88ac",
			net:     &network.Bitcoin,
			address: "1F5VhMHukdnUES9kfXqzPzMeF1GPHKiF64",
		},
		{
			name:    "p2pkh testnet",
			script:  "76a914" + zKeyHash + "88ac",
			net:     &network.Testnet,
			address: "mubSzQNtZfDj1YdNP6pNDuZy6zs6GDn61L",
		},
		{
			name:    "p2pkh litecoin",
			script:  "76a914" + zKeyHash + "88ac",
			net:     &network.Litecoin,
			address: "LZJSxZbjqJ2XVEquqfqHg1RQTDdfST5PTn",
		},
		{
			name:    "p2sh multisig",
			script:  "a9143357200342a5e146638fd8a3be69df2bb08b394b87",
			net:     &network.Bitcoin,
			address: "36NUkt6FWUi3LAWBqWRdDmdTWbt91Yvfu7",
		},
		{
			name:    "p2sh p2wpkh",
			script:  "a9141b2b8b9b126c65fbc49a73e1f23af57a195f295c87",
			net:     &network.Bitcoin,
			address: "34AgLJhwXrvmkZS1o5TrcdeevMt22Nar53",
		},
		{
			name:    "p2wpkh",
			script:  "0014597ce022baa887799951e0496c769d9cc0c759dc",
			net:     &network.Bitcoin,
			address: "bc1qt97wqg464zrhnx23upykca5annqvwkwujjglky",
		},
		{
			name: "p2wsh",
			script: "0020f513a6b2a03f11e15f921c0345bee24c63fffe638a73ec" +
				"a823ec58aaec5f38c6",
			net:     &network.Bitcoin,
			address: "bc1q75f6dv4q8ug7zhujrsp5t0hzf33lllnr3fe7e2pra3v24mzl8rrqtp3qul",
		},
		{
			name:    "p2wpkh liquid",
			script:  "0014751e76e8199196d454941c45d1b3a323f1433bd6",
			net:     &network.Liquid,
			address: "ex1qw508d6qejxtdg4y5r3zarvary0c5xw7kxw5fx4",
		},
		{
			name:    "p2pkh liquid",
			script:  "76a914751e76e8199196d454941c45d1b3a323f1433bd688ac",
			net:     &network.Liquid,
			address: "Q7wegLt2qMGhm28vch6VTzvpzs8KXvs4X7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := h2b(t, tt.script)

			addr, err := address.FromOutputScript(b, tt.net)
			require.NoError(t, err)
			require.Equal(t, tt.address, addr)

			s, err := address.ToOutputScript(addr, tt.net)
			require.NoError(t, err)
			require.Equal(t, b, s)

			class, err := address.DecodeType(addr, tt.net)
			require.NoError(t, err)
			require.NotEqual(t, script.NonStandardTy, class)
		})
	}
}

func TestFromOutputScriptMultisig(t *testing.T) {
	b := h2b(t, multisig2of3)

	addr, err := address.FromOutputScript(b, &network.Bitcoin)
	require.NoError(t, err)
	require.Equal(t, "15gTqLboxaPfEzokiQm2o9GXN5bRV1Vww6", addr)

	// The legacy rendering maps back to a P2PKH script, not to the
	// multisig script.
	class, err := address.DecodeType(addr, &network.Bitcoin)
	require.NoError(t, err)
	require.Equal(t, script.PubKeyHashTy, class)
}

func TestFromOutputScriptInvalid(t *testing.T) {
	tests := []struct {
		name   string
		script string
		err    error
	}{
		{"truncated", "0014aabb", address.ErrInvalidFormat},
		{"null data", "6a0401020304", address.ErrNoMatchingScriptTemplate},
		{"empty", "", address.ErrNoMatchingScriptTemplate},
		{"witness v1", "5120" + "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798", address.ErrNoMatchingScriptTemplate},
		{"non canonical p2pkh", "76a94c14" + zKeyHash + "88ac", address.ErrNoMatchingScriptTemplate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := address.FromOutputScript(h2b(t, tt.script), &network.Bitcoin)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestToOutputScriptInvalid(t *testing.T) {
	noSegwit := network.Network{
		Name:       "nosegwit",
		PubKeyHash: 0x1e,
		ScriptHash: 0x16,
		Wif:        0x9e,
	}

	tests := []struct {
		name    string
		address string
		net     *network.Network
		err     error
	}{
		{
			name:    "mainnet address on testnet",
			address: "1F5VhMHukdnUES9kfXqzPzMeF1GPHKiF64",
			net:     &network.Testnet,
			err:     address.ErrInvalidAddress,
		},
		{
			name:    "testnet address on mainnet",
			address: "mubSzQNtZfDj1YdNP6pNDuZy6zs6GDn61L",
			net:     &network.Bitcoin,
			err:     address.ErrInvalidAddress,
		},
		{
			name:    "mainnet segwit on testnet",
			address: "bc1qt97wqg464zrhnx23upykca5annqvwkwujjglky",
			net:     &network.Testnet,
			err:     address.ErrInvalidAddress,
		},
		{
			name:    "segwit on a network without prefix",
			address: "bc1qt97wqg464zrhnx23upykca5annqvwkwujjglky",
			net:     &noSegwit,
			err:     address.ErrInvalidAddress,
		},
		{
			name:    "wif is not an address",
			address: "cRgnQe9MUu1JznntrLaoQpB476M8PURvXVQB5R2eqms5tXnzNsrr",
			net:     &network.Testnet,
			err:     address.ErrInvalidAddress,
		},
		{
			name:    "garbage",
			address: "not an address",
			net:     &network.Bitcoin,
			err:     address.ErrInvalidAddress,
		},
		{
			name:    "base58 checksum",
			address: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNZ",
			net:     &network.Bitcoin,
			err:     address.ErrInvalidChecksum,
		},
		{
			name:    "bech32 checksum",
			address: "bc1qr508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",
			net:     &network.Bitcoin,
			err:     address.ErrInvalidChecksum,
		},
		{
			name:    "mixed case bech32",
			address: "bc1qW508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",
			net:     &network.Bitcoin,
			err:     address.ErrInvalidAddress,
		},
		{
			name:    "witness version 1",
			address: "bc1p0xlxvlhemja6c4dqv22uapctqupfhlxm9h8z3k2e72q4k9hcz7vqzk5jj0",
			net:     &network.Bitcoin,
			err:     address.ErrUnsupportedWitnessVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := address.ToOutputScript(tt.address, tt.net)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNetworkSensitivity(t *testing.T) {
	hash := h2b(t, zKeyHash)
	s, err := script.BuildP2PKH(hash)
	require.NoError(t, err)
	pkScript, err := s.Bytes()
	require.NoError(t, err)

	mainnet, err := address.FromOutputScript(pkScript, &network.Bitcoin)
	require.NoError(t, err)
	testnet, err := address.FromOutputScript(pkScript, &network.Testnet)
	require.NoError(t, err)
	require.NotEqual(t, mainnet, testnet)

	_, err = address.ToOutputScript(mainnet, &network.Testnet)
	require.ErrorIs(t, err, address.ErrInvalidAddress)
	_, err = address.ToOutputScript(testnet, &network.Bitcoin)
	require.ErrorIs(t, err, address.ErrInvalidAddress)
}

func TestToOutputScriptAgreesWithBtcutil(t *testing.T) {
	tests := []struct {
		address string
		net     *network.Network
		params  *chaincfg.Params
	}{
		{"1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", &network.Bitcoin, &chaincfg.MainNetParams},
		{"36NUkt6FWUi3LAWBqWRdDmdTWbt91Yvfu7", &network.Bitcoin, &chaincfg.MainNetParams},
		{"bc1qt97wqg464zrhnx23upykca5annqvwkwujjglky", &network.Bitcoin, &chaincfg.MainNetParams},
		{"bc1q75f6dv4q8ug7zhujrsp5t0hzf33lllnr3fe7e2pra3v24mzl8rrqtp3qul", &network.Bitcoin, &chaincfg.MainNetParams},
		{"mubSzQNtZfDj1YdNP6pNDuZy6zs6GDn61L", &network.Testnet, &chaincfg.TestNet3Params},
		{"tb1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3q0sl5k7", &network.Testnet, &chaincfg.TestNet3Params},
		{"bcrt1qw508d6qejxtdg4y5r3zarvary0c5xw7kygt080", &network.Regtest, &chaincfg.RegressionNetParams},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			decoded, err := btcutil.DecodeAddress(tt.address, tt.params)
			require.NoError(t, err)
			expected, err := txscript.PayToAddrScript(decoded)
			require.NoError(t, err)

			s, err := address.ToOutputScript(tt.address, tt.net)
			require.NoError(t, err)
			require.Equal(t, expected, s)
		})
	}
}

func TestFromOutputScriptWithoutBech32Prefix(t *testing.T) {
	profiles, err := network.LoadProfiles(strings.NewReader(`
- name: dogecoin
  pubkeyhash: 0x1e
  scripthash: 0x16
  wif: 0x9e
`))
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	doge := profiles[0]

	for _, pkScript := range []string{
		"0014" + zKeyHash,
		"0020" + strings.Repeat("01", 32),
	} {
		_, err := address.FromOutputScript(h2b(t, pkScript), doge)
		require.ErrorIs(t, err, address.ErrInvalidAddress)
	}

	// legacy templates keep working and round trip
	p2pkh := h2b(t, "76a914"+zKeyHash+"88ac")
	addr, err := address.FromOutputScript(p2pkh, doge)
	require.NoError(t, err)
	decoded, err := address.ToOutputScript(addr, doge)
	require.NoError(t, err)
	require.Equal(t, p2pkh, decoded)
}

func TestToOutputScriptUpperCase(t *testing.T) {
	const lower = "bc1qt97wqg464zrhnx23upykca5annqvwkwujjglky"

	pkScript, err := address.ToOutputScript(strings.ToUpper(lower), &network.Bitcoin)
	require.NoError(t, err)
	lowerScript, err := address.ToOutputScript(lower, &network.Bitcoin)
	require.NoError(t, err)
	require.Equal(t, lowerScript, pkScript)

	addr, err := address.FromOutputScript(pkScript, &network.Bitcoin)
	require.NoError(t, err)
	require.Equal(t, lower, addr)
}
