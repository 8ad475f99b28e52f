/*
Package bitaddress converts between bitcoin addresses and the output scripts
they pay to.

The work is split across subpackages:

	hashutil    sha256, double sha256 and hash160
	network     network parameters, built-in presets and YAML profiles
	script      script chunk codec and the standard output templates
	address     Base58Check and Bech32 codecs and the address façade
	keypair     WIF private keys and secp256k1 key pairs
	payment     payments built from public keys, scripts or other payments
	descriptor  output descriptors for pkh, wpkh, sh, wsh, multi, addr and raw

Every encode and decode entry point takes the *network.Network explicitly:

	script, err := address.ToOutputScript(
		"bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", &network.Bitcoin,
	)
	if err != nil {
		return err
	}
	addr, err := address.FromOutputScript(script, &network.Testnet)

The addrcli command under cmd/ exposes the same operations from the shell.
*/
package bitaddress
