package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"
	"github.com/vulpemventures/go-bitaddress/address"
	"github.com/vulpemventures/go-bitaddress/descriptor"
	"github.com/vulpemventures/go-bitaddress/keypair"
	"github.com/vulpemventures/go-bitaddress/payment"
	"github.com/vulpemventures/go-bitaddress/script"
)

func printJSON(w io.Writer, resp interface{}) error {
	b, err := json.Marshal(resp)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "    "); err != nil {
		return err
	}
	out.WriteString("\n")
	_, err = out.WriteTo(w)
	return err
}

func decodeHexArg(ctx *cli.Context, name string) ([]byte, error) {
	if ctx.NArg() != 1 {
		return nil, fmt.Errorf("%s argument missing", name)
	}
	b, err := hex.DecodeString(ctx.Args().First())
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s: %w", name, err)
	}
	return b, nil
}

type scriptResp struct {
	Address string `json:"address,omitempty"`
	Script  string `json:"script"`
	Class   string `json:"class"`
}

var fromScriptCommand = cli.Command{
	Name:      "fromscript",
	Usage:     "Encode an output script as an address.",
	ArgsUsage: "script",
	Action:    fromScript,
}

func fromScript(ctx *cli.Context) error {
	b, err := decodeHexArg(ctx, "script")
	if err != nil {
		return err
	}
	net, err := getNetwork(ctx)
	if err != nil {
		return err
	}

	addr, err := address.FromOutputScript(b, net)
	if err != nil {
		return err
	}
	details, err := script.ExtractDetails(b)
	if err != nil {
		return err
	}

	return printJSON(ctx.App.Writer, scriptResp{
		Address: addr,
		Script:  hex.EncodeToString(b),
		Class:   details.Class.String(),
	})
}

var toScriptCommand = cli.Command{
	Name:      "toscript",
	Usage:     "Decode an address into its output script.",
	ArgsUsage: "address",
	Action:    toScript,
}

func toScript(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("address argument missing")
	}
	addr := ctx.Args().First()

	net, err := getNetwork(ctx)
	if err != nil {
		return err
	}

	b, err := address.ToOutputScript(addr, net)
	if err != nil {
		return err
	}
	class, err := address.DecodeType(addr, net)
	if err != nil {
		return err
	}

	return printJSON(ctx.App.Writer, scriptResp{
		Address: addr,
		Script:  hex.EncodeToString(b),
		Class:   class.String(),
	})
}

const (
	typeP2PKH      = "p2pkh"
	typeP2WPKH     = "p2wpkh"
	typeP2SHP2WPKH = "p2sh-p2wpkh"
	wrapP2SH       = "p2sh"
	wrapP2WSH      = "p2wsh"
	wrapP2SHP2WSH  = "p2sh-p2wsh"
)

var pubKeyCommand = cli.Command{
	Name:      "pubkey",
	Usage:     "Derive the address paying to a public key.",
	ArgsUsage: "pubkey",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "type",
			Value: typeP2PKH,
			Usage: "The address type, one of p2pkh, p2wpkh or " +
				"p2sh-p2wpkh.",
		},
	},
	Action: pubKey,
}

func pubKey(ctx *cli.Context) error {
	key, err := decodeHexArg(ctx, "pubkey")
	if err != nil {
		return err
	}
	net, err := getNetwork(ctx)
	if err != nil {
		return err
	}

	pay, err := payment.FromPublicKey(key, net)
	if err != nil {
		return err
	}

	var addr string
	switch ctx.String("type") {
	case typeP2PKH:
		addr, err = pay.PubKeyHash()
	case typeP2WPKH:
		addr, err = pay.WitnessPubKeyHash()
	case typeP2SHP2WPKH:
		pay, err = payment.FromPayment(pay)
		if err != nil {
			return err
		}
		addr, err = pay.ScriptHash()
	default:
		return fmt.Errorf("unknown address type %q", ctx.String("type"))
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(ctx.App.Writer, addr)
	return err
}

type multisigResp struct {
	Address      string `json:"address"`
	RedeemScript string `json:"redeem_script"`
}

var multisigCommand = cli.Command{
	Name:      "multisig",
	Usage:     "Derive the address of an m-of-n multisig script.",
	ArgsUsage: "pubkey [pubkey...]",
	Flags: []cli.Flag{
		cli.IntFlag{
			Name:  "m",
			Usage: "The number of required signatures.",
		},
		cli.StringFlag{
			Name:  "wrap",
			Value: wrapP2SH,
			Usage: "How the redeem script is paid to, one of p2sh, " +
				"p2wsh or p2sh-p2wsh.",
		},
	},
	Action: multisig,
}

func multisig(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return fmt.Errorf("pubkey arguments missing")
	}

	pubKeys := make([][]byte, 0, ctx.NArg())
	for _, arg := range ctx.Args() {
		b, err := hex.DecodeString(arg)
		if err != nil {
			return fmt.Errorf("unable to decode pubkey %s: %w", arg,
				err)
		}
		pubKeys = append(pubKeys, b)
	}

	net, err := getNetwork(ctx)
	if err != nil {
		return err
	}

	pay, err := payment.FromPublicKeys(pubKeys, ctx.Int("m"), net)
	if err != nil {
		return err
	}
	redeemScript := pay.Redeem.Script

	var addr string
	switch ctx.String("wrap") {
	case wrapP2SH:
		addr, err = pay.ScriptHash()
	case wrapP2WSH:
		addr, err = pay.WitnessScriptHash()
	case wrapP2SHP2WSH:
		pay, err = payment.FromPayment(pay)
		if err != nil {
			return err
		}
		addr, err = pay.ScriptHash()
	default:
		return fmt.Errorf("unknown wrap type %q", ctx.String("wrap"))
	}
	if err != nil {
		return err
	}

	return printJSON(ctx.App.Writer, multisigResp{
		Address:      addr,
		RedeemScript: hex.EncodeToString(redeemScript),
	})
}

type wifResp struct {
	PubKey     string `json:"pubkey"`
	Compressed bool   `json:"compressed"`
	Address    string `json:"address"`
}

var wifCommand = cli.Command{
	Name:      "wif",
	Usage:     "Decode a WIF private key.",
	ArgsUsage: "wif",
	Action:    wif,
}

func wif(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("wif argument missing")
	}
	net, err := getNetwork(ctx)
	if err != nil {
		return err
	}

	key, err := keypair.FromWIF(ctx.Args().First(), net)
	if err != nil {
		return err
	}
	pay, err := payment.FromPublicKey(key.PublicKey(), net)
	if err != nil {
		return err
	}
	addr, err := pay.PubKeyHash()
	if err != nil {
		return err
	}

	return printJSON(ctx.App.Writer, wifResp{
		PubKey:     hex.EncodeToString(key.PublicKey()),
		Compressed: key.Compressed(),
		Address:    addr,
	})
}

type descriptorResp struct {
	Descriptor string `json:"descriptor"`
	Type       string `json:"type"`
	Script     string `json:"script"`
	Address    string `json:"address,omitempty"`
}

var descriptorCommand = cli.Command{
	Name:      "descriptor",
	Usage:     "Compute the output script and address of a descriptor.",
	ArgsUsage: "descriptor",
	Action:    parseDescriptor,
}

func parseDescriptor(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("descriptor argument missing")
	}
	net, err := getNetwork(ctx)
	if err != nil {
		return err
	}

	desc, err := descriptor.Parse(ctx.Args().First(), net)
	if err != nil {
		return err
	}

	// raw scripts may have no address
	addr, err := desc.Address()
	if err != nil {
		log.Debugf("No address for %s: %v", desc, err)
	}

	return printJSON(ctx.App.Writer, descriptorResp{
		Descriptor: desc.String(),
		Type:       desc.Type(),
		Script:     hex.EncodeToString(desc.Script()),
		Address:    addr,
	})
}
