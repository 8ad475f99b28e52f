package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
	"github.com/vulpemventures/go-bitaddress/network"
)

const (
	defaultNetwork    = "bitcoin"
	defaultDebugLevel = "info"
)

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[addrcli] %v\n", err)
	os.Exit(1)
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "addrcli"
	app.Usage = "convert between bitcoin addresses, output scripts and " +
		"keys"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "network, n",
			Value: defaultNetwork,
			Usage: "The network addresses are encoded for, e.g. " +
				"bitcoin, testnet, regtest, litecoin, liquid.",
		},
		cli.StringFlag{
			Name: "profiles",
			Usage: "The path to a YAML file of custom network " +
				"profiles, looked up by --network before the " +
				"built-in presets.",
			TakesFile: true,
		},
		cli.StringFlag{
			Name:  "debuglevel",
			Value: defaultDebugLevel,
			Usage: "Logging level for all subsystems {trace, " +
				"debug, info, warn, error, critical, off}.",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		return setLogLevel(ctx.GlobalString("debuglevel"))
	}
	app.Commands = []cli.Command{
		fromScriptCommand,
		toScriptCommand,
		pubKeyCommand,
		multisigCommand,
		wifCommand,
		descriptorCommand,
		classifyCommand,
	}

	return app
}

// getNetwork resolves the --network flag, against the --profiles file
// first when one is given.
func getNetwork(ctx *cli.Context) (*network.Network, error) {
	var custom []*network.Network
	if path := ctx.GlobalString("profiles"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		custom, err = network.LoadProfiles(f)
		if err != nil {
			return nil, fmt.Errorf("unable to load profiles from %s: %w",
				path, err)
		}
		log.Debugf("Loaded %d network profiles from %s", len(custom),
			path)
	}

	return network.Lookup(ctx.GlobalString("network"), custom)
}

func main() {
	initLogging(os.Stderr)

	if err := newApp().Run(os.Args); err != nil {
		fatal(err)
	}
}
