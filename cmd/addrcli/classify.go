package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/btcsuite/btcd/txscript"
	"github.com/urfave/cli"
	"github.com/vulpemventures/go-bitaddress/address"
	"github.com/vulpemventures/go-bitaddress/network"
	"github.com/vulpemventures/go-bitaddress/script"
	"golang.org/x/sync/errgroup"
)

var classifyCommand = cli.Command{
	Name:  "classify",
	Usage: "Classify output scripts read from stdin, one hex per line.",
	Description: `
	Every line is classified independently. Results are printed in input
	order as "<class> <address>", with "-" as address for scripts that
	have none, and "error: <reason>" for lines that do not decode.`,
	Flags: []cli.Flag{
		cli.IntFlag{
			Name:  "workers",
			Value: runtime.NumCPU(),
			Usage: "The maximum number of scripts classified " +
				"concurrently.",
		},
	},
	Action: classify,
}

func classify(ctx *cli.Context) error {
	net, err := getNetwork(ctx)
	if err != nil {
		return err
	}

	return classifyLines(
		context.Background(), os.Stdin, ctx.App.Writer, net,
		ctx.Int("workers"),
	)
}

// classifyLines classifies every line of r with at most workers
// goroutines and writes one result per line to w, preserving order.
func classifyLines(ctx context.Context, r io.Reader, w io.Writer,
	net *network.Network, workers int) error {

	if workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", workers)
	}

	// Lines are read whole, an oversized script is reported on its own
	// line instead of failing the run.
	var lines []string
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
	}

	results := make([]string, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = classifyScript(line, net)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.Debugf("Classified %d scripts with %d workers", len(lines),
		workers)

	for _, res := range results {
		if _, err := fmt.Fprintln(w, res); err != nil {
			return err
		}
	}
	return nil
}

func classifyScript(line string, net *network.Network) string {
	if len(line) > 2*txscript.MaxScriptSize {
		return fmt.Sprintf("error: script exceeds %d bytes",
			txscript.MaxScriptSize)
	}

	b, err := hex.DecodeString(line)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	details, err := script.ExtractDetails(b)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	if details.Class == script.NonStandardTy {
		return details.Class.String() + " -"
	}

	addr, err := address.FromOutputScript(b, net)
	if err != nil {
		return fmt.Sprintf("%v -", details.Class)
	}
	return fmt.Sprintf("%v %s", details.Class, addr)
}
