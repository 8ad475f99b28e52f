package main

import (
	"fmt"
	"io"

	"github.com/btcsuite/btclog"
	"github.com/vulpemventures/go-bitaddress/address"
	"github.com/vulpemventures/go-bitaddress/script"
)

// log is the logger of the command itself.
var log = btclog.Disabled

// subsystemLoggers maps each subsystem tag to its logger.
var subsystemLoggers = map[string]btclog.Logger{}

// initLogging creates one logger per subsystem on a backend writing to w and
// hands them to the library packages.
func initLogging(w io.Writer) {
	backend := btclog.NewBackend(w)

	log = backend.Logger("ACLI")
	subsystemLoggers["ACLI"] = log

	addrLog := backend.Logger(address.Subsystem)
	address.UseLogger(addrLog)
	subsystemLoggers[address.Subsystem] = addrLog

	scriptLog := backend.Logger(script.Subsystem)
	script.UseLogger(scriptLog)
	subsystemLoggers[script.Subsystem] = scriptLog
}

// setLogLevel sets the level of every subsystem logger.
func setLogLevel(level string) error {
	lvl, ok := btclog.LevelFromString(level)
	if !ok {
		return fmt.Errorf("invalid debug level %q", level)
	}
	for _, logger := range subsystemLoggers {
		logger.SetLevel(lvl)
	}
	return nil
}
