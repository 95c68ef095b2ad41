// Copyright © 2023 The Gomon Project.

package serve

import (
	"errors"
	"strconv"
	"time"

	"github.com/zosmac/gocore"
)

var (
	// flags defines the command line flags.
	flags = struct {
		port int
		interval
		daemon
	}{
		port:     9469,
		interval: 60,
	}

	// intervalExplicit notes that -interval was set on the command line.
	intervalExplicit bool
)

// init initializes the command line flags.
func init() {
	gocore.Flags.Var(
		&flags.port,
		"port",
		"[-port n]",
		"Port number for the exporter's HTTP server",
	)
	gocore.Flags.Var(
		&flags.interval,
		"interval",
		"[-interval <seconds>]",
		"Query vnstat every `seconds`",
	)
	gocore.Flags.Var(
		&flags.daemon,
		"daemon",
		"[-daemon]",
		"Log at warning level and above only, for running under a service manager",
	)

	gocore.Flags.CommandDescription = `Exports the network traffic accounting that vnstat maintains,
	publishing Prometheus gauges labeled by interface and direction
	for each reporting window:
		• last five minutes
		• hour
		• day
		• month
		• year
		• total`
}

// interval is a command line flag type.
type interval int

// Set is a flag.Value interface method to enable interval as a command line flag.
func (i *interval) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return errors.New("invalid interval")
	}
	*i = interval(n)
	intervalExplicit = true
	return nil
}

// String is a flag.Value interface method to enable interval as a command line flag.
func (i *interval) String() string {
	return strconv.Itoa(int(*i))
}

// duration returns the poll interval.
func (i interval) duration() time.Duration {
	return time.Duration(i) * time.Second
}

// alignTicker aligns the poll ticking.
func (i interval) alignTicker() *time.Ticker {
	d := i.duration()
	t := time.Now()
	<-time.After(d - t.Sub(t.Truncate(d)))
	return time.NewTicker(d)
}

// daemon is a command line flag type.
type daemon bool

// Set is a flag.Value interface method to enable daemon as a command line flag.
func (d *daemon) Set(s string) error {
	v, err := strconv.ParseBool(s)
	*d = daemon(v)
	return err
}

// String is a flag.Value interface method to enable daemon as a command line flag.
func (d *daemon) String() string {
	return strconv.FormatBool(bool(*d))
}

// IsBoolFlag enables daemon as a switch with no argument.
func (d *daemon) IsBoolFlag() bool {
	return true
}
