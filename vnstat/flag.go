// Copyright © 2023 The Gomon Project.

package vnstat

import (
	"errors"
	"time"

	"github.com/zosmac/gocore"
)

var (
	// flags defines the command line flags.
	flags = struct {
		command string
		iface   string
		timeout
	}{
		command: "vnstat",
		timeout: timeout(15 * time.Second),
	}
)

// init initializes the command line flags.
func init() {
	gocore.Flags.Var(
		&flags.command,
		"vnstat",
		"[-vnstat <path>]",
		"The `path` of the vnstat command",
	)
	gocore.Flags.Var(
		&flags.iface,
		"interface",
		"[-interface <name>]",
		"Limit the query to the network interface `name`, rather than all interfaces",
	)
	gocore.Flags.Var(
		&flags.timeout,
		"timeout",
		"[-timeout <duration>]",
		"Kill a vnstat query running longer than `duration`, specified in Go time.Duration string format",
	)
}

// timeout is a command line flag type.
type timeout time.Duration

// Set is a flag.Value interface method to enable timeout as a command line flag.
func (t *timeout) Set(s string) error {
	d, err := time.ParseDuration(s)
	if d <= 0 {
		return errors.New("invalid timeout")
	}
	*t = timeout(d)
	return err
}

// String is a flag.Value interface method to enable timeout as a command line flag.
func (t *timeout) String() string {
	return time.Duration(*t).String()
}
