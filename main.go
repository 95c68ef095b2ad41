// Copyright © 2023 The Gomon Project.

package main

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/zosmac/gocore"
	"github.com/zosmac/vnmon/metric"
	"github.com/zosmac/vnmon/serve"
	"github.com/zosmac/vnmon/vnstat"
)

// main
func main() {
	gocore.Main(Main)
}

// Main called from gocore.Main.
func Main(ctx context.Context) error {
	// confirm that vnstat is installed and answering before serving metrics
	report, err := vnstat.Collect(ctx)
	if err != nil {
		return gocore.Error("vnstat health check", err)
	}

	metrics := metric.New()
	metrics.Publish(report)
	serve.Prime(report)

	// fire up the http server
	serve.Serve(ctx, metrics)

	if gocore.Flags.FlagSet.Lookup("daemon").Value.String() != "true" {
		executable, _ := os.Executable()
		gocore.Error("start", nil, map[string]string{
			"pid":        strconv.Itoa(os.Getpid()),
			"command":    strings.Join(os.Args, " "),
			"executable": executable,
			"version":    gocore.Version,
			"vnstat":     report.Version,
		}).Info()
	}

	return gocore.Error("stop", serve.Measure(ctx, metrics), map[string]string{
		"command": os.Args[0],
	})
}
