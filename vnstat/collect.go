// Copyright © 2023 The Gomon Project.

package vnstat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/zosmac/gocore"
)

// Collect queries vnstat for its current traffic accounting report.
func Collect(ctx context.Context) (*Report, error) {
	return collect(ctx, flags.iface)
}

// collect runs the vnstat command and decodes its JSON report. A launch
// failure, non-zero exit, or timeout surfaces as a command error; retry is
// left to the caller's next cycle.
func collect(ctx context.Context, iface string) (*Report, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(flags.timeout))
	defer cancel()

	cmdline := []string{flags.command, "--json"}
	if iface != "" {
		cmdline = append(cmdline, "-i", iface)
	}

	cmd := exec.CommandContext(ctx, cmdline[0], cmdline[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		details := map[string]string{
			"command": cmd.String(),
			"stderr":  strings.TrimSpace(stderr.String()),
		}
		var xerr *exec.ExitError
		if errors.As(err, &xerr) {
			details["rc"] = strconv.Itoa(xerr.ExitCode())
		}
		return nil, gocore.Error("vnstat", err, details)
	}

	report := &Report{}
	if err := json.Unmarshal(stdout.Bytes(), report); err != nil {
		return nil, gocore.Error("vnstat parse", err, map[string]string{
			"command": cmd.String(),
		})
	}

	return report, nil
}
