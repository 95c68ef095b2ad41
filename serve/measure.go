// Copyright © 2023 The Gomon Project.

package serve

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime"
	"time"

	"github.com/zosmac/gocore"
	"github.com/zosmac/vnmon/metric"
	"github.com/zosmac/vnmon/vnstat"

	"gopkg.in/yaml.v3"
)

type (
	// prometheusJson defines the prometheus configuration query response envelope.
	prometheusJson struct {
		Status string `json:"status"`
		Data   struct {
			Yaml string `json:"yaml"` // []byte type unmarshals as base-64 :(
		} `json:"data"`
	}

	// prometheusYaml defines the prometheus configuration query response content.
	prometheusYaml struct {
		Global struct {
			ScrapeInterval string `yaml:"scrape_interval"`
		} `yaml:"global"`
		ScrapeConfigs []struct {
			Jobname        string `yaml:"job_name"`
			ScrapeInterval string `yaml:"scrape_interval"`
		} `yaml:"scrape_configs"`
	}
)

var (
	// prometheusConfigRequest is the REST query to retrieve the configuration.
	prometheusConfigRequest = http.Request{
		Method: http.MethodGet,
		URL: &url.URL{
			Scheme: "http",
			Host:   "localhost:9090",
			Path:   "/api/v1/status/config",
		},
	}

	// prometheusClient bounds the configuration query so a stalled Prometheus
	// cannot block startup.
	prometheusClient = &http.Client{Timeout: 5 * time.Second}
)

// Measure queries vnstat periodically and publishes each report's figures
// until the context cancels or the metrics server fails.
func Measure(ctx context.Context, metrics *metric.Metrics) error {
	if !intervalExplicit {
		if d, err := scrapeInterval(); err == nil && d >= time.Second {
			flags.interval = interval(d / time.Second) // sync poll interval with Prometheus'
		}
	}

	ticker := flags.interval.alignTicker()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-serverErr:
			if errors.Is(err, http.ErrServerClosed) {
				return ctx.Err()
			}
			return gocore.Error("metrics server", err)

		case <-ticker.C:
			cycle(ctx, metrics)
		}
	}
}

// cycle performs one collection. Any failure is logged and abandoned; the
// gauges keep their prior values until the next tick succeeds.
func cycle(ctx context.Context, metrics *metric.Metrics) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			gocore.Error("cycle", fmt.Errorf("panicked, %v\n%s", r, buf[:n])).Err()
		}
	}()

	if !bool(flags.daemon) {
		gocore.Error("cycle", nil, map[string]string{
			"interval": flags.interval.String(),
		}).Info()
	}

	start := time.Now()
	report, err := vnstat.Collect(ctx)
	if err != nil {
		gocore.Error("collect", err).Err()
		return
	}

	metrics.Publish(report)
	latest.Store(report)
	metrics.Cycle(time.Since(start))
}

// scrapeInterval asks Prometheus how often it will scrape the exporter.
func scrapeInterval() (time.Duration, error) {
	resp, err := prometheusClient.Do(&prometheusConfigRequest)
	if err != nil {
		return 0, gocore.Error("prometheus query", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return 0, gocore.Error("prometheus query", err)
	}

	jsn := prometheusJson{}
	if err := json.Unmarshal(body, &jsn); err != nil || jsn.Status != "success" {
		return 0, gocore.Error("prometheus query "+jsn.Status, err)
	}

	yml := prometheusYaml{}
	if err := yaml.Unmarshal([]byte(jsn.Data.Yaml), &yml); err != nil {
		return 0, gocore.Error("prometheus yaml", err)
	}

	for _, config := range yml.ScrapeConfigs {
		if config.Jobname == "vnmon" {
			return time.ParseDuration(config.ScrapeInterval)
		}
	}

	return time.ParseDuration(yml.Global.ScrapeInterval)
}
