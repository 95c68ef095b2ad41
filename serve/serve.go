// Copyright © 2023 The Gomon Project.

package serve

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zosmac/gocore"
	"github.com/zosmac/vnmon/metric"
	"github.com/zosmac/vnmon/vnstat"
	"golang.org/x/net/websocket"

	// enable web server to handle /debug/pprof queries
	_ "net/http/pprof"
)

var (
	// latest holds the most recent vnstat report for the websocket handler.
	latest atomic.Value

	// serverErr reports a metrics server failure to the measure loop.
	serverErr = make(chan error, 1)
)

// Prime seeds the websocket handler with the startup report, so /ws answers
// before the first tick.
func Prime(report *vnstat.Report) {
	latest.Store(report)
}

// metricsHandler registers the Prometheus collection endpoint.
func metricsHandler(metrics *metric.Metrics) {
	http.Handle(
		"/metrics",
		promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}),
	)
}

// wsHandler opens a web socket for delivering the current report on request.
func wsHandler() {
	http.Handle(
		"/ws",
		websocket.Server{
			Config: websocket.Config{
				Location: &url.URL{
					Scheme: "ws",
					Host:   "localhost:" + strconv.Itoa(flags.port),
					Path:   "/ws",
				},
				Origin: &url.URL{
					Scheme: "http",
					Host:   "localhost",
				},
				Version: websocket.ProtocolVersionHybi,
				Header: http.Header{
					"Content-Type": []string{"application/json"},
				},
			},
			Handler: func(ws *websocket.Conn) {
				buf := make([]byte, websocket.DefaultMaxPayloadBytes)
				for {
					if err := websocket.Message.Receive(ws, &buf); err != nil {
						ws.Close()
						return
					}

					report, ok := latest.Load().(*vnstat.Report)
					if !ok {
						continue
					}
					body, err := json.Marshal(report)
					if err != nil {
						gocore.Error("websocket Marshal", err).Warn()
						continue
					}

					if err := websocket.Message.Send(ws, string(body)); err != nil {
						ws.Close()
						return
					}
				}
			},
			Handshake: func(c *websocket.Config, r *http.Request) error {
				return nil
			},
		},
	)
}

// Serve sets up the exporter's endpoints and starts the server.
func Serve(ctx context.Context, metrics *metric.Metrics) {
	// define http request handlers
	metricsHandler(metrics)
	wsHandler()

	server := &http.Server{
		Addr: ":" + strconv.Itoa(flags.port),
	}

	go func() {
		<-ctx.Done()
		server.Shutdown(context.Background()) // let server perform cleanup with timeout
	}()

	go func() {
		if !bool(flags.daemon) {
			gocore.Error("metrics server", nil, map[string]string{
				"listen": "http://" + server.Addr + "/metrics",
			}).Info()
		}
		serverErr <- server.ListenAndServe()
	}()
}
