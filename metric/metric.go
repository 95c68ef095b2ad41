// Copyright © 2023 The Gomon Project.

package metric

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/zosmac/gocore"
	"github.com/zosmac/vnmon/vnstat"
)

// errUnnamed reports an interface missing from vnstat's accounting identity.
var errUnnamed = errors.New("interface name missing")

// Metrics holds the gauges for vnstat's accounting windows.
type Metrics struct {
	registry *prometheus.Registry

	fiveMin *prometheus.GaugeVec
	hourly  *prometheus.GaugeVec
	daily   *prometheus.GaugeVec
	monthly *prometheus.GaugeVec
	yearly  *prometheus.GaugeVec
	total   *prometheus.GaugeVec

	cycles    prometheus.Counter
	cycleTime prometheus.Gauge
	lastCycle prometheus.Gauge
	info      *prometheus.GaugeVec
}

// New defines the exporter's metrics in their own registry.
func New() *Metrics {
	gauge := func(name, help string) *prometheus.GaugeVec {
		return prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: name, Help: help},
			[]string{"interface", "direction"},
		)
	}

	m := &Metrics{
		// we don't use the default registry as it adds Go runtime metrics
		registry: prometheus.NewRegistry(),
		fiveMin:  gauge("vnstat_traffic_5min", "Traffic in the last 5 minutes"),
		hourly:   gauge("vnstat_traffic_hourly", "Hourly network traffic"),
		daily:    gauge("vnstat_traffic_daily", "Daily network traffic"),
		monthly:  gauge("vnstat_traffic_monthly", "Monthly network traffic"),
		yearly:   gauge("vnstat_traffic_yearly", "Yearly network traffic"),
		total:    gauge("vnstat_traffic_total", "Total network traffic"),
		cycles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vnmon_cycles_total",
			Help: "Number of completed vnstat collection cycles",
		}),
		cycleTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "vnmon_cycle_seconds",
			Help: "Duration of the latest collection cycle",
		}),
		lastCycle: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "vnmon_last_cycle_time_seconds",
			Help: "Completion time of the latest collection cycle",
		}),
		info: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "vnmon_info",
			Help: "Exporter and vnstat version information",
		}, []string{"version", "vnstat", "json"}),
	}

	m.registry.MustRegister(
		m.fiveMin, m.hourly, m.daily, m.monthly, m.yearly, m.total,
		m.cycles, m.cycleTime, m.lastCycle, m.info,
	)

	return m
}

// Registry returns the registry for serving to Prometheus.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Publish copies a report's most recent accounting entries into the gauges.
// An interface without a name is skipped without blocking the others; a gauge
// whose accounting window is empty retains its prior value.
func (m *Metrics) Publish(report *vnstat.Report) {
	m.info.Reset()
	m.info.WithLabelValues(gocore.Version, report.Version, report.JSONVersion).Set(1)

	for _, ifc := range report.Interfaces {
		if ifc.Name == "" {
			gocore.Error("publish", errUnnamed, map[string]string{
				"alias": ifc.Alias,
			}).Err()
			continue
		}

		set(m.fiveMin, ifc.Name, ifc.Traffic.FiveMinute)
		set(m.hourly, ifc.Name, ifc.Traffic.Hour)
		set(m.daily, ifc.Name, ifc.Traffic.Day)
		set(m.monthly, ifc.Name, ifc.Traffic.Month)
		set(m.yearly, ifc.Name, ifc.Traffic.Year)

		// vnstat always reports a total; absent counts decode as zero
		m.total.WithLabelValues(ifc.Name, "rx").Set(float64(ifc.Traffic.Total.Rx))
		m.total.WithLabelValues(ifc.Name, "tx").Set(float64(ifc.Traffic.Total.Tx))
	}
}

// Cycle records the collection loop's telemetry.
func (m *Metrics) Cycle(elapsed time.Duration) {
	m.cycles.Inc()
	m.cycleTime.Set(elapsed.Seconds())
	m.lastCycle.SetToCurrentTime()
}

// set assigns a window's gauge pair from its most recent accounting entry.
func set(vec *prometheus.GaugeVec, name string, entries []vnstat.Entry) {
	if len(entries) == 0 {
		return
	}
	latest := entries[len(entries)-1]
	vec.WithLabelValues(name, "rx").Set(float64(latest.Rx))
	vec.WithLabelValues(name, "tx").Set(float64(latest.Tx))
}
