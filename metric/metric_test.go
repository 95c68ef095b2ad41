// Copyright © 2023 The Gomon Project.

package metric

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/zosmac/vnmon/vnstat"
)

func report() *vnstat.Report {
	return &vnstat.Report{
		Version:     "2.10",
		JSONVersion: "2",
		Interfaces: []vnstat.Interface{
			{
				Name: "eth0",
				Traffic: vnstat.Traffic{
					Total: vnstat.Entry{Rx: 500},
					FiveMinute: []vnstat.Entry{
						{Rx: 1, Tx: 2},
						{Rx: 10, Tx: 20},
					},
					Hour:  []vnstat.Entry{{Rx: 100, Tx: 200}},
					Day:   []vnstat.Entry{{Rx: 1000, Tx: 2000}},
					Year:  []vnstat.Entry{{Rx: 100000, Tx: 200000}},
					Month: nil,
				},
			},
		},
	}
}

func TestPublishLatestEntry(t *testing.T) {
	m := New()
	m.Publish(report())

	if v := testutil.ToFloat64(m.fiveMin.WithLabelValues("eth0", "rx")); v != 10 {
		t.Errorf("expected fiveminute rx 10, got %v", v)
	}
	if v := testutil.ToFloat64(m.fiveMin.WithLabelValues("eth0", "tx")); v != 20 {
		t.Errorf("expected fiveminute tx 20, got %v", v)
	}
}

func TestPublishEmptyWindow(t *testing.T) {
	m := New()
	m.Publish(report())

	// no month entries ever published, so no monthly series either
	if n := testutil.CollectAndCount(m.monthly); n != 0 {
		t.Errorf("expected no monthly series, got %d", n)
	}

	r := report()
	r.Interfaces[0].Traffic.Month = []vnstat.Entry{{Rx: 7, Tx: 8}}
	m.Publish(r)
	m.Publish(report())

	// an empty window must retain the prior cycle's values
	if v := testutil.ToFloat64(m.monthly.WithLabelValues("eth0", "rx")); v != 7 {
		t.Errorf("expected monthly rx to persist at 7, got %v", v)
	}
}

func TestPublishTotalDefaults(t *testing.T) {
	m := New()
	m.Publish(report())

	if v := testutil.ToFloat64(m.total.WithLabelValues("eth0", "rx")); v != 500 {
		t.Errorf("expected total rx 500, got %v", v)
	}
	if v := testutil.ToFloat64(m.total.WithLabelValues("eth0", "tx")); v != 0 {
		t.Errorf("expected total tx 0, got %v", v)
	}
	if n := testutil.CollectAndCount(m.total); n != 2 {
		t.Errorf("expected 2 total series, got %d", n)
	}
}

func TestPublishIdempotent(t *testing.T) {
	m := New()
	m.Publish(report())
	m.Publish(report())

	expected := `
# HELP vnstat_traffic_5min Traffic in the last 5 minutes
# TYPE vnstat_traffic_5min gauge
vnstat_traffic_5min{direction="rx",interface="eth0"} 10
vnstat_traffic_5min{direction="tx",interface="eth0"} 20
`
	if err := testutil.CollectAndCompare(m.fiveMin, strings.NewReader(expected)); err != nil {
		t.Error(err)
	}
}

func TestPublishUnnamedInterface(t *testing.T) {
	m := New()
	r := report()
	r.Interfaces = append([]vnstat.Interface{{
		Alias:   "phantom",
		Traffic: vnstat.Traffic{Total: vnstat.Entry{Rx: 9, Tx: 9}},
	}}, r.Interfaces...)
	m.Publish(r)

	// the unnamed interface is skipped, the named one still publishes
	if n := testutil.CollectAndCount(m.total); n != 2 {
		t.Errorf("expected 2 total series, got %d", n)
	}
	if v := testutil.ToFloat64(m.total.WithLabelValues("eth0", "rx")); v != 500 {
		t.Errorf("expected total rx 500, got %v", v)
	}
}

func TestCycle(t *testing.T) {
	m := New()
	m.Cycle(1500 * time.Millisecond)

	if v := testutil.ToFloat64(m.cycles); v != 1 {
		t.Errorf("expected 1 cycle, got %v", v)
	}
	if v := testutil.ToFloat64(m.cycleTime); v != 1.5 {
		t.Errorf("expected cycle duration 1.5s, got %v", v)
	}
	if v := testutil.ToFloat64(m.lastCycle); v == 0 {
		t.Error("expected last cycle time to be set")
	}
}
